// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OK is the data payload returned by operations that have nothing else to say.
const OK = "OK"

// Response is the envelope of every successful API response.
type Response struct {
	// Data is the operation result.
	Data any `json:"data"`

	// Paging is present only on search responses.
	Paging *Paging `json:"paging,omitempty"`
}

// ErrorResponse is the envelope of every failed API response.
// Errors is either a plain message or a field-to-message map for
// validation failures.
type ErrorResponse struct {
	Errors any `json:"errors"`
}
