// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second)
//	resp, err := client.R().Get("/api/version")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent resty client rooted at baseURL.
// A zero timeout leaves resty's default (no timeout) in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
