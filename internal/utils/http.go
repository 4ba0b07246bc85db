// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteData writes a success envelope {"data": ...}.
func WriteData(w http.ResponseWriter, data any, statusCode int) (int, error) {
	return WriteJSON(w, models.Response{Data: data}, statusCode)
}

// WritePage writes a success envelope with paging metadata
// {"data": [...], "paging": {...}}.
func WritePage(w http.ResponseWriter, page models.ContactPage, statusCode int) (int, error) {
	paging := page.Paging
	return WriteJSON(w, models.Response{Data: page.Contacts, Paging: &paging}, statusCode)
}

// WriteErrors writes a failure envelope {"errors": ...}. errs is either a
// message string or a field → message map.
func WriteErrors(w http.ResponseWriter, errs any, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Errors: errs}, statusCode)
}
