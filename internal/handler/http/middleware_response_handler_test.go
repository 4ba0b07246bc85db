// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_WriteAccumulatesSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Write([]byte("abc"))
	w.Write([]byte("de"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, "abcde", rec.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	assert.Same(t, rec, w.Unwrap())
}
