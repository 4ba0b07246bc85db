// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body())
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
	}
}

// errorDetail renders the "errors" field of an error response. A field map
// becomes "field: message" pairs sorted by field.
func errorDetail(body []byte) string {
	var payload models.ErrorResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}

	switch errs := payload.Errors.(type) {
	case string:
		return errs
	case map[string]any:
		parts := make([]string, 0, len(errs))
		for field, msg := range errs {
			parts = append(parts, fmt.Sprintf("%s: %v", field, msg))
		}
		sort.Strings(parts)
		return strings.Join(parts, "; ")
	default:
		return strings.TrimSpace(string(body))
	}
}
