// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError represents a failure reported by the NumerBay backend: either a
// non-2xx HTTP response, or a response body carrying a "detail" field. The
// backend's own message is preserved verbatim in Message.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Message is the backend's error description.
	Message string
}

func (err *APIError) Error() string {
	return fmt.Sprintf("numerbay: HTTP %d: %s", err.StatusCode, err.Message)
}

// IsBackendRejection reports whether err is a backend-reported failure
// (an *APIError anywhere in the chain).
func IsBackendRejection(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError)
}

// IsNotFound reports whether err is a backend 404 response.
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 404
}

// IsUnauthorized reports whether err is a backend 401 or 403 response,
// typically an expired or missing bearer token.
func IsUnauthorized(err error) bool {
	var apiError *APIError
	if !errors.As(err, &apiError) {
		return false
	}
	return apiError.StatusCode == 401 || apiError.StatusCode == 403
}

// extractDetail pulls the backend failure message out of a response body.
// The backend reports failures in a "detail" field that takes one of three
// shapes: a plain string, a list of objects with "message" fields, or a
// nested object. Returns "" when the body carries no detail field.
func extractDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}
	return flattenDetail(envelope.Detail)
}

// flattenDetail renders the three wire shapes of a "detail" value as a
// single human-readable message.
func flattenDetail(raw json.RawMessage) string {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}

	var asList []struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &asList); err == nil {
		messages := make([]string, 0, len(asList))
		for _, entry := range asList {
			if entry.Message != "" {
				messages = append(messages, entry.Message)
			}
		}
		if len(messages) > 0 {
			return strings.Join(messages, "; ")
		}
	}

	// Nested object or any other shape: surface it compacted so the
	// operator sees exactly what the backend sent.
	compact := strings.TrimSpace(string(raw))
	if compact == "null" {
		return ""
	}
	return compact
}
