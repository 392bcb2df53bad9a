// Copyright © 2026 SoroScan Contributors
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package soroscan

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/soroscan/soroscan-go/pkg/sstypes"
)

// SDKError is raised for failures that never reached HTTP status
// classification: connection failures, timeouts, cancelled contexts, and
// invalid requests rejected before transmission. Callers typically retry
// these, unlike the 4xx kinds.
type SDKError struct {
	Message string
	cause   error
}

func (e *SDKError) Error() string {
	return e.Message
}

func (e *SDKError) Unwrap() error {
	return e.cause
}

// APIError is the catch-all for any non-2xx HTTP response that does not map
// to a more specific kind, and the common carrier embedded in all the
// status-specific kinds. ResponseBody is empty when the server's error body
// was not parseable as JSON.
type APIError struct {
	StatusCode   int
	Message      string
	ResponseBody sstypes.JSONObject
}

func (e *APIError) Error() string {
	return fmt.Sprintf("SoroScan API error [%d]: %s", e.StatusCode, e.Message)
}

// ValidationError - the server rejected the request (HTTP 400)
type ValidationError struct {
	APIError
}

// AuthError - authentication or authorization failed (HTTP 401 or 403)
type AuthError struct {
	APIError
}

// NotFoundError - the resource does not exist (HTTP 404)
type NotFoundError struct {
	APIError
}

// RateLimitError - the rate limit was exceeded (HTTP 429)
type RateLimitError struct {
	APIError
}

// Unwrap lets errors.As match any status-specific kind as an *APIError
func (e *ValidationError) Unwrap() error { return &e.APIError }
func (e *AuthError) Unwrap() error       { return &e.APIError }
func (e *NotFoundError) Unwrap() error   { return &e.APIError }
func (e *RateLimitError) Unwrap() error  { return &e.APIError }

// SchemaError - a successful HTTP response carried a body that did not
// decode or validate against the expected entity schema. Distinct from both
// transport failures and HTTP-status errors.
type SchemaError struct {
	Message string
	cause   error
}

func (e *SchemaError) Error() string {
	return e.Message
}

func (e *SchemaError) Unwrap() error {
	return e.cause
}

// newStatusError classifies a non-success (status, body) pair into exactly
// one taxonomy kind. A malformed error body must never itself raise a
// parsing failure that masks the real HTTP error.
func newStatusError(statusCode int, body []byte) error {
	data := sstypes.JSONObject{}
	message := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &data); err != nil {
		data = sstypes.JSONObject{}
	} else if detail := data.GetString("detail"); detail != "" {
		message = detail
	} else if errMsg := data.GetString("error"); errMsg != "" {
		message = errMsg
	}

	base := APIError{
		StatusCode:   statusCode,
		Message:      message,
		ResponseBody: data,
	}
	switch statusCode {
	case 400:
		return &ValidationError{base}
	case 401, 403:
		return &AuthError{base}
	case 404:
		return &NotFoundError{base}
	case 429:
		return &RateLimitError{base}
	default:
		return &base
	}
}
