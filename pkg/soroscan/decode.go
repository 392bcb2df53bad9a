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
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/soroscan/soroscan-go/internal/i18n"
	"github.com/soroscan/soroscan-go/pkg/sstypes"
)

type validator interface {
	Validate(ctx context.Context) error
}

// checkResponse maps a completed transport call onto the error taxonomy.
// A transport-level failure (including timeout and context cancellation)
// is an *SDKError; any HTTP status outside 200/201/202/204 is classified
// by newStatusError. A nil return means the response body can be decoded.
func checkResponse(ctx context.Context, resp *resty.Response, err error) error {
	if err != nil {
		return &SDKError{
			Message: i18n.ExpandWithCode(ctx, i18n.MsgRequestFailed, err),
			cause:   err,
		}
	}
	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		return newStatusError(resp.StatusCode(), resp.Body())
	}
}

// decodeEntity unmarshals a success body into the expected entity shape and
// runs the entity's own schema validation. Any failure on a successful HTTP
// response is a *SchemaError.
func decodeEntity[T any](ctx context.Context, resp *resty.Response) (*T, error) {
	var v T
	if err := json.Unmarshal(resp.Body(), &v); err != nil {
		return nil, &SchemaError{
			Message: i18n.ExpandWithCode(ctx, i18n.MsgJSONDecodeFailed, fmt.Sprintf("%T", v)),
			cause:   err,
		}
	}
	if val, ok := any(&v).(validator); ok {
		if err := val.Validate(ctx); err != nil {
			return nil, &SchemaError{
				Message: err.Error(),
				cause:   err,
			}
		}
	}
	return &v, nil
}

// decodePage decodes a paginated envelope, validating every element
func decodePage[T any](ctx context.Context, resp *resty.Response) (*sstypes.Page[T], error) {
	return decodeEntity[sstypes.Page[T]](ctx, resp)
}
