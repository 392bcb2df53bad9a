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

package sstypes

import (
	"context"
	"strings"

	"github.com/soroscan/soroscan-go/internal/i18n"
)

// ValidateLength checks the byte length of a string field against a ceiling
func ValidateLength(ctx context.Context, str string, fieldName string, max int) error {
	if len([]byte(str)) > max {
		return i18n.NewError(ctx, i18n.MsgFieldTooLong, fieldName, max)
	}
	return nil
}

// missingFieldsError builds a single error naming every required field that
// was absent or invalid on a decoded entity
func missingFieldsError(ctx context.Context, entity string, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return i18n.NewError(ctx, i18n.MsgMissingRequired, entity, strings.Join(fields, ", "))
}
