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

package i18n

var (
	MsgConfigFailed      = ssm("SS10101", "Failed to read config: %s")
	MsgTimeParseFail     = ssm("SS10102", "Cannot parse time as RFC3339 or unix timestamp: '%s'")
	MsgFieldTooLong      = ssm("SS10103", "Field '%s' is too long (max: %d)")
	MsgMissingRequired   = ssm("SS10104", "%s is missing required fields: %s")
	MsgJSONDecodeFailed  = ssm("SS10105", "Failed to decode %s from response JSON")
	MsgContextCanceled   = ssm("SS10106", "Context canceled")
	MsgMissingBaseURL    = ssm("SS10107", "No base URL configured for the SoroScan API")
	MsgRequestFailed     = ssm("SS10108", "SoroScan API request failed: %s")
	MsgNoPageLink        = ssm("SS10109", "Paginated response has no '%s' link to follow")
	MsgInvalidEnum       = ssm("SS10110", "Value '%s' is not valid for %s")
	MsgInvalidResourceID = ssm("SS10111", "Invalid resource identifier '%s'")
)
