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

import "strings"

// SSEnum is a lower-cased string with a closed set of values, registered
// per enum type at init time
type SSEnum string

var enumValues = map[string][]SSEnum{}

func ssEnum(t string, val string) SSEnum {
	enumValues[t] = append(enumValues[t], SSEnum(val))
	return SSEnum(val)
}

// SSEnumValues returns the registered values for an enum type
func SSEnumValues(t string) []SSEnum {
	return enumValues[t]
}

// SSEnumValid checks a value is one of the registered values for an enum type
func SSEnumValid(t string, val SSEnum) bool {
	for _, v := range enumValues[t] {
		if v.Equals(val) {
			return true
		}
	}
	return false
}

func (se SSEnum) String() string {
	return strings.ToLower(string(se))
}

func (se SSEnum) Equals(se2 SSEnum) bool {
	return strings.EqualFold(string(se), string(se2))
}

func (se *SSEnum) UnmarshalText(b []byte) error {
	*se = SSEnum(strings.ToLower(string(b)))
	return nil
}
