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
	"encoding/json"
	"strconv"
	"strings"
)

// JSONObject is a holder of arbitrary structured JSON data, such as a decoded
// event payload, an ABI schema blob, or a raw server error body
type JSONObject map[string]interface{}

func (jd JSONObject) GetString(key string) string {
	s, _ := jd.GetStringOk(key)
	return s
}

func (jd JSONObject) GetStringOk(key string) (string, bool) {
	vInterface := jd[key]
	switch vt := vInterface.(type) {
	case string:
		return vt, true
	case bool:
		return strconv.FormatBool(vt), true
	case float64:
		return strconv.FormatFloat(vt, 'f', -1, 64), true
	default:
		return "", false
	}
}

func (jd JSONObject) GetBool(key string) bool {
	vInterface := jd[key]
	switch vt := vInterface.(type) {
	case string:
		return strings.EqualFold(vt, "true")
	case bool:
		return vt
	default:
		return false
	}
}

func (jd JSONObject) GetInt64(key string) int64 {
	i, _ := jd.GetInt64Ok(key)
	return i
}

func (jd JSONObject) GetInt64Ok(key string) (int64, bool) {
	vInterface := jd[key]
	switch vt := vInterface.(type) {
	case float64:
		return int64(vt), true
	case int64:
		return vt, true
	case string:
		i, err := strconv.ParseInt(vt, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

func (jd JSONObject) GetObject(key string) JSONObject {
	ob, _ := jd.GetObjectOk(key)
	return ob
}

func (jd JSONObject) GetObjectOk(key string) (JSONObject, bool) {
	vInterface, ok := jd[key]
	if ok && vInterface != nil {
		switch vMap := vInterface.(type) {
		case map[string]interface{}:
			return JSONObject(vMap), true
		case JSONObject:
			return vMap, true
		}
	}
	return JSONObject{}, false // Ensures a non-nil return
}

func (jd JSONObject) String() string {
	b, _ := json.Marshal(&jd)
	return string(b)
}
