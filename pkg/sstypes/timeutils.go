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
	"encoding/json"
	"strconv"
	"time"

	"github.com/soroscan/soroscan-go/internal/i18n"
)

// SSTime is serialized to JSON on the API in RFC3339 nanosecond UTC time.
// It can be parsed from RFC3339, or unix timestamps (second, millisecond or
// nanosecond resolution)
type SSTime time.Time

func Now() *SSTime {
	t := SSTime(time.Now().UTC())
	return &t
}

func ZeroTime() SSTime {
	return SSTime(time.Time{}.UTC())
}

func UnixTime(unixTime int64) *SSTime {
	if unixTime < 1e10 {
		unixTime *= 1e3 // secs to millis
	}
	if unixTime < 1e15 {
		unixTime *= 1e6 // millis to nanos
	}
	t := SSTime(time.Unix(0, unixTime))
	return &t
}

func (st *SSTime) MarshalJSON() ([]byte, error) {
	if st == nil || time.Time(*st).IsZero() {
		return json.Marshal(nil)
	}
	return json.Marshal(st.String())
}

func ParseTimeString(str string) (*SSTime, error) {
	t, err := time.Parse(time.RFC3339Nano, str)
	if err != nil {
		var unixTime int64
		unixTime, err = strconv.ParseInt(str, 10, 64)
		if err == nil {
			return UnixTime(unixTime), nil
		}
	}
	if err != nil {
		zero := ZeroTime()
		return &zero, i18n.NewError(context.Background(), i18n.MsgTimeParseFail, str)
	}
	st := SSTime(t)
	return &st, nil
}

func (st *SSTime) UnixNano() int64 {
	if st == nil {
		return 0
	}
	return time.Time(*st).UnixNano()
}

func (st *SSTime) UnmarshalText(b []byte) error {
	t, err := ParseTimeString(string(b))
	if err != nil {
		return err
	}
	*st = *t
	return nil
}

func (st *SSTime) Time() *time.Time {
	return (*time.Time)(st)
}

func (st *SSTime) String() string {
	if st == nil || time.Time(*st).IsZero() {
		return ""
	}
	return time.Time(*st).UTC().Format(time.RFC3339Nano)
}
