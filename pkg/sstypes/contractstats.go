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

import "context"

// ContractStats is the server-derived aggregate view of a contract's
// activity. It is read-only: the client never creates or updates it.
type ContractStats struct {
	ContractID       string  `json:"contract_id"`
	Name             string  `json:"name"`
	TotalEvents      int64   `json:"total_events"`
	UniqueEventTypes int64   `json:"unique_event_types"`
	LatestLedger     *int64  `json:"latest_ledger,omitempty"`
	LastActivity     *SSTime `json:"last_activity,omitempty"`
}

// Validate checks every required field before failing. The event counters
// are legitimately zero for a contract with no activity, so only identity
// fields are required.
func (cs *ContractStats) Validate(ctx context.Context) error {
	var missing []string
	if cs.ContractID == "" {
		missing = append(missing, "contract_id")
	}
	if cs.Name == "" {
		missing = append(missing, "name")
	}
	return missingFieldsError(ctx, "ContractStats", missing)
}
