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
)

// TrackedContract is a Soroban contract registered for indexing.
// Instances are immutable snapshots of server state; every write operation
// returns a fresh snapshot.
type TrackedContract struct {
	ID                int64      `json:"id"`
	ContractID        string     `json:"contract_id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	ABISchema         JSONObject `json:"abi_schema,omitempty"`
	IsActive          bool       `json:"is_active"`
	LastIndexedLedger *int64     `json:"last_indexed_ledger,omitempty"`
	EventCount        int64      `json:"event_count"`
	Created           *SSTime    `json:"created_at"`
	Updated           *SSTime    `json:"updated_at"`
}

func (tc *TrackedContract) UnmarshalJSON(b []byte) error {
	type trackedContractAlias TrackedContract
	alias := trackedContractAlias{
		IsActive: true,
	}
	if err := json.Unmarshal(b, &alias); err != nil {
		return err
	}
	*tc = TrackedContract(alias)
	return nil
}

// Validate checks every required field before failing, so a single error
// names all the problems with a malformed server payload
func (tc *TrackedContract) Validate(ctx context.Context) error {
	var missing []string
	if tc.ID == 0 {
		missing = append(missing, "id")
	}
	if tc.ContractID == "" {
		missing = append(missing, "contract_id")
	}
	if tc.Name == "" {
		missing = append(missing, "name")
	}
	if tc.Created == nil {
		missing = append(missing, "created_at")
	}
	if tc.Updated == nil {
		missing = append(missing, "updated_at")
	}
	return missingFieldsError(ctx, "TrackedContract", missing)
}
