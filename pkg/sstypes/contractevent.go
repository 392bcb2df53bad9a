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

var (
	// ValidationStatusPassed - the event payload validated against the contract schema
	ValidationStatusPassed = ssEnum("validationstatus", "passed")
	// ValidationStatusFailed - the event payload did not validate against the contract schema
	ValidationStatusFailed = ssEnum("validationstatus", "failed")
)

// ContractEvent is a single indexed event emitted by a tracked contract.
// (ledger, event_index) is unique per contract. The payload hash is a
// server-side content digest of the payload and is opaque to the client.
type ContractEvent struct {
	ID               int64      `json:"id"`
	ContractID       string     `json:"contract_id"`
	ContractName     string     `json:"contract_name"`
	EventType        string     `json:"event_type"`
	Payload          JSONObject `json:"payload"`
	PayloadHash      string     `json:"payload_hash"`
	Ledger           int64      `json:"ledger"`
	EventIndex       int64      `json:"event_index"`
	Timestamp        *SSTime    `json:"timestamp"`
	TxHash           string     `json:"tx_hash"`
	SchemaVersion    *int64     `json:"schema_version,omitempty"`
	ValidationStatus SSEnum     `json:"validation_status"`
}

func (ce *ContractEvent) UnmarshalJSON(b []byte) error {
	type contractEventAlias ContractEvent
	alias := contractEventAlias{
		ValidationStatus: ValidationStatusPassed,
	}
	if err := json.Unmarshal(b, &alias); err != nil {
		return err
	}
	*ce = ContractEvent(alias)
	return nil
}

// Validate checks every required field before failing
func (ce *ContractEvent) Validate(ctx context.Context) error {
	var missing []string
	if ce.ID == 0 {
		missing = append(missing, "id")
	}
	if ce.ContractID == "" {
		missing = append(missing, "contract_id")
	}
	if ce.ContractName == "" {
		missing = append(missing, "contract_name")
	}
	if ce.EventType == "" {
		missing = append(missing, "event_type")
	}
	if ce.Payload == nil {
		missing = append(missing, "payload")
	}
	if ce.PayloadHash == "" {
		missing = append(missing, "payload_hash")
	}
	if ce.Ledger == 0 {
		missing = append(missing, "ledger")
	}
	if ce.Timestamp == nil {
		missing = append(missing, "timestamp")
	}
	if ce.TxHash == "" {
		missing = append(missing, "tx_hash")
	}
	if !SSEnumValid("validationstatus", ce.ValidationStatus) {
		missing = append(missing, "validation_status")
	}
	return missingFieldsError(ctx, "ContractEvent", missing)
}
