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

const (
	MaxContractIDLength  = 56
	MaxEventTypeLength   = 100
	MaxPayloadHashLength = 64
)

// RecordEventRequest is the outbound submission of a new event via the
// SoroScan contract. Field ceilings are enforced client-side before
// transmission.
type RecordEventRequest struct {
	ContractID  string `json:"contract_id"`
	EventType   string `json:"event_type"`
	PayloadHash string `json:"payload_hash"`
}

// Validate enforces presence and the declared length ceilings
func (rer *RecordEventRequest) Validate(ctx context.Context) error {
	var missing []string
	if rer.ContractID == "" {
		missing = append(missing, "contract_id")
	}
	if rer.EventType == "" {
		missing = append(missing, "event_type")
	}
	if rer.PayloadHash == "" {
		missing = append(missing, "payload_hash")
	}
	if err := missingFieldsError(ctx, "RecordEventRequest", missing); err != nil {
		return err
	}
	if err := ValidateLength(ctx, rer.ContractID, "contract_id", MaxContractIDLength); err != nil {
		return err
	}
	if err := ValidateLength(ctx, rer.EventType, "event_type", MaxEventTypeLength); err != nil {
		return err
	}
	return ValidateLength(ctx, rer.PayloadHash, "payload_hash", MaxPayloadHashLength)
}

// RecordEventResponse is the server's acknowledgement of an event submission
type RecordEventResponse struct {
	Status            string  `json:"status"`
	TxHash            *string `json:"tx_hash,omitempty"`
	TransactionStatus *string `json:"transaction_status,omitempty"`
	Error             *string `json:"error,omitempty"`
}

// Validate checks the required status field
func (rer *RecordEventResponse) Validate(ctx context.Context) error {
	var missing []string
	if rer.Status == "" {
		missing = append(missing, "status")
	}
	return missingFieldsError(ctx, "RecordEventResponse", missing)
}
