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

// WebhookSubscription is a registration to have matching events POSTed to a
// target URL. An empty event_type filter matches all event types. The
// failure count increases on consecutive delivery failures and is reset by
// the server on a successful delivery; the client only observes it.
type WebhookSubscription struct {
	ID            int64   `json:"id"`
	Contract      int64   `json:"contract"`
	ContractID    string  `json:"contract_id"`
	EventType     string  `json:"event_type"`
	TargetURL     string  `json:"target_url"`
	IsActive      bool    `json:"is_active"`
	Created       *SSTime `json:"created_at"`
	LastTriggered *SSTime `json:"last_triggered,omitempty"`
	FailureCount  int64   `json:"failure_count"`
}

func (ws *WebhookSubscription) UnmarshalJSON(b []byte) error {
	type webhookSubscriptionAlias WebhookSubscription
	alias := webhookSubscriptionAlias{
		IsActive: true,
	}
	if err := json.Unmarshal(b, &alias); err != nil {
		return err
	}
	*ws = WebhookSubscription(alias)
	return nil
}

// Validate checks every required field before failing
func (ws *WebhookSubscription) Validate(ctx context.Context) error {
	var missing []string
	if ws.ID == 0 {
		missing = append(missing, "id")
	}
	if ws.Contract == 0 {
		missing = append(missing, "contract")
	}
	if ws.ContractID == "" {
		missing = append(missing, "contract_id")
	}
	if ws.TargetURL == "" {
		missing = append(missing, "target_url")
	}
	if ws.Created == nil {
		missing = append(missing, "created_at")
	}
	return missingFieldsError(ctx, "WebhookSubscription", missing)
}
