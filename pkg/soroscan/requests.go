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

package soroscan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/soroscan/soroscan-go/pkg/sstypes"
)

const (
	pathContracts   = "/api/contracts/"
	pathEvents      = "/api/events/"
	pathRecordEvent = "/api/record-event/"
	pathWebhooks    = "/api/webhooks/"
)

const (
	// DefaultPage is the 1-indexed page requested when no options are supplied
	DefaultPage = 1
	// DefaultPageSize is the page size requested when no options are supplied
	DefaultPageSize = 50

	defaultEventOrdering = "-timestamp"
)

// ListOptions selects the requested page on any list operation. The zero
// value (or nil) requests page 1 with the default page size.
type ListOptions struct {
	Page     int64
	PageSize int64
}

// ContractFilter narrows a list-contracts call. A nil field means the filter
// is not applied; a non-nil pointer to a zero value (false, "") is still
// sent - presence, not truthiness, governs inclusion.
type ContractFilter struct {
	IsActive *bool
	Search   *string
}

// EventFilter narrows a list-events call, with the same presence semantics
// as ContractFilter. Ordering defaults to "-timestamp" (newest first);
// prefix with "-" for descending on any field the server supports.
type EventFilter struct {
	ContractID       *string
	EventType        *string
	Ledger           *int64
	LedgerMin        *int64
	LedgerMax        *int64
	ValidationStatus *sstypes.SSEnum
	Ordering         string
}

// ContractCreate registers a new contract for indexing
type ContractCreate struct {
	ContractID  string             `json:"contract_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	ABISchema   sstypes.JSONObject `json:"abi_schema,omitempty"`
}

// ContractUpdate carries a PATCH to a tracked contract. Only non-nil fields
// are transmitted.
type ContractUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// WebhookCreate registers a new webhook subscription. An empty EventType
// subscribes to all event types.
type WebhookCreate struct {
	Contract  int64  `json:"contract"`
	TargetURL string `json:"target_url"`
	EventType string `json:"event_type"`
}

// WebhookUpdate carries a PATCH to a webhook subscription. Only non-nil
// fields are transmitted.
type WebhookUpdate struct {
	TargetURL *string `json:"target_url,omitempty"`
	EventType *string `json:"event_type,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func contractPath(id string) string {
	return pathContracts + id + "/"
}

func contractStatsPath(id string) string {
	return contractPath(id) + "stats/"
}

func eventPath(id int64) string {
	return fmt.Sprintf("%s%d/", pathEvents, id)
}

func webhookPath(id int64) string {
	return fmt.Sprintf("%s%d/", pathWebhooks, id)
}

func webhookTestPath(id int64) string {
	return webhookPath(id) + "test/"
}

// listQuery produces the pagination parameters, applying the defaults when
// the caller passed nil or zero values
func listQuery(opts *ListOptions) map[string]string {
	page := int64(DefaultPage)
	pageSize := int64(DefaultPageSize)
	if opts != nil {
		if opts.Page > 0 {
			page = opts.Page
		}
		if opts.PageSize > 0 {
			pageSize = opts.PageSize
		}
	}
	return map[string]string{
		"page":      strconv.FormatInt(page, 10),
		"page_size": strconv.FormatInt(pageSize, 10),
	}
}

// queryParams emits a parameter for each present (non-nil) filter field.
// An absent field never appears as a key.
func (f *ContractFilter) queryParams() map[string]string {
	params := map[string]string{}
	if f == nil {
		return params
	}
	if f.IsActive != nil {
		params["is_active"] = strconv.FormatBool(*f.IsActive)
	}
	if f.Search != nil {
		params["search"] = *f.Search
	}
	return params
}

// queryParams maps the logical filter fields onto the server's query
// parameter names. The range arguments use the server's __gte/__lte suffix
// convention, and the contract filter addresses the related contract's
// address field - this mapping is a fixed table, not inferred.
func (f *EventFilter) queryParams() map[string]string {
	params := map[string]string{
		"ordering": defaultEventOrdering,
	}
	if f == nil {
		return params
	}
	if f.ContractID != nil {
		params["contract__contract_id"] = *f.ContractID
	}
	if f.EventType != nil {
		params["event_type"] = *f.EventType
	}
	if f.Ledger != nil {
		params["ledger"] = strconv.FormatInt(*f.Ledger, 10)
	}
	if f.LedgerMin != nil {
		params["ledger__gte"] = strconv.FormatInt(*f.LedgerMin, 10)
	}
	if f.LedgerMax != nil {
		params["ledger__lte"] = strconv.FormatInt(*f.LedgerMax, 10)
	}
	if f.ValidationStatus != nil {
		params["validation_status"] = f.ValidationStatus.String()
	}
	if f.Ordering != "" {
		params["ordering"] = f.Ordering
	}
	return params
}

func mergeQuery(maps ...map[string]string) map[string]string {
	merged := map[string]string{}
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}

func validResourceID(id string) bool {
	return id != "" && !strings.ContainsAny(id, "/?#")
}
