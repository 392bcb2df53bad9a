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
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/soroscan/soroscan-go/internal/config"
	"github.com/soroscan/soroscan-go/internal/restclient"
	"github.com/soroscan/soroscan-go/pkg/sstypes"
	"github.com/stretchr/testify/assert"
)

const utBaseURL = "http://localhost:12345"

const utContractJSON = `{
	"id": 1,
	"contract_id": "CCAAABBBCCCDDDEEEFFFGGGHHHIIIJJJKKKLLLMMMNNNOOOPPPQQQRRR",
	"name": "Test Token",
	"description": "",
	"is_active": true,
	"event_count": 5,
	"created_at": "2025-01-15T10:30:00Z",
	"updated_at": "2025-06-01T08:00:00Z"
}`

const utEventJSON = `{
	"id": 77,
	"contract_id": "CCAAABBBCCC",
	"contract_name": "Test Token",
	"event_type": "transfer",
	"payload": {"amount": 100},
	"payload_hash": "a1b2c3d4e5f6",
	"ledger": 123456,
	"event_index": 2,
	"timestamp": "2025-06-01T08:00:00Z",
	"tx_hash": "tx123456"
}`

const utWebhookJSON = `{
	"id": 9,
	"contract": 1,
	"contract_id": "CCAAABBBCCC",
	"event_type": "",
	"target_url": "https://example.com/hook",
	"created_at": "2025-01-15T10:30:00Z"
}`

func newTestClient(t *testing.T) *Client {
	customClient := &http.Client{}
	c, err := NewClient(context.Background(), &ClientOptions{
		BaseURL:    utBaseURL,
		APIKey:     "ut-key",
		HTTPClient: customClient,
	})
	assert.NoError(t, err)
	httpmock.ActivateNonDefault(customClient)
	t.Cleanup(func() {
		httpmock.DeactivateAndReset()
		c.Close()
	})
	return c
}

func TestNewClientMissingBaseURL(t *testing.T) {
	_, err := NewClient(context.Background(), nil)
	assert.Regexp(t, "SS10107", err)

	_, err = NewClient(context.Background(), &ClientOptions{APIKey: "key-only"})
	assert.Regexp(t, "SS10107", err)
}

func TestNewClientWithConfig(t *testing.T) {
	config.Reset()
	prefix := config.NewPrefix("ut_soroscan_api")
	restclient.InitPrefix(prefix)

	_, err := NewClientWithConfig(context.Background(), prefix)
	assert.Regexp(t, "SS10107", err)

	prefix.Set(restclient.HTTPConfigURL, utBaseURL)
	c, err := NewClientWithConfig(context.Background(), prefix)
	assert.NoError(t, err)
	defer c.Close()
}

func TestListContractsFirstPage(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("GET", utBaseURL+"/api/contracts/",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer ut-key", req.Header.Get("Authorization"))
			q := req.URL.Query()
			assert.Equal(t, "1", q.Get("page"))
			assert.Equal(t, "50", q.Get("page_size"))
			return httpmock.NewStringResponder(200, `{
				"count": 100,
				"next": "`+utBaseURL+`/api/contracts/?page=2",
				"previous": null,
				"results": [`+utContractJSON+`]
			}`)(req)
		})

	page, err := c.ListContracts(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(100), page.Count)
	assert.True(t, page.HasNext())
	assert.False(t, page.HasPrevious())
	assert.Len(t, page.Results, 1)
	assert.Equal(t, "Test Token", page.Results[0].Name)
}

func TestListContractsFilterPresence(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("GET", utBaseURL+"/api/contracts/",
		func(req *http.Request) (*http.Response, error) {
			q := req.URL.Query()
			assert.Equal(t, "false", q.Get("is_active"))
			assert.False(t, q.Has("search"))
			return httpmock.NewStringResponder(200, `{"count":0,"results":[]}`)(req)
		})

	_, err := c.ListContracts(context.Background(), &ContractFilter{IsActive: boolPtr(false)}, nil)
	assert.NoError(t, err)
}

func TestGetContractNotFound(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("GET", utBaseURL+"/api/contracts/999/",
		httpmock.NewStringResponder(404, `{"detail":"Not found"}`))

	_, err := c.GetContract(context.Background(), "999")
	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, 404, nf.StatusCode)
	assert.Equal(t, "Not found", nf.Message)
}

func TestGetContractMalformedErrorBody(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("GET", utBaseURL+"/api/contracts/999/",
		httpmock.NewStringResponder(404, `<html>gateway`))

	_, err := c.GetContract(context.Background(), "999")
	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Empty(t, nf.ResponseBody)
	assert.Equal(t, "<html>gateway", nf.Message)
}

func TestGetContractInvalidID(t *testing.T) {
	c := newTestClient(t)

	var sdkErr *SDKError
	_, err := c.GetContract(context.Background(), "999/../other")
	assert.True(t, errors.As(err, &sdkErr))
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestCreateContract(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("POST", utBaseURL+"/api/contracts/",
		func(req *http.Request) (*http.Response, error) {
			body, _ := io.ReadAll(req.Body)
			assert.Contains(t, string(body), `"contract_id":"CCAAA"`)
			return httpmock.NewStringResponder(201, utContractJSON)(req)
		})

	tc, err := c.CreateContract(context.Background(), &ContractCreate{
		ContractID: "CCAAA",
		Name:       "Test Token",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), tc.ID)
}

func TestUpdateContractSendsOnlyPresentFields(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("PATCH", utBaseURL+"/api/contracts/1/",
		func(req *http.Request) (*http.Response, error) {
			body, _ := io.ReadAll(req.Body)
			assert.Equal(t, `{"is_active":false}`, string(body))
			return httpmock.NewStringResponder(200, utContractJSON)(req)
		})

	_, err := c.UpdateContract(context.Background(), "1", &ContractUpdate{IsActive: boolPtr(false)})
	assert.NoError(t, err)
}

func TestDeleteContract(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("DELETE", utBaseURL+"/api/contracts/1/",
		httpmock.NewStringResponder(204, ""))

	assert.NoError(t, c.DeleteContract(context.Background(), "1"))
}

func TestGetContractStats(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("GET", utBaseURL+"/api/contracts/1/stats/",
		httpmock.NewStringResponder(200, `{
			"contract_id": "CCAAA",
			"name": "Test Token",
			"total_events": 1234,
			"unique_event_types": 4
		}`))

	stats, err := c.GetContractStats(context.Background(), "1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1234), stats.TotalEvents)
}

func TestListEventsFilterMapping(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("GET", utBaseURL+"/api/events/",
		func(req *http.Request) (*http.Response, error) {
			q := req.URL.Query()
			assert.Equal(t, "CCAAA", q.Get("contract__contract_id"))
			assert.Equal(t, "100", q.Get("ledger__gte"))
			assert.Equal(t, "-timestamp", q.Get("ordering"))
			assert.False(t, q.Has("ledger__lte"))
			assert.False(t, q.Has("event_type"))
			return httpmock.NewStringResponder(200, `{"count":1,"results":[`+utEventJSON+`]}`)(req)
		})

	page, err := c.ListEvents(context.Background(), &EventFilter{
		ContractID: strPtr("CCAAA"),
		LedgerMin:  int64Ptr(100),
	}, nil)
	assert.NoError(t, err)
	assert.Len(t, page.Results, 1)
	assert.Equal(t, "transfer", page.Results[0].EventType)
	assert.True(t, page.Results[0].ValidationStatus.Equals(sstypes.ValidationStatusPassed))
}

func TestListEventsRejectsUnknownValidationStatus(t *testing.T) {
	c := newTestClient(t)

	bogus := sstypes.SSEnum("maybe")
	_, err := c.ListEvents(context.Background(), &EventFilter{ValidationStatus: &bogus}, nil)
	var sdkErr *SDKError
	assert.True(t, errors.As(err, &sdkErr))
	assert.Regexp(t, "SS10110", err)
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestGetEvent(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("GET", utBaseURL+"/api/events/77/",
		httpmock.NewStringResponder(200, utEventJSON))

	ev, err := c.GetEvent(context.Background(), 77)
	assert.NoError(t, err)
	assert.Equal(t, int64(123456), ev.Ledger)
}

func TestRecordEventAccepted(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("POST", utBaseURL+"/api/record-event/",
		httpmock.NewStringResponder(202, `{"status":"submitted","tx_hash":"tx123456","transaction_status":"PENDING"}`))

	res, err := c.RecordEvent(context.Background(), &sstypes.RecordEventRequest{
		ContractID:  strings.Repeat("C", 56),
		EventType:   "transfer",
		PayloadHash: "a1b2c3d4e5f6",
	})
	assert.NoError(t, err)
	assert.Equal(t, "submitted", res.Status)
	assert.Equal(t, "tx123456", *res.TxHash)
}

func TestRecordEventRejectedBeforeTransmission(t *testing.T) {
	c := newTestClient(t)

	_, err := c.RecordEvent(context.Background(), &sstypes.RecordEventRequest{
		ContractID:  strings.Repeat("C", 57),
		EventType:   "transfer",
		PayloadHash: "a1b2",
	})
	var sdkErr *SDKError
	assert.True(t, errors.As(err, &sdkErr))
	assert.Regexp(t, "SS10103", err)
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestListWebhooks(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("GET", utBaseURL+"/api/webhooks/",
		httpmock.NewStringResponder(200, `{"count":1,"results":[`+utWebhookJSON+`]}`))

	page, err := c.ListWebhooks(context.Background(), &ListOptions{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Len(t, page.Results, 1)
	assert.True(t, page.Results[0].IsActive)
}

func TestWebhookCRUD(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("GET", utBaseURL+"/api/webhooks/9/",
		httpmock.NewStringResponder(200, utWebhookJSON))
	httpmock.RegisterResponder("POST", utBaseURL+"/api/webhooks/",
		httpmock.NewStringResponder(201, utWebhookJSON))
	httpmock.RegisterResponder("PATCH", utBaseURL+"/api/webhooks/9/",
		httpmock.NewStringResponder(200, utWebhookJSON))
	httpmock.RegisterResponder("DELETE", utBaseURL+"/api/webhooks/9/",
		httpmock.NewStringResponder(204, ""))

	ws, err := c.GetWebhook(context.Background(), 9)
	assert.NoError(t, err)
	assert.Equal(t, int64(9), ws.ID)

	ws, err = c.CreateWebhook(context.Background(), &WebhookCreate{
		Contract:  1,
		TargetURL: "https://example.com/hook",
	})
	assert.NoError(t, err)
	assert.Equal(t, "https://example.com/hook", ws.TargetURL)

	_, err = c.UpdateWebhook(context.Background(), 9, &WebhookUpdate{IsActive: boolPtr(false)})
	assert.NoError(t, err)

	assert.NoError(t, c.DeleteWebhook(context.Background(), 9))
}

func TestTestWebhook(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("POST", utBaseURL+"/api/webhooks/9/test/",
		httpmock.NewStringResponder(200, `{"status":"sent"}`))

	ack, err := c.TestWebhook(context.Background(), 9)
	assert.NoError(t, err)
	assert.Equal(t, "sent", ack.GetString("status"))
}

func TestTransportFailureIsSDKError(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("GET", utBaseURL+"/api/events/77/",
		httpmock.NewErrorResponder(fmt.Errorf("connection refused")))

	_, err := c.GetEvent(context.Background(), 77)
	var sdkErr *SDKError
	assert.True(t, errors.As(err, &sdkErr))
	assert.Regexp(t, "SS10108", err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestContextCancellationIsSDKError(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("GET", utBaseURL+"/api/events/77/",
		httpmock.NewStringResponder(200, utEventJSON).Delay(250*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.GetEvent(ctx, 77)
	var sdkErr *SDKError
	assert.True(t, errors.As(err, &sdkErr))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestMalformedSuccessBodyIsSchemaError(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("GET", utBaseURL+"/api/events/77/",
		httpmock.NewStringResponder(200, `{"id": 77}`))

	_, err := c.GetEvent(context.Background(), 77)
	var schemaErr *SchemaError
	assert.True(t, errors.As(err, &schemaErr))
	assert.Regexp(t, "SS10104", err)
}

func TestUnparseableSuccessBodyIsSchemaError(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("GET", utBaseURL+"/api/events/77/",
		httpmock.NewStringResponder(200, `!!not json`))

	_, err := c.GetEvent(context.Background(), 77)
	var schemaErr *SchemaError
	assert.True(t, errors.As(err, &schemaErr))
	assert.Regexp(t, "SS10105", err)
}

func TestConcurrentCallsShareOneClient(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("GET", utBaseURL+"/api/events/77/",
		httpmock.NewStringResponder(200, utEventJSON))

	done := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func() {
			_, err := c.GetEvent(context.Background(), 77)
			done <- err
		}()
	}
	for i := 0; i < 10; i++ {
		assert.NoError(t, <-done)
	}
}
