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

// Package soroscan is the client for the SoroScan event-indexing API.
//
// A Client owns a single HTTP transport resource for its lifetime, and must
// be released with Close when no longer needed:
//
//	client, err := soroscan.NewClient(ctx, &soroscan.ClientOptions{
//		BaseURL: "https://api.soroscan.io",
//		APIKey:  apiKey,
//	})
//	if err != nil { ... }
//	defer client.Close()
//
// Every method takes a context.Context: cancelling it aborts the in-flight
// request. Methods block the calling goroutine; issue calls from multiple
// goroutines against one Client for concurrent I/O. The Client performs no
// internal retries - see the retry package for the
// caller-side pattern.
package soroscan

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/soroscan/soroscan-go/internal/config"
	"github.com/soroscan/soroscan-go/internal/i18n"
	"github.com/soroscan/soroscan-go/internal/restclient"
	"github.com/soroscan/soroscan-go/pkg/sstypes"
)

// DefaultTimeout applies to every call when ClientOptions.Timeout is unset
const DefaultTimeout = 30 * time.Second

// ClientOptions is the programmatic configuration of a Client
type ClientOptions struct {
	// BaseURL of the SoroScan API, e.g. https://api.soroscan.io
	BaseURL string
	// APIKey sent as an Authorization bearer token on every call, if set
	APIKey string
	// Timeout applied uniformly to every call (default 30s). An expired
	// timeout surfaces as an *SDKError, not an HTTP-status error.
	Timeout time.Duration
	// HTTPClient overrides the underlying transport (mainly for tests)
	HTTPClient *http.Client
}

// Client is the facade over the SoroScan API. It is safe for overlapping
// in-flight requests from multiple goroutines, but performs no locking of
// its own state - configure it fully before first use.
type Client struct {
	client *resty.Client
}

// NewClient creates a Client from programmatic options
func NewClient(ctx context.Context, opts *ClientOptions) (*Client, error) {
	if opts == nil || opts.BaseURL == "" {
		return nil, i18n.NewError(ctx, i18n.MsgMissingBaseURL)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		client: restclient.NewWithOptions(ctx, &restclient.Options{
			URL:            opts.BaseURL,
			APIKey:         opts.APIKey,
			RequestTimeout: timeout,
			HTTPClient:     opts.HTTPClient,
		}),
	}, nil
}

// NewClientWithConfig creates a Client from a config prefix previously
// registered with restclient.InitPrefix, allowing file/env driven setup
func NewClientWithConfig(ctx context.Context, prefix config.Prefix) (*Client, error) {
	if prefix.GetString(restclient.HTTPConfigURL) == "" {
		return nil, i18n.NewError(ctx, i18n.MsgMissingBaseURL)
	}
	return &Client{
		client: restclient.New(ctx, prefix),
	}, nil
}

// Close releases the transport resource. The Client must not be used after
// Close returns.
func (c *Client) Close() {
	c.client.GetClient().CloseIdleConnections()
}

// ListContracts lists tracked contracts, newest page first per server order
func (c *Client) ListContracts(ctx context.Context, filter *ContractFilter, opts *ListOptions) (*sstypes.Page[sstypes.TrackedContract], error) {
	resp, err := c.client.R().SetContext(ctx).
		SetQueryParams(mergeQuery(listQuery(opts), filter.queryParams())).
		Get(pathContracts)
	if cerr := checkResponse(ctx, resp, err); cerr != nil {
		return nil, cerr
	}
	return decodePage[sstypes.TrackedContract](ctx, resp)
}

// GetContract fetches one contract by database ID or contract address
func (c *Client) GetContract(ctx context.Context, id string) (*sstypes.TrackedContract, error) {
	if !validResourceID(id) {
		return nil, &SDKError{Message: i18n.ExpandWithCode(ctx, i18n.MsgInvalidResourceID, id)}
	}
	resp, err := c.client.R().SetContext(ctx).Get(contractPath(id))
	if cerr := checkResponse(ctx, resp, err); cerr != nil {
		return nil, cerr
	}
	return decodeEntity[sstypes.TrackedContract](ctx, resp)
}

// CreateContract registers a new contract for indexing
func (c *Client) CreateContract(ctx context.Context, in *ContractCreate) (*sstypes.TrackedContract, error) {
	resp, err := c.client.R().SetContext(ctx).
		SetBody(in).
		Post(pathContracts)
	if cerr := checkResponse(ctx, resp, err); cerr != nil {
		return nil, cerr
	}
	return decodeEntity[sstypes.TrackedContract](ctx, resp)
}

// UpdateContract PATCHes a tracked contract, sending only the fields set on
// the update, and returns the fresh snapshot
func (c *Client) UpdateContract(ctx context.Context, id string, in *ContractUpdate) (*sstypes.TrackedContract, error) {
	if !validResourceID(id) {
		return nil, &SDKError{Message: i18n.ExpandWithCode(ctx, i18n.MsgInvalidResourceID, id)}
	}
	resp, err := c.client.R().SetContext(ctx).
		SetBody(in).
		Patch(contractPath(id))
	if cerr := checkResponse(ctx, resp, err); cerr != nil {
		return nil, cerr
	}
	return decodeEntity[sstypes.TrackedContract](ctx, resp)
}

// DeleteContract removes a tracked contract
func (c *Client) DeleteContract(ctx context.Context, id string) error {
	if !validResourceID(id) {
		return &SDKError{Message: i18n.ExpandWithCode(ctx, i18n.MsgInvalidResourceID, id)}
	}
	resp, err := c.client.R().SetContext(ctx).Delete(contractPath(id))
	return checkResponse(ctx, resp, err)
}

// GetContractStats fetches the server-derived aggregate view of a contract
func (c *Client) GetContractStats(ctx context.Context, id string) (*sstypes.ContractStats, error) {
	if !validResourceID(id) {
		return nil, &SDKError{Message: i18n.ExpandWithCode(ctx, i18n.MsgInvalidResourceID, id)}
	}
	resp, err := c.client.R().SetContext(ctx).Get(contractStatsPath(id))
	if cerr := checkResponse(ctx, resp, err); cerr != nil {
		return nil, cerr
	}
	return decodeEntity[sstypes.ContractStats](ctx, resp)
}

// ListEvents queries indexed events with flexible filtering. A validation
// status filter is checked against the known statuses before transmission.
func (c *Client) ListEvents(ctx context.Context, filter *EventFilter, opts *ListOptions) (*sstypes.Page[sstypes.ContractEvent], error) {
	if filter != nil && filter.ValidationStatus != nil && !sstypes.SSEnumValid("validationstatus", *filter.ValidationStatus) {
		return nil, &SDKError{Message: i18n.ExpandWithCode(ctx, i18n.MsgInvalidEnum, *filter.ValidationStatus, "validation_status")}
	}
	resp, err := c.client.R().SetContext(ctx).
		SetQueryParams(mergeQuery(listQuery(opts), filter.queryParams())).
		Get(pathEvents)
	if cerr := checkResponse(ctx, resp, err); cerr != nil {
		return nil, cerr
	}
	return decodePage[sstypes.ContractEvent](ctx, resp)
}

// GetEvent fetches one event by database ID
func (c *Client) GetEvent(ctx context.Context, id int64) (*sstypes.ContractEvent, error) {
	resp, err := c.client.R().SetContext(ctx).Get(eventPath(id))
	if cerr := checkResponse(ctx, resp, err); cerr != nil {
		return nil, cerr
	}
	return decodeEntity[sstypes.ContractEvent](ctx, resp)
}

// RecordEvent submits a new event via the SoroScan contract. The request's
// field ceilings are enforced before any network I/O; a rejected request
// surfaces as an *SDKError as no transport call was made. The server
// acknowledges with 202 Accepted.
func (c *Client) RecordEvent(ctx context.Context, in *sstypes.RecordEventRequest) (*sstypes.RecordEventResponse, error) {
	if err := in.Validate(ctx); err != nil {
		return nil, &SDKError{Message: err.Error(), cause: err}
	}
	resp, err := c.client.R().SetContext(ctx).
		SetBody(in).
		Post(pathRecordEvent)
	if cerr := checkResponse(ctx, resp, err); cerr != nil {
		return nil, cerr
	}
	return decodeEntity[sstypes.RecordEventResponse](ctx, resp)
}

// ListWebhooks lists webhook subscriptions
func (c *Client) ListWebhooks(ctx context.Context, opts *ListOptions) (*sstypes.Page[sstypes.WebhookSubscription], error) {
	resp, err := c.client.R().SetContext(ctx).
		SetQueryParams(listQuery(opts)).
		Get(pathWebhooks)
	if cerr := checkResponse(ctx, resp, err); cerr != nil {
		return nil, cerr
	}
	return decodePage[sstypes.WebhookSubscription](ctx, resp)
}

// GetWebhook fetches one webhook subscription by database ID
func (c *Client) GetWebhook(ctx context.Context, id int64) (*sstypes.WebhookSubscription, error) {
	resp, err := c.client.R().SetContext(ctx).Get(webhookPath(id))
	if cerr := checkResponse(ctx, resp, err); cerr != nil {
		return nil, cerr
	}
	return decodeEntity[sstypes.WebhookSubscription](ctx, resp)
}

// CreateWebhook registers a new webhook subscription
func (c *Client) CreateWebhook(ctx context.Context, in *WebhookCreate) (*sstypes.WebhookSubscription, error) {
	resp, err := c.client.R().SetContext(ctx).
		SetBody(in).
		Post(pathWebhooks)
	if cerr := checkResponse(ctx, resp, err); cerr != nil {
		return nil, cerr
	}
	return decodeEntity[sstypes.WebhookSubscription](ctx, resp)
}

// UpdateWebhook PATCHes a webhook subscription, sending only the fields set
// on the update
func (c *Client) UpdateWebhook(ctx context.Context, id int64, in *WebhookUpdate) (*sstypes.WebhookSubscription, error) {
	resp, err := c.client.R().SetContext(ctx).
		SetBody(in).
		Patch(webhookPath(id))
	if cerr := checkResponse(ctx, resp, err); cerr != nil {
		return nil, cerr
	}
	return decodeEntity[sstypes.WebhookSubscription](ctx, resp)
}

// DeleteWebhook removes a webhook subscription
func (c *Client) DeleteWebhook(ctx context.Context, id int64) error {
	resp, err := c.client.R().SetContext(ctx).Delete(webhookPath(id))
	return checkResponse(ctx, resp, err)
}

// TestWebhook asks the server to send a test delivery, returning the
// server's acknowledgement verbatim
func (c *Client) TestWebhook(ctx context.Context, id int64) (sstypes.JSONObject, error) {
	resp, err := c.client.R().SetContext(ctx).Post(webhookTestPath(id))
	if cerr := checkResponse(ctx, resp, err); cerr != nil {
		return nil, cerr
	}
	result, derr := decodeEntity[sstypes.JSONObject](ctx, resp)
	if derr != nil {
		return nil, derr
	}
	return *result, nil
}

// getPage follows a server-supplied absolute page link verbatim, used by
// Pager - the link's embedded parameters take precedence over any defaults
func getPage[T any](ctx context.Context, c *Client, link string) (*sstypes.Page[T], error) {
	resp, err := c.client.R().SetContext(ctx).Get(link)
	if cerr := checkResponse(ctx, resp, err); cerr != nil {
		return nil, cerr
	}
	return decodePage[T](ctx, resp)
}
