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

package restclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/aidarkhanov/nanoid"
	"github.com/go-resty/resty/v2"
	"github.com/soroscan/soroscan-go/internal/config"
	"github.com/soroscan/soroscan-go/internal/log"
)

type requestCtxKey struct{}

type requestCtx struct {
	id       string
	start    time.Time
	attempts uint
}

// shortIDAlphabet is designed for easy double-click select in log lines
const shortIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"

func shortID() string {
	return nanoid.Must(nanoid.Generate(shortIDAlphabet, 8))
}

// Options is the static configuration of a REST client, whether supplied
// programmatically or read from a config prefix
type Options struct {
	URL            string
	APIKey         string
	ProxyURL       string
	RequestTimeout time.Duration
	Headers        map[string]string
	HTTPClient     *http.Client
	Retry          *RetryOptions
}

// RetryOptions enables resty-level retry of failed requests. Off by default;
// the SDK itself never turns this on.
type RetryOptions struct {
	Count        int
	InitialDelay time.Duration
	MaximumDelay time.Duration
}

// New creates a new Resty client from static configuration at a given
// nested prefix in the static configuration
func New(ctx context.Context, staticConfig config.Prefix) *resty.Client {
	opts := &Options{
		URL:            staticConfig.GetString(HTTPConfigURL),
		APIKey:         staticConfig.GetString(HTTPConfigAPIKey),
		ProxyURL:       staticConfig.GetString(HTTPConfigProxyURL),
		RequestTimeout: staticConfig.GetDuration(HTTPConfigRequestTimeout),
	}
	headers := staticConfig.GetStringMap(HTTPConfigHeaders)
	if len(headers) > 0 {
		opts.Headers = make(map[string]string, len(headers))
		for k, v := range headers {
			if vs, ok := v.(string); ok {
				opts.Headers[k] = vs
			}
		}
	}
	iHTTPClient := staticConfig.Get(HTTPCustomClient)
	if httpClient, ok := iHTTPClient.(*http.Client); ok {
		opts.HTTPClient = httpClient
	}
	if staticConfig.GetBool(HTTPConfigRetryEnabled) {
		opts.Retry = &RetryOptions{
			Count:        staticConfig.GetInt(HTTPConfigRetryCount),
			InitialDelay: staticConfig.GetDuration(HTTPConfigRetryInitDelay),
			MaximumDelay: staticConfig.GetDuration(HTTPConfigRetryMaxDelay),
		}
	}
	return NewWithOptions(ctx, opts)
}

// NewWithOptions creates a new Resty client from programmatic options.
//
// You can use the normal Resty builder pattern to set per-instance
// configuration as required.
func NewWithOptions(ctx context.Context, opts *Options) *resty.Client {

	var client *resty.Client
	if opts.HTTPClient != nil {
		client = resty.NewWithClient(opts.HTTPClient)
	} else {
		client = resty.New()
	}

	url := strings.TrimSuffix(opts.URL, "/")
	if url != "" {
		client.SetBaseURL(url)
		log.L(ctx).Debugf("Created REST client to %s", url)
	}

	if opts.ProxyURL != "" {
		client.SetProxy(opts.ProxyURL)
	}

	client.SetTimeout(opts.RequestTimeout)

	client.SetHeader("Content-Type", "application/json")
	for k, v := range opts.Headers {
		client.SetHeader(k, v)
	}
	if opts.APIKey != "" {
		client.SetAuthToken(opts.APIKey)
	}

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		rctx := req.Context()
		rc := rctx.Value(requestCtxKey{})
		if rc == nil {
			// First attempt
			r := &requestCtx{
				id:    shortID(),
				start: time.Now(),
			}
			rctx = context.WithValue(rctx, requestCtxKey{}, r)
			// Create a request logger from the root logger passed into the client
			l := log.L(ctx).WithField("sreq", r.id)
			rctx = log.WithLogger(rctx, l)
			req.SetContext(rctx)
		}
		log.L(rctx).Debugf("==> %s %s%s", req.Method, url, req.URL)
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		if c == nil || resp == nil {
			return nil
		}
		rctx := resp.Request.Context()
		rc := rctx.Value(requestCtxKey{}).(*requestCtx)
		elapsed := float64(time.Since(rc.start)) / float64(time.Millisecond)
		log.L(rctx).Debugf("<== %s %s [%d] (%.2fms)", resp.Request.Method, resp.Request.URL, resp.StatusCode(), elapsed)
		return nil
	})

	if opts.Retry != nil {
		retryCount := opts.Retry.Count
		minTimeout := opts.Retry.InitialDelay
		maxTimeout := opts.Retry.MaximumDelay
		client.
			SetRetryCount(retryCount).
			SetRetryWaitTime(minTimeout).
			SetRetryMaxWaitTime(maxTimeout).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if r == nil || r.IsSuccess() {
					return false
				}
				rctx := r.Request.Context()
				rc := rctx.Value(requestCtxKey{}).(*requestCtx)
				log.L(rctx).Infof("retry %d/%d (min=%dms/max=%dms) status=%d", rc.attempts, retryCount, minTimeout.Milliseconds(), maxTimeout.Milliseconds(), r.StatusCode())
				rc.attempts++
				return true
			})
	}

	return client
}
