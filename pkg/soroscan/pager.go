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

	"github.com/soroscan/soroscan-go/internal/i18n"
	"github.com/soroscan/soroscan-go/pkg/sstypes"
)

// Pager walks a chain of paginated responses by following the opaque
// next/previous links the server embeds in each page. It holds no locks:
// a Pager is for a single consumer, whether that consumer is a blocking
// loop or a dedicated goroutine.
type Pager[T any] struct {
	client *Client
	page   *sstypes.Page[T]
}

// NewPager starts from a first page obtained from any list operation
func NewPager[T any](client *Client, first *sstypes.Page[T]) *Pager[T] {
	return &Pager[T]{
		client: client,
		page:   first,
	}
}

// Page returns the page the Pager is currently positioned on
func (p *Pager[T]) Page() *sstypes.Page[T] {
	return p.page
}

// HasNext is false iff the current page is the last page
func (p *Pager[T]) HasNext() bool {
	return p.page.HasNext()
}

// HasPrevious is false iff the current page is the first page
func (p *Pager[T]) HasPrevious() bool {
	return p.page.HasPrevious()
}

// NextPage fetches the page behind the server's next link, verbatim, and
// advances the Pager onto it
func (p *Pager[T]) NextPage(ctx context.Context) (*sstypes.Page[T], error) {
	if !p.HasNext() {
		return nil, &SDKError{Message: i18n.ExpandWithCode(ctx, i18n.MsgNoPageLink, "next")}
	}
	page, err := getPage[T](ctx, p.client, *p.page.Next)
	if err != nil {
		return nil, err
	}
	p.page = page
	return page, nil
}

// PreviousPage fetches the page behind the server's previous link, verbatim,
// and moves the Pager back onto it
func (p *Pager[T]) PreviousPage(ctx context.Context) (*sstypes.Page[T], error) {
	if !p.HasPrevious() {
		return nil, &SDKError{Message: i18n.ExpandWithCode(ctx, i18n.MsgNoPageLink, "previous")}
	}
	page, err := getPage[T](ctx, p.client, *p.page.Previous)
	if err != nil {
		return nil, err
	}
	p.page = page
	return page, nil
}

// All follows next links from the current page to the last page, returning
// the ordered concatenation of every page's results, including the current
// page's
func (p *Pager[T]) All(ctx context.Context) ([]T, error) {
	results := append([]T{}, p.page.Results...)
	for p.HasNext() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		results = append(results, page.Results...)
	}
	return results, nil
}
