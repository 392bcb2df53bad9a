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

// Page is the generic paginated envelope returned by every list operation.
// Next is absent iff this is the last page; Previous is absent iff this is
// the first page. Page order of Results is significant.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next,omitempty"`
	Previous *string `json:"previous,omitempty"`
	Results  []T     `json:"results"`
}

func (p *Page[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

func (p *Page[T]) HasPrevious() bool {
	return p.Previous != nil && *p.Previous != ""
}

// Validate checks the envelope and validates every element with the element
// type's own schema. The whole decode fails if any element fails.
func (p *Page[T]) Validate(ctx context.Context) error {
	var missing []string
	if p.Results == nil {
		missing = append(missing, "results")
	}
	if err := missingFieldsError(ctx, "Page", missing); err != nil {
		return err
	}
	for i := range p.Results {
		if v, ok := any(&p.Results[i]).(interface{ Validate(context.Context) error }); ok {
			if err := v.Validate(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}
