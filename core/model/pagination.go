// Copyright 2022 Board of Trustees of the University of Illinois.
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

package model

import (
	"strconv"
)

const (
	//DefaultPageLimit applied when the limit is missing or malformed
	DefaultPageLimit = 10
	//MaxPageLimit hard cap for any list query
	MaxPageLimit = 100
)

//Pagination is the normalized window every list query runs with. Page and
//Limit are always clamped before use - raw inputs never reach storage.
type Pagination struct {
	Page  int
	Limit int
	Skip  int64
}

//ListMeta is the response metadata produced after a count+fetch
type ListMeta struct {
	Page       int
	Limit      int
	TotalPages int
	TotalCount int64
}

//ParsePagination normalizes raw page/limit inputs. Non-numeric or missing
//values fall back to defaults; page is clamped to >=1 and limit to
//[1, MaxPageLimit]. Pure and deterministic.
func ParsePagination(rawPage string, rawLimit string) Pagination {
	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(rawLimit)
	if err != nil {
		limit = DefaultPageLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return Pagination{Page: page, Limit: limit, Skip: int64(page-1) * int64(limit)}
}

//Meta builds the list response metadata. TotalPages is 0 when the total
//count is 0, not 1.
func (p Pagination) Meta(totalCount int64) ListMeta {
	totalPages := 0
	if totalCount > 0 {
		totalPages = int((totalCount + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return ListMeta{Page: p.Page, Limit: p.Limit, TotalPages: totalPages, TotalCount: totalCount}
}
