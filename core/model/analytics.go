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
	"time"

	"chatlogs-building-block/utils"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeAggregationWindow ...
	TypeAggregationWindow logutils.MessageDataType = "aggregation window"
	//TypeDailyActivity ...
	TypeDailyActivity logutils.MessageDataType = "daily activity"
	//TypeMessageStats ...
	TypeMessageStats logutils.MessageDataType = "message stats"
	//TypeActorActivity ...
	TypeActorActivity logutils.MessageDataType = "actor activity"

	//DefaultTopLimit row count for top-N queries when unspecified
	DefaultTopLimit = 10
	//DefaultWindowDays trailing window applied when no bounds are given
	DefaultWindowDays = 30
)

var windowLayouts = []string{time.RFC3339, "2006-01-02"}

//AggregationWindow is the [start, end] range bounding a metrics query
type AggregationWindow struct {
	Start time.Time
	End   time.Time
}

//ParseAggregationWindow validates and defaults the raw date bounds. Both are
//optional - the default window is the trailing 30 days ending now. Malformed
//values fail before any storage access.
func ParseAggregationWindow(rawStart string, rawEnd string) (*AggregationWindow, error) {
	now := time.Now().UTC()

	start := now.AddDate(0, 0, -DefaultWindowDays)
	end := now

	if rawStart != "" {
		parsed, err := parseWindowBound(rawStart)
		if err != nil {
			return nil, errors.WrapErrorAction(logutils.ActionParse, TypeAggregationWindow, logutils.StringArgs(rawStart), err).SetStatus(utils.ErrorStatusInvalidDateFormat)
		}
		start = *parsed
	}
	if rawEnd != "" {
		parsed, err := parseWindowBound(rawEnd)
		if err != nil {
			return nil, errors.WrapErrorAction(logutils.ActionParse, TypeAggregationWindow, logutils.StringArgs(rawEnd), err).SetStatus(utils.ErrorStatusInvalidDateFormat)
		}
		end = *parsed
	}

	if end.Before(start) {
		return nil, errors.ErrorData(logutils.StatusInvalid, TypeAggregationWindow, &logutils.FieldArgs{"start": start, "end": end}).SetStatus(utils.ErrorStatusInvalidDateFormat)
	}

	return &AggregationWindow{Start: start, End: end}, nil
}

func parseWindowBound(raw string) (*time.Time, error) {
	var lastErr error
	for _, layout := range windowLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			utcParsed := parsed.UTC()
			return &utcParsed, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

//ParseTopLimit normalizes the raw top-N limit - default 10, clamped to
//[1, MaxPageLimit]
func ParseTopLimit(rawLimit string) int {
	limit, err := strconv.Atoi(rawLimit)
	if err != nil {
		return DefaultTopLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}

//DailyActivity is one calendar day (UTC) that had at least one chat created.
//Days with no records are absent - callers must not assume contiguous days.
type DailyActivity struct {
	Date  string //2006-01-02
	Count int64
}

//RoleStats aggregates messages by message role within the resolved boundary
type RoleStats struct {
	Role        MessageRole
	Count       int64
	TotalTokens int64
	AvgTokens   float64
}

//MessageStats is the stats-by-role aggregate with its derived totals
type MessageStats struct {
	Roles []RoleStats

	TotalMessages int64
	TotalTokens   int64
}

//ActorActivity is one row of the top-N actors aggregate. Name and Email are
//joined only for returned rows, never for the full candidate set.
type ActorActivity struct {
	UserID string
	Name   string
	Email  string

	Count      int64
	LastActive time.Time
}
