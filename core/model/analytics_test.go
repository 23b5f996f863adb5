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
	"testing"
	"time"

	"chatlogs-building-block/utils"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/stretchr/testify/assert"
)

func TestParseAggregationWindowDefaults(t *testing.T) {
	window, err := ParseAggregationWindow("", "")
	assert.NoError(t, err)
	assert.NotNil(t, window)

	//trailing 30 days ending now
	assert.WithinDuration(t, time.Now().UTC(), window.End, 5*time.Second)
	assert.WithinDuration(t, window.End.AddDate(0, 0, -30), window.Start, 5*time.Second)
}

func TestParseAggregationWindowExplicitBounds(t *testing.T) {
	window, err := ParseAggregationWindow("2026-01-02", "2026-02-01")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), window.End)

	//RFC3339 bounds are accepted too
	window, err = ParseAggregationWindow("2026-01-02T10:30:00Z", "")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 2, 10, 30, 0, 0, time.UTC), window.Start)
}

func TestParseAggregationWindowMalformed(t *testing.T) {
	window, err := ParseAggregationWindow("02/01/2026", "")
	assert.Nil(t, window)
	assert.Error(t, err)

	loggingErr, ok := err.(*errors.Error)
	assert.True(t, ok)
	assert.Equal(t, utils.ErrorStatusInvalidDateFormat, loggingErr.Status())
}

func TestParseAggregationWindowEndBeforeStart(t *testing.T) {
	window, err := ParseAggregationWindow("2026-02-01", "2026-01-01")
	assert.Nil(t, window)
	assert.Error(t, err)

	loggingErr, ok := err.(*errors.Error)
	assert.True(t, ok)
	assert.Equal(t, utils.ErrorStatusInvalidDateFormat, loggingErr.Status())
}

func TestParseTopLimit(t *testing.T) {
	tests := []struct {
		name     string
		rawLimit string
		want     int
	}{
		{"default when missing", "", 10},
		{"default when malformed", "abc", 10},
		{"explicit value", "25", 25},
		{"clamped low", "0", 1},
		{"clamped high", "1000", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTopLimit(tt.rawLimit))
		})
	}
}
