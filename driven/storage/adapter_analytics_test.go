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

package storage

import (
	"testing"
	"time"

	"chatlogs-building-block/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testWindow() model.AggregationWindow {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
	return model.AggregationWindow{Start: start, End: end}
}

func stageIndex(t *testing.T, pipeline []bson.M, name string) int {
	t.Helper()
	for i, stage := range pipeline {
		if _, ok := stage[name]; ok {
			return i
		}
	}
	t.Fatalf("pipeline has no %s stage", name)
	return -1
}

func TestWindowFilterScopesByOrgAndBounds(t *testing.T) {
	window := testWindow()

	filter := windowFilter("org1", window)

	assert.Equal(t, "org1", filter["org_id"])
	bounds, ok := filter["date_created"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, window.Start, bounds["$gte"])
	assert.Equal(t, window.End, bounds["$lte"])
}

func TestDailyActivityPipelineGroupsByUTCDay(t *testing.T) {
	window := testWindow()

	pipeline := dailyActivityPipeline("org1", window)

	matchIdx := stageIndex(t, pipeline, "$match")
	assert.Equal(t, 0, matchIdx)
	assert.Equal(t, windowFilter("org1", window), pipeline[matchIdx]["$match"])

	groupIdx := stageIndex(t, pipeline, "$group")
	group, ok := pipeline[groupIdx]["$group"].(bson.M)
	require.True(t, ok)
	day, ok := group["_id"].(bson.M)
	require.True(t, ok)
	dateToString, ok := day["$dateToString"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "%Y-%m-%d", dateToString["format"])
	assert.Equal(t, "UTC", dateToString["timezone"])
	assert.Equal(t, "$date_created", dateToString["date"])

	sortIdx := stageIndex(t, pipeline, "$sort")
	assert.Greater(t, sortIdx, groupIdx)
	assert.Equal(t, bson.M{"_id": 1}, pipeline[sortIdx]["$sort"])
}

func TestTopActorsPipelineOrderAndLimit(t *testing.T) {
	window := testWindow()

	pipeline := topActorsPipeline("org1", window, 10)

	assert.Equal(t, 0, stageIndex(t, pipeline, "$match"))

	groupIdx := stageIndex(t, pipeline, "$group")
	group, ok := pipeline[groupIdx]["$group"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "$user_id", group["_id"])
	assert.Equal(t, bson.M{"$max": "$date_created"}, group["last_active"])

	//count descending first, then most recent activity on ties
	sortIdx := stageIndex(t, pipeline, "$sort")
	sort, ok := pipeline[sortIdx]["$sort"].(bson.D)
	require.True(t, ok)
	require.Len(t, sort, 2)
	assert.Equal(t, primitive.E{Key: "count", Value: -1}, sort[0])
	assert.Equal(t, primitive.E{Key: "last_active", Value: -1}, sort[1])

	limitIdx := stageIndex(t, pipeline, "$limit")
	assert.Greater(t, limitIdx, sortIdx)
	assert.Equal(t, 10, pipeline[limitIdx]["$limit"])

	//user join only after the limit so just the returned rows are looked up
	lookupIdx := stageIndex(t, pipeline, "$lookup")
	assert.Greater(t, lookupIdx, limitIdx)
	lookup, ok := pipeline[lookupIdx]["$lookup"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "users", lookup["from"])

	unwindIdx := stageIndex(t, pipeline, "$unwind")
	unwind, ok := pipeline[unwindIdx]["$unwind"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, true, unwind["preserveNullAndEmptyArrays"])
}

func TestTopActorsPipelineCarriesGivenLimit(t *testing.T) {
	pipeline := topActorsPipeline("org1", testWindow(), 3)

	limitIdx := stageIndex(t, pipeline, "$limit")
	assert.Equal(t, 3, pipeline[limitIdx]["$limit"])
}
