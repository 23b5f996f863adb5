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

package core_test

import (
	"testing"
	"time"

	"chatlogs-building-block/core/model"
	genmocks "chatlogs-building-block/mocks"
	"chatlogs-building-block/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdmGetDailyActivity(t *testing.T) {
	activity := []model.DailyActivity{{Date: "2026-01-02", Count: 3}, {Date: "2026-01-05", Count: 1}}

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindDailyActivity", "org1", mock.MatchedBy(func(window model.AggregationWindow) bool {
		return window.Start.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			window.End.Equal(time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC))
	})).Return(activity, nil)

	coreAPIs := buildCoreAPIs(&storage)
	result, window, err := coreAPIs.Administration.AdmGetDailyActivity(adminIdentity("admin1", "org1"), model.OrgHints{}, "2026-01-01", "2026-01-31")

	assert.NoError(t, err)
	assert.Equal(t, activity, result)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), window.Start)
}

func TestAdmGetDailyActivityMalformedDate(t *testing.T) {
	storage := genmocks.Storage{}
	coreAPIs := buildCoreAPIs(&storage)

	_, _, err := coreAPIs.Administration.AdmGetDailyActivity(adminIdentity("admin1", "org1"), model.OrgHints{}, "01/31/2026", "")

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusInvalidDateFormat, errorStatus(t, err))

	//the window fails before any storage access
	storage.AssertNotCalled(t, "FindOrganization", mock.Anything)
	storage.AssertNotCalled(t, "FindDailyActivity", mock.Anything, mock.Anything)
}

func TestAdmGetDailyActivityEndBeforeStart(t *testing.T) {
	storage := genmocks.Storage{}
	coreAPIs := buildCoreAPIs(&storage)

	_, _, err := coreAPIs.Administration.AdmGetDailyActivity(adminIdentity("admin1", "org1"), model.OrgHints{}, "2026-02-01", "2026-01-01")

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusInvalidDateFormat, errorStatus(t, err))
	storage.AssertNotCalled(t, "FindOrganization", mock.Anything)
}

func TestAdmGetDailyActivityEmptyWindow(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindDailyActivity", "org1", mock.AnythingOfType("model.AggregationWindow")).Return(nil, nil)

	coreAPIs := buildCoreAPIs(&storage)
	result, _, err := coreAPIs.Administration.AdmGetDailyActivity(adminIdentity("admin1", "org1"), model.OrgHints{}, "", "")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Len(t, result, 0)
}

func TestAdmGetMessageStats(t *testing.T) {
	chatIDs := []string{"chat1", "chat2"}
	roleStats := []model.RoleStats{
		{Role: model.MessageRoleUser, Count: 4, TotalTokens: 100, AvgTokens: 25.0},
		{Role: model.MessageRoleAssistant, Count: 2, TotalTokens: 37, AvgTokens: 18.125},
	}

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindChatIDsInWindow", "org1", mock.AnythingOfType("model.AggregationWindow")).Return(chatIDs, nil)
	storage.On("FindMessageRoleStats", "org1", chatIDs).Return(roleStats, nil)

	coreAPIs := buildCoreAPIs(&storage)
	stats, _, err := coreAPIs.Administration.AdmGetMessageStats(adminIdentity("admin1", "org1"), model.OrgHints{}, "", "")

	assert.NoError(t, err)
	assert.Equal(t, int64(6), stats.TotalMessages)
	assert.Equal(t, int64(137), stats.TotalTokens)
	assert.Len(t, stats.Roles, 2)

	//averages are rounded half-up to 2 decimals
	assert.Equal(t, 25.0, stats.Roles[0].AvgTokens)
	assert.Equal(t, 18.13, stats.Roles[1].AvgTokens)
}

func TestAdmGetMessageStatsEmptyWindow(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindChatIDsInWindow", "org1", mock.AnythingOfType("model.AggregationWindow")).Return([]string{}, nil)

	coreAPIs := buildCoreAPIs(&storage)
	stats, _, err := coreAPIs.Administration.AdmGetMessageStats(adminIdentity("admin1", "org1"), model.OrgHints{}, "", "")

	assert.NoError(t, err)
	assert.NotNil(t, stats)
	assert.Len(t, stats.Roles, 0)
	assert.Equal(t, int64(0), stats.TotalMessages)

	//no chats in the window means the message aggregation never runs
	storage.AssertNotCalled(t, "FindMessageRoleStats", mock.Anything, mock.Anything)
}

func TestAdmGetTopActorsLimitDefault(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindTopActors", "org1", mock.AnythingOfType("model.AggregationWindow"), 10).Return([]model.ActorActivity{}, nil)

	coreAPIs := buildCoreAPIs(&storage)
	_, _, err := coreAPIs.Administration.AdmGetTopActors(adminIdentity("admin1", "org1"), model.OrgHints{}, "", "", "")

	assert.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestAdmGetTopActorsLimitClamped(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindTopActors", "org1", mock.AnythingOfType("model.AggregationWindow"), 100).Return([]model.ActorActivity{}, nil)

	coreAPIs := buildCoreAPIs(&storage)
	_, _, err := coreAPIs.Administration.AdmGetTopActors(adminIdentity("admin1", "org1"), model.OrgHints{}, "", "", "5000")

	assert.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestAdmGetTopActorsDeletedAuthorKeepsRow(t *testing.T) {
	actors := []model.ActorActivity{
		{UserID: "user1", Name: "User One", Email: "u1@example.org", Count: 12},
		{UserID: "gone", Name: "", Email: "", Count: 5},
	}

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindTopActors", "org1", mock.AnythingOfType("model.AggregationWindow"), 10).Return(actors, nil)

	coreAPIs := buildCoreAPIs(&storage)
	result, _, err := coreAPIs.Administration.AdmGetTopActors(adminIdentity("admin1", "org1"), model.OrgHints{}, "", "", "")

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "gone", result[1].UserID)
	assert.Equal(t, "", result[1].Name)
}

func TestAdmGetAnalyticsUserRoleDenied(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)

	coreAPIs := buildCoreAPIs(&storage)
	_, _, err := coreAPIs.Administration.AdmGetDailyActivity(userIdentity("user1", "org1"), model.OrgHints{}, "", "")

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusNotAllowed, errorStatus(t, err))
	storage.AssertNotCalled(t, "FindDailyActivity", mock.Anything, mock.Anything)
}

func TestAdmExportChats(t *testing.T) {
	exports := []model.ChatExport{
		{Chat: model.Chat{ID: "chat1", OrgID: "org1"}, Messages: []model.Message{{ID: "msg1", ChatID: "chat1"}}},
	}

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindChatExports", "org1", mock.AnythingOfType("model.AggregationWindow")).Return(exports, nil)

	coreAPIs := buildCoreAPIs(&storage)
	result, window, err := coreAPIs.Administration.AdmExportChats(adminIdentity("admin1", "org1"), model.OrgHints{}, "", "")

	assert.NoError(t, err)
	assert.NotNil(t, window)
	assert.Len(t, result, 1)
	assert.Len(t, result[0].Messages, 1)
}
