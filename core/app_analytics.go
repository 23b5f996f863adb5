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

package core

import (
	"chatlogs-building-block/core/model"
	"chatlogs-building-block/utils"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// The aggregation operations. Date bounds are validated before any storage
// access, and every aggregation applies the same organization boundary as
// the plain CRUD paths - that is the correctness property of this file.

//resolveAnalyticsContext validates the window first, then gates like any
//other admin operation
func (app *application) resolveAnalyticsContext(identity model.CallerIdentity, hints model.OrgHints, rawStart string, rawEnd string) (*model.RequestContext, *model.AggregationWindow, error) {
	window, err := model.ParseAggregationWindow(rawStart, rawEnd)
	if err != nil {
		return nil, nil, err
	}

	context, err := app.resolveAdminContext(identity, hints)
	if err != nil {
		return nil, nil, err
	}
	return context, window, nil
}

func (app *application) admGetDailyActivity(identity model.CallerIdentity, hints model.OrgHints, rawStart string, rawEnd string) ([]model.DailyActivity, *model.AggregationWindow, error) {
	context, window, err := app.resolveAnalyticsContext(identity, hints, rawStart, rawEnd)
	if err != nil {
		return nil, nil, err
	}

	activity, err := app.storage.FindDailyActivity(context.Organization.ID, *window)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionCompute, model.TypeDailyActivity, nil, err)
	}
	if activity == nil {
		activity = []model.DailyActivity{}
	}
	return activity, window, nil
}

func (app *application) admGetMessageStats(identity model.CallerIdentity, hints model.OrgHints, rawStart string, rawEnd string) (*model.MessageStats, *model.AggregationWindow, error) {
	context, window, err := app.resolveAnalyticsContext(identity, hints, rawStart, rawEnd)
	if err != nil {
		return nil, nil, err
	}

	//resolve the chat id set within the boundary first, then aggregate the
	//dependent messages restricted to it
	chatIDs, err := app.storage.FindChatIDsInWindow(context.Organization.ID, *window)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeChat, nil, err)
	}
	if len(chatIDs) == 0 {
		return &model.MessageStats{Roles: []model.RoleStats{}}, window, nil
	}

	roleStats, err := app.storage.FindMessageRoleStats(context.Organization.ID, chatIDs)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionCompute, model.TypeMessageStats, nil, err)
	}

	stats := model.MessageStats{Roles: make([]model.RoleStats, len(roleStats))}
	for i, row := range roleStats {
		row.AvgTokens = utils.Round2(row.AvgTokens)
		stats.Roles[i] = row
		stats.TotalMessages += row.Count
		stats.TotalTokens += row.TotalTokens
	}
	return &stats, window, nil
}

func (app *application) admGetTopActors(identity model.CallerIdentity, hints model.OrgHints, rawStart string, rawEnd string, rawLimit string) ([]model.ActorActivity, *model.AggregationWindow, error) {
	context, window, err := app.resolveAnalyticsContext(identity, hints, rawStart, rawEnd)
	if err != nil {
		return nil, nil, err
	}

	limit := model.ParseTopLimit(rawLimit)
	actors, err := app.storage.FindTopActors(context.Organization.ID, *window, limit)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionCompute, model.TypeActorActivity, nil, err)
	}
	if actors == nil {
		actors = []model.ActorActivity{}
	}
	return actors, window, nil
}

func (app *application) admExportChats(identity model.CallerIdentity, hints model.OrgHints, rawStart string, rawEnd string) ([]model.ChatExport, *model.AggregationWindow, error) {
	context, window, err := app.resolveAnalyticsContext(identity, hints, rawStart, rawEnd)
	if err != nil {
		return nil, nil, err
	}

	exports, err := app.storage.FindChatExports(context.Organization.ID, *window)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeChat, nil, err)
	}
	if exports == nil {
		exports = []model.ChatExport{}
	}
	return exports, window, nil
}
