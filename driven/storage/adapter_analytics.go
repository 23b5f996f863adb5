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
	"time"

	"chatlogs-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The aggregations run fully inside Mongo. Every pipeline starts with a
// $match on org_id plus the window bounds so the organization boundary is
// applied before any grouping.

func windowFilter(orgID string, window model.AggregationWindow) bson.M {
	return bson.M{"org_id": orgID, "date_created": bson.M{"$gte": window.Start, "$lte": window.End}}
}

//FindChatIDsInWindow gives the ids of the organization chats created within
//the window
func (sa *Adapter) FindChatIDsInWindow(orgID string, window model.AggregationWindow) ([]string, error) {
	pipeline := []bson.M{
		{"$match": windowFilter(orgID, window)},
		{"$project": bson.M{"_id": 1}},
	}

	var result []struct {
		ID string `bson:"_id"`
	}
	err := sa.db.chats.Aggregate(pipeline, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeChat, &logutils.FieldArgs{"org_id": orgID}, err)
	}

	ids := make([]string, len(result))
	for i, current := range result {
		ids[i] = current.ID
	}
	return ids, nil
}

//dailyActivityPipeline buckets chats by UTC calendar day of creation,
//ascending by day
func dailyActivityPipeline(orgID string, window model.AggregationWindow) []bson.M {
	return []bson.M{
		{"$match": windowFilter(orgID, window)},
		{"$group": bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$date_created", "timezone": "UTC"}},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}
}

//FindDailyActivity groups the organization chats by UTC calendar day of
//creation. Days with no chats produce no rows.
func (sa *Adapter) FindDailyActivity(orgID string, window model.AggregationWindow) ([]model.DailyActivity, error) {
	pipeline := dailyActivityPipeline(orgID, window)

	var result []struct {
		Date  string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	err := sa.db.chats.Aggregate(pipeline, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionCompute, model.TypeDailyActivity, &logutils.FieldArgs{"org_id": orgID}, err)
	}

	items := make([]model.DailyActivity, len(result))
	for i, current := range result {
		items[i] = model.DailyActivity{Date: current.Date, Count: current.Count}
	}
	return items, nil
}

//FindMessageRoleStats groups the messages of the given chats by message role
func (sa *Adapter) FindMessageRoleStats(orgID string, chatIDs []string) ([]model.RoleStats, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"org_id": orgID, "chat_id": bson.M{"$in": chatIDs}}},
		{"$group": bson.M{
			"_id":          "$role",
			"count":        bson.M{"$sum": 1},
			"total_tokens": bson.M{"$sum": "$tokens"},
			"avg_tokens":   bson.M{"$avg": "$tokens"},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	var result []struct {
		Role        string  `bson:"_id"`
		Count       int64   `bson:"count"`
		TotalTokens int64   `bson:"total_tokens"`
		AvgTokens   float64 `bson:"avg_tokens"`
	}
	err := sa.db.messages.Aggregate(pipeline, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionCompute, model.TypeMessageStats, &logutils.FieldArgs{"org_id": orgID}, err)
	}

	items := make([]model.RoleStats, len(result))
	for i, current := range result {
		items[i] = model.RoleStats{Role: model.MessageRole(current.Role), Count: current.Count,
			TotalTokens: current.TotalTokens, AvgTokens: current.AvgTokens}
	}
	return items, nil
}

//topActorsPipeline groups messages by author, counts descending with ties
//broken by the most recent message, and joins the user only after the $limit
func topActorsPipeline(orgID string, window model.AggregationWindow, limit int) []bson.M {
	return []bson.M{
		{"$match": windowFilter(orgID, window)},
		{"$group": bson.M{
			"_id":         "$user_id",
			"count":       bson.M{"$sum": 1},
			"last_active": bson.M{"$max": "$date_created"},
		}},
		{"$sort": bson.D{primitive.E{Key: "count", Value: -1}, primitive.E{Key: "last_active", Value: -1}}},
		{"$limit": limit},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "user",
		}},
		{"$unwind": bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}},
	}
}

//FindTopActors gives the most active message authors in the window. Deleted
//authors keep their rows with blank name and email.
func (sa *Adapter) FindTopActors(orgID string, window model.AggregationWindow, limit int) ([]model.ActorActivity, error) {
	pipeline := topActorsPipeline(orgID, window, limit)

	var result []struct {
		UserID     string    `bson:"_id"`
		Count      int64     `bson:"count"`
		LastActive time.Time `bson:"last_active"`
		User       *struct {
			Name  string `bson:"name"`
			Email string `bson:"email"`
		} `bson:"user"`
	}
	err := sa.db.messages.Aggregate(pipeline, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionCompute, model.TypeActorActivity, &logutils.FieldArgs{"org_id": orgID}, err)
	}

	items := make([]model.ActorActivity, len(result))
	for i, current := range result {
		item := model.ActorActivity{UserID: current.UserID, Count: current.Count, LastActive: current.LastActive}
		if current.User != nil {
			item.Name = current.User.Name
			item.Email = current.User.Email
		}
		items[i] = item
	}
	return items, nil
}

//FindChatExports gives the organization chats created in the window together
//with their messages in chronological order
func (sa *Adapter) FindChatExports(orgID string, window model.AggregationWindow) ([]model.ChatExport, error) {
	pipeline := []bson.M{
		{"$match": windowFilter(orgID, window)},
		{"$sort": bson.M{"date_created": 1}},
		{"$lookup": bson.M{
			"from": "messages",
			"let":  bson.M{"chat_id": "$_id"},
			"pipeline": []bson.M{
				{"$match": bson.M{"$expr": bson.M{"$eq": []string{"$chat_id", "$$chat_id"}}}},
				{"$sort": bson.M{"date_created": 1}},
			},
			"as": "messages",
		}},
	}

	var result []struct {
		chat     `bson:",inline"`
		Messages []message `bson:"messages"`
	}
	err := sa.db.chats.Aggregate(pipeline, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeChat, &logutils.FieldArgs{"org_id": orgID}, err)
	}

	items := make([]model.ChatExport, len(result))
	for i, current := range result {
		export := model.ChatExport{Chat: chatFromStorage(current.chat), Messages: make([]model.Message, len(current.Messages))}
		for j, msg := range current.Messages {
			export.Messages[j] = messageFromStorage(msg)
		}
		items[i] = export
	}
	return items, nil
}
