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
	"chatlogs-building-block/utils"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type chat struct {
	ID     string `bson:"_id"`
	Title  string `bson:"title"`
	UserID string `bson:"user_id"`
	OrgID  string `bson:"org_id"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated"`
}

type message struct {
	ID      string `bson:"_id"`
	ChatID  string `bson:"chat_id"`
	UserID  string `bson:"user_id"`
	OrgID   string `bson:"org_id"`
	Role    string `bson:"role"`
	Content string `bson:"content"`
	Tokens  int    `bson:"tokens"`

	DateCreated time.Time `bson:"date_created"`
}

func chatFromStorage(item chat) model.Chat {
	return model.Chat{ID: item.ID, Title: item.Title, UserID: item.UserID, OrgID: item.OrgID,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func chatToStorage(item model.Chat) chat {
	return chat{ID: item.ID, Title: item.Title, UserID: item.UserID, OrgID: item.OrgID,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func messageFromStorage(item message) model.Message {
	return model.Message{ID: item.ID, ChatID: item.ChatID, UserID: item.UserID, OrgID: item.OrgID,
		Role: model.MessageRole(item.Role), Content: item.Content, Tokens: item.Tokens, DateCreated: item.DateCreated}
}

func messageToStorage(item model.Message) message {
	return message{ID: item.ID, ChatID: item.ChatID, UserID: item.UserID, OrgID: item.OrgID,
		Role: string(item.Role), Content: item.Content, Tokens: item.Tokens, DateCreated: item.DateCreated}
}

//FindChat finds a chat by id within an organization
func (sa *Adapter) FindChat(orgID string, id string) (*model.Chat, error) {
	var result chat
	err := sa.db.chats.FindOne(bson.M{"_id": id, "org_id": orgID}, &result, nil)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeChat, &logutils.FieldArgs{"id": id}, err)
	}

	item := chatFromStorage(result)
	return &item, nil
}

//FindChats finds a page of the organization chats, newest first, optionally
//restricted to one owner
func (sa *Adapter) FindChats(orgID string, userID *string, pagination model.Pagination) ([]model.Chat, int64, error) {
	filter := bson.M{"org_id": orgID}
	if userID != nil {
		filter["user_id"] = *userID
	}

	var result []chat
	sort := bson.D{primitive.E{Key: "date_created", Value: -1}}
	totalCount, err := sa.findPage(sa.db.chats, filter, sort, pagination, &result)
	if err != nil {
		return nil, 0, errors.WrapErrorAction(logutils.ActionFind, model.TypeChat, &logutils.FieldArgs{"org_id": orgID}, err)
	}

	items := make([]model.Chat, len(result))
	for i, current := range result {
		items[i] = chatFromStorage(current)
	}
	return items, totalCount, nil
}

//InsertChat inserts a chat
func (sa *Adapter) InsertChat(item model.Chat) (*model.Chat, error) {
	stgChat := chatToStorage(item)
	_, err := sa.db.chats.InsertOne(stgChat)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeChat, nil, err)
	}

	return &item, nil
}

//UpdateChat updates the chat title
func (sa *Adapter) UpdateChat(orgID string, id string, title string) error {
	now := time.Now().UTC()

	filter := bson.M{"_id": id, "org_id": orgID}
	update := bson.D{
		primitive.E{Key: "$set", Value: bson.D{
			primitive.E{Key: "title", Value: title},
			primitive.E{Key: "date_updated", Value: now},
		}},
	}

	result, err := sa.db.chats.UpdateOne(filter, update, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeChat, &logutils.FieldArgs{"id": id}, err)
	}
	if result.MatchedCount == 0 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeChat, &logutils.FieldArgs{"id": id}).SetStatus(utils.ErrorStatusNotFound)
	}

	return nil
}

//DeleteChat deletes a chat and its messages
func (sa *Adapter) DeleteChat(orgID string, id string) error {
	return sa.performTransaction(func(sessionContext mongo.SessionContext) error {
		_, err := sa.db.messages.DeleteManyWithContext(sessionContext, bson.M{"org_id": orgID, "chat_id": id}, nil)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeMessage, &logutils.FieldArgs{"chat_id": id}, err)
		}

		result, err := sa.db.chats.DeleteOneWithContext(sessionContext, bson.M{"_id": id, "org_id": orgID}, nil)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeChat, &logutils.FieldArgs{"id": id}, err)
		}
		if result.DeletedCount == 0 {
			return errors.ErrorData(logutils.StatusMissing, model.TypeChat, &logutils.FieldArgs{"id": id}).SetStatus(utils.ErrorStatusNotFound)
		}
		return nil
	})
}

//FindMessages finds a page of a chat's messages in chronological order
func (sa *Adapter) FindMessages(orgID string, chatID string, pagination model.Pagination) ([]model.Message, int64, error) {
	filter := bson.M{"org_id": orgID, "chat_id": chatID}

	var result []message
	sort := bson.D{primitive.E{Key: "date_created", Value: 1}}
	totalCount, err := sa.findPage(sa.db.messages, filter, sort, pagination, &result)
	if err != nil {
		return nil, 0, errors.WrapErrorAction(logutils.ActionFind, model.TypeMessage, &logutils.FieldArgs{"chat_id": chatID}, err)
	}

	items := make([]model.Message, len(result))
	for i, current := range result {
		items[i] = messageFromStorage(current)
	}
	return items, totalCount, nil
}

//InsertMessage inserts a message
func (sa *Adapter) InsertMessage(item model.Message) (*model.Message, error) {
	stgMessage := messageToStorage(item)
	_, err := sa.db.messages.InsertOne(stgMessage)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeMessage, nil, err)
	}

	return &item, nil
}
