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

	"chatlogs-building-block/core/model"
	genmocks "chatlogs-building-block/mocks"
	"chatlogs-building-block/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSerGetChatsUserSeesOnlyOwnChats(t *testing.T) {
	pagination := model.ParsePagination("", "")
	chats := []model.Chat{{ID: "chat1", Title: "First", UserID: "user1", OrgID: "org1"}}

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindChats", "org1", mock.MatchedBy(func(ownerID *string) bool {
		return ownerID != nil && *ownerID == "user1"
	}), pagination).Return(chats, int64(1), nil)

	coreAPIs := buildCoreAPIs(&storage)
	result, meta, err := coreAPIs.Services.SerGetChats(userIdentity("user1", "org1"), model.OrgHints{}, pagination)

	assert.NoError(t, err)
	assert.Equal(t, chats, result)
	assert.Equal(t, int64(1), meta.TotalCount)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestSerGetChatsAdminSeesWholeOrganization(t *testing.T) {
	pagination := model.ParsePagination("", "")

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindChats", "org1", mock.MatchedBy(func(ownerID *string) bool {
		return ownerID == nil
	}), pagination).Return([]model.Chat{}, int64(0), nil)

	coreAPIs := buildCoreAPIs(&storage)
	_, meta, err := coreAPIs.Services.SerGetChats(adminIdentity("admin1", "org1"), model.OrgHints{}, pagination)

	assert.NoError(t, err)
	assert.Equal(t, 0, meta.TotalPages)
}

func TestSerGetChatsCrossOrgAPIKeyDenied(t *testing.T) {
	//org API key auth attached org2 but the caller's home org is org1
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org2").Return(activeOrganization("org2"), nil)

	coreAPIs := buildCoreAPIs(&storage)
	hints := model.OrgHints{Authenticated: strPtr("org2")}
	_, _, err := coreAPIs.Services.SerGetChats(adminIdentity("admin1", "org1"), hints, model.ParsePagination("", ""))

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusCrossOrgAccess, errorStatus(t, err))
	storage.AssertNotCalled(t, "FindChats", mock.Anything, mock.Anything, mock.Anything)
}

func TestSerCreateChatCrossOrgAPIKeyDenied(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org2").Return(activeOrganization("org2"), nil)

	coreAPIs := buildCoreAPIs(&storage)
	hints := model.OrgHints{Authenticated: strPtr("org2")}
	_, err := coreAPIs.Services.SerCreateChat(userIdentity("user1", "org1"), hints, "New chat")

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusCrossOrgAccess, errorStatus(t, err))
	storage.AssertNotCalled(t, "InsertChat", mock.Anything)
}

func TestSerGetChatsInactiveCallerDenied(t *testing.T) {
	identity := userIdentity("user1", "org1")
	identity.Active = false

	storage := genmocks.Storage{}
	coreAPIs := buildCoreAPIs(&storage)
	_, _, err := coreAPIs.Services.SerGetChats(identity, model.OrgHints{}, model.ParsePagination("", ""))

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusUnauthenticated, errorStatus(t, err))
	storage.AssertNotCalled(t, "FindOrganization", mock.Anything)
}

func TestSerGetChatsMissingOrgContext(t *testing.T) {
	identity := model.CallerIdentity{ID: "user1", Role: model.RoleUser, Active: true}

	storage := genmocks.Storage{}
	coreAPIs := buildCoreAPIs(&storage)
	_, _, err := coreAPIs.Services.SerGetChats(identity, model.OrgHints{}, model.ParsePagination("", ""))

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusOrgContextRequired, errorStatus(t, err))
}

func TestSerGetChatOtherOwnerReadsAsMissing(t *testing.T) {
	chat := model.Chat{ID: "chat1", Title: "Someone else's", UserID: "user2", OrgID: "org1"}

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindChat", "org1", "chat1").Return(&chat, nil)

	coreAPIs := buildCoreAPIs(&storage)
	result, err := coreAPIs.Services.SerGetChat(userIdentity("user1", "org1"), model.OrgHints{}, "chat1")

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusNotFound, errorStatus(t, err))
}

func TestSerCreateChat(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("InsertChat", mock.MatchedBy(func(chat model.Chat) bool {
		return chat.Title == "New chat" && chat.UserID == "user1" && chat.OrgID == "org1" && chat.ID != ""
	})).Return(&model.Chat{ID: "chat1", Title: "New chat", UserID: "user1", OrgID: "org1"}, nil)

	coreAPIs := buildCoreAPIs(&storage)
	created, err := coreAPIs.Services.SerCreateChat(userIdentity("user1", "org1"), model.OrgHints{}, "New chat")

	assert.NoError(t, err)
	assert.Equal(t, "chat1", created.ID)
}

func TestSerDeleteChatNotOwned(t *testing.T) {
	chat := model.Chat{ID: "chat1", UserID: "user2", OrgID: "org1"}

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindChat", "org1", "chat1").Return(&chat, nil)

	coreAPIs := buildCoreAPIs(&storage)
	err := coreAPIs.Services.SerDeleteChat(userIdentity("user1", "org1"), model.OrgHints{}, "chat1")

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusNotFound, errorStatus(t, err))
	storage.AssertNotCalled(t, "DeleteChat", mock.Anything, mock.Anything)
}

func TestSerCreateMessageInvalidRole(t *testing.T) {
	storage := genmocks.Storage{}
	coreAPIs := buildCoreAPIs(&storage)

	_, err := coreAPIs.Services.SerCreateMessage(userIdentity("user1", "org1"), model.OrgHints{}, "chat1", model.MessageRole("robot"), "hi", 3)

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusInvalid, errorStatus(t, err))
	storage.AssertNotCalled(t, "FindOrganization", mock.Anything)
}

func TestSerCreateMessageNegativeTokens(t *testing.T) {
	storage := genmocks.Storage{}
	coreAPIs := buildCoreAPIs(&storage)

	_, err := coreAPIs.Services.SerCreateMessage(userIdentity("user1", "org1"), model.OrgHints{}, "chat1", model.MessageRoleUser, "hi", -1)

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusInvalid, errorStatus(t, err))
	storage.AssertNotCalled(t, "FindOrganization", mock.Anything)
}

func TestSerCreateMessage(t *testing.T) {
	chat := model.Chat{ID: "chat1", UserID: "user1", OrgID: "org1"}

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindChat", "org1", "chat1").Return(&chat, nil)
	storage.On("InsertMessage", mock.MatchedBy(func(message model.Message) bool {
		return message.ChatID == "chat1" && message.Role == model.MessageRoleAssistant && message.Tokens == 42
	})).Return(&model.Message{ID: "msg1", ChatID: "chat1", Role: model.MessageRoleAssistant, Tokens: 42}, nil)

	coreAPIs := buildCoreAPIs(&storage)
	created, err := coreAPIs.Services.SerCreateMessage(userIdentity("user1", "org1"), model.OrgHints{}, "chat1", model.MessageRoleAssistant, "answer", 42)

	assert.NoError(t, err)
	assert.Equal(t, "msg1", created.ID)
}

func TestSerUpdateAccountNameOnly(t *testing.T) {
	user := model.User{ID: "user1", Email: "u1@example.org", Name: "Old Name", Role: model.RoleUser, OrgID: "org1", Active: true}

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindUser", "org1", "user1").Return(&user, nil)
	storage.On("UpdateUser", mock.MatchedBy(func(updated model.User) bool {
		return updated.Name == "New Name" && updated.Role == model.RoleUser && updated.Active
	})).Return(nil)

	coreAPIs := buildCoreAPIs(&storage)
	err := coreAPIs.Services.SerUpdateAccount(userIdentity("user1", "org1"), model.OrgHints{}, "New Name")

	assert.NoError(t, err)
	storage.AssertExpectations(t)
}
