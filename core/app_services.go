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
	"time"

	"chatlogs-building-block/core/model"
	"chatlogs-building-block/utils"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// User-tier operations. Every one resolves the request context first - the
// hints carry an organization attached by org API key auth, which the
// tenancy check then holds against the caller's home organization - and
// scopes storage queries by the resolved organization id, plus the caller's
// own user id for non-admin callers.

func (app *application) serGetChats(identity model.CallerIdentity, hints model.OrgHints, pagination model.Pagination) ([]model.Chat, *model.ListMeta, error) {
	context, err := app.resolveRequestContext(identity, hints)
	if err != nil {
		return nil, nil, err
	}
	err = checkTenancy(*context)
	if err != nil {
		return nil, nil, err
	}

	//non-admin callers only see their own chats
	var ownerID *string
	if !context.Identity.Role.AtLeast(model.RoleAdmin) {
		ownerID = &context.Identity.ID
	}

	chats, totalCount, err := app.storage.FindChats(context.Organization.ID, ownerID, pagination)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeChat, nil, err)
	}

	meta := pagination.Meta(totalCount)
	return chats, &meta, nil
}

//loadOwnedChat finds a chat in the resolved organization and verifies the
//caller may act on it. A chat owned by someone else reads as missing.
func (app *application) loadOwnedChat(context model.RequestContext, id string) (*model.Chat, error) {
	chat, err := app.storage.FindChat(context.Organization.ID, id)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeChat, &logutils.FieldArgs{"id": id}, err)
	}
	if chat == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeChat, &logutils.FieldArgs{"id": id}).SetStatus(utils.ErrorStatusNotFound)
	}
	err = checkSelfOrAdmin(context, chat.UserID, chat.OrgID, model.TypeChat)
	if err != nil {
		return nil, err
	}
	return chat, nil
}

func (app *application) serGetChat(identity model.CallerIdentity, hints model.OrgHints, id string) (*model.Chat, error) {
	context, err := app.resolveRequestContext(identity, hints)
	if err != nil {
		return nil, err
	}
	err = checkTenancy(*context)
	if err != nil {
		return nil, err
	}

	return app.loadOwnedChat(*context, id)
}

func (app *application) serCreateChat(identity model.CallerIdentity, hints model.OrgHints, title string) (*model.Chat, error) {
	context, err := app.resolveRequestContext(identity, hints)
	if err != nil {
		return nil, err
	}
	err = checkTenancy(*context)
	if err != nil {
		return nil, err
	}

	chat := model.Chat{ID: uuid.NewString(), Title: title, UserID: context.Identity.ID,
		OrgID: context.Organization.ID, DateCreated: time.Now().UTC()}
	created, err := app.storage.InsertChat(chat)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeChat, nil, err)
	}
	return created, nil
}

func (app *application) serUpdateChat(identity model.CallerIdentity, hints model.OrgHints, id string, title string) error {
	context, err := app.resolveRequestContext(identity, hints)
	if err != nil {
		return err
	}
	err = checkTenancy(*context)
	if err != nil {
		return err
	}

	_, err = app.loadOwnedChat(*context, id)
	if err != nil {
		return err
	}

	err = app.storage.UpdateChat(context.Organization.ID, id, title)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeChat, &logutils.FieldArgs{"id": id}, err)
	}
	return nil
}

func (app *application) serDeleteChat(identity model.CallerIdentity, hints model.OrgHints, id string) error {
	context, err := app.resolveRequestContext(identity, hints)
	if err != nil {
		return err
	}
	err = checkTenancy(*context)
	if err != nil {
		return err
	}

	_, err = app.loadOwnedChat(*context, id)
	if err != nil {
		return err
	}

	err = app.storage.DeleteChat(context.Organization.ID, id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeChat, &logutils.FieldArgs{"id": id}, err)
	}
	return nil
}

func (app *application) serGetMessages(identity model.CallerIdentity, hints model.OrgHints, chatID string, pagination model.Pagination) ([]model.Message, *model.ListMeta, error) {
	context, err := app.resolveRequestContext(identity, hints)
	if err != nil {
		return nil, nil, err
	}
	err = checkTenancy(*context)
	if err != nil {
		return nil, nil, err
	}

	_, err = app.loadOwnedChat(*context, chatID)
	if err != nil {
		return nil, nil, err
	}

	messages, totalCount, err := app.storage.FindMessages(context.Organization.ID, chatID, pagination)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMessage, &logutils.FieldArgs{"chat_id": chatID}, err)
	}

	meta := pagination.Meta(totalCount)
	return messages, &meta, nil
}

func (app *application) serCreateMessage(identity model.CallerIdentity, hints model.OrgHints, chatID string, role model.MessageRole, content string, tokens int) (*model.Message, error) {
	if !role.Valid() {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeMessage, &logutils.FieldArgs{"role": role}).SetStatus(utils.ErrorStatusInvalid)
	}
	if tokens < 0 {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeMessage, &logutils.FieldArgs{"tokens": tokens}).SetStatus(utils.ErrorStatusInvalid)
	}

	context, err := app.resolveRequestContext(identity, hints)
	if err != nil {
		return nil, err
	}
	err = checkTenancy(*context)
	if err != nil {
		return nil, err
	}

	chat, err := app.loadOwnedChat(*context, chatID)
	if err != nil {
		return nil, err
	}

	message := model.Message{ID: uuid.NewString(), ChatID: chat.ID, UserID: context.Identity.ID,
		OrgID: context.Organization.ID, Role: role, Content: content, Tokens: tokens, DateCreated: time.Now().UTC()}
	created, err := app.storage.InsertMessage(message)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeMessage, nil, err)
	}
	return created, nil
}

func (app *application) serGetAccount(identity model.CallerIdentity, hints model.OrgHints) (*model.User, error) {
	context, err := app.resolveRequestContext(identity, hints)
	if err != nil {
		return nil, err
	}
	err = checkTenancy(*context)
	if err != nil {
		return nil, err
	}

	user, err := app.storage.FindUser(context.Organization.ID, context.Identity.ID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, &logutils.FieldArgs{"id": context.Identity.ID}, err)
	}
	if user == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeUser, &logutils.FieldArgs{"id": context.Identity.ID}).SetStatus(utils.ErrorStatusNotFound)
	}
	return user, nil
}

//serUpdateAccount updates the caller's own record - name only, never role or
//active flag
func (app *application) serUpdateAccount(identity model.CallerIdentity, hints model.OrgHints, name string) error {
	context, err := app.resolveRequestContext(identity, hints)
	if err != nil {
		return err
	}
	err = checkTenancy(*context)
	if err != nil {
		return err
	}

	user, err := app.storage.FindUser(context.Organization.ID, context.Identity.ID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, &logutils.FieldArgs{"id": context.Identity.ID}, err)
	}
	if user == nil {
		return errors.ErrorData(logutils.StatusMissing, model.TypeUser, &logutils.FieldArgs{"id": context.Identity.ID}).SetStatus(utils.ErrorStatusNotFound)
	}

	user.Name = name
	err = app.storage.UpdateUser(*user)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeUser, &logutils.FieldArgs{"id": user.ID}, err)
	}
	return nil
}
