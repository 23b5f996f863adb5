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

//resolveAdminContext is the shared gate for admin-tier operations - context
//resolution, admin role floor and tenancy, in that order
func (app *application) resolveAdminContext(identity model.CallerIdentity, hints model.OrgHints) (*model.RequestContext, error) {
	context, err := app.resolveRequestContext(identity, hints)
	if err != nil {
		return nil, err
	}
	err = checkRoleFloor(identity, model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	err = checkTenancy(*context)
	if err != nil {
		return nil, err
	}
	return context, nil
}

func (app *application) admGetUsers(identity model.CallerIdentity, hints model.OrgHints, pagination model.Pagination) ([]model.User, *model.ListMeta, error) {
	context, err := app.resolveAdminContext(identity, hints)
	if err != nil {
		return nil, nil, err
	}

	users, totalCount, err := app.storage.FindUsers(context.Organization.ID, pagination)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, nil, err)
	}

	meta := pagination.Meta(totalCount)
	return users, &meta, nil
}

func (app *application) admGetUser(identity model.CallerIdentity, hints model.OrgHints, id string) (*model.User, error) {
	context, err := app.resolveAdminContext(identity, hints)
	if err != nil {
		return nil, err
	}

	user, err := app.storage.FindUser(context.Organization.ID, id)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, &logutils.FieldArgs{"id": id}, err)
	}
	if user == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeUser, &logutils.FieldArgs{"id": id}).SetStatus(utils.ErrorStatusNotFound)
	}
	return user, nil
}

func (app *application) admCreateUser(identity model.CallerIdentity, hints model.OrgHints, email string, name string, role model.Role) (*model.User, error) {
	context, err := app.resolveAdminContext(identity, hints)
	if err != nil {
		return nil, err
	}
	err = checkRoleAssignment(identity, role)
	if err != nil {
		return nil, err
	}

	//advisory pre-check for fast feedback - the unique index is authoritative
	existing, err := app.storage.FindUserByEmail(context.Organization.ID, email)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, &logutils.FieldArgs{"email": email}, err)
	}
	if existing != nil {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeUser, &logutils.FieldArgs{"email": email}).SetStatus(utils.ErrorStatusConflict)
	}

	user := model.User{ID: uuid.NewString(), Email: email, Name: name, Role: role,
		OrgID: context.Organization.ID, Active: true, APIKey: utils.NewAPIKey(), DateCreated: time.Now().UTC()}
	created, err := app.storage.InsertUser(user)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeUser, &logutils.FieldArgs{"email": email}, err)
	}
	return created, nil
}

func (app *application) admUpdateUser(identity model.CallerIdentity, hints model.OrgHints, id string, name *string, role *model.Role, active *bool) error {
	context, err := app.resolveAdminContext(identity, hints)
	if err != nil {
		return err
	}
	if role != nil {
		err = checkRoleAssignment(identity, *role)
		if err != nil {
			return err
		}
	}

	user, err := app.storage.FindUser(context.Organization.ID, id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, &logutils.FieldArgs{"id": id}, err)
	}
	if user == nil {
		return errors.ErrorData(logutils.StatusMissing, model.TypeUser, &logutils.FieldArgs{"id": id}).SetStatus(utils.ErrorStatusNotFound)
	}

	//an admin may not touch a superadmin record either
	err = checkRoleAssignment(identity, user.Role)
	if err != nil {
		return err
	}

	if name != nil {
		user.Name = *name
	}
	if role != nil {
		user.Role = *role
	}
	if active != nil {
		user.Active = *active
	}

	err = app.storage.UpdateUser(*user)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeUser, &logutils.FieldArgs{"id": id}, err)
	}
	return nil
}

func (app *application) admDeleteUser(identity model.CallerIdentity, hints model.OrgHints, id string) error {
	context, err := app.resolveAdminContext(identity, hints)
	if err != nil {
		return err
	}

	user, err := app.storage.FindUser(context.Organization.ID, id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, &logutils.FieldArgs{"id": id}, err)
	}
	if user == nil {
		return errors.ErrorData(logutils.StatusMissing, model.TypeUser, &logutils.FieldArgs{"id": id}).SetStatus(utils.ErrorStatusNotFound)
	}
	err = checkRoleAssignment(identity, user.Role)
	if err != nil {
		return err
	}

	err = app.storage.DeleteUser(context.Organization.ID, id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeUser, &logutils.FieldArgs{"id": id}, err)
	}
	return nil
}

func (app *application) admGetChats(identity model.CallerIdentity, hints model.OrgHints, userID *string, pagination model.Pagination) ([]model.Chat, *model.ListMeta, error) {
	context, err := app.resolveAdminContext(identity, hints)
	if err != nil {
		return nil, nil, err
	}

	chats, totalCount, err := app.storage.FindChats(context.Organization.ID, userID, pagination)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeChat, nil, err)
	}

	meta := pagination.Meta(totalCount)
	return chats, &meta, nil
}

func (app *application) admGetChat(identity model.CallerIdentity, hints model.OrgHints, id string) (*model.Chat, error) {
	context, err := app.resolveAdminContext(identity, hints)
	if err != nil {
		return nil, err
	}

	chat, err := app.storage.FindChat(context.Organization.ID, id)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeChat, &logutils.FieldArgs{"id": id}, err)
	}
	if chat == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeChat, &logutils.FieldArgs{"id": id}).SetStatus(utils.ErrorStatusNotFound)
	}
	return chat, nil
}

func (app *application) admDeleteChat(identity model.CallerIdentity, hints model.OrgHints, id string) error {
	context, err := app.resolveAdminContext(identity, hints)
	if err != nil {
		return err
	}

	chat, err := app.storage.FindChat(context.Organization.ID, id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeChat, &logutils.FieldArgs{"id": id}, err)
	}
	if chat == nil {
		return errors.ErrorData(logutils.StatusMissing, model.TypeChat, &logutils.FieldArgs{"id": id}).SetStatus(utils.ErrorStatusNotFound)
	}

	err = app.storage.DeleteChat(context.Organization.ID, id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeChat, &logutils.FieldArgs{"id": id}, err)
	}
	return nil
}

func (app *application) admGetMessages(identity model.CallerIdentity, hints model.OrgHints, chatID string, pagination model.Pagination) ([]model.Message, *model.ListMeta, error) {
	context, err := app.resolveAdminContext(identity, hints)
	if err != nil {
		return nil, nil, err
	}

	chat, err := app.storage.FindChat(context.Organization.ID, chatID)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeChat, &logutils.FieldArgs{"id": chatID}, err)
	}
	if chat == nil {
		return nil, nil, errors.ErrorData(logutils.StatusMissing, model.TypeChat, &logutils.FieldArgs{"id": chatID}).SetStatus(utils.ErrorStatusNotFound)
	}

	messages, totalCount, err := app.storage.FindMessages(context.Organization.ID, chatID, pagination)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMessage, &logutils.FieldArgs{"chat_id": chatID}, err)
	}

	meta := pagination.Meta(totalCount)
	return messages, &meta, nil
}

func (app *application) admUpdateOrganization(identity model.CallerIdentity, hints model.OrgHints, name string, active bool, settings map[string]interface{}) error {
	context, err := app.resolveAdminContext(identity, hints)
	if err != nil {
		return err
	}
	err = checkOrganizationDeactivation(identity, context.Organization, active)
	if err != nil {
		return err
	}

	return app.updateOrganization(context.Organization, name, active, settings)
}

//updateOrganization is shared between the admin and system update paths
func (app *application) updateOrganization(organization model.Organization, name string, active bool, settings map[string]interface{}) error {
	if name != organization.Name {
		//advisory pre-check - the unique name index is authoritative
		existing, err := app.storage.FindOrganizationByName(name)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"name": name}, err)
		}
		if existing != nil && existing.ID != organization.ID {
			return errors.ErrorData(logutils.StatusInvalid, model.TypeOrganization, &logutils.FieldArgs{"name": name}).SetStatus(utils.ErrorStatusConflict)
		}
	}

	err := app.storage.UpdateOrganization(organization.ID, name, active, settings)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, &logutils.FieldArgs{"id": organization.ID}, err)
	}
	return nil
}
