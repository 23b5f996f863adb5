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

// Superadmin-tier operations. These act across organizations, so they gate
// on the role floor only and fetch targets directly by id.

func (app *application) checkSystemAccess(identity model.CallerIdentity) error {
	err := checkActive(identity)
	if err != nil {
		return err
	}
	return checkRoleFloor(identity, model.RoleSuperAdmin)
}

func (app *application) sysGetOrganizations(identity model.CallerIdentity, pagination model.Pagination) ([]model.Organization, *model.ListMeta, error) {
	err := app.checkSystemAccess(identity)
	if err != nil {
		return nil, nil, err
	}

	organizations, totalCount, err := app.storage.FindOrganizations(pagination)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}

	meta := pagination.Meta(totalCount)
	return organizations, &meta, nil
}

//loadOrganization fetches an organization by id regardless of its active flag
func (app *application) loadOrganization(id string) (*model.Organization, error) {
	organization, err := app.storage.FindOrganization(id)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err)
	}
	if organization == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeOrganization, &logutils.FieldArgs{"id": id}).SetStatus(utils.ErrorStatusNotFound)
	}
	return organization, nil
}

func (app *application) sysGetOrganization(identity model.CallerIdentity, id string) (*model.Organization, error) {
	err := app.checkSystemAccess(identity)
	if err != nil {
		return nil, err
	}
	return app.loadOrganization(id)
}

func (app *application) sysCreateOrganization(identity model.CallerIdentity, name string, settings map[string]interface{}) (*model.Organization, error) {
	err := app.checkSystemAccess(identity)
	if err != nil {
		return nil, err
	}

	//advisory pre-check - the unique name index is authoritative
	existing, err := app.storage.FindOrganizationByName(name)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"name": name}, err)
	}
	if existing != nil {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeOrganization, &logutils.FieldArgs{"name": name}).SetStatus(utils.ErrorStatusConflict)
	}

	organization := model.Organization{ID: uuid.NewString(), Name: name, Active: true,
		APIKey: utils.NewAPIKey(), Settings: settings, DateCreated: time.Now().UTC()}
	created, err := app.storage.InsertOrganization(organization)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeOrganization, &logutils.FieldArgs{"name": name}, err)
	}
	return created, nil
}

func (app *application) sysUpdateOrganization(identity model.CallerIdentity, id string, name string, active bool, settings map[string]interface{}) error {
	err := app.checkSystemAccess(identity)
	if err != nil {
		return err
	}

	organization, err := app.loadOrganization(id)
	if err != nil {
		return err
	}
	//kept for uniformity with the admin path - always passes for superadmin
	err = checkOrganizationDeactivation(identity, *organization, active)
	if err != nil {
		return err
	}

	return app.updateOrganization(*organization, name, active, settings)
}

//sysDeleteOrganization deletes an organization - only allowed when it owns
//no active user
func (app *application) sysDeleteOrganization(identity model.CallerIdentity, id string) error {
	err := app.checkSystemAccess(identity)
	if err != nil {
		return err
	}

	organization, err := app.loadOrganization(id)
	if err != nil {
		return err
	}

	activeUsers, err := app.storage.CountActiveUsers(organization.ID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, &logutils.FieldArgs{"org_id": id}, err)
	}
	if activeUsers > 0 {
		return errors.ErrorData(logutils.StatusInvalid, model.TypeOrganization, &logutils.FieldArgs{"id": id, "active_users": activeUsers}).SetStatus(utils.ErrorStatusConflict)
	}

	err = app.storage.DeleteOrganization(organization.ID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err)
	}
	return nil
}

func (app *application) sysRotateOrganizationAPIKey(identity model.CallerIdentity, id string) (*model.Organization, error) {
	err := app.checkSystemAccess(identity)
	if err != nil {
		return nil, err
	}

	organization, err := app.loadOrganization(id)
	if err != nil {
		return nil, err
	}

	newKey := utils.NewAPIKey()
	err = app.storage.UpdateOrganizationAPIKey(organization.ID, newKey)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganizationAPIKey, &logutils.FieldArgs{"id": id}, err)
	}

	organization.APIKey = newKey
	return organization, nil
}
