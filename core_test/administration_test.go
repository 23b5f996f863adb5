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

func TestAdmGetUsers(t *testing.T) {
	pagination := model.ParsePagination("1", "10")
	users := []model.User{{ID: "user1", Email: "u1@example.org", Role: model.RoleUser, OrgID: "org1", Active: true}}

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindUsers", "org1", pagination).Return(users, int64(1), nil)

	coreAPIs := buildCoreAPIs(&storage)
	result, meta, err := coreAPIs.Administration.AdmGetUsers(adminIdentity("admin1", "org1"), model.OrgHints{}, pagination)

	assert.NoError(t, err)
	assert.Equal(t, users, result)
	assert.Equal(t, int64(1), meta.TotalCount)
}

func TestAdmGetUsersUserRoleDenied(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)

	coreAPIs := buildCoreAPIs(&storage)
	_, _, err := coreAPIs.Administration.AdmGetUsers(userIdentity("user1", "org1"), model.OrgHints{}, model.ParsePagination("", ""))

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusNotAllowed, errorStatus(t, err))
	storage.AssertNotCalled(t, "FindUsers", mock.Anything, mock.Anything)
}

func TestAdmGetUsersCrossOrgAPIKeyDenied(t *testing.T) {
	//the request authenticated with another organization's API key
	hints := model.OrgHints{Authenticated: strPtr("org2")}

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org2").Return(activeOrganization("org2"), nil)

	coreAPIs := buildCoreAPIs(&storage)
	_, _, err := coreAPIs.Administration.AdmGetUsers(adminIdentity("admin1", "org1"), hints, model.ParsePagination("", ""))

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusCrossOrgAccess, errorStatus(t, err))
	storage.AssertNotCalled(t, "FindUsers", mock.Anything, mock.Anything)
}

func TestAdmGetUsersExplicitOrgIgnoredForAdmin(t *testing.T) {
	//an explicit foreign org id from a non-superadmin resolves to the home
	//organization instead
	hints := model.OrgHints{Query: strPtr("org2")}
	pagination := model.ParsePagination("", "")

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindUsers", "org1", pagination).Return([]model.User{}, int64(0), nil)

	coreAPIs := buildCoreAPIs(&storage)
	_, _, err := coreAPIs.Administration.AdmGetUsers(adminIdentity("admin1", "org1"), hints, pagination)

	assert.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestAdmGetUsersSuperadminExplicitOrg(t *testing.T) {
	hints := model.OrgHints{Query: strPtr("org2")}
	pagination := model.ParsePagination("", "")

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org2").Return(activeOrganization("org2"), nil)
	storage.On("FindUsers", "org2", pagination).Return([]model.User{}, int64(0), nil)

	coreAPIs := buildCoreAPIs(&storage)
	_, _, err := coreAPIs.Administration.AdmGetUsers(superadminIdentity("sa1"), hints, pagination)

	assert.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestAdmGetUsersInactiveOrganization(t *testing.T) {
	inactive := &model.Organization{ID: "org1", Name: "Org org1", Active: false}

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(inactive, nil)

	coreAPIs := buildCoreAPIs(&storage)
	_, _, err := coreAPIs.Administration.AdmGetUsers(adminIdentity("admin1", "org1"), model.OrgHints{}, model.ParsePagination("", ""))

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusNotFound, errorStatus(t, err))
}

func TestAdmCreateUser(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindUserByEmail", "org1", "new@example.org").Return(nil, nil)
	storage.On("InsertUser", mock.MatchedBy(func(user model.User) bool {
		return user.Email == "new@example.org" && user.OrgID == "org1" && user.Active && user.APIKey != ""
	})).Return(&model.User{ID: "user9", Email: "new@example.org", Role: model.RoleUser, OrgID: "org1", Active: true}, nil)

	coreAPIs := buildCoreAPIs(&storage)
	created, err := coreAPIs.Administration.AdmCreateUser(adminIdentity("admin1", "org1"), model.OrgHints{}, "new@example.org", "New User", model.RoleUser)

	assert.NoError(t, err)
	assert.Equal(t, "user9", created.ID)
}

func TestAdmCreateUserEmailConflict(t *testing.T) {
	existing := &model.User{ID: "user2", Email: "taken@example.org", Role: model.RoleUser, OrgID: "org1", Active: true}

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindUserByEmail", "org1", "taken@example.org").Return(existing, nil)

	coreAPIs := buildCoreAPIs(&storage)
	_, err := coreAPIs.Administration.AdmCreateUser(adminIdentity("admin1", "org1"), model.OrgHints{}, "taken@example.org", "New User", model.RoleUser)

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusConflict, errorStatus(t, err))
	storage.AssertNotCalled(t, "InsertUser", mock.Anything)
}

func TestAdmCreateUserAdminCannotCreateSuperadmin(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)

	coreAPIs := buildCoreAPIs(&storage)
	_, err := coreAPIs.Administration.AdmCreateUser(adminIdentity("admin1", "org1"), model.OrgHints{}, "new@example.org", "New User", model.RoleSuperAdmin)

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusNotAllowed, errorStatus(t, err))
	storage.AssertNotCalled(t, "FindUserByEmail", mock.Anything, mock.Anything)
}

func TestAdmUpdateUserAdminCannotTouchSuperadmin(t *testing.T) {
	target := &model.User{ID: "sa1", Email: "sa@example.org", Role: model.RoleSuperAdmin, OrgID: "org1", Active: true}

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindUser", "org1", "sa1").Return(target, nil)

	coreAPIs := buildCoreAPIs(&storage)
	err := coreAPIs.Administration.AdmUpdateUser(adminIdentity("admin1", "org1"), model.OrgHints{}, "sa1", strPtr("Renamed"), nil, nil)

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusNotAllowed, errorStatus(t, err))
	storage.AssertNotCalled(t, "UpdateUser", mock.Anything)
}

func TestAdmUpdateUserPartial(t *testing.T) {
	target := &model.User{ID: "user2", Email: "u2@example.org", Name: "Old", Role: model.RoleUser, OrgID: "org1", Active: true}
	newActive := false

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindUser", "org1", "user2").Return(target, nil)
	storage.On("UpdateUser", mock.MatchedBy(func(updated model.User) bool {
		return updated.Name == "Old" && !updated.Active && updated.Role == model.RoleUser
	})).Return(nil)

	coreAPIs := buildCoreAPIs(&storage)
	err := coreAPIs.Administration.AdmUpdateUser(adminIdentity("admin1", "org1"), model.OrgHints{}, "user2", nil, nil, &newActive)

	assert.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestAdmDeleteUserMissing(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindUser", "org1", "ghost").Return(nil, nil)

	coreAPIs := buildCoreAPIs(&storage)
	err := coreAPIs.Administration.AdmDeleteUser(adminIdentity("admin1", "org1"), model.OrgHints{}, "ghost")

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusNotFound, errorStatus(t, err))
	storage.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}

func TestAdmGetChatsFilteredByUser(t *testing.T) {
	pagination := model.ParsePagination("", "")
	owner := strPtr("user2")

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindChats", "org1", owner, pagination).Return([]model.Chat{}, int64(0), nil)

	coreAPIs := buildCoreAPIs(&storage)
	_, _, err := coreAPIs.Administration.AdmGetChats(adminIdentity("admin1", "org1"), model.OrgHints{}, owner, pagination)

	assert.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestAdmUpdateOrganizationCannotDeactivateOwn(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)

	coreAPIs := buildCoreAPIs(&storage)
	err := coreAPIs.Administration.AdmUpdateOrganization(adminIdentity("admin1", "org1"), model.OrgHints{}, "Org org1", false, nil)

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusNotAllowed, errorStatus(t, err))
	storage.AssertNotCalled(t, "UpdateOrganization", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdmUpdateOrganizationNameConflict(t *testing.T) {
	other := &model.Organization{ID: "org2", Name: "Taken", Active: true}

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindOrganizationByName", "Taken").Return(other, nil)

	coreAPIs := buildCoreAPIs(&storage)
	err := coreAPIs.Administration.AdmUpdateOrganization(adminIdentity("admin1", "org1"), model.OrgHints{}, "Taken", true, nil)

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusConflict, errorStatus(t, err))
	storage.AssertNotCalled(t, "UpdateOrganization", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdmUpdateOrganization(t *testing.T) {
	settings := map[string]interface{}{"retention_days": 90}

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("FindOrganizationByName", "Renamed").Return(nil, nil)
	storage.On("UpdateOrganization", "org1", "Renamed", true, settings).Return(nil)

	coreAPIs := buildCoreAPIs(&storage)
	err := coreAPIs.Administration.AdmUpdateOrganization(adminIdentity("admin1", "org1"), model.OrgHints{}, "Renamed", true, settings)

	assert.NoError(t, err)
	storage.AssertExpectations(t)
}
