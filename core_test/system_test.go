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

func TestSysGetOrganizations(t *testing.T) {
	pagination := model.ParsePagination("", "")
	organizations := []model.Organization{*activeOrganization("org1"), *activeOrganization("org2")}

	storage := genmocks.Storage{}
	storage.On("FindOrganizations", pagination).Return(organizations, int64(2), nil)

	coreAPIs := buildCoreAPIs(&storage)
	result, meta, err := coreAPIs.System.SysGetOrganizations(superadminIdentity("sa1"), pagination)

	assert.NoError(t, err)
	assert.Equal(t, organizations, result)
	assert.Equal(t, int64(2), meta.TotalCount)
}

func TestSysGetOrganizationsAdminDenied(t *testing.T) {
	storage := genmocks.Storage{}
	coreAPIs := buildCoreAPIs(&storage)

	_, _, err := coreAPIs.System.SysGetOrganizations(adminIdentity("admin1", "org1"), model.ParsePagination("", ""))

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusNotAllowed, errorStatus(t, err))
	storage.AssertNotCalled(t, "FindOrganizations", mock.Anything)
}

func TestSysCreateOrganization(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganizationByName", "New Org").Return(nil, nil)
	storage.On("InsertOrganization", mock.MatchedBy(func(organization model.Organization) bool {
		return organization.Name == "New Org" && organization.Active && organization.ID != "" && organization.APIKey != ""
	})).Return(activeOrganization("org9"), nil)

	coreAPIs := buildCoreAPIs(&storage)
	created, err := coreAPIs.System.SysCreateOrganization(superadminIdentity("sa1"), "New Org", nil)

	assert.NoError(t, err)
	assert.Equal(t, "org9", created.ID)
}

func TestSysCreateOrganizationNameConflict(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganizationByName", "Taken").Return(activeOrganization("org2"), nil)

	coreAPIs := buildCoreAPIs(&storage)
	_, err := coreAPIs.System.SysCreateOrganization(superadminIdentity("sa1"), "Taken", nil)

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusConflict, errorStatus(t, err))
	storage.AssertNotCalled(t, "InsertOrganization", mock.Anything)
}

func TestSysUpdateOrganizationMissing(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "ghost").Return(nil, nil)

	coreAPIs := buildCoreAPIs(&storage)
	err := coreAPIs.System.SysUpdateOrganization(superadminIdentity("sa1"), "ghost", "Renamed", true, nil)

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusNotFound, errorStatus(t, err))
}

func TestSysUpdateOrganizationDeactivate(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("UpdateOrganization", "org1", "Org org1", false, map[string]interface{}(nil)).Return(nil)

	coreAPIs := buildCoreAPIs(&storage)
	err := coreAPIs.System.SysUpdateOrganization(superadminIdentity("sa1"), "org1", "Org org1", false, nil)

	assert.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestSysDeleteOrganization(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("CountActiveUsers", "org1").Return(int64(0), nil)
	storage.On("DeleteOrganization", "org1").Return(nil)

	coreAPIs := buildCoreAPIs(&storage)
	err := coreAPIs.System.SysDeleteOrganization(superadminIdentity("sa1"), "org1")

	assert.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestSysDeleteOrganizationWithActiveUsers(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(activeOrganization("org1"), nil)
	storage.On("CountActiveUsers", "org1").Return(int64(3), nil)

	coreAPIs := buildCoreAPIs(&storage)
	err := coreAPIs.System.SysDeleteOrganization(superadminIdentity("sa1"), "org1")

	assert.Error(t, err)
	assert.Equal(t, utils.ErrorStatusConflict, errorStatus(t, err))
	storage.AssertNotCalled(t, "DeleteOrganization", mock.Anything)
}

func TestSysRotateOrganizationAPIKey(t *testing.T) {
	organization := activeOrganization("org1")
	organization.APIKey = "old-key"

	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org1").Return(organization, nil)
	storage.On("UpdateOrganizationAPIKey", "org1", mock.AnythingOfType("string")).Return(nil)

	coreAPIs := buildCoreAPIs(&storage)
	updated, err := coreAPIs.System.SysRotateOrganizationAPIKey(superadminIdentity("sa1"), "org1")

	assert.NoError(t, err)
	assert.NotEmpty(t, updated.APIKey)
	assert.NotEqual(t, "old-key", updated.APIKey)
}
