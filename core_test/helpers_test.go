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

	"chatlogs-building-block/core"
	"chatlogs-building-block/core/model"
	genmocks "chatlogs-building-block/mocks"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
)

func buildCoreAPIs(storage *genmocks.Storage) *core.APIs {
	logger := logs.NewLogger("test", &logs.LoggerOpts{})
	return core.NewCoreAPIs("local", "1.0.0", "build", storage, logger)
}

func strPtr(value string) *string {
	return &value
}

func errorStatus(t *testing.T, err error) string {
	t.Helper()
	loggingErr, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	return loggingErr.Status()
}

func activeOrganization(id string) *model.Organization {
	return &model.Organization{ID: id, Name: "Org " + id, Active: true}
}

func userIdentity(id string, orgID string) model.CallerIdentity {
	return model.CallerIdentity{ID: id, Name: "User " + id, Role: model.RoleUser, OrgID: &orgID, Active: true}
}

func adminIdentity(id string, orgID string) model.CallerIdentity {
	return model.CallerIdentity{ID: id, Name: "Admin " + id, Role: model.RoleAdmin, OrgID: &orgID, Active: true}
}

func superadminIdentity(id string) model.CallerIdentity {
	return model.CallerIdentity{ID: id, Name: "Super " + id, Role: model.RoleSuperAdmin, Active: true}
}
