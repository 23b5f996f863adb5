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

// The access policy checks. All of them are pure functions over model values
// and every denial is terminal - callers stop on the first non-nil error.

//checkActive denies inactive callers
func checkActive(identity model.CallerIdentity) error {
	if !identity.Active {
		return errors.ErrorData(logutils.StatusInvalid, model.TypeCallerIdentity, &logutils.FieldArgs{"id": identity.ID, "active": false}).SetStatus(utils.ErrorStatusUnauthenticated)
	}
	return nil
}

//checkRoleFloor enforces a minimum role by ordinal comparison
func checkRoleFloor(identity model.CallerIdentity, min model.Role) error {
	if !identity.Role.AtLeast(min) {
		return errors.ErrorData(logutils.StatusInvalid, model.TypeRole, &logutils.FieldArgs{"role": identity.Role, "required": min}).SetStatus(utils.ErrorStatusNotAllowed)
	}
	return nil
}

//checkTenancy denies non-superadmin callers acting outside their home
//organization. This holds even for admins.
func checkTenancy(context model.RequestContext) error {
	if context.Identity.Role.AtLeast(model.RoleSuperAdmin) {
		return nil
	}
	if context.Identity.OrgID == nil || *context.Identity.OrgID != context.Organization.ID {
		return errors.ErrorData(logutils.StatusInvalid, model.TypeOrgContext, &logutils.FieldArgs{"caller": context.Identity.ID, "org_id": context.Organization.ID}).SetStatus(utils.ErrorStatusCrossOrgAccess)
	}
	return nil
}

//checkSelfOrAdmin allows identity-scoped operations for the owner, for an
//admin within the owner's organization, or for a superadmin. The denial is a
//not-found so existence never leaks across owners.
func checkSelfOrAdmin(context model.RequestContext, ownerID string, ownerOrgID string, dataType logutils.MessageDataType) error {
	identity := context.Identity
	if identity.Role.AtLeast(model.RoleSuperAdmin) {
		return nil
	}
	if identity.ID == ownerID && context.Organization.ID == ownerOrgID {
		return nil
	}
	if identity.Role.AtLeast(model.RoleAdmin) && context.Organization.ID == ownerOrgID {
		return nil
	}
	return errors.ErrorData(logutils.StatusMissing, dataType, &logutils.FieldArgs{"owner": ownerID}).SetStatus(utils.ErrorStatusNotFound)
}

//checkRoleAssignment guards privilege escalation - only a superadmin may
//create or promote to superadmin, regardless of tenancy or ownership
func checkRoleAssignment(identity model.CallerIdentity, requested model.Role) error {
	if !requested.Valid() {
		return errors.ErrorData(logutils.StatusInvalid, model.TypeRole, logutils.StringArgs(string(requested))).SetStatus(utils.ErrorStatusInvalid)
	}
	if requested == model.RoleSuperAdmin && !identity.Role.AtLeast(model.RoleSuperAdmin) {
		return errors.ErrorData(logutils.StatusInvalid, model.TypeRole, &logutils.FieldArgs{"requested": requested, "assigner": identity.Role}).SetStatus(utils.ErrorStatusNotAllowed)
	}
	return nil
}

//checkOrganizationDeactivation guards the self-preservation rule - an admin
//may not deactivate the organization they themselves administer through a
//generic update path. Enforced uniformly on every update path.
func checkOrganizationDeactivation(identity model.CallerIdentity, organization model.Organization, newActive bool) error {
	if newActive || !organization.Active {
		return nil
	}
	if identity.Role.AtLeast(model.RoleSuperAdmin) {
		return nil
	}
	if identity.OrgID != nil && *identity.OrgID == organization.ID {
		return errors.ErrorData(logutils.StatusInvalid, model.TypeOrganization, &logutils.FieldArgs{"id": organization.ID, "caller": identity.ID}).SetStatus(utils.ErrorStatusNotAllowed)
	}
	return nil
}
