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

//resolveOrgID determines the single organization id a request operates
//against, or fails. Precedence:
// 1. an organization already attached by organization-level API key auth
// 2. the caller's home organization for user/admin - an explicit id supplied
//    by a non-superadmin is ignored here and left for the policy checks
// 3. for superadmin - an explicit id from query, then body, then path, then
//    the home organization if one is set
func resolveOrgID(identity model.CallerIdentity, hints model.OrgHints) (string, error) {
	if hints.Authenticated != nil && *hints.Authenticated != "" {
		return *hints.Authenticated, nil
	}

	if !identity.Role.AtLeast(model.RoleSuperAdmin) {
		if identity.OrgID == nil || *identity.OrgID == "" {
			return "", errors.ErrorData(logutils.StatusMissing, model.TypeOrgContext, &logutils.FieldArgs{"caller": identity.ID}).SetStatus(utils.ErrorStatusOrgContextRequired)
		}
		return *identity.OrgID, nil
	}

	for _, explicit := range []*string{hints.Query, hints.Body, hints.Path} {
		if explicit != nil && *explicit != "" {
			return *explicit, nil
		}
	}
	if identity.OrgID != nil && *identity.OrgID != "" {
		return *identity.OrgID, nil
	}

	return "", errors.ErrorData(logutils.StatusMissing, model.TypeOrgContext, &logutils.FieldArgs{"caller": identity.ID}).SetStatus(utils.ErrorStatusOrgContextRequired)
}

//resolveRequestContext builds the immutable request context every operation
//threads by parameter - one active caller and exactly one existing, active
//organization. Fails closed on any missing piece.
func (app *application) resolveRequestContext(identity model.CallerIdentity, hints model.OrgHints) (*model.RequestContext, error) {
	err := checkActive(identity)
	if err != nil {
		return nil, err
	}

	orgID, err := resolveOrgID(identity, hints)
	if err != nil {
		return nil, err
	}

	organization, err := app.storage.FindOrganization(orgID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"id": orgID}, err)
	}
	if organization == nil || !organization.Active {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeOrganization, &logutils.FieldArgs{"id": orgID}).SetStatus(utils.ErrorStatusNotFound)
	}

	return &model.RequestContext{Identity: identity, Organization: *organization}, nil
}
