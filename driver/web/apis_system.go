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

package web

import (
	"encoding/json"
	"net/http"

	"chatlogs-building-block/core"
	"chatlogs-building-block/core/model"

	"github.com/gorilla/mux"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	validator "gopkg.in/go-playground/validator.v9"
)

//SystemApisHandler handles the superadmin-tier APIs
type SystemApisHandler struct {
	coreAPIs *core.APIs
}

func (h SystemApisHandler) getOrganizations(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	organizations, meta, err := h.coreAPIs.System.SysGetOrganizations(ac.identity, requestPagination(r))
	if err != nil {
		return errorResponse(l, "Error getting organizations", err)
	}

	data, err := json.Marshal(newListResponse(organizationListToDef(organizations), *meta))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h SystemApisHandler) getOrganization(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	id := mux.Vars(r)["id"]
	if id == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	organization, err := h.coreAPIs.System.SysGetOrganization(ac.identity, id)
	if err != nil {
		return errorResponse(l, "Error getting organization", err)
	}

	data, err := json.Marshal(organizationToDef(*organization, false))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h SystemApisHandler) createOrganization(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	var requestData createOrganizationRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	err = validator.New().Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	organization, err := h.coreAPIs.System.SysCreateOrganization(ac.identity, requestData.Name, requestData.Settings)
	if err != nil {
		return errorResponse(l, "Error creating organization", err)
	}

	//the API key is returned once, on creation
	data, err := json.Marshal(organizationToDef(*organization, true))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h SystemApisHandler) updateOrganization(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	id := mux.Vars(r)["id"]
	if id == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	var requestData updateOrganizationRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	err = validator.New().Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	err = h.coreAPIs.System.SysUpdateOrganization(ac.identity, id, requestData.Name, requestData.Active, requestData.Settings)
	if err != nil {
		return errorResponse(l, "Error updating organization", err)
	}
	return l.HTTPResponseSuccess()
}

func (h SystemApisHandler) deleteOrganization(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	id := mux.Vars(r)["id"]
	if id == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	err := h.coreAPIs.System.SysDeleteOrganization(ac.identity, id)
	if err != nil {
		return errorResponse(l, "Error deleting organization", err)
	}
	return l.HTTPResponseSuccess()
}

func (h SystemApisHandler) rotateOrganizationAPIKey(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	id := mux.Vars(r)["id"]
	if id == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	organization, err := h.coreAPIs.System.SysRotateOrganizationAPIKey(ac.identity, id)
	if err != nil {
		return errorResponse(l, "Error rotating organization API key", err)
	}

	data, err := json.Marshal(organizationToDef(*organization, true))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

//NewSystemApisHandler creates new system Handler instance
func NewSystemApisHandler(coreAPIs *core.APIs) SystemApisHandler {
	return SystemApisHandler{coreAPIs: coreAPIs}
}
