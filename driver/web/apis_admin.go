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

//AdminApisHandler handles the admin-tier APIs
type AdminApisHandler struct {
	coreAPIs *core.APIs
}

func (h AdminApisHandler) getUsers(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	users, meta, err := h.coreAPIs.Administration.AdmGetUsers(ac.identity, requestOrgHints(r, ac, nil), requestPagination(r))
	if err != nil {
		return errorResponse(l, "Error getting users", err)
	}

	data, err := json.Marshal(newListResponse(userListToDef(users), *meta))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeUser, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) getUser(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	id := mux.Vars(r)["id"]
	if id == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	user, err := h.coreAPIs.Administration.AdmGetUser(ac.identity, requestOrgHints(r, ac, nil), id)
	if err != nil {
		return errorResponse(l, "Error getting user", err)
	}

	data, err := json.Marshal(userToDef(*user, false))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeUser, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) createUser(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	var requestData createUserRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	err = validator.New().Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	hints := requestOrgHints(r, ac, requestData.OrgID)
	user, err := h.coreAPIs.Administration.AdmCreateUser(ac.identity, hints, requestData.Email, requestData.Name, model.Role(requestData.Role))
	if err != nil {
		return errorResponse(l, "Error creating user", err)
	}

	//the API key is returned once, on creation
	data, err := json.Marshal(userToDef(*user, true))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeUser, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) updateUser(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	id := mux.Vars(r)["id"]
	if id == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	var requestData updateUserRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	var role *model.Role
	if requestData.Role != nil {
		value := model.Role(*requestData.Role)
		role = &value
	}

	hints := requestOrgHints(r, ac, requestData.OrgID)
	err = h.coreAPIs.Administration.AdmUpdateUser(ac.identity, hints, id, requestData.Name, role, requestData.Active)
	if err != nil {
		return errorResponse(l, "Error updating user", err)
	}
	return l.HTTPResponseSuccess()
}

func (h AdminApisHandler) deleteUser(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	id := mux.Vars(r)["id"]
	if id == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	err := h.coreAPIs.Administration.AdmDeleteUser(ac.identity, requestOrgHints(r, ac, nil), id)
	if err != nil {
		return errorResponse(l, "Error deleting user", err)
	}
	return l.HTTPResponseSuccess()
}

func (h AdminApisHandler) getChats(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	var userID *string
	if value := r.URL.Query().Get("user_id"); value != "" {
		userID = &value
	}

	chats, meta, err := h.coreAPIs.Administration.AdmGetChats(ac.identity, requestOrgHints(r, ac, nil), userID, requestPagination(r))
	if err != nil {
		return errorResponse(l, "Error getting chats", err)
	}

	data, err := json.Marshal(newListResponse(chatListToDef(chats), *meta))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeChat, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) getChat(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	id := mux.Vars(r)["id"]
	if id == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	chat, err := h.coreAPIs.Administration.AdmGetChat(ac.identity, requestOrgHints(r, ac, nil), id)
	if err != nil {
		return errorResponse(l, "Error getting chat", err)
	}

	data, err := json.Marshal(chatToDef(*chat))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeChat, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) deleteChat(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	id := mux.Vars(r)["id"]
	if id == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	err := h.coreAPIs.Administration.AdmDeleteChat(ac.identity, requestOrgHints(r, ac, nil), id)
	if err != nil {
		return errorResponse(l, "Error deleting chat", err)
	}
	return l.HTTPResponseSuccess()
}

func (h AdminApisHandler) getMessages(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	chatID := mux.Vars(r)["id"]
	if chatID == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	messages, meta, err := h.coreAPIs.Administration.AdmGetMessages(ac.identity, requestOrgHints(r, ac, nil), chatID, requestPagination(r))
	if err != nil {
		return errorResponse(l, "Error getting messages", err)
	}

	data, err := json.Marshal(newListResponse(messageListToDef(messages), *meta))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeMessage, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) updateOrganization(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	var requestData updateOrganizationRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	err = validator.New().Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	hints := requestOrgHints(r, ac, requestData.OrgID)
	err = h.coreAPIs.Administration.AdmUpdateOrganization(ac.identity, hints, requestData.Name, requestData.Active, requestData.Settings)
	if err != nil {
		return errorResponse(l, "Error updating organization", err)
	}
	return l.HTTPResponseSuccess()
}

func (h AdminApisHandler) getDailyActivity(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	rawStart, rawEnd := requestWindow(r)
	activity, window, err := h.coreAPIs.Administration.AdmGetDailyActivity(ac.identity, requestOrgHints(r, ac, nil), rawStart, rawEnd)
	if err != nil {
		return errorResponse(l, "Error getting daily activity", err)
	}

	data, err := json.Marshal(newAggregateResponse(dailyActivityListToDef(activity), *window))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeDailyActivity, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) getMessageStats(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	rawStart, rawEnd := requestWindow(r)
	stats, window, err := h.coreAPIs.Administration.AdmGetMessageStats(ac.identity, requestOrgHints(r, ac, nil), rawStart, rawEnd)
	if err != nil {
		return errorResponse(l, "Error getting message stats", err)
	}

	data, err := json.Marshal(newAggregateResponse(messageStatsToDef(*stats), *window))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeMessageStats, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) getTopActors(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	rawStart, rawEnd := requestWindow(r)
	rawLimit := r.URL.Query().Get("limit")
	actors, window, err := h.coreAPIs.Administration.AdmGetTopActors(ac.identity, requestOrgHints(r, ac, nil), rawStart, rawEnd, rawLimit)
	if err != nil {
		return errorResponse(l, "Error getting top actors", err)
	}

	data, err := json.Marshal(newAggregateResponse(actorActivityListToDef(actors), *window))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeActorActivity, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) exportChats(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	rawStart, rawEnd := requestWindow(r)
	exports, window, err := h.coreAPIs.Administration.AdmExportChats(ac.identity, requestOrgHints(r, ac, nil), rawStart, rawEnd)
	if err != nil {
		return errorResponse(l, "Error exporting chats", err)
	}

	data, err := json.Marshal(newAggregateResponse(chatExportListToDef(exports), *window))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeChat, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

//NewAdminApisHandler creates new admin Handler instance
func NewAdminApisHandler(coreAPIs *core.APIs) AdminApisHandler {
	return AdminApisHandler{coreAPIs: coreAPIs}
}
