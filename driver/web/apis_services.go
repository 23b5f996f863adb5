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

//ServicesApisHandler handles the user-tier APIs
type ServicesApisHandler struct {
	coreAPIs *core.APIs
}

func (h ServicesApisHandler) getChats(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	chats, meta, err := h.coreAPIs.Services.SerGetChats(ac.identity, requestOrgHints(r, ac, nil), requestPagination(r))
	if err != nil {
		return errorResponse(l, "Error getting chats", err)
	}

	data, err := json.Marshal(newListResponse(chatListToDef(chats), *meta))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeChat, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) getChat(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	id := mux.Vars(r)["id"]
	if id == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	chat, err := h.coreAPIs.Services.SerGetChat(ac.identity, requestOrgHints(r, ac, nil), id)
	if err != nil {
		return errorResponse(l, "Error getting chat", err)
	}

	data, err := json.Marshal(chatToDef(*chat))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeChat, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) createChat(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	var requestData createChatRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	err = validator.New().Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	chat, err := h.coreAPIs.Services.SerCreateChat(ac.identity, requestOrgHints(r, ac, nil), requestData.Title)
	if err != nil {
		return errorResponse(l, "Error creating chat", err)
	}

	data, err := json.Marshal(chatToDef(*chat))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeChat, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) updateChat(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	id := mux.Vars(r)["id"]
	if id == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	var requestData updateChatRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	err = validator.New().Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	err = h.coreAPIs.Services.SerUpdateChat(ac.identity, requestOrgHints(r, ac, nil), id, requestData.Title)
	if err != nil {
		return errorResponse(l, "Error updating chat", err)
	}
	return l.HTTPResponseSuccess()
}

func (h ServicesApisHandler) deleteChat(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	id := mux.Vars(r)["id"]
	if id == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	err := h.coreAPIs.Services.SerDeleteChat(ac.identity, requestOrgHints(r, ac, nil), id)
	if err != nil {
		return errorResponse(l, "Error deleting chat", err)
	}
	return l.HTTPResponseSuccess()
}

func (h ServicesApisHandler) getMessages(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	chatID := mux.Vars(r)["id"]
	if chatID == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	messages, meta, err := h.coreAPIs.Services.SerGetMessages(ac.identity, requestOrgHints(r, ac, nil), chatID, requestPagination(r))
	if err != nil {
		return errorResponse(l, "Error getting messages", err)
	}

	data, err := json.Marshal(newListResponse(messageListToDef(messages), *meta))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeMessage, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) createMessage(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	chatID := mux.Vars(r)["id"]
	if chatID == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	var requestData createMessageRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	err = validator.New().Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	message, err := h.coreAPIs.Services.SerCreateMessage(ac.identity, requestOrgHints(r, ac, nil), chatID, model.MessageRole(requestData.Role), requestData.Content, requestData.Tokens)
	if err != nil {
		return errorResponse(l, "Error creating message", err)
	}

	data, err := json.Marshal(messageToDef(*message))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeMessage, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) getAccount(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	user, err := h.coreAPIs.Services.SerGetAccount(ac.identity, requestOrgHints(r, ac, nil))
	if err != nil {
		return errorResponse(l, "Error getting account", err)
	}

	data, err := json.Marshal(userToDef(*user, false))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeUser, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) updateAccount(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	var requestData updateAccountRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	err = validator.New().Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	err = h.coreAPIs.Services.SerUpdateAccount(ac.identity, requestOrgHints(r, ac, nil), requestData.Name)
	if err != nil {
		return errorResponse(l, "Error updating account", err)
	}
	return l.HTTPResponseSuccess()
}

//NewServicesApisHandler creates new services Handler instance
func NewServicesApisHandler(coreAPIs *core.APIs) ServicesApisHandler {
	return ServicesApisHandler{coreAPIs: coreAPIs}
}
