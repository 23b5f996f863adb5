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

	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

//DefaultApisHandler handles the default APIs
type DefaultApisHandler struct {
	coreAPIs *core.APIs
	auth     *Auth
}

func (h DefaultApisHandler) version(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	return l.HTTPResponseSuccessMessage(h.coreAPIs.GetVersion())
}

//login exchanges a user API key for a signed access token
func (h DefaultApisHandler) login(l *logs.Log, r *http.Request, ac *authContext) logs.HTTPResponse {
	apiKey := r.Header.Get("X-Api-Key")
	if apiKey == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, model.TypeUserAPIKey, nil, nil, http.StatusUnauthorized, false)
	}

	user, err := h.coreAPIs.Auth.FindUserByAPIKey(apiKey)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionFind, model.TypeUser, nil, err, http.StatusInternalServerError, true)
	}
	if user == nil || !user.Active {
		return l.HTTPResponseErrorData(logutils.StatusInvalid, model.TypeUserAPIKey, nil, nil, http.StatusUnauthorized, false)
	}

	accessToken, err := h.auth.buildAccessToken(*user)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, logutils.TypeToken, nil, err, http.StatusInternalServerError, true)
	}

	data, err := json.Marshal(tokenResponse{AccessToken: accessToken, TokenType: "Bearer"})
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, logutils.TypeToken, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

//NewDefaultApisHandler creates new default Handler instance
func NewDefaultApisHandler(coreAPIs *core.APIs, auth *Auth) DefaultApisHandler {
	return DefaultApisHandler{coreAPIs: coreAPIs, auth: auth}
}
