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
	"net/http"

	"chatlogs-building-block/core/model"
	"chatlogs-building-block/utils"

	"github.com/gorilla/mux"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
)

//errorHTTPStatus maps the core error statuses to HTTP codes. Errors without
//a recognized status read as internal failures.
func errorHTTPStatus(err error) int {
	if loggingErr, ok := err.(*errors.Error); ok {
		switch loggingErr.Status() {
		case utils.ErrorStatusUnauthenticated:
			return http.StatusUnauthorized
		case utils.ErrorStatusNotAllowed, utils.ErrorStatusCrossOrgAccess:
			return http.StatusForbidden
		case utils.ErrorStatusOrgContextRequired, utils.ErrorStatusInvalidDateFormat, utils.ErrorStatusInvalid:
			return http.StatusBadRequest
		case utils.ErrorStatusNotFound:
			return http.StatusNotFound
		case utils.ErrorStatusConflict:
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}

func errorResponse(l *logs.Log, message string, err error) logs.HTTPResponse {
	status := errorHTTPStatus(err)
	return l.HTTPResponseError(message, err, status, status == http.StatusInternalServerError)
}

//requestOrgHints collects the explicit organization id sources of a request.
//The authenticated hint comes from the auth layer, the body hint from the
//decoded request body.
func requestOrgHints(r *http.Request, ac *authContext, bodyOrgID *string) model.OrgHints {
	hints := ac.hints
	hints.Body = bodyOrgID

	if query := r.URL.Query().Get("org_id"); query != "" {
		hints.Query = &query
	}
	if path := mux.Vars(r)["org-id"]; path != "" {
		hints.Path = &path
	}
	return hints
}

func requestPagination(r *http.Request) model.Pagination {
	return model.ParsePagination(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
}

func requestWindow(r *http.Request) (string, string) {
	return r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date")
}
