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

package utils

import (
	"math"
	"net/http"

	"github.com/google/uuid"
)

// Error statuses set on core errors so the web adapter can map them to HTTP codes
const (
	//ErrorStatusUnauthenticated inactive or missing caller identity
	ErrorStatusUnauthenticated string = "unauthenticated"
	//ErrorStatusNotAllowed the caller's role does not permit the operation
	ErrorStatusNotAllowed string = "not-allowed"
	//ErrorStatusCrossOrgAccess the caller attempted to act outside their organization
	ErrorStatusCrossOrgAccess string = "cross-org-access"
	//ErrorStatusOrgContextRequired no organization context could be resolved
	ErrorStatusOrgContextRequired string = "org-context-required"
	//ErrorStatusInvalidDateFormat a date bound could not be parsed
	ErrorStatusInvalidDateFormat string = "invalid-date-format"
	//ErrorStatusInvalid malformed input detected before storage access
	ErrorStatusInvalid string = "invalid"
	//ErrorStatusNotFound the target does not exist within the caller's visible tenancy
	ErrorStatusNotFound string = "not-found"
	//ErrorStatusConflict a uniqueness constraint was violated
	ErrorStatusConflict string = "conflict"
)

//Round2 rounds to 2 decimal places using round-half-up semantics
func Round2(value float64) float64 {
	return math.Floor(value*100+0.5) / 100
}

//NewAPIKey generates a new opaque API key secret
func NewAPIKey() string {
	return uuid.NewString()
}

//LogHeaders prepares request headers for logging, hiding credential fields
func LogHeaders(req *http.Request) map[string][]string {
	if req == nil {
		return nil
	}

	header := make(map[string][]string)
	for key, value := range req.Header {
		var logValue []string
		//do not log api keys, cookies and Authorization
		if key == "X-Api-Key" || key == "X-Org-Api-Key" || key == "Cookie" || key == "Authorization" {
			logValue = append(logValue, "---")
		} else {
			logValue = value
		}
		header[key] = logValue
	}
	return header
}
