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
	"strings"
	"time"

	"chatlogs-building-block/core"
	"chatlogs-building-block/core/model"
	"chatlogs-building-block/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const accessTokenDuration = 24 * time.Hour

//tokenClaims are the claims carried by the service access tokens
type tokenClaims struct {
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	OrgID  *string `json:"org_id,omitempty"`
	Active bool    `json:"active"`

	jwt.RegisteredClaims
}

//authContext is the output of a successful authorization check - the caller
//identity plus the organization hint provided by key-based auth
type authContext struct {
	identity model.CallerIdentity
	hints    model.OrgHints
}

//Auth handler
type Auth struct {
	servicesAuth *ServicesAuth
	adminAuth    *AdminAuth
	systemAuth   *SystemAuth

	coreAPIs    *core.APIs
	tokenSecret []byte
	serviceID   string
	logger      *logs.Logger
}

//NewAuth creates new auth handler
func NewAuth(coreAPIs *core.APIs, tokenSecret string, serviceID string, logger *logs.Logger) *Auth {
	auth := Auth{coreAPIs: coreAPIs, tokenSecret: []byte(tokenSecret), serviceID: serviceID, logger: logger}
	auth.servicesAuth = &ServicesAuth{auth: &auth}
	auth.adminAuth = &AdminAuth{auth: &auth}
	auth.systemAuth = &SystemAuth{auth: &auth}
	return &auth
}

//buildAccessToken issues a signed token for the given user
func (auth *Auth) buildAccessToken(user model.User) (string, error) {
	now := time.Now().UTC()
	orgID := user.OrgID
	claims := tokenClaims{Name: user.Name, Role: string(user.Role), OrgID: &orgID, Active: user.Active,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    auth.serviceID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenDuration)),
		}}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(auth.tokenSecret)
	if err != nil {
		return "", errors.WrapErrorAction(logutils.ActionCreate, logutils.TypeToken, nil, err)
	}
	return signed, nil
}

func (auth *Auth) identityFromToken(rawToken string) (*model.CallerIdentity, error) {
	claims := tokenClaims{}
	token, err := jwt.ParseWithClaims(rawToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrorData(logutils.StatusInvalid, logutils.TypeToken, logutils.StringArgs("signing method"))
		}
		return auth.tokenSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.WrapErrorData(logutils.StatusInvalid, logutils.TypeToken, nil, err).SetStatus(utils.ErrorStatusUnauthenticated)
	}

	identity := model.CallerIdentity{ID: claims.Subject, Name: claims.Name, Role: model.Role(claims.Role),
		OrgID: claims.OrgID, Active: claims.Active}
	return &identity, nil
}

func (auth *Auth) identityFromAPIKey(apiKey string) (*model.CallerIdentity, error) {
	user, err := auth.coreAPIs.Auth.FindUserByAPIKey(apiKey)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUserAPIKey, nil, err)
	}
	if user == nil {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeUserAPIKey, nil).SetStatus(utils.ErrorStatusUnauthenticated)
	}

	identity := user.Identity()
	return &identity, nil
}

//resolveContext resolves the caller identity from the bearer token or the
//user API key, plus the organization hint from the organization API key
func (auth *Auth) resolveContext(r *http.Request) (*authContext, error) {
	var identity *model.CallerIdentity
	var err error

	authorization := r.Header.Get("Authorization")
	apiKey := r.Header.Get("X-Api-Key")
	switch {
	case strings.HasPrefix(authorization, "Bearer "):
		identity, err = auth.identityFromToken(strings.TrimPrefix(authorization, "Bearer "))
	case apiKey != "":
		identity, err = auth.identityFromAPIKey(apiKey)
	default:
		err = errors.ErrorData(logutils.StatusMissing, logutils.TypeToken, nil).SetStatus(utils.ErrorStatusUnauthenticated)
	}
	if err != nil {
		return nil, err
	}

	hints := model.OrgHints{}
	if orgKey := r.Header.Get("X-Org-Api-Key"); orgKey != "" {
		org, err := auth.coreAPIs.Auth.FindOrganizationByAPIKey(orgKey)
		if err != nil {
			return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganizationAPIKey, nil, err)
		}
		if org == nil || !org.Active {
			return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeOrganizationAPIKey, nil).SetStatus(utils.ErrorStatusUnauthenticated)
		}
		hints.Authenticated = &org.ID
	}

	return &authContext{identity: *identity, hints: hints}, nil
}

//ServicesAuth authorizes the user-tier APIs - any authenticated caller
type ServicesAuth struct {
	auth *Auth
}

func (a *ServicesAuth) check(r *http.Request) (int, *authContext, error) {
	context, err := a.auth.resolveContext(r)
	if err != nil {
		return http.StatusUnauthorized, nil, err
	}
	return http.StatusOK, context, nil
}

//AdminAuth authorizes the admin-tier APIs. The role floor here is a fast
//gate only - the core applies the full policy.
type AdminAuth struct {
	auth *Auth
}

func (a *AdminAuth) check(r *http.Request) (int, *authContext, error) {
	context, err := a.auth.resolveContext(r)
	if err != nil {
		return http.StatusUnauthorized, nil, err
	}
	if !context.identity.Role.AtLeast(model.RoleAdmin) {
		return http.StatusForbidden, nil, errors.ErrorData(logutils.StatusInvalid, model.TypeRole, logutils.StringArgs(string(context.identity.Role)))
	}
	return http.StatusOK, context, nil
}

//SystemAuth authorizes the superadmin-tier APIs
type SystemAuth struct {
	auth *Auth
}

func (a *SystemAuth) check(r *http.Request) (int, *authContext, error) {
	context, err := a.auth.resolveContext(r)
	if err != nil {
		return http.StatusUnauthorized, nil, err
	}
	if !context.identity.Role.AtLeast(model.RoleSuperAdmin) {
		return http.StatusForbidden, nil, errors.ErrorData(logutils.StatusInvalid, model.TypeRole, logutils.StringArgs(string(context.identity.Role)))
	}
	return http.StatusOK, context, nil
}
