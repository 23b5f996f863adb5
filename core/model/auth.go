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

package model

import (
	"fmt"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeCallerIdentity ...
	TypeCallerIdentity logutils.MessageDataType = "caller identity"
	//TypeRole ...
	TypeRole logutils.MessageDataType = "role"
	//TypeOrgContext ...
	TypeOrgContext logutils.MessageDataType = "organization context"
)

//Role represents a permission level in the ordered hierarchy user < admin < superadmin
type Role string

const (
	//RoleUser plain member, sees only their own resources
	RoleUser Role = "user"
	//RoleAdmin organization administrator
	RoleAdmin Role = "admin"
	//RoleSuperAdmin cross-organization operator
	RoleSuperAdmin Role = "superadmin"
)

var roleOrder = map[Role]int{RoleUser: 1, RoleAdmin: 2, RoleSuperAdmin: 3}

//Valid says whether the role is a known hierarchy level
func (r Role) Valid() bool {
	_, ok := roleOrder[r]
	return ok
}

//AtLeast compares roles by ordinal position, never by string equality
func (r Role) AtLeast(min Role) bool {
	return roleOrder[r] >= roleOrder[min]
}

//CallerIdentity is the resolved identity a request acts as. It is produced
//per request by the identity resolver and never persisted by the core.
type CallerIdentity struct {
	ID   string
	Name string
	Role Role

	//OrgID is the home organization - required for user/admin, optional for superadmin
	OrgID  *string
	Active bool
}

func (c CallerIdentity) String() string {
	org := "-"
	if c.OrgID != nil {
		org = *c.OrgID
	}
	return fmt.Sprintf("[ID:%s\tRole:%s\tOrg:%s\tActive:%v]", c.ID, c.Role, org, c.Active)
}

//OrgHints carries the raw organization id sources a request may supply.
//Authenticated is set only when organization-level API key auth occurred.
type OrgHints struct {
	Authenticated *string
	Query         *string
	Body          *string
	Path          *string
}

//RequestContext is the immutable per-request value threaded by parameter
//through the core - one caller identity and exactly one resolved organization.
type RequestContext struct {
	Identity     CallerIdentity
	Organization Organization
}
