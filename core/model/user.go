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
	"time"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeUser ...
	TypeUser logutils.MessageDataType = "user"
	//TypeUserAPIKey ...
	TypeUserAPIKey logutils.MessageDataType = "user api key"
)

//User represents a member of an organization
type User struct {
	ID    string
	Email string //unique within the organization
	Name  string

	Role   Role
	OrgID  string
	Active bool

	//APIKey authenticates the user without a bearer token
	APIKey string

	DateCreated time.Time
	DateUpdated *time.Time
}

//Identity derives the caller identity this user record represents
func (u User) Identity() CallerIdentity {
	orgID := u.OrgID
	identity := CallerIdentity{ID: u.ID, Name: u.Name, Role: u.Role, Active: u.Active}
	if orgID != "" {
		identity.OrgID = &orgID
	}
	return identity
}

func (u User) String() string {
	return fmt.Sprintf("[ID:%s\tEmail:%s\tRole:%s\tOrg:%s]", u.ID, u.Email, u.Role, u.OrgID)
}
