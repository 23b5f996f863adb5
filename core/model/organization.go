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
	//TypeOrganization ...
	TypeOrganization logutils.MessageDataType = "organization"
	//TypeOrganizationAPIKey ...
	TypeOrganizationAPIKey logutils.MessageDataType = "organization api key"
)

//Organization represents the tenant boundary - it owns users and, transitively, all their resources
type Organization struct {
	ID     string
	Name   string //globally unique
	Active bool

	//APIKey is the rotating secret used for organization-level authentication
	APIKey   string
	Settings map[string]interface{}

	DateCreated time.Time
	DateUpdated *time.Time
}

func (o Organization) String() string {
	return fmt.Sprintf("[ID:%s\tName:%s\tActive:%v]", o.ID, o.Name, o.Active)
}
