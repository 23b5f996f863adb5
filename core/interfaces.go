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

package core

import (
	"chatlogs-building-block/core/model"
)

//Services exposes user-tier APIs for the driver adapters
type Services interface {
	SerGetChats(identity model.CallerIdentity, hints model.OrgHints, pagination model.Pagination) ([]model.Chat, *model.ListMeta, error)
	SerGetChat(identity model.CallerIdentity, hints model.OrgHints, id string) (*model.Chat, error)
	SerCreateChat(identity model.CallerIdentity, hints model.OrgHints, title string) (*model.Chat, error)
	SerUpdateChat(identity model.CallerIdentity, hints model.OrgHints, id string, title string) error
	SerDeleteChat(identity model.CallerIdentity, hints model.OrgHints, id string) error

	SerGetMessages(identity model.CallerIdentity, hints model.OrgHints, chatID string, pagination model.Pagination) ([]model.Message, *model.ListMeta, error)
	SerCreateMessage(identity model.CallerIdentity, hints model.OrgHints, chatID string, role model.MessageRole, content string, tokens int) (*model.Message, error)

	SerGetAccount(identity model.CallerIdentity, hints model.OrgHints) (*model.User, error)
	SerUpdateAccount(identity model.CallerIdentity, hints model.OrgHints, name string) error
}

//Administration exposes admin-tier APIs for the driver adapters
type Administration interface {
	AdmGetUsers(identity model.CallerIdentity, hints model.OrgHints, pagination model.Pagination) ([]model.User, *model.ListMeta, error)
	AdmGetUser(identity model.CallerIdentity, hints model.OrgHints, id string) (*model.User, error)
	AdmCreateUser(identity model.CallerIdentity, hints model.OrgHints, email string, name string, role model.Role) (*model.User, error)
	AdmUpdateUser(identity model.CallerIdentity, hints model.OrgHints, id string, name *string, role *model.Role, active *bool) error
	AdmDeleteUser(identity model.CallerIdentity, hints model.OrgHints, id string) error

	AdmGetChats(identity model.CallerIdentity, hints model.OrgHints, userID *string, pagination model.Pagination) ([]model.Chat, *model.ListMeta, error)
	AdmGetChat(identity model.CallerIdentity, hints model.OrgHints, id string) (*model.Chat, error)
	AdmDeleteChat(identity model.CallerIdentity, hints model.OrgHints, id string) error
	AdmGetMessages(identity model.CallerIdentity, hints model.OrgHints, chatID string, pagination model.Pagination) ([]model.Message, *model.ListMeta, error)

	AdmUpdateOrganization(identity model.CallerIdentity, hints model.OrgHints, name string, active bool, settings map[string]interface{}) error

	AdmGetDailyActivity(identity model.CallerIdentity, hints model.OrgHints, rawStart string, rawEnd string) ([]model.DailyActivity, *model.AggregationWindow, error)
	AdmGetMessageStats(identity model.CallerIdentity, hints model.OrgHints, rawStart string, rawEnd string) (*model.MessageStats, *model.AggregationWindow, error)
	AdmGetTopActors(identity model.CallerIdentity, hints model.OrgHints, rawStart string, rawEnd string, rawLimit string) ([]model.ActorActivity, *model.AggregationWindow, error)

	AdmExportChats(identity model.CallerIdentity, hints model.OrgHints, rawStart string, rawEnd string) ([]model.ChatExport, *model.AggregationWindow, error)
}

//System exposes superadmin-tier APIs for the driver adapters
type System interface {
	SysGetOrganizations(identity model.CallerIdentity, pagination model.Pagination) ([]model.Organization, *model.ListMeta, error)
	SysGetOrganization(identity model.CallerIdentity, id string) (*model.Organization, error)
	SysCreateOrganization(identity model.CallerIdentity, name string, settings map[string]interface{}) (*model.Organization, error)
	SysUpdateOrganization(identity model.CallerIdentity, id string, name string, active bool, settings map[string]interface{}) error
	SysDeleteOrganization(identity model.CallerIdentity, id string) error
	SysRotateOrganizationAPIKey(identity model.CallerIdentity, id string) (*model.Organization, error)
}

//Auth exposes the lookups the identity resolver in the web driver needs
type Auth interface {
	FindUserByAPIKey(apiKey string) (*model.User, error)
	FindOrganizationByAPIKey(apiKey string) (*model.Organization, error)
}

//Storage is used by the core to storage the data - the storage adapter
//implements it
type Storage interface {
	RegisterStorageListener(listener StorageListener)

	FindOrganization(id string) (*model.Organization, error)
	FindOrganizationByName(name string) (*model.Organization, error)
	FindOrganizationByAPIKey(apiKey string) (*model.Organization, error)
	FindOrganizations(pagination model.Pagination) ([]model.Organization, int64, error)
	InsertOrganization(organization model.Organization) (*model.Organization, error)
	UpdateOrganization(id string, name string, active bool, settings map[string]interface{}) error
	UpdateOrganizationAPIKey(id string, apiKey string) error
	DeleteOrganization(id string) error
	CountActiveUsers(orgID string) (int64, error)

	FindUser(orgID string, id string) (*model.User, error)
	FindUserByAPIKey(apiKey string) (*model.User, error)
	FindUserByEmail(orgID string, email string) (*model.User, error)
	FindUsers(orgID string, pagination model.Pagination) ([]model.User, int64, error)
	InsertUser(user model.User) (*model.User, error)
	UpdateUser(user model.User) error
	DeleteUser(orgID string, id string) error

	FindChat(orgID string, id string) (*model.Chat, error)
	FindChats(orgID string, userID *string, pagination model.Pagination) ([]model.Chat, int64, error)
	InsertChat(chat model.Chat) (*model.Chat, error)
	UpdateChat(orgID string, id string, title string) error
	DeleteChat(orgID string, id string) error

	FindMessages(orgID string, chatID string, pagination model.Pagination) ([]model.Message, int64, error)
	InsertMessage(message model.Message) (*model.Message, error)

	FindChatIDsInWindow(orgID string, window model.AggregationWindow) ([]string, error)
	FindDailyActivity(orgID string, window model.AggregationWindow) ([]model.DailyActivity, error)
	FindMessageRoleStats(orgID string, chatIDs []string) ([]model.RoleStats, error)
	FindTopActors(orgID string, window model.AggregationWindow, limit int) ([]model.ActorActivity, error)
	FindChatExports(orgID string, window model.AggregationWindow) ([]model.ChatExport, error)
}

//StorageListener listens for storage data changes
type StorageListener interface {
	OnOrganizationsUpdated()
}

//ApplicationListener represents application listener
type ApplicationListener interface {
	OnOrganizationsUpdated()
}
