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

	"github.com/rokwire/logging-library-go/v2/logs"
)

//APIs exposes to the drivers adapters access to the core functionality
type APIs struct {
	Services       Services       //expose to the drivers adapters
	Administration Administration //expose to the drivers adapters
	System         System         //expose to the drivers adapters
	Auth           Auth           //expose to the drivers auth

	app *application
}

//Start starts the core part of the application
func (c *APIs) Start() {
	c.app.start()
}

//AddListener adds application listener
func (c *APIs) AddListener(listener ApplicationListener) {
	c.app.addListener(listener)
}

//GetVersion gives the service version
func (c *APIs) GetVersion() string {
	return c.app.version
}

//NewCoreAPIs creates new CoreAPIs
func NewCoreAPIs(env string, version string, build string, storage Storage, logger *logs.Logger) *APIs {
	listeners := []ApplicationListener{}
	application := application{env: env, version: version, build: build, storage: storage, logger: logger, listeners: listeners}

	servicesImpl := &servicesImpl{app: &application}
	administrationImpl := &administrationImpl{app: &application}
	systemImpl := &systemImpl{app: &application}
	authImpl := &authImpl{app: &application}

	coreAPIs := APIs{Services: servicesImpl, Administration: administrationImpl, System: systemImpl, Auth: authImpl, app: &application}
	return &coreAPIs
}

///

//servicesImpl
type servicesImpl struct {
	app *application
}

func (s *servicesImpl) SerGetChats(identity model.CallerIdentity, hints model.OrgHints, pagination model.Pagination) ([]model.Chat, *model.ListMeta, error) {
	return s.app.serGetChats(identity, hints, pagination)
}

func (s *servicesImpl) SerGetChat(identity model.CallerIdentity, hints model.OrgHints, id string) (*model.Chat, error) {
	return s.app.serGetChat(identity, hints, id)
}

func (s *servicesImpl) SerCreateChat(identity model.CallerIdentity, hints model.OrgHints, title string) (*model.Chat, error) {
	return s.app.serCreateChat(identity, hints, title)
}

func (s *servicesImpl) SerUpdateChat(identity model.CallerIdentity, hints model.OrgHints, id string, title string) error {
	return s.app.serUpdateChat(identity, hints, id, title)
}

func (s *servicesImpl) SerDeleteChat(identity model.CallerIdentity, hints model.OrgHints, id string) error {
	return s.app.serDeleteChat(identity, hints, id)
}

func (s *servicesImpl) SerGetMessages(identity model.CallerIdentity, hints model.OrgHints, chatID string, pagination model.Pagination) ([]model.Message, *model.ListMeta, error) {
	return s.app.serGetMessages(identity, hints, chatID, pagination)
}

func (s *servicesImpl) SerCreateMessage(identity model.CallerIdentity, hints model.OrgHints, chatID string, role model.MessageRole, content string, tokens int) (*model.Message, error) {
	return s.app.serCreateMessage(identity, hints, chatID, role, content, tokens)
}

func (s *servicesImpl) SerGetAccount(identity model.CallerIdentity, hints model.OrgHints) (*model.User, error) {
	return s.app.serGetAccount(identity, hints)
}

func (s *servicesImpl) SerUpdateAccount(identity model.CallerIdentity, hints model.OrgHints, name string) error {
	return s.app.serUpdateAccount(identity, hints, name)
}

///

//administrationImpl
type administrationImpl struct {
	app *application
}

func (s *administrationImpl) AdmGetUsers(identity model.CallerIdentity, hints model.OrgHints, pagination model.Pagination) ([]model.User, *model.ListMeta, error) {
	return s.app.admGetUsers(identity, hints, pagination)
}

func (s *administrationImpl) AdmGetUser(identity model.CallerIdentity, hints model.OrgHints, id string) (*model.User, error) {
	return s.app.admGetUser(identity, hints, id)
}

func (s *administrationImpl) AdmCreateUser(identity model.CallerIdentity, hints model.OrgHints, email string, name string, role model.Role) (*model.User, error) {
	return s.app.admCreateUser(identity, hints, email, name, role)
}

func (s *administrationImpl) AdmUpdateUser(identity model.CallerIdentity, hints model.OrgHints, id string, name *string, role *model.Role, active *bool) error {
	return s.app.admUpdateUser(identity, hints, id, name, role, active)
}

func (s *administrationImpl) AdmDeleteUser(identity model.CallerIdentity, hints model.OrgHints, id string) error {
	return s.app.admDeleteUser(identity, hints, id)
}

func (s *administrationImpl) AdmGetChats(identity model.CallerIdentity, hints model.OrgHints, userID *string, pagination model.Pagination) ([]model.Chat, *model.ListMeta, error) {
	return s.app.admGetChats(identity, hints, userID, pagination)
}

func (s *administrationImpl) AdmGetChat(identity model.CallerIdentity, hints model.OrgHints, id string) (*model.Chat, error) {
	return s.app.admGetChat(identity, hints, id)
}

func (s *administrationImpl) AdmDeleteChat(identity model.CallerIdentity, hints model.OrgHints, id string) error {
	return s.app.admDeleteChat(identity, hints, id)
}

func (s *administrationImpl) AdmGetMessages(identity model.CallerIdentity, hints model.OrgHints, chatID string, pagination model.Pagination) ([]model.Message, *model.ListMeta, error) {
	return s.app.admGetMessages(identity, hints, chatID, pagination)
}

func (s *administrationImpl) AdmUpdateOrganization(identity model.CallerIdentity, hints model.OrgHints, name string, active bool, settings map[string]interface{}) error {
	return s.app.admUpdateOrganization(identity, hints, name, active, settings)
}

func (s *administrationImpl) AdmGetDailyActivity(identity model.CallerIdentity, hints model.OrgHints, rawStart string, rawEnd string) ([]model.DailyActivity, *model.AggregationWindow, error) {
	return s.app.admGetDailyActivity(identity, hints, rawStart, rawEnd)
}

func (s *administrationImpl) AdmGetMessageStats(identity model.CallerIdentity, hints model.OrgHints, rawStart string, rawEnd string) (*model.MessageStats, *model.AggregationWindow, error) {
	return s.app.admGetMessageStats(identity, hints, rawStart, rawEnd)
}

func (s *administrationImpl) AdmGetTopActors(identity model.CallerIdentity, hints model.OrgHints, rawStart string, rawEnd string, rawLimit string) ([]model.ActorActivity, *model.AggregationWindow, error) {
	return s.app.admGetTopActors(identity, hints, rawStart, rawEnd, rawLimit)
}

func (s *administrationImpl) AdmExportChats(identity model.CallerIdentity, hints model.OrgHints, rawStart string, rawEnd string) ([]model.ChatExport, *model.AggregationWindow, error) {
	return s.app.admExportChats(identity, hints, rawStart, rawEnd)
}

///

//systemImpl
type systemImpl struct {
	app *application
}

func (s *systemImpl) SysGetOrganizations(identity model.CallerIdentity, pagination model.Pagination) ([]model.Organization, *model.ListMeta, error) {
	return s.app.sysGetOrganizations(identity, pagination)
}

func (s *systemImpl) SysGetOrganization(identity model.CallerIdentity, id string) (*model.Organization, error) {
	return s.app.sysGetOrganization(identity, id)
}

func (s *systemImpl) SysCreateOrganization(identity model.CallerIdentity, name string, settings map[string]interface{}) (*model.Organization, error) {
	return s.app.sysCreateOrganization(identity, name, settings)
}

func (s *systemImpl) SysUpdateOrganization(identity model.CallerIdentity, id string, name string, active bool, settings map[string]interface{}) error {
	return s.app.sysUpdateOrganization(identity, id, name, active, settings)
}

func (s *systemImpl) SysDeleteOrganization(identity model.CallerIdentity, id string) error {
	return s.app.sysDeleteOrganization(identity, id)
}

func (s *systemImpl) SysRotateOrganizationAPIKey(identity model.CallerIdentity, id string) (*model.Organization, error) {
	return s.app.sysRotateOrganizationAPIKey(identity, id)
}

///

//authImpl
type authImpl struct {
	app *application
}

func (s *authImpl) FindUserByAPIKey(apiKey string) (*model.User, error) {
	return s.app.storage.FindUserByAPIKey(apiKey)
}

func (s *authImpl) FindOrganizationByAPIKey(apiKey string) (*model.Organization, error) {
	return s.app.storage.FindOrganizationByAPIKey(apiKey)
}
