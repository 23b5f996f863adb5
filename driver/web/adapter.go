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
	"fmt"
	"net/http"

	"chatlogs-building-block/core"
	"chatlogs-building-block/utils"

	"github.com/gorilla/mux"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

//Adapter entity
type Adapter struct {
	host string
	port string

	auth   *Auth
	logger *logs.Logger

	defaultApisHandler  DefaultApisHandler
	servicesApisHandler ServicesApisHandler
	adminApisHandler    AdminApisHandler
	systemApisHandler   SystemApisHandler

	coreAPIs *core.APIs
}

type handlerFunc = func(*logs.Log, *http.Request, *authContext) logs.HTTPResponse

type authorization interface {
	check(req *http.Request) (int, *authContext, error)
}

// @title Chat Logs Building Block API
// @description Multi-tenant chat logging and analytics API.
// @version 1.0.0
// @host localhost:80
// @BasePath /chatlogs
// @schemes https http

//Start starts the module
func (we Adapter) Start() {

	//add listener to the application
	we.coreAPIs.AddListener(&AppListener{&we})

	router := mux.NewRouter().StrictSlash(true)

	// handle apis
	subRouter := router.PathPrefix("/chatlogs").Subrouter()
	subRouter.PathPrefix("/doc/ui").Handler(we.serveDocUI())
	subRouter.HandleFunc("/doc", we.serveDoc)
	subRouter.HandleFunc("/version", we.wrapFunc(we.defaultApisHandler.version, nil)).Methods("GET")
	subRouter.HandleFunc("/login", we.wrapFunc(we.defaultApisHandler.login, nil)).Methods("POST")

	///services ///
	servicesSubRouter := subRouter.PathPrefix("/services").Subrouter()
	servicesSubRouter.HandleFunc("/chats", we.wrapFunc(we.servicesApisHandler.getChats, we.auth.servicesAuth)).Methods("GET")
	servicesSubRouter.HandleFunc("/chats", we.wrapFunc(we.servicesApisHandler.createChat, we.auth.servicesAuth)).Methods("POST")
	servicesSubRouter.HandleFunc("/chats/{id}", we.wrapFunc(we.servicesApisHandler.getChat, we.auth.servicesAuth)).Methods("GET")
	servicesSubRouter.HandleFunc("/chats/{id}", we.wrapFunc(we.servicesApisHandler.updateChat, we.auth.servicesAuth)).Methods("PUT")
	servicesSubRouter.HandleFunc("/chats/{id}", we.wrapFunc(we.servicesApisHandler.deleteChat, we.auth.servicesAuth)).Methods("DELETE")
	servicesSubRouter.HandleFunc("/chats/{id}/messages", we.wrapFunc(we.servicesApisHandler.getMessages, we.auth.servicesAuth)).Methods("GET")
	servicesSubRouter.HandleFunc("/chats/{id}/messages", we.wrapFunc(we.servicesApisHandler.createMessage, we.auth.servicesAuth)).Methods("POST")
	servicesSubRouter.HandleFunc("/account", we.wrapFunc(we.servicesApisHandler.getAccount, we.auth.servicesAuth)).Methods("GET")
	servicesSubRouter.HandleFunc("/account", we.wrapFunc(we.servicesApisHandler.updateAccount, we.auth.servicesAuth)).Methods("PUT")
	///

	///admin ///
	adminSubRouter := subRouter.PathPrefix("/admin").Subrouter()
	adminSubRouter.HandleFunc("/users", we.wrapFunc(we.adminApisHandler.getUsers, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/users", we.wrapFunc(we.adminApisHandler.createUser, we.auth.adminAuth)).Methods("POST")
	adminSubRouter.HandleFunc("/users/{id}", we.wrapFunc(we.adminApisHandler.getUser, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/users/{id}", we.wrapFunc(we.adminApisHandler.updateUser, we.auth.adminAuth)).Methods("PUT")
	adminSubRouter.HandleFunc("/users/{id}", we.wrapFunc(we.adminApisHandler.deleteUser, we.auth.adminAuth)).Methods("DELETE")
	adminSubRouter.HandleFunc("/chats", we.wrapFunc(we.adminApisHandler.getChats, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/chats/{id}", we.wrapFunc(we.adminApisHandler.getChat, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/chats/{id}", we.wrapFunc(we.adminApisHandler.deleteChat, we.auth.adminAuth)).Methods("DELETE")
	adminSubRouter.HandleFunc("/chats/{id}/messages", we.wrapFunc(we.adminApisHandler.getMessages, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/organization", we.wrapFunc(we.adminApisHandler.updateOrganization, we.auth.adminAuth)).Methods("PUT")
	adminSubRouter.HandleFunc("/analytics/daily-activity", we.wrapFunc(we.adminApisHandler.getDailyActivity, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/analytics/message-stats", we.wrapFunc(we.adminApisHandler.getMessageStats, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/analytics/top-actors", we.wrapFunc(we.adminApisHandler.getTopActors, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/chats-export", we.wrapFunc(we.adminApisHandler.exportChats, we.auth.adminAuth)).Methods("GET")
	///

	///system ///
	systemSubRouter := subRouter.PathPrefix("/system").Subrouter()
	systemSubRouter.HandleFunc("/organizations", we.wrapFunc(we.systemApisHandler.getOrganizations, we.auth.systemAuth)).Methods("GET")
	systemSubRouter.HandleFunc("/organizations", we.wrapFunc(we.systemApisHandler.createOrganization, we.auth.systemAuth)).Methods("POST")
	systemSubRouter.HandleFunc("/organizations/{id}", we.wrapFunc(we.systemApisHandler.getOrganization, we.auth.systemAuth)).Methods("GET")
	systemSubRouter.HandleFunc("/organizations/{id}", we.wrapFunc(we.systemApisHandler.updateOrganization, we.auth.systemAuth)).Methods("PUT")
	systemSubRouter.HandleFunc("/organizations/{id}", we.wrapFunc(we.systemApisHandler.deleteOrganization, we.auth.systemAuth)).Methods("DELETE")
	systemSubRouter.HandleFunc("/organizations/{id}/api-key", we.wrapFunc(we.systemApisHandler.rotateOrganizationAPIKey, we.auth.systemAuth)).Methods("PUT")
	///

	handler := cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Api-Key", "X-Org-Api-Key"},
	}).Handler(router)

	we.logger.Fatal(http.ListenAndServe(":"+we.port, handler).Error())
}

func (we Adapter) serveDoc(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("access-control-allow-origin", "*")
	http.ServeFile(w, r, "./docs/swagger.yaml")
}

func (we Adapter) serveDocUI() http.Handler {
	url := fmt.Sprintf("%s/chatlogs/doc", we.host)
	return httpSwagger.Handler(httpSwagger.URL(url))
}

func (we Adapter) wrapFunc(handler handlerFunc, authorization authorization) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		we.logger.Infof("%s %s %v", req.Method, req.URL.Path, utils.LogHeaders(req))

		logObj := we.logger.NewRequestLog(req)
		logObj.RequestReceived()

		var response logs.HTTPResponse
		if authorization != nil {
			responseStatus, requestContext, err := authorization.check(req)
			if err != nil {
				response = logObj.HTTPResponseError(http.StatusText(responseStatus), err, responseStatus, true)
			} else {
				response = handler(logObj, req, requestContext)
			}
		} else {
			response = handler(logObj, req, nil)
		}

		logObj.SendHTTPResponse(w, response)
		logObj.RequestComplete()
	}
}

//NewWebAdapter creates new WebAdapter instance
func NewWebAdapter(coreAPIs *core.APIs, host string, port string, tokenSecret string, serviceID string, logger *logs.Logger) Adapter {
	auth := NewAuth(coreAPIs, tokenSecret, serviceID, logger)

	defaultApisHandler := NewDefaultApisHandler(coreAPIs, auth)
	servicesApisHandler := NewServicesApisHandler(coreAPIs)
	adminApisHandler := NewAdminApisHandler(coreAPIs)
	systemApisHandler := NewSystemApisHandler(coreAPIs)
	return Adapter{host: host, port: port, auth: auth, logger: logger,
		defaultApisHandler: defaultApisHandler, servicesApisHandler: servicesApisHandler,
		adminApisHandler: adminApisHandler, systemApisHandler: systemApisHandler, coreAPIs: coreAPIs}
}

//AppListener implements core.ApplicationListener interface
type AppListener struct {
	adapter *Adapter
}

//OnOrganizationsUpdated notifies that the organizations have changed
func (al *AppListener) OnOrganizationsUpdated() {
	al.adapter.logger.Info("AppListener -> OnOrganizationsUpdated")
}
