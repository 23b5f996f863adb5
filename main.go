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

package main

import (
	"chatlogs-building-block/core"
	"chatlogs-building-block/driven/storage"
	"chatlogs-building-block/driver/web"

	"github.com/rokwire/core-auth-library-go/v3/envloader"
	"github.com/rokwire/logging-library-go/v2/logs"
)

var (
	// Version : version of this executable
	Version string
	// Build : build date of this executable
	Build string
)

func main() {
	if len(Version) == 0 {
		Version = "dev"
	}

	serviceID := "chatlogs"

	loggerOpts := logs.LoggerOpts{SuppressRequests: logs.NewStandardHealthCheckHTTPRequestProperties(serviceID + "/version")}
	logger := logs.NewLogger(serviceID, &loggerOpts)
	envLoader := envloader.NewEnvLoader(Version, logger)

	level := envLoader.GetAndLogEnvVar("CHATLOGS_LOG_LEVEL", false, false)
	logLevel := logs.LogLevelFromString(level)
	if logLevel != nil {
		logger.SetLevel(*logLevel)
	}

	env := envLoader.GetAndLogEnvVar("CHATLOGS_ENVIRONMENT", true, false) //local, dev, staging, prod
	port := envLoader.GetAndLogEnvVar("CHATLOGS_PORT", false, false)
	//Default port of 80
	if port == "" {
		port = "80"
	}

	host := envLoader.GetAndLogEnvVar("CHATLOGS_HOST", true, false)

	// mongoDB adapter
	mongoDBAuth := envLoader.GetAndLogEnvVar("CHATLOGS_MONGO_AUTH", true, true)
	mongoDBName := envLoader.GetAndLogEnvVar("CHATLOGS_MONGO_DATABASE", true, false)
	mongoTimeout := envLoader.GetAndLogEnvVar("CHATLOGS_MONGO_TIMEOUT", false, false)
	storageAdapter := storage.NewStorageAdapter(mongoDBAuth, mongoDBName, mongoTimeout, logger)
	err := storageAdapter.Start()
	if err != nil {
		logger.Fatalf("Cannot start the mongoDB adapter: %v", err)
	}

	//access token secret
	tokenSecret := envLoader.GetAndLogEnvVar("CHATLOGS_AUTH_TOKEN_SECRET", true, true)

	//core
	coreAPIs := core.NewCoreAPIs(env, Version, Build, storageAdapter, logger)
	coreAPIs.Start()

	//web adapter
	webAdapter := web.NewWebAdapter(coreAPIs, host, port, tokenSecret, serviceID, logger)
	webAdapter.Start()
}
