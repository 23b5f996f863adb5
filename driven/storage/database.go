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

package storage

import (
	"context"
	"time"

	"chatlogs-building-block/core"

	"github.com/rokwire/logging-library-go/v2/logs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type database struct {
	mongoDBAuth  string
	mongoDBName  string
	mongoTimeout time.Duration

	db       *mongo.Database
	dbClient *mongo.Client

	organizations *collectionWrapper
	users         *collectionWrapper
	chats         *collectionWrapper
	messages      *collectionWrapper

	logger *logs.Logger

	listeners []core.StorageListener
}

func (m *database) start() error {
	m.logger.Info("database -> start")

	//connect to the database
	clientOptions := options.Client().ApplyURI(m.mongoDBAuth)
	connectContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	client, err := mongo.Connect(connectContext, clientOptions)
	cancel()
	if err != nil {
		return err
	}

	//ping the database
	pingContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	err = client.Ping(pingContext, nil)
	cancel()
	if err != nil {
		return err
	}

	//apply checks
	db := client.Database(m.mongoDBName)

	organizations := &collectionWrapper{database: m, coll: db.Collection("organizations")}
	err = m.applyOrganizationsChecks(organizations)
	if err != nil {
		return err
	}

	users := &collectionWrapper{database: m, coll: db.Collection("users")}
	err = m.applyUsersChecks(users)
	if err != nil {
		return err
	}

	chats := &collectionWrapper{database: m, coll: db.Collection("chats")}
	err = m.applyChatsChecks(chats)
	if err != nil {
		return err
	}

	messages := &collectionWrapper{database: m, coll: db.Collection("messages")}
	err = m.applyMessagesChecks(messages)
	if err != nil {
		return err
	}

	//assign the db, db client and the collections
	m.db = db
	m.dbClient = client
	m.organizations = organizations
	m.users = users
	m.chats = chats
	m.messages = messages

	go m.organizations.Watch(nil, m.logger)

	return nil
}

func (m *database) applyOrganizationsChecks(organizations *collectionWrapper) error {
	m.logger.Info("apply organizations checks.....")

	//add name index - unique
	err := organizations.AddIndex(bson.D{primitive.E{Key: "name", Value: 1}}, true)
	if err != nil {
		return err
	}

	//add api_key index - unique
	err = organizations.AddIndex(bson.D{primitive.E{Key: "api_key", Value: 1}}, true)
	if err != nil {
		return err
	}

	m.logger.Info("organizations checks passed")
	return nil
}

func (m *database) applyUsersChecks(users *collectionWrapper) error {
	m.logger.Info("apply users checks.....")

	//add org_id + email index - unique within an organization
	err := users.AddIndex(bson.D{primitive.E{Key: "org_id", Value: 1}, primitive.E{Key: "email", Value: 1}}, true)
	if err != nil {
		return err
	}

	//add api_key index - unique
	err = users.AddIndex(bson.D{primitive.E{Key: "api_key", Value: 1}}, true)
	if err != nil {
		return err
	}

	m.logger.Info("users checks passed")
	return nil
}

func (m *database) applyChatsChecks(chats *collectionWrapper) error {
	m.logger.Info("apply chats checks.....")

	//add org_id + date_created index - serves the lists and the window queries
	err := chats.AddIndex(bson.D{primitive.E{Key: "org_id", Value: 1}, primitive.E{Key: "date_created", Value: 1}}, false)
	if err != nil {
		return err
	}

	//add org_id + user_id index
	err = chats.AddIndex(bson.D{primitive.E{Key: "org_id", Value: 1}, primitive.E{Key: "user_id", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("chats checks passed")
	return nil
}

func (m *database) applyMessagesChecks(messages *collectionWrapper) error {
	m.logger.Info("apply messages checks.....")

	//add org_id + chat_id index
	err := messages.AddIndex(bson.D{primitive.E{Key: "org_id", Value: 1}, primitive.E{Key: "chat_id", Value: 1}}, false)
	if err != nil {
		return err
	}

	//add org_id + date_created index - serves the aggregation window queries
	err = messages.AddIndex(bson.D{primitive.E{Key: "org_id", Value: 1}, primitive.E{Key: "date_created", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("messages checks passed")
	return nil
}

func (m *database) onDataChanged(changeDoc map[string]interface{}) {
	if changeDoc == nil {
		return
	}
	m.logger.Infof("onDataChanged: %+v", changeDoc)
	ns := changeDoc["ns"]
	if ns == nil {
		return
	}
	nsMap := ns.(map[string]interface{})
	coll := nsMap["coll"]

	if coll == "organizations" {
		m.logger.Info("organizations collection changed")

		for _, listener := range m.listeners {
			go listener.OnOrganizationsUpdated()
		}
	}
}
