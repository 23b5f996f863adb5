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
	"strconv"
	"time"

	"chatlogs-building-block/core"
	"chatlogs-building-block/core/model"
	"chatlogs-building-block/utils"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

type organization struct {
	ID     string `bson:"_id"`
	Name   string `bson:"name"`
	Active bool   `bson:"active"`
	APIKey string `bson:"api_key"`

	Settings map[string]interface{} `bson:"settings"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated"`
}

type user struct {
	ID     string `bson:"_id"`
	Email  string `bson:"email"`
	Name   string `bson:"name"`
	Role   string `bson:"role"`
	OrgID  string `bson:"org_id"`
	Active bool   `bson:"active"`
	APIKey string `bson:"api_key"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated"`
}

//Adapter implements the Storage interface
type Adapter struct {
	db *database
}

//Start starts the storage
func (sa *Adapter) Start() error {
	err := sa.db.start()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInitialize, "storage adapter", nil, err)
	}

	return err
}

//RegisterStorageListener registers a data change listener with the storage adapter
func (sa *Adapter) RegisterStorageListener(storageListener core.StorageListener) {
	sa.db.listeners = append(sa.db.listeners, storageListener)
}

//findPage runs the count and the page fetch concurrently
func (sa *Adapter) findPage(coll *collectionWrapper, filter bson.M, sort bson.D, pagination model.Pagination, result interface{}) (int64, error) {
	var totalCount int64

	var group errgroup.Group
	group.Go(func() error {
		count, err := coll.CountDocuments(filter)
		if err != nil {
			return err
		}
		totalCount = count
		return nil
	})
	group.Go(func() error {
		findOptions := options.Find().SetSort(sort).SetSkip(pagination.Skip).SetLimit(int64(pagination.Limit))
		return coll.Find(filter, result, findOptions)
	})

	err := group.Wait()
	if err != nil {
		return 0, err
	}
	return totalCount, nil
}

// ============================== Organizations ==============================

func organizationFromStorage(item organization) model.Organization {
	return model.Organization{ID: item.ID, Name: item.Name, Active: item.Active, APIKey: item.APIKey,
		Settings: item.Settings, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func organizationToStorage(item model.Organization) organization {
	return organization{ID: item.ID, Name: item.Name, Active: item.Active, APIKey: item.APIKey,
		Settings: item.Settings, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func (sa *Adapter) findOrganization(filter bson.M) (*model.Organization, error) {
	var result organization
	err := sa.db.organizations.FindOne(filter, &result, nil)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}

	item := organizationFromStorage(result)
	return &item, nil
}

//FindOrganization finds an organization by id
func (sa *Adapter) FindOrganization(id string) (*model.Organization, error) {
	return sa.findOrganization(bson.M{"_id": id})
}

//FindOrganizationByName finds an organization by its unique name
func (sa *Adapter) FindOrganizationByName(name string) (*model.Organization, error) {
	return sa.findOrganization(bson.M{"name": name})
}

//FindOrganizationByAPIKey finds an organization by its API key
func (sa *Adapter) FindOrganizationByAPIKey(apiKey string) (*model.Organization, error) {
	return sa.findOrganization(bson.M{"api_key": apiKey})
}

//FindOrganizations finds a page of organizations ordered by name
func (sa *Adapter) FindOrganizations(pagination model.Pagination) ([]model.Organization, int64, error) {
	var result []organization
	sort := bson.D{primitive.E{Key: "name", Value: 1}}
	totalCount, err := sa.findPage(sa.db.organizations, bson.M{}, sort, pagination, &result)
	if err != nil {
		return nil, 0, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}

	items := make([]model.Organization, len(result))
	for i, current := range result {
		items[i] = organizationFromStorage(current)
	}
	return items, totalCount, nil
}

//InsertOrganization inserts an organization
func (sa *Adapter) InsertOrganization(item model.Organization) (*model.Organization, error) {
	stgOrganization := organizationToStorage(item)
	_, err := sa.db.organizations.InsertOne(stgOrganization)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.WrapErrorData(logutils.StatusInvalid, model.TypeOrganization, &logutils.FieldArgs{"name": item.Name}, err).SetStatus(utils.ErrorStatusConflict)
		}
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeOrganization, nil, err)
	}

	return &item, nil
}

//UpdateOrganization updates the mutable organization fields
func (sa *Adapter) UpdateOrganization(id string, name string, active bool, settings map[string]interface{}) error {
	now := time.Now().UTC()

	filter := bson.M{"_id": id}
	update := bson.D{
		primitive.E{Key: "$set", Value: bson.D{
			primitive.E{Key: "name", Value: name},
			primitive.E{Key: "active", Value: active},
			primitive.E{Key: "settings", Value: settings},
			primitive.E{Key: "date_updated", Value: now},
		}},
	}

	result, err := sa.db.organizations.UpdateOne(filter, update, nil)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.WrapErrorData(logutils.StatusInvalid, model.TypeOrganization, &logutils.FieldArgs{"name": name}, err).SetStatus(utils.ErrorStatusConflict)
		}
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err)
	}
	if result.MatchedCount == 0 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeOrganization, &logutils.FieldArgs{"id": id}).SetStatus(utils.ErrorStatusNotFound)
	}

	return nil
}

//UpdateOrganizationAPIKey replaces the organization API key
func (sa *Adapter) UpdateOrganizationAPIKey(id string, apiKey string) error {
	now := time.Now().UTC()

	filter := bson.M{"_id": id}
	update := bson.D{
		primitive.E{Key: "$set", Value: bson.D{
			primitive.E{Key: "api_key", Value: apiKey},
			primitive.E{Key: "date_updated", Value: now},
		}},
	}

	result, err := sa.db.organizations.UpdateOne(filter, update, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganizationAPIKey, &logutils.FieldArgs{"id": id}, err)
	}
	if result.MatchedCount == 0 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeOrganization, &logutils.FieldArgs{"id": id}).SetStatus(utils.ErrorStatusNotFound)
	}

	return nil
}

//DeleteOrganization deletes an organization and all data it owns
func (sa *Adapter) DeleteOrganization(id string) error {
	return sa.performTransaction(func(sessionContext mongo.SessionContext) error {
		orgFilter := bson.M{"org_id": id}

		_, err := sa.db.messages.DeleteManyWithContext(sessionContext, orgFilter, nil)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeMessage, &logutils.FieldArgs{"org_id": id}, err)
		}
		_, err = sa.db.chats.DeleteManyWithContext(sessionContext, orgFilter, nil)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeChat, &logutils.FieldArgs{"org_id": id}, err)
		}
		_, err = sa.db.users.DeleteManyWithContext(sessionContext, orgFilter, nil)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeUser, &logutils.FieldArgs{"org_id": id}, err)
		}

		result, err := sa.db.organizations.DeleteOneWithContext(sessionContext, bson.M{"_id": id}, nil)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err)
		}
		if result.DeletedCount == 0 {
			return errors.ErrorData(logutils.StatusMissing, model.TypeOrganization, &logutils.FieldArgs{"id": id}).SetStatus(utils.ErrorStatusNotFound)
		}
		return nil
	})
}

//CountActiveUsers counts the active users in an organization
func (sa *Adapter) CountActiveUsers(orgID string) (int64, error) {
	count, err := sa.db.users.CountDocuments(bson.M{"org_id": orgID, "active": true})
	if err != nil {
		return 0, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, &logutils.FieldArgs{"org_id": orgID}, err)
	}
	return count, nil
}

// ============================== Users ==============================

func userFromStorage(item user) model.User {
	return model.User{ID: item.ID, Email: item.Email, Name: item.Name, Role: model.Role(item.Role),
		OrgID: item.OrgID, Active: item.Active, APIKey: item.APIKey,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func userToStorage(item model.User) user {
	return user{ID: item.ID, Email: item.Email, Name: item.Name, Role: string(item.Role),
		OrgID: item.OrgID, Active: item.Active, APIKey: item.APIKey,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func (sa *Adapter) findUser(filter bson.M) (*model.User, error) {
	var result user
	err := sa.db.users.FindOne(filter, &result, nil)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, nil, err)
	}

	item := userFromStorage(result)
	return &item, nil
}

//FindUser finds a user by id within an organization
func (sa *Adapter) FindUser(orgID string, id string) (*model.User, error) {
	return sa.findUser(bson.M{"_id": id, "org_id": orgID})
}

//FindUserByAPIKey finds a user by their API key
func (sa *Adapter) FindUserByAPIKey(apiKey string) (*model.User, error) {
	return sa.findUser(bson.M{"api_key": apiKey})
}

//FindUserByEmail finds a user by email within an organization
func (sa *Adapter) FindUserByEmail(orgID string, email string) (*model.User, error) {
	return sa.findUser(bson.M{"org_id": orgID, "email": email})
}

//FindUsers finds a page of the organization users, newest first
func (sa *Adapter) FindUsers(orgID string, pagination model.Pagination) ([]model.User, int64, error) {
	var result []user
	sort := bson.D{primitive.E{Key: "date_created", Value: -1}}
	totalCount, err := sa.findPage(sa.db.users, bson.M{"org_id": orgID}, sort, pagination, &result)
	if err != nil {
		return nil, 0, errors.WrapErrorAction(logutils.ActionFind, model.TypeUser, &logutils.FieldArgs{"org_id": orgID}, err)
	}

	items := make([]model.User, len(result))
	for i, current := range result {
		items[i] = userFromStorage(current)
	}
	return items, totalCount, nil
}

//InsertUser inserts a user
func (sa *Adapter) InsertUser(item model.User) (*model.User, error) {
	stgUser := userToStorage(item)
	_, err := sa.db.users.InsertOne(stgUser)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.WrapErrorData(logutils.StatusInvalid, model.TypeUser, &logutils.FieldArgs{"email": item.Email}, err).SetStatus(utils.ErrorStatusConflict)
		}
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeUser, nil, err)
	}

	return &item, nil
}

//UpdateUser replaces the user record
func (sa *Adapter) UpdateUser(item model.User) error {
	now := time.Now().UTC()
	item.DateUpdated = &now

	stgUser := userToStorage(item)
	filter := bson.M{"_id": item.ID, "org_id": item.OrgID}
	err := sa.db.users.ReplaceOne(filter, stgUser, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeUser, &logutils.FieldArgs{"id": item.ID}, err)
	}

	return nil
}

//DeleteUser deletes a user and the chats and messages they own
func (sa *Adapter) DeleteUser(orgID string, id string) error {
	return sa.performTransaction(func(sessionContext mongo.SessionContext) error {
		ownedFilter := bson.M{"org_id": orgID, "user_id": id}

		_, err := sa.db.messages.DeleteManyWithContext(sessionContext, ownedFilter, nil)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeMessage, &logutils.FieldArgs{"user_id": id}, err)
		}
		_, err = sa.db.chats.DeleteManyWithContext(sessionContext, ownedFilter, nil)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeChat, &logutils.FieldArgs{"user_id": id}, err)
		}

		result, err := sa.db.users.DeleteOneWithContext(sessionContext, bson.M{"_id": id, "org_id": orgID}, nil)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeUser, &logutils.FieldArgs{"id": id}, err)
		}
		if result.DeletedCount == 0 {
			return errors.ErrorData(logutils.StatusMissing, model.TypeUser, &logutils.FieldArgs{"id": id}).SetStatus(utils.ErrorStatusNotFound)
		}
		return nil
	})
}

// ============================== Helpers ==============================

func (sa *Adapter) performTransaction(transaction func(sessionContext mongo.SessionContext) error) error {
	return sa.db.dbClient.UseSession(context.Background(), func(sessionContext mongo.SessionContext) error {
		err := sessionContext.StartTransaction()
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionStart, "transaction", nil, err)
		}

		err = transaction(sessionContext)
		if err != nil {
			abortTransaction(sessionContext)
			return err
		}

		err = sessionContext.CommitTransaction(sessionContext)
		if err != nil {
			abortTransaction(sessionContext)
			return errors.WrapErrorAction("commit", "transaction", nil, err)
		}
		return nil
	})
}

func abortTransaction(sessionContext mongo.SessionContext) {
	err := sessionContext.AbortTransaction(sessionContext)
	if err != nil {
		//nothing we can do here
	}
}

//NewStorageAdapter creates a new storage adapter instance
func NewStorageAdapter(mongoDBAuth string, mongoDBName string, mongoTimeout string, logger *logs.Logger) *Adapter {
	timeoutInt, err := strconv.Atoi(mongoTimeout)
	if err != nil {
		logger.Warn("Setting default Mongo timeout - 500")
		timeoutInt = 500
	}
	timeout := time.Millisecond * time.Duration(timeoutInt)

	db := &database{mongoDBAuth: mongoDBAuth, mongoDBName: mongoDBName, mongoTimeout: timeout, logger: logger}
	return &Adapter{db: db}
}
