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
	"time"

	"chatlogs-building-block/core/model"
)

// Request bodies

type createChatRequest struct {
	Title string `json:"title" validate:"required"`
}

type updateChatRequest struct {
	Title string `json:"title" validate:"required"`
}

type createMessageRequest struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content" validate:"required"`
	Tokens  int    `json:"tokens" validate:"min=0"`
}

type updateAccountRequest struct {
	Name string `json:"name" validate:"required"`
}

type createUserRequest struct {
	Email string  `json:"email" validate:"required,email"`
	Name  string  `json:"name" validate:"required"`
	Role  string  `json:"role" validate:"required"`
	OrgID *string `json:"org_id"`
}

type updateUserRequest struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Active *bool   `json:"active"`
	OrgID  *string `json:"org_id"`
}

type updateOrganizationRequest struct {
	Name     string                 `json:"name" validate:"required"`
	Active   bool                   `json:"active"`
	Settings map[string]interface{} `json:"settings"`
	OrgID    *string                `json:"org_id"`
}

type createOrganizationRequest struct {
	Name     string                 `json:"name" validate:"required"`
	Settings map[string]interface{} `json:"settings"`
}

// Response bodies

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type listResponse struct {
	Data interface{} `json:"data"`

	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
	TotalCount int64 `json:"total_count"`
}

func newListResponse(data interface{}, meta model.ListMeta) listResponse {
	return listResponse{Data: data, Page: meta.Page, Limit: meta.Limit, TotalPages: meta.TotalPages, TotalCount: meta.TotalCount}
}

type windowResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type aggregateResponse struct {
	Data   interface{}    `json:"data"`
	Window windowResponse `json:"window"`
}

func newAggregateResponse(data interface{}, window model.AggregationWindow) aggregateResponse {
	return aggregateResponse{Data: data, Window: windowResponse{
		StartDate: window.Start.Format(time.RFC3339), EndDate: window.End.Format(time.RFC3339)}}
}

type organizationResponse struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Active   bool                   `json:"active"`
	Settings map[string]interface{} `json:"settings,omitempty"`

	//APIKey is present only on create and key rotation responses
	APIKey string `json:"api_key,omitempty"`

	DateCreated string  `json:"date_created"`
	DateUpdated *string `json:"date_updated,omitempty"`
}

func organizationToDef(item model.Organization, includeKey bool) organizationResponse {
	resp := organizationResponse{ID: item.ID, Name: item.Name, Active: item.Active, Settings: item.Settings,
		DateCreated: item.DateCreated.Format(time.RFC3339), DateUpdated: formatOptionalDate(item.DateUpdated)}
	if includeKey {
		resp.APIKey = item.APIKey
	}
	return resp
}

func organizationListToDef(items []model.Organization) []organizationResponse {
	out := make([]organizationResponse, len(items))
	for i, item := range items {
		out[i] = organizationToDef(item, false)
	}
	return out
}

type userResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	OrgID  string `json:"org_id"`
	Active bool   `json:"active"`

	//APIKey is present only on the create response
	APIKey string `json:"api_key,omitempty"`

	DateCreated string  `json:"date_created"`
	DateUpdated *string `json:"date_updated,omitempty"`
}

func userToDef(item model.User, includeKey bool) userResponse {
	resp := userResponse{ID: item.ID, Email: item.Email, Name: item.Name, Role: string(item.Role),
		OrgID: item.OrgID, Active: item.Active,
		DateCreated: item.DateCreated.Format(time.RFC3339), DateUpdated: formatOptionalDate(item.DateUpdated)}
	if includeKey {
		resp.APIKey = item.APIKey
	}
	return resp
}

func userListToDef(items []model.User) []userResponse {
	out := make([]userResponse, len(items))
	for i, item := range items {
		out[i] = userToDef(item, false)
	}
	return out
}

type chatResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	UserID string `json:"user_id"`
	OrgID  string `json:"org_id"`

	DateCreated string  `json:"date_created"`
	DateUpdated *string `json:"date_updated,omitempty"`
}

func chatToDef(item model.Chat) chatResponse {
	return chatResponse{ID: item.ID, Title: item.Title, UserID: item.UserID, OrgID: item.OrgID,
		DateCreated: item.DateCreated.Format(time.RFC3339), DateUpdated: formatOptionalDate(item.DateUpdated)}
}

func chatListToDef(items []model.Chat) []chatResponse {
	out := make([]chatResponse, len(items))
	for i, item := range items {
		out[i] = chatToDef(item)
	}
	return out
}

type messageResponse struct {
	ID      string `json:"id"`
	ChatID  string `json:"chat_id"`
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Tokens  int    `json:"tokens"`

	DateCreated string `json:"date_created"`
}

func messageToDef(item model.Message) messageResponse {
	return messageResponse{ID: item.ID, ChatID: item.ChatID, UserID: item.UserID, Role: string(item.Role),
		Content: item.Content, Tokens: item.Tokens, DateCreated: item.DateCreated.Format(time.RFC3339)}
}

func messageListToDef(items []model.Message) []messageResponse {
	out := make([]messageResponse, len(items))
	for i, item := range items {
		out[i] = messageToDef(item)
	}
	return out
}

type chatExportResponse struct {
	Chat     chatResponse      `json:"chat"`
	Messages []messageResponse `json:"messages"`
}

func chatExportListToDef(items []model.ChatExport) []chatExportResponse {
	out := make([]chatExportResponse, len(items))
	for i, item := range items {
		out[i] = chatExportResponse{Chat: chatToDef(item.Chat), Messages: messageListToDef(item.Messages)}
	}
	return out
}

type dailyActivityResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

func dailyActivityListToDef(items []model.DailyActivity) []dailyActivityResponse {
	out := make([]dailyActivityResponse, len(items))
	for i, item := range items {
		out[i] = dailyActivityResponse{Date: item.Date, Count: item.Count}
	}
	return out
}

type roleStatsResponse struct {
	Role        string  `json:"role"`
	Count       int64   `json:"count"`
	TotalTokens int64   `json:"total_tokens"`
	AvgTokens   float64 `json:"avg_tokens"`
}

type messageStatsResponse struct {
	Roles []roleStatsResponse `json:"roles"`

	TotalMessages int64 `json:"total_messages"`
	TotalTokens   int64 `json:"total_tokens"`
}

func messageStatsToDef(item model.MessageStats) messageStatsResponse {
	roles := make([]roleStatsResponse, len(item.Roles))
	for i, role := range item.Roles {
		roles[i] = roleStatsResponse{Role: string(role.Role), Count: role.Count, TotalTokens: role.TotalTokens, AvgTokens: role.AvgTokens}
	}
	return messageStatsResponse{Roles: roles, TotalMessages: item.TotalMessages, TotalTokens: item.TotalTokens}
}

type actorActivityResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`

	Count      int64  `json:"count"`
	LastActive string `json:"last_active"`
}

func actorActivityListToDef(items []model.ActorActivity) []actorActivityResponse {
	out := make([]actorActivityResponse, len(items))
	for i, item := range items {
		out[i] = actorActivityResponse{UserID: item.UserID, Name: item.Name, Email: item.Email,
			Count: item.Count, LastActive: item.LastActive.Format(time.RFC3339)}
	}
	return out
}

func formatOptionalDate(date *time.Time) *string {
	if date == nil {
		return nil
	}
	formatted := date.Format(time.RFC3339)
	return &formatted
}
