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
	//TypeChat ...
	TypeChat logutils.MessageDataType = "chat"
	//TypeMessage ...
	TypeMessage logutils.MessageDataType = "message"
)

//MessageRole identifies which side of a conversation produced a message
type MessageRole string

const (
	//MessageRoleUser ...
	MessageRoleUser MessageRole = "user"
	//MessageRoleAssistant ...
	MessageRoleAssistant MessageRole = "assistant"
	//MessageRoleSystem ...
	MessageRoleSystem MessageRole = "system"
)

//Valid says whether the message role is known
func (r MessageRole) Valid() bool {
	return r == MessageRoleUser || r == MessageRoleAssistant || r == MessageRoleSystem
}

//Chat represents a conversational record. It always carries the owning user
//id and the owning organization id - every non-superadmin query filters on them.
type Chat struct {
	ID    string
	Title string

	UserID string
	OrgID  string

	DateCreated time.Time
	DateUpdated *time.Time
}

func (c Chat) String() string {
	return fmt.Sprintf("[ID:%s\tTitle:%s\tUser:%s\tOrg:%s]", c.ID, c.Title, c.UserID, c.OrgID)
}

//Message represents a single message within a chat
type Message struct {
	ID     string
	ChatID string

	UserID string
	OrgID  string

	Role    MessageRole
	Content string
	Tokens  int

	DateCreated time.Time
}

//ChatExport is a chat with its messages, gathered under the same tenancy
//boundary as plain reads. File formatting is up to the export collaborator.
type ChatExport struct {
	Chat     Chat
	Messages []Message
}
