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

package utils

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.13, Round2(12.125))
	assert.Equal(t, 12.34, Round2(12.344))
	assert.Equal(t, 10.0, Round2(10.0))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 0.67, Round2(2.0/3.0))
}

func TestLogHeaders(t *testing.T) {
	req, _ := http.NewRequest("GET", "/chatlogs/version", nil)
	req.Header.Set("X-Api-Key", "secret")
	req.Header.Set("X-Org-Api-Key", "secret")
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("Cookie", "session=secret")
	req.Header.Set("Content-Type", "application/json")

	headers := LogHeaders(req)
	assert.Equal(t, []string{"---"}, headers["X-Api-Key"])
	assert.Equal(t, []string{"---"}, headers["X-Org-Api-Key"])
	assert.Equal(t, []string{"---"}, headers["Authorization"])
	assert.Equal(t, []string{"---"}, headers["Cookie"])
	assert.Equal(t, []string{"application/json"}, headers["Content-Type"])

	assert.Nil(t, LogHeaders(nil))
}
