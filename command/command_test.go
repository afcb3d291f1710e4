// Copyright 2025 The respconn Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnown(t *testing.T) {
	for _, cmd := range []string{"GET", "SET", "HGETALL", "ZADD", "SUBSCRIBE"} {
		_, ok := Known[cmd]
		assert.Truef(t, ok, "expected %s to be known", cmd)
	}

	_, ok := Known["NOTACOMMAND"]
	assert.False(t, ok)
}

func TestCommandTokenIsPreEncoded(t *testing.T) {
	assert.Equal(t, "$3\r\nGET\r\n", string(Command("GET")))
	// Unknown names still encode correctly; they're just not cached.
	assert.Equal(t, "$11\r\nNOTACOMMAND\r\n", string(Command("NOTACOMMAND")))
}

func TestKeywordToken(t *testing.T) {
	assert.Equal(t, "$2\r\nby\r\n", string(Keyword("BY")))
	assert.Equal(t, "$10\r\nwithscores\r\n", string(Keyword("WITHSCORES")))
}

func TestIsSubscribeCommand(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"SUBSCRIBE", true},
		{"subscribe", true},
		{"PSUBSCRIBE", true},
		{"UNSUBSCRIBE", false},
		{"GET", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSubscribeCommand(tt.name))
		})
	}
}
