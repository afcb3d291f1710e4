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

package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSortsAndSkipsSubscribeCommands(t *testing.T) {
	specs := map[string]CommandSpec{
		"SET":       {Summary: "Set the string value of a key."},
		"GET":       {Summary: "Get the value of a key."},
		"SUBSCRIBE": {Summary: "Listen for messages published to channels."},
	}

	out := Render("commands", specs)
	assert.Contains(t, out, "package commands")
	assert.NotContains(t, out, "Subscribe(...)")

	getIdx := strings.Index(out, "func (c *Client) Get")
	setIdx := strings.Index(out, "func (c *Client) Set")
	assert.True(t, getIdx >= 0 && setIdx >= 0 && getIdx < setIdx, "expected GET rendered before SET")
}

func TestExportedName(t *testing.T) {
	assert.Equal(t, "Get", exportedName("GET"))
	assert.Equal(t, "ConfigGet", exportedName("CONFIG GET"))
}

func TestFirstSummaryLineSkipsHeadingAndBlankLines(t *testing.T) {
	doc := []byte("# GET\n\nGet the value of a key.\nMore detail follows.\n")
	assert.Equal(t, "Get the value of a key.", firstSummaryLine(doc))
}

func TestFirstSummaryLineEmptyDoc(t *testing.T) {
	assert.Equal(t, "", firstSummaryLine(nil))
}
