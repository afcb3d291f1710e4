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

package conn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenerMapRegisterLookup(t *testing.T) {
	m := newListenerMap()
	assert.True(t, m.empty())

	var got []byte
	m.register("ch", func(payload []byte, err error) { got = payload })

	assert.False(t, m.empty())

	l, ok := m.lookup([]byte("ch"))
	require.True(t, ok)
	l([]byte("hi"), nil)
	assert.Equal(t, "hi", string(got))

	_, ok = m.lookup([]byte("other"))
	assert.False(t, ok)
}

func TestListenerMapUnregisterKeepsEmptyMap(t *testing.T) {
	m := newListenerMap()
	m.register("ch", func(payload []byte, err error) {})
	m.unregister("ch")

	assert.True(t, m.empty())
	_, ok := m.lookup([]byte("ch"))
	assert.False(t, ok)
}

func TestListenerMapMostRecent(t *testing.T) {
	m := newListenerMap()
	_, ok := m.mostRecent()
	assert.False(t, ok)

	m.register("a", func(payload []byte, err error) {})
	m.register("b", func(payload []byte, err error) {})

	l, ok := m.mostRecent()
	require.True(t, ok)
	assert.NotNil(t, l)
}
