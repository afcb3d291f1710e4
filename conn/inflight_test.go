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

func TestInflightQueueFIFO(t *testing.T) {
	q := newInflightQueue("test-conn")
	var order []string

	q.push(func(reply any, err error) { order = append(order, "a") })
	q.push(func(reply any, err error) { order = append(order, "b") })
	q.push(func(reply any, err error) { order = append(order, "c") })

	assert.Equal(t, 3, q.len())

	for i := 0; i < 3; i++ {
		c, ok := q.pop()
		require.True(t, ok)
		c(nil, nil)
	}
	assert.Equal(t, []string{"a", "b", "c"}, order)

	_, ok := q.pop()
	assert.False(t, ok)
}

func TestInflightQueueDrain(t *testing.T) {
	q := newInflightQueue("test-conn")
	var got []error
	sentinel := newConnectionClosedError(nil)

	q.push(func(reply any, err error) { got = append(got, err) })
	q.push(func(reply any, err error) { got = append(got, err) })

	q.drain(sentinel)
	assert.Equal(t, 0, q.len())
	require.Len(t, got, 2)
	assert.Equal(t, sentinel, got[0])
	assert.Equal(t, sentinel, got[1])
}
