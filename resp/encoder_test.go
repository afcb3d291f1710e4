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

package resp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/bytebufferpool"
)

func TestWriteIntCRLF(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0\r\n"},
		{7, "7\r\n"},
		{255, "255\r\n"},
		{256, "256\r\n"},
		{-1, "-1\r\n"},
		{-42, "-42\r\n"},
	}

	for _, tt := range tests {
		buf := bytebufferpool.Get()
		WriteIntCRLF(buf, tt.n)
		assert.Equal(t, tt.want, buf.String())
		bytebufferpool.Put(buf)
	}
}

func TestWriteBulk(t *testing.T) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	WriteBulk(buf, []byte("foobar"))
	assert.Equal(t, "$6\r\nfoobar\r\n", buf.String())
}

func TestWriteToken(t *testing.T) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	WriteToken(buf, []byte("$3\r\nGET\r\n"))
	assert.Equal(t, "$3\r\nGET\r\n", buf.String())
}

func TestEncodeCommandRoundTrip(t *testing.T) {
	buf := NewCommandBuffer(2)
	WriteBulkString(buf, "GET")
	WriteBulkString(buf, "key")
	assert.Equal(t, "*2\r\n$3\r\nGET\r\n$3\r\nkey\r\n", buf.String())

	d := NewDecoder()
	out, err := d.Feed(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, NewArray([]Reply{
		NewBulkString([]byte("GET")),
		NewBulkString([]byte("key")),
	}), out[0])

	ReleaseCommandBuffer(buf)
}
