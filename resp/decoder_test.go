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
)

func TestDecoderSimpleString(t *testing.T) {
	d := NewDecoder()
	out, err := d.Feed([]byte("+PONG\r\n"))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, NewSimpleString("PONG"), out[0])
}

func TestDecoderNullBulk(t *testing.T) {
	d := NewDecoder()
	out, err := d.Feed([]byte("$-1\r\n"))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].IsNil())
	assert.Equal(t, NewNullBulkString(), out[0])
}

func TestDecoderEmptyArray(t *testing.T) {
	d := NewDecoder()
	out, err := d.Feed([]byte("*0\r\n"))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, NewArray(nil), out[0])
}

func TestDecoderNestedArrayWithNull(t *testing.T) {
	d := NewDecoder()
	out, err := d.Feed([]byte("*2\r\n*2\r\n:1\r\n:2\r\n$-1\r\n"))
	require.NoError(t, err)
	require.Len(t, out, 1)

	want := NewArray([]Reply{
		NewArray([]Reply{NewInteger(1), NewInteger(2)}),
		NewNullBulkString(),
	})
	assert.Equal(t, want, out[0])
}

func TestDecoderFragmentationAcrossCRLF(t *testing.T) {
	d := NewDecoder()
	out, err := d.Feed([]byte("$5\r\nhel"))
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = d.Feed([]byte("lo\r\n"))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, NewBulkString([]byte("hello")), out[0])
}

func TestDecoderPipelining(t *testing.T) {
	d := NewDecoder()
	out, err := d.Feed([]byte("+A\r\n-ErrB\r\n:42\r\n"))
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, NewSimpleString("A"), out[0])
	assert.Equal(t, NewError("ErrB"), out[1])
	assert.Equal(t, NewInteger(42), out[2])
}

func TestDecoderFragmentationInvariance(t *testing.T) {
	stream := []byte("*2\r\n*2\r\n:1\r\n:2\r\n$-1\r\n+OK\r\n:7\r\n$3\r\nfoo\r\n")

	whole := NewDecoder()
	wantOut, err := whole.Feed(stream)
	require.NoError(t, err)

	for splitEvery := 1; splitEvery <= len(stream); splitEvery++ {
		d := NewDecoder()
		var got []Reply
		for i := 0; i < len(stream); i += splitEvery {
			end := i + splitEvery
			if end > len(stream) {
				end = len(stream)
			}
			out, err := d.Feed(stream[i:end])
			require.NoError(t, err)
			got = append(got, out...)
		}
		assert.Equalf(t, wantOut, got, "split every %d bytes", splitEvery)
	}
}

func TestDecoderProtocolErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown type byte", "!nope\r\n"},
		{"malformed integer", ":abc\r\n"},
		{"negative bulk length", "$-2\r\n"},
		{"negative array length", "*-2\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder()
			_, err := d.Feed([]byte(tt.input))
			require.Error(t, err)
			var protoErr *ProtocolError
			assert.ErrorAs(t, err, &protoErr)
		})
	}
}

func TestDecoderPending(t *testing.T) {
	d := NewDecoder()
	assert.False(t, d.Pending())

	_, err := d.Feed([]byte("*2\r\n:1\r\n"))
	require.NoError(t, err)
	assert.True(t, d.Pending())

	out, err := d.Feed([]byte(":2\r\n"))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.False(t, d.Pending())
}
