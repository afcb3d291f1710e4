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
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/respconn/respconn/resp"
)

// newPipeConnection wires a Connection to one end of a net.Pipe and keeps
// a goroutine draining whatever the Connection writes to the other end,
// since net.Pipe is a synchronous, unbuffered rendezvous: without a
// concurrent reader, every Submit/Subscribe call would block forever on
// its own Write.
func newPipeConnection(t *testing.T, opts ...Option) (*Connection, net.Conn) {
	t.Helper()
	client, server := net.Pipe()
	c := New(client, opts...)
	t.Cleanup(func() { c.Disconnect() })

	go func() {
		buf := make([]byte, 4096)
		for {
			if _, err := server.Read(buf); err != nil {
				return
			}
		}
	}()

	return c, server
}

type completionRecord struct {
	reply any
	err   error
}

func TestConnectionPipeliningOrder(t *testing.T) {
	c, server := newPipeConnection(t)

	var got []completionRecord
	results := make(chan completionRecord, 3)

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Submit([]byte("*1\r\n$4\r\nPING\r\n"), func(reply any, err error) {
			results <- completionRecord{reply, err}
		}))
	}

	go func() {
		server.Write([]byte("+A\r\n-ErrB\r\n:42\r\n"))
	}()

	for i := 0; i < 3; i++ {
		select {
		case r := <-results:
			got = append(got, r)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for completion")
		}
	}

	require.Len(t, got, 3)
	require.NoError(t, got[0].err)
	require.Equal(t, resp.NewSimpleString("A"), got[0].reply)

	require.Error(t, got[1].err)
	require.Nil(t, got[1].reply)

	require.NoError(t, got[2].err)
	require.Equal(t, resp.NewInteger(42), got[2].reply)
}

func TestConnectionChannelModeDispatch(t *testing.T) {
	c, server := newPipeConnection(t)

	received := make(chan []byte, 1)
	require.NoError(t, c.Subscribe("ch", false, func(payload []byte, err error) {
		require.NoError(t, err)
		received <- payload
	}))

	go func() {
		server.Write([]byte("*3\r\n$7\r\nmessage\r\n$2\r\nch\r\n$2\r\nhi\r\n"))
	}()

	select {
	case payload := <-received:
		require.Equal(t, "hi", string(payload))
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message dispatch")
	}

	err := c.Submit([]byte("*1\r\n$4\r\nPING\r\n"), func(any, error) {})
	require.Error(t, err)
	var modeErr *ModeViolationError
	require.ErrorAs(t, err, &modeErr)
}

func TestConnectionCloseDuringFlight(t *testing.T) {
	c, server := newPipeConnection(t)

	resultA := make(chan error, 1)
	resultB := make(chan error, 1)
	var order []string

	require.NoError(t, c.Submit([]byte("*1\r\n$4\r\nPING\r\n"), func(reply any, err error) {
		order = append(order, "A")
		resultA <- err
	}))
	require.NoError(t, c.Submit([]byte("*1\r\n$4\r\nPING\r\n"), func(reply any, err error) {
		order = append(order, "B")
		resultB <- err
	}))

	server.Close()

	errA := <-resultA
	errB := <-resultB
	require.Error(t, errA)
	require.Error(t, errB)
	require.Equal(t, []string{"A", "B"}, order)

	var closedErr *ConnectionClosedError
	require.ErrorAs(t, errA, &closedErr)
}
