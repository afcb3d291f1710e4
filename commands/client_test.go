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

package commands

import (
	"bufio"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/respconn/respconn/conn"
)

// newPipeClient wires a Client to one end of a net.Pipe, with a goroutine
// on the other end that plays back canned replies for requests it reads.
// respond maps a request line's first bulk string (the command name,
// upper-cased) to the raw RESP bytes to write back.
func newPipeClient(t *testing.T, respond func(command string) []byte) (*Client, net.Conn) {
	t.Helper()
	client, server := net.Pipe()
	c := conn.New(client)
	t.Cleanup(func() { c.Disconnect() })

	go func() {
		r := bufio.NewReader(server)
		for {
			cmd, err := readCommandName(r)
			if err != nil {
				return
			}
			if reply := respond(cmd); reply != nil {
				if _, err := server.Write(reply); err != nil {
					return
				}
			}
		}
	}()

	return New(c), server
}

// readCommandName reads one RESP array-of-bulk-strings request in full
// (so the next call starts cleanly at the next request) and returns its
// first element, matching the shape every commands/*.go helper writes
// via resp.NewCommandBuffer.
func readCommandName(r *bufio.Reader) (string, error) {
	header, err := r.ReadString('\n') // *N\r\n
	if err != nil {
		return "", err
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(header, "*")))
	if err != nil {
		return "", err
	}

	var name string
	for i := 0; i < n; i++ {
		if _, err := r.ReadString('\n'); err != nil { // $len\r\n
			return "", err
		}
		line, err := r.ReadString('\n') // the bulk payload itself
		if err != nil {
			return "", err
		}
		if i == 0 {
			name = line[:len(line)-2] // trim \r\n
		}
	}
	return name, nil
}

func TestClientPing(t *testing.T) {
	c, _ := newPipeClient(t, func(cmd string) []byte {
		return []byte("+PONG\r\n")
	})

	got, err := c.Ping()
	require.NoError(t, err)
	require.Equal(t, "PONG", got)
}

func TestClientGetMiss(t *testing.T) {
	c, _ := newPipeClient(t, func(cmd string) []byte {
		return []byte("$-1\r\n")
	})

	got, err := c.Get("missing")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestClientSetAndPublish(t *testing.T) {
	calls := make(chan string, 2)
	c, _ := newPipeClient(t, func(cmd string) []byte {
		calls <- cmd
		switch cmd {
		case "SET":
			return []byte("+OK\r\n")
		case "PUBLISH":
			return []byte(":3\r\n")
		default:
			return []byte("+OK\r\n")
		}
	})

	require.NoError(t, c.Set("k", []byte("v")))
	n, err := c.Publish("ch", []byte("hi"))
	require.NoError(t, err)
	require.Equal(t, int64(3), n)

	require.Equal(t, "SET", <-calls)
	require.Equal(t, "PUBLISH", <-calls)
}

func TestClientSubscribeDispatchesMessages(t *testing.T) {
	// The canned server reads (and never answers) the SUBSCRIBE request,
	// so Subscribe's write on the unbuffered pipe can complete.
	cl, server := newPipeClient(t, func(cmd string) []byte { return nil })

	received := make(chan []byte, 1)
	require.NoError(t, cl.Subscribe("ch", func(payload []byte, err error) {
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
		t.Fatal("timed out waiting for dispatch")
	}
}
