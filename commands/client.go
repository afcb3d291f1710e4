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
	"github.com/valyala/bytebufferpool"

	"github.com/respconn/respconn/conn"
	"github.com/respconn/respconn/resp"
)

// Client is a thin, synchronous-looking facade over one conn.Connection.
// Every method blocks the calling goroutine (not the connection's
// executor) until its completion fires.
type Client struct {
	conn *conn.Connection
}

// New wraps an established Connection.
func New(c *conn.Connection) *Client {
	return &Client{conn: c}
}

// do submits buf's contents and waits for the matching reply. It always
// releases buf back to the shared pool before returning.
func (c *Client) do(buf *bytebufferpool.ByteBuffer) (resp.Reply, error) {
	type outcome struct {
		reply resp.Reply
		err   error
	}
	ch := make(chan outcome, 1)

	submitErr := c.conn.Submit(buf.Bytes(), func(reply any, err error) {
		if err != nil {
			ch <- outcome{err: err}
			return
		}
		ch <- outcome{reply: reply.(resp.Reply)}
	})
	resp.ReleaseCommandBuffer(buf)

	if submitErr != nil {
		return resp.Reply{}, submitErr
	}
	o := <-ch
	return o.reply, o.err
}

// asBulkBytes projects a BulkString reply, nil for a null bulk string.
func asBulkBytes(r resp.Reply, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	if r.IsNil() {
		return nil, nil
	}
	return r.Bytes, nil
}

// asString projects a SimpleString (or non-null BulkString) reply.
func asString(r resp.Reply, err error) (string, error) {
	if err != nil {
		return "", err
	}
	if r.IsNil() {
		return "", nil
	}
	if r.Type == resp.BulkString {
		return string(r.Bytes), nil
	}
	return r.Str, nil
}

// asInt projects an Integer reply.
func asInt(r resp.Reply, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	return r.Int, nil
}

// asBool projects an Integer reply as the conventional Redis boolean
// (0/1) idiom.
func asBool(r resp.Reply, err error) (bool, error) {
	n, err := asInt(r, err)
	return n == 1, err
}

// asArray projects an Array reply, nil for a null array.
func asArray(r resp.Reply, err error) ([]resp.Reply, error) {
	if err != nil {
		return nil, err
	}
	if r.IsNil() {
		return nil, nil
	}
	return r.Array, nil
}

// asBulkSlice projects an Array of BulkStrings into [][]byte, preserving
// nulls as nil elements (e.g. MGET's per-key misses).
func asBulkSlice(r resp.Reply, err error) ([][]byte, error) {
	arr, err := asArray(r, err)
	if err != nil || arr == nil {
		return nil, err
	}
	out := make([][]byte, len(arr))
	for i, e := range arr {
		if !e.IsNil() {
			out[i] = e.Bytes
		}
	}
	return out, nil
}
