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
	"github.com/respconn/respconn/command"
	"github.com/respconn/respconn/conn"
	"github.com/respconn/respconn/resp"
)

// Publish runs PUBLISH channel message, returning the number of
// subscribers that received it. It is an ordinary command submitted
// through the in-flight queue, so it fails with a ModeViolationError once
// this connection has subscribed; publish from a different connection
// than the one passed to Subscribe.
func (c *Client) Publish(channel string, message []byte) (int64, error) {
	buf := resp.NewCommandBuffer(3)
	resp.WriteToken(buf, command.Command("PUBLISH"))
	resp.WriteBulkString(buf, channel)
	resp.WriteBulk(buf, message)
	return asInt(c.do(buf))
}

// Subscribe puts the underlying connection into Channel mode and routes
// messages published to channel to listener. See conn.Connection.Subscribe.
func (c *Client) Subscribe(channel string, listener conn.Listener) error {
	return c.conn.Subscribe(channel, false, listener)
}

// PSubscribe is Subscribe's pattern-matching counterpart (PSUBSCRIBE).
func (c *Client) PSubscribe(pattern string, listener conn.Listener) error {
	return c.conn.Subscribe(pattern, true, listener)
}

// Unsubscribe stops routing messages for channel. See
// conn.Connection.Unsubscribe.
func (c *Client) Unsubscribe(channel string) error {
	return c.conn.Unsubscribe(channel, false)
}

// PUnsubscribe is Unsubscribe's pattern-matching counterpart
// (PUNSUBSCRIBE).
func (c *Client) PUnsubscribe(pattern string) error {
	return c.conn.Unsubscribe(pattern, true)
}
