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
	"github.com/respconn/respconn/resp"
)

// Del runs DEL key ...
func (c *Client) Del(keys ...string) (int64, error) {
	buf := resp.NewCommandBuffer(1 + len(keys))
	resp.WriteToken(buf, command.Command("DEL"))
	for _, k := range keys {
		resp.WriteBulkString(buf, k)
	}
	return asInt(c.do(buf))
}

// Exists runs EXISTS key ..., returning the count of keys that exist
// (a key listed twice counts twice).
func (c *Client) Exists(keys ...string) (int64, error) {
	buf := resp.NewCommandBuffer(1 + len(keys))
	resp.WriteToken(buf, command.Command("EXISTS"))
	for _, k := range keys {
		resp.WriteBulkString(buf, k)
	}
	return asInt(c.do(buf))
}

// Expire runs EXPIRE key seconds.
func (c *Client) Expire(key string, seconds int64) (bool, error) {
	buf := resp.NewCommandBuffer(3)
	resp.WriteToken(buf, command.Command("EXPIRE"))
	resp.WriteBulkString(buf, key)
	resp.WriteIntAsBulk(buf, seconds)
	return asBool(c.do(buf))
}

// TTL runs TTL key, returning seconds remaining, -1 if the key has no
// expiry, or -2 if the key doesn't exist.
func (c *Client) TTL(key string) (int64, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("TTL"))
	resp.WriteBulkString(buf, key)
	return asInt(c.do(buf))
}

// Persist runs PERSIST key, removing any existing expiry.
func (c *Client) Persist(key string) (bool, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("PERSIST"))
	resp.WriteBulkString(buf, key)
	return asBool(c.do(buf))
}

// Type runs TYPE key.
func (c *Client) Type(key string) (string, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("TYPE"))
	resp.WriteBulkString(buf, key)
	return asString(c.do(buf))
}

// Rename runs RENAME key newkey.
func (c *Client) Rename(key, newKey string) error {
	buf := resp.NewCommandBuffer(3)
	resp.WriteToken(buf, command.Command("RENAME"))
	resp.WriteBulkString(buf, key)
	resp.WriteBulkString(buf, newKey)
	_, err := c.do(buf)
	return err
}

// Keys runs KEYS pattern. Intended for debugging/small keyspaces, as the
// server itself warns.
func (c *Client) Keys(pattern string) ([][]byte, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("KEYS"))
	resp.WriteBulkString(buf, pattern)
	return asBulkSlice(c.do(buf))
}

// Ping runs PING, returning the server's reply text ("PONG" with no
// argument).
func (c *Client) Ping() (string, error) {
	buf := resp.NewCommandBuffer(1)
	resp.WriteToken(buf, command.Command("PING"))
	return asString(c.do(buf))
}
