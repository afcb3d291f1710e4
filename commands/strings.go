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

// Get runs GET key. A nil, nil return means the key doesn't exist.
func (c *Client) Get(key string) ([]byte, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("GET"))
	resp.WriteBulkString(buf, key)
	return asBulkBytes(c.do(buf))
}

// Set runs SET key value, unconditionally overwriting any existing value.
func (c *Client) Set(key string, value []byte) error {
	buf := resp.NewCommandBuffer(3)
	resp.WriteToken(buf, command.Command("SET"))
	resp.WriteBulkString(buf, key)
	resp.WriteBulk(buf, value)
	_, err := c.do(buf)
	return err
}

// SetNX runs SET key value NX, returning true only if the key was
// previously absent and this call created it.
func (c *Client) SetNX(key string, value []byte) (bool, error) {
	buf := resp.NewCommandBuffer(4)
	resp.WriteToken(buf, command.Command("SET"))
	resp.WriteBulkString(buf, key)
	resp.WriteBulk(buf, value)
	resp.WriteToken(buf, command.Keyword("NX"))
	r, err := c.do(buf)
	if err != nil {
		return false, err
	}
	return !r.IsNil(), nil
}

// SetEX runs SET key value EX seconds.
func (c *Client) SetEX(key string, value []byte, seconds int64) error {
	buf := resp.NewCommandBuffer(5)
	resp.WriteToken(buf, command.Command("SET"))
	resp.WriteBulkString(buf, key)
	resp.WriteBulk(buf, value)
	resp.WriteToken(buf, command.Keyword("EX"))
	resp.WriteIntAsBulk(buf, seconds)
	_, err := c.do(buf)
	return err
}

// GetSet runs GETSET key value: sets key to value and returns its prior
// value (nil if it had none).
func (c *Client) GetSet(key string, value []byte) ([]byte, error) {
	buf := resp.NewCommandBuffer(3)
	resp.WriteToken(buf, command.Command("GETSET"))
	resp.WriteBulkString(buf, key)
	resp.WriteBulk(buf, value)
	return asBulkBytes(c.do(buf))
}

// GetDel runs GETDEL key: returns the value and deletes the key
// atomically.
func (c *Client) GetDel(key string) ([]byte, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("GETDEL"))
	resp.WriteBulkString(buf, key)
	return asBulkBytes(c.do(buf))
}

// Append runs APPEND key value, returning the string's length after the
// append.
func (c *Client) Append(key string, value []byte) (int64, error) {
	buf := resp.NewCommandBuffer(3)
	resp.WriteToken(buf, command.Command("APPEND"))
	resp.WriteBulkString(buf, key)
	resp.WriteBulk(buf, value)
	return asInt(c.do(buf))
}

// StrLen runs STRLEN key.
func (c *Client) StrLen(key string) (int64, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("STRLEN"))
	resp.WriteBulkString(buf, key)
	return asInt(c.do(buf))
}

// Incr runs INCR key.
func (c *Client) Incr(key string) (int64, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("INCR"))
	resp.WriteBulkString(buf, key)
	return asInt(c.do(buf))
}

// IncrBy runs INCRBY key delta.
func (c *Client) IncrBy(key string, delta int64) (int64, error) {
	buf := resp.NewCommandBuffer(3)
	resp.WriteToken(buf, command.Command("INCRBY"))
	resp.WriteBulkString(buf, key)
	resp.WriteIntAsBulk(buf, delta)
	return asInt(c.do(buf))
}

// Decr runs DECR key.
func (c *Client) Decr(key string) (int64, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("DECR"))
	resp.WriteBulkString(buf, key)
	return asInt(c.do(buf))
}

// MGet runs MGET key... Misses come back as a nil element at that index.
func (c *Client) MGet(keys ...string) ([][]byte, error) {
	buf := resp.NewCommandBuffer(1 + len(keys))
	resp.WriteToken(buf, command.Command("MGET"))
	for _, k := range keys {
		resp.WriteBulkString(buf, k)
	}
	return asBulkSlice(c.do(buf))
}

// MSet runs MSET key value key value ... pairs must have an even length.
func (c *Client) MSet(pairs ...string) error {
	buf := resp.NewCommandBuffer(1 + len(pairs))
	resp.WriteToken(buf, command.Command("MSET"))
	for _, p := range pairs {
		resp.WriteBulkString(buf, p)
	}
	_, err := c.do(buf)
	return err
}

// GetRange runs GETRANGE key start end.
func (c *Client) GetRange(key string, start, end int64) ([]byte, error) {
	buf := resp.NewCommandBuffer(4)
	resp.WriteToken(buf, command.Command("GETRANGE"))
	resp.WriteBulkString(buf, key)
	resp.WriteIntAsBulk(buf, start)
	resp.WriteIntAsBulk(buf, end)
	return asBulkBytes(c.do(buf))
}
