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

// HSet runs HSET key field value [field value ...].
func (c *Client) HSet(key string, fieldValues ...string) (int64, error) {
	buf := resp.NewCommandBuffer(2 + len(fieldValues))
	resp.WriteToken(buf, command.Command("HSET"))
	resp.WriteBulkString(buf, key)
	for _, fv := range fieldValues {
		resp.WriteBulkString(buf, fv)
	}
	return asInt(c.do(buf))
}

// HGet runs HGET key field.
func (c *Client) HGet(key, field string) ([]byte, error) {
	buf := resp.NewCommandBuffer(3)
	resp.WriteToken(buf, command.Command("HGET"))
	resp.WriteBulkString(buf, key)
	resp.WriteBulkString(buf, field)
	return asBulkBytes(c.do(buf))
}

// HMGet runs HMGET key field ...
func (c *Client) HMGet(key string, fields ...string) ([][]byte, error) {
	buf := resp.NewCommandBuffer(2 + len(fields))
	resp.WriteToken(buf, command.Command("HMGET"))
	resp.WriteBulkString(buf, key)
	for _, f := range fields {
		resp.WriteBulkString(buf, f)
	}
	return asBulkSlice(c.do(buf))
}

// HDel runs HDEL key field ...
func (c *Client) HDel(key string, fields ...string) (int64, error) {
	buf := resp.NewCommandBuffer(2 + len(fields))
	resp.WriteToken(buf, command.Command("HDEL"))
	resp.WriteBulkString(buf, key)
	for _, f := range fields {
		resp.WriteBulkString(buf, f)
	}
	return asInt(c.do(buf))
}

// HLen runs HLEN key.
func (c *Client) HLen(key string) (int64, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("HLEN"))
	resp.WriteBulkString(buf, key)
	return asInt(c.do(buf))
}

// HExists runs HEXISTS key field.
func (c *Client) HExists(key, field string) (bool, error) {
	buf := resp.NewCommandBuffer(3)
	resp.WriteToken(buf, command.Command("HEXISTS"))
	resp.WriteBulkString(buf, key)
	resp.WriteBulkString(buf, field)
	return asBool(c.do(buf))
}

// HGetAll runs HGETALL key, returning the flat [field, value, field,
// value, ...] array exactly as the server sends it.
func (c *Client) HGetAll(key string) ([]resp.Reply, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("HGETALL"))
	resp.WriteBulkString(buf, key)
	return asArray(c.do(buf))
}

// HIncrBy runs HINCRBY key field delta.
func (c *Client) HIncrBy(key, field string, delta int64) (int64, error) {
	buf := resp.NewCommandBuffer(4)
	resp.WriteToken(buf, command.Command("HINCRBY"))
	resp.WriteBulkString(buf, key)
	resp.WriteBulkString(buf, field)
	resp.WriteIntAsBulk(buf, delta)
	return asInt(c.do(buf))
}

// HKeys runs HKEYS key.
func (c *Client) HKeys(key string) ([][]byte, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("HKEYS"))
	resp.WriteBulkString(buf, key)
	return asBulkSlice(c.do(buf))
}

// HVals runs HVALS key.
func (c *Client) HVals(key string) ([][]byte, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("HVALS"))
	resp.WriteBulkString(buf, key)
	return asBulkSlice(c.do(buf))
}
