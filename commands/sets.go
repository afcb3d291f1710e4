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

// SAdd runs SADD key member ...
func (c *Client) SAdd(key string, members ...[]byte) (int64, error) {
	buf := resp.NewCommandBuffer(2 + len(members))
	resp.WriteToken(buf, command.Command("SADD"))
	resp.WriteBulkString(buf, key)
	for _, m := range members {
		resp.WriteBulk(buf, m)
	}
	return asInt(c.do(buf))
}

// SRem runs SREM key member ...
func (c *Client) SRem(key string, members ...[]byte) (int64, error) {
	buf := resp.NewCommandBuffer(2 + len(members))
	resp.WriteToken(buf, command.Command("SREM"))
	resp.WriteBulkString(buf, key)
	for _, m := range members {
		resp.WriteBulk(buf, m)
	}
	return asInt(c.do(buf))
}

// SMembers runs SMEMBERS key.
func (c *Client) SMembers(key string) ([][]byte, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("SMEMBERS"))
	resp.WriteBulkString(buf, key)
	return asBulkSlice(c.do(buf))
}

// SIsMember runs SISMEMBER key member.
func (c *Client) SIsMember(key string, member []byte) (bool, error) {
	buf := resp.NewCommandBuffer(3)
	resp.WriteToken(buf, command.Command("SISMEMBER"))
	resp.WriteBulkString(buf, key)
	resp.WriteBulk(buf, member)
	return asBool(c.do(buf))
}

// SCard runs SCARD key.
func (c *Client) SCard(key string) (int64, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("SCARD"))
	resp.WriteBulkString(buf, key)
	return asInt(c.do(buf))
}

// SPop runs SPOP key, removing and returning one random member.
func (c *Client) SPop(key string) ([]byte, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("SPOP"))
	resp.WriteBulkString(buf, key)
	return asBulkBytes(c.do(buf))
}

// SUnion runs SUNION key ...
func (c *Client) SUnion(keys ...string) ([][]byte, error) {
	buf := resp.NewCommandBuffer(1 + len(keys))
	resp.WriteToken(buf, command.Command("SUNION"))
	for _, k := range keys {
		resp.WriteBulkString(buf, k)
	}
	return asBulkSlice(c.do(buf))
}

// SInter runs SINTER key ...
func (c *Client) SInter(keys ...string) ([][]byte, error) {
	buf := resp.NewCommandBuffer(1 + len(keys))
	resp.WriteToken(buf, command.Command("SINTER"))
	for _, k := range keys {
		resp.WriteBulkString(buf, k)
	}
	return asBulkSlice(c.do(buf))
}

// SDiff runs SDIFF key ...
func (c *Client) SDiff(keys ...string) ([][]byte, error) {
	buf := resp.NewCommandBuffer(1 + len(keys))
	resp.WriteToken(buf, command.Command("SDIFF"))
	for _, k := range keys {
		resp.WriteBulkString(buf, k)
	}
	return asBulkSlice(c.do(buf))
}

// SMove runs SMOVE source destination member.
func (c *Client) SMove(source, destination string, member []byte) (bool, error) {
	buf := resp.NewCommandBuffer(4)
	resp.WriteToken(buf, command.Command("SMOVE"))
	resp.WriteBulkString(buf, source)
	resp.WriteBulkString(buf, destination)
	resp.WriteBulk(buf, member)
	return asBool(c.do(buf))
}
