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

	"github.com/respconn/respconn/command"
	"github.com/respconn/respconn/resp"
)

// LPush runs LPUSH key value ...
func (c *Client) LPush(key string, values ...[]byte) (int64, error) {
	buf := resp.NewCommandBuffer(2 + len(values))
	resp.WriteToken(buf, command.Command("LPUSH"))
	resp.WriteBulkString(buf, key)
	for _, v := range values {
		resp.WriteBulk(buf, v)
	}
	return asInt(c.do(buf))
}

// RPush runs RPUSH key value ...
func (c *Client) RPush(key string, values ...[]byte) (int64, error) {
	buf := resp.NewCommandBuffer(2 + len(values))
	resp.WriteToken(buf, command.Command("RPUSH"))
	resp.WriteBulkString(buf, key)
	for _, v := range values {
		resp.WriteBulk(buf, v)
	}
	return asInt(c.do(buf))
}

// LPop runs LPOP key.
func (c *Client) LPop(key string) ([]byte, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("LPOP"))
	resp.WriteBulkString(buf, key)
	return asBulkBytes(c.do(buf))
}

// RPop runs RPOP key.
func (c *Client) RPop(key string) ([]byte, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("RPOP"))
	resp.WriteBulkString(buf, key)
	return asBulkBytes(c.do(buf))
}

// LLen runs LLEN key.
func (c *Client) LLen(key string) (int64, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("LLEN"))
	resp.WriteBulkString(buf, key)
	return asInt(c.do(buf))
}

// LRange runs LRANGE key start stop.
func (c *Client) LRange(key string, start, stop int64) ([][]byte, error) {
	buf := resp.NewCommandBuffer(4)
	resp.WriteToken(buf, command.Command("LRANGE"))
	resp.WriteBulkString(buf, key)
	resp.WriteIntAsBulk(buf, start)
	resp.WriteIntAsBulk(buf, stop)
	return asBulkSlice(c.do(buf))
}

// LIndex runs LINDEX key index.
func (c *Client) LIndex(key string, index int64) ([]byte, error) {
	buf := resp.NewCommandBuffer(3)
	resp.WriteToken(buf, command.Command("LINDEX"))
	resp.WriteBulkString(buf, key)
	resp.WriteIntAsBulk(buf, index)
	return asBulkBytes(c.do(buf))
}

// LSet runs LSET key index value.
func (c *Client) LSet(key string, index int64, value []byte) error {
	buf := resp.NewCommandBuffer(4)
	resp.WriteToken(buf, command.Command("LSET"))
	resp.WriteBulkString(buf, key)
	resp.WriteIntAsBulk(buf, index)
	resp.WriteBulk(buf, value)
	_, err := c.do(buf)
	return err
}

// LRem runs LREM key count value.
func (c *Client) LRem(key string, count int64, value []byte) (int64, error) {
	buf := resp.NewCommandBuffer(4)
	resp.WriteToken(buf, command.Command("LREM"))
	resp.WriteBulkString(buf, key)
	resp.WriteIntAsBulk(buf, count)
	resp.WriteBulk(buf, value)
	return asInt(c.do(buf))
}

// LTrim runs LTRIM key start stop.
func (c *Client) LTrim(key string, start, stop int64) error {
	buf := resp.NewCommandBuffer(4)
	resp.WriteToken(buf, command.Command("LTRIM"))
	resp.WriteBulkString(buf, key)
	resp.WriteIntAsBulk(buf, start)
	resp.WriteIntAsBulk(buf, stop)
	_, err := c.do(buf)
	return err
}

// SortOption configures one optional clause of SORT; see SortBy, SortLimit,
// SortGet, SortStore, SortAsc, SortDesc, and SortAlpha.
type SortOption struct {
	tokens int
	write  func(buf *bytebufferpool.ByteBuffer)
}

// SortBy adds BY pattern to a Sort call.
func SortBy(pattern string) SortOption {
	return SortOption{
		tokens: 2,
		write: func(buf *bytebufferpool.ByteBuffer) {
			resp.WriteToken(buf, command.Keyword("BY"))
			resp.WriteBulkString(buf, pattern)
		},
	}
}

// SortLimit adds LIMIT offset count to a Sort call.
func SortLimit(offset, count int64) SortOption {
	return SortOption{
		tokens: 3,
		write: func(buf *bytebufferpool.ByteBuffer) {
			resp.WriteToken(buf, command.Keyword("LIMIT"))
			resp.WriteIntAsBulk(buf, offset)
			resp.WriteIntAsBulk(buf, count)
		},
	}
}

// SortGet adds one GET pattern to a Sort call. Pass it once per pattern;
// SORT allows repeating GET.
func SortGet(pattern string) SortOption {
	return SortOption{
		tokens: 2,
		write: func(buf *bytebufferpool.ByteBuffer) {
			resp.WriteToken(buf, command.Keyword("GET"))
			resp.WriteBulkString(buf, pattern)
		},
	}
}

// SortStore adds STORE destination to a Sort call, making it write its
// result into destination instead of returning it.
func SortStore(destination string) SortOption {
	return SortOption{
		tokens: 2,
		write: func(buf *bytebufferpool.ByteBuffer) {
			resp.WriteToken(buf, command.Keyword("STORE"))
			resp.WriteBulkString(buf, destination)
		},
	}
}

// SortAsc / SortDesc / SortAlpha are single-token SORT modifiers.
func SortAsc() SortOption   { return sortFlag("ASC") }
func SortDesc() SortOption  { return sortFlag("DESC") }
func SortAlpha() SortOption { return sortFlag("ALPHA") }

func sortFlag(keyword string) SortOption {
	return SortOption{
		tokens: 1,
		write: func(buf *bytebufferpool.ByteBuffer) {
			resp.WriteToken(buf, command.Keyword(keyword))
		},
	}
}

// Sort runs SORT key [BY pattern] [LIMIT offset count] [GET pattern ...]
// [ASC|DESC] [ALPHA] [STORE destination], composed from zero or more
// SortOption values. Each combinable sub-block writes its own keyword
// token followed by its argument bulks; the array header's element count
// is computed from the fixed SORT/key pair plus every option's token
// count.
func (c *Client) Sort(key string, opts ...SortOption) ([][]byte, error) {
	total := 2
	for _, o := range opts {
		total += o.tokens
	}

	buf := resp.NewCommandBuffer(total)
	resp.WriteToken(buf, command.Command("SORT"))
	resp.WriteBulkString(buf, key)
	for _, o := range opts {
		o.write(buf)
	}
	return asBulkSlice(c.do(buf))
}
