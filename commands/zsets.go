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
	"strconv"

	"github.com/respconn/respconn/command"
	"github.com/respconn/respconn/resp"
)

// ZMember is one member/score pair, as used by ZAdd and returned by the
// WITHSCORES variants.
type ZMember struct {
	Member []byte
	Score  float64
}

// ZAdd runs ZADD key score member [score member ...].
func (c *Client) ZAdd(key string, members ...ZMember) (int64, error) {
	buf := resp.NewCommandBuffer(2 + 2*len(members))
	resp.WriteToken(buf, command.Command("ZADD"))
	resp.WriteBulkString(buf, key)
	for _, m := range members {
		resp.WriteBulkString(buf, strconv.FormatFloat(m.Score, 'f', -1, 64))
		resp.WriteBulk(buf, m.Member)
	}
	return asInt(c.do(buf))
}

// ZScore runs ZSCORE key member. ok is false when the member doesn't
// exist in the sorted set.
func (c *Client) ZScore(key string, member []byte) (score float64, ok bool, err error) {
	buf := resp.NewCommandBuffer(3)
	resp.WriteToken(buf, command.Command("ZSCORE"))
	resp.WriteBulkString(buf, key)
	resp.WriteBulk(buf, member)
	r, err := c.do(buf)
	if err != nil {
		return 0, false, err
	}
	if r.IsNil() {
		return 0, false, nil
	}
	score, err = strconv.ParseFloat(string(r.Bytes), 64)
	return score, err == nil, err
}

// ZRem runs ZREM key member ...
func (c *Client) ZRem(key string, members ...[]byte) (int64, error) {
	buf := resp.NewCommandBuffer(2 + len(members))
	resp.WriteToken(buf, command.Command("ZREM"))
	resp.WriteBulkString(buf, key)
	for _, m := range members {
		resp.WriteBulk(buf, m)
	}
	return asInt(c.do(buf))
}

// ZCard runs ZCARD key.
func (c *Client) ZCard(key string) (int64, error) {
	buf := resp.NewCommandBuffer(2)
	resp.WriteToken(buf, command.Command("ZCARD"))
	resp.WriteBulkString(buf, key)
	return asInt(c.do(buf))
}

// ZIncrBy runs ZINCRBY key delta member.
func (c *Client) ZIncrBy(key string, delta float64, member []byte) (float64, error) {
	buf := resp.NewCommandBuffer(4)
	resp.WriteToken(buf, command.Command("ZINCRBY"))
	resp.WriteBulkString(buf, key)
	resp.WriteBulkString(buf, strconv.FormatFloat(delta, 'f', -1, 64))
	resp.WriteBulk(buf, member)
	r, err := c.do(buf)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(string(r.Bytes), 64)
}

// ZRange runs ZRANGE key start stop, without WITHSCORES.
func (c *Client) ZRange(key string, start, stop int64) ([][]byte, error) {
	buf := resp.NewCommandBuffer(4)
	resp.WriteToken(buf, command.Command("ZRANGE"))
	resp.WriteBulkString(buf, key)
	resp.WriteIntAsBulk(buf, start)
	resp.WriteIntAsBulk(buf, stop)
	return asBulkSlice(c.do(buf))
}

// ZRangeWithScores runs ZRANGE key start stop WITHSCORES, pairing each
// member with its parsed score.
func (c *Client) ZRangeWithScores(key string, start, stop int64) ([]ZMember, error) {
	buf := resp.NewCommandBuffer(5)
	resp.WriteToken(buf, command.Command("ZRANGE"))
	resp.WriteBulkString(buf, key)
	resp.WriteIntAsBulk(buf, start)
	resp.WriteIntAsBulk(buf, stop)
	resp.WriteToken(buf, command.Keyword("WITHSCORES"))

	arr, err := asArray(c.do(buf))
	if err != nil || arr == nil {
		return nil, err
	}
	out := make([]ZMember, 0, len(arr)/2)
	for i := 0; i+1 < len(arr); i += 2 {
		score, _ := strconv.ParseFloat(string(arr[i+1].Bytes), 64)
		out = append(out, ZMember{Member: arr[i].Bytes, Score: score})
	}
	return out, nil
}

// ZRank runs ZRANK key member. ok is false when the member isn't in the
// sorted set.
func (c *Client) ZRank(key string, member []byte) (rank int64, ok bool, err error) {
	buf := resp.NewCommandBuffer(3)
	resp.WriteToken(buf, command.Command("ZRANK"))
	resp.WriteBulkString(buf, key)
	resp.WriteBulk(buf, member)
	r, err := c.do(buf)
	if err != nil {
		return 0, false, err
	}
	if r.IsNil() {
		return 0, false, nil
	}
	return r.Int, true, nil
}
