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

// Package command catalogs the Redis command and sub-command keyword
// tokens this client knows about, pre-rendered once at package init to
// their RESP bulk-string wire form ("$<len>\r\n<bytes>\r\n") so the
// commands package never re-encodes a command name or keyword on every
// call — it copies the cached bytes with resp.WriteToken instead.
package command

import (
	_ "embed"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/respconn/respconn/resp"
)

//go:embed command.list
var commandListContent string

// Token is a command or keyword name pre-rendered to its RESP bulk-string
// wire form. Append it to a request buffer with resp.WriteToken.
type Token []byte

func encode(name string) Token {
	buf := bytebufferpool.Get()
	resp.WriteBulkString(buf, name)
	tok := append(Token(nil), buf.B...)
	bytebufferpool.Put(buf)
	return tok
}

// Commands maps every top-level command name this client recognizes,
// uppercased, to its pre-encoded token.
var Commands = func() map[string]Token {
	m := make(map[string]Token)
	for _, line := range strings.Split(commandListContent, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name := strings.Fields(line)[0]
		m[name] = encode(name)
	}
	return m
}()

// Known is the set of top-level command names this client recognizes. A
// command not in this set can still be sent via Submit with a raw
// request, but helpers in the commands package only cover this set.
var Known = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Commands))
	for name := range Commands {
		m[name] = struct{}{}
	}
	return m
}()

// keywordNames lists the sub-command keywords pre-encoded at init (SORT's
// BY/LIMIT/GET/STORE/ASC/DESC/ALPHA, SET's NX/XX/EX/PX, ZADD's GT/LT/CH,
// ZRANGE's WITHSCORES, SCAN's MATCH/COUNT); the commands package's helpers
// currently write the SORT ones, NX, EX and WITHSCORES. Keywords are
// encoded in lowercase. They are never valid as top-level command names,
// so they're kept in a separate map from Commands rather than merged into
// one namespace.
var keywordNames = []string{
	"BY", "LIMIT", "GET", "STORE", "ASC", "DESC", "ALPHA",
	"WITHSCORES", "NX", "XX", "EX", "PX", "GT", "LT", "CH",
	"MATCH", "COUNT",
}

// Keywords maps every sub-command keyword to its pre-encoded token.
var Keywords = func() map[string]Token {
	m := make(map[string]Token, len(keywordNames))
	for _, name := range keywordNames {
		m[name] = encode(strings.ToLower(name))
	}
	return m
}()

// Command returns the pre-encoded token for name. Names outside the
// catalog (a server extension, a newer command this client hasn't
// cataloged yet) still get a correctly encoded, if uncached, token rather
// than an error — the catalog is a performance optimization, not a
// gate on what Submit will carry.
func Command(name string) Token {
	if t, ok := Commands[name]; ok {
		return t
	}
	return encode(name)
}

// Keyword returns the pre-encoded token for a sub-command keyword, with
// the same uncached fallback as Command.
func Keyword(name string) Token {
	if t, ok := Keywords[name]; ok {
		return t
	}
	return encode(strings.ToLower(name))
}

// Pub/sub keywords, called out individually because they drive the
// connection's mode switch rather than being answered like an ordinary
// command.
const (
	Subscribe    = "SUBSCRIBE"
	Unsubscribe  = "UNSUBSCRIBE"
	PSubscribe   = "PSUBSCRIBE"
	PUnsubscribe = "PUNSUBSCRIBE"
	Message      = "message"
	PMessage     = "pmessage"
)

// IsSubscribeCommand reports whether name enters or adjusts channel mode.
func IsSubscribeCommand(name string) bool {
	switch strings.ToUpper(name) {
	case Subscribe, PSubscribe:
		return true
	default:
		return false
	}
}
