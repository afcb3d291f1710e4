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

package resp

import (
	"strconv"

	"github.com/valyala/bytebufferpool"
)

const (
	typeSimpleString = '+'
	typeError        = '-'
	typeInteger      = ':'
	typeBulkString   = '$'
	typeArray        = '*'
)

var crlf = []byte("\r\n")

// numCache holds the pre-rendered ASCII decimal form of small integers
// that RESP headers use constantly: array/bulk lengths in the 0..255
// range, and -1, the sentinel RESP uses for nulls. plain omits the
// trailing CRLF (for the digits embedded inside a larger header, callers
// always want the terminator too, but the split lets WriteInt skip the
// branch); crlf carries it.
type numCache struct {
	plain [257][]byte // index 0..255 -> "0".."255"; index 256 -> "-1"
	crlf  [257][]byte
}

const negOneIdx = 256

func buildNumCache() *numCache {
	c := &numCache{}
	for i := 0; i <= 255; i++ {
		c.plain[i] = []byte(strconv.Itoa(i))
		c.crlf[i] = append(append([]byte{}, c.plain[i]...), crlf...)
	}
	c.plain[negOneIdx] = []byte("-1")
	c.crlf[negOneIdx] = []byte("-1\r\n")
	return c
}

var cache = buildNumCache()

// WriteInt appends the decimal ASCII form of n to buf, with no
// terminator. Integers 0..255 and -1 are copied from a precomputed cache;
// everything else is formatted digit by digit via strconv.
func WriteInt(buf *bytebufferpool.ByteBuffer, n int64) {
	if n >= 0 && n <= 255 {
		buf.Write(cache.plain[n])
		return
	}
	if n == -1 {
		buf.Write(cache.plain[negOneIdx])
		return
	}
	buf.B = strconv.AppendInt(buf.B, n, 10)
}

// WriteIntCRLF appends the decimal ASCII form of n followed by \r\n.
func WriteIntCRLF(buf *bytebufferpool.ByteBuffer, n int64) {
	if n >= 0 && n <= 255 {
		buf.Write(cache.crlf[n])
		return
	}
	if n == -1 {
		buf.Write(cache.crlf[negOneIdx])
		return
	}
	buf.B = strconv.AppendInt(buf.B, n, 10)
	buf.Write(crlf)
}

// WriteArrayHeader appends a RESP array header ("*<n>\r\n") to buf.
func WriteArrayHeader(buf *bytebufferpool.ByteBuffer, n int) {
	buf.WriteByte(typeArray)
	WriteIntCRLF(buf, int64(n))
}

// WriteBulk appends a RESP bulk string ("$<len>\r\n<bytes>\r\n") to buf.
// The encoder never inspects b's content; any byte sequence, including
// embedded NULs or CRLFs, is delivered binary-safe.
func WriteBulk(buf *bytebufferpool.ByteBuffer, b []byte) {
	buf.WriteByte(typeBulkString)
	WriteIntCRLF(buf, int64(len(b)))
	buf.Write(b)
	buf.Write(crlf)
}

// WriteToken appends a pre-encoded token (a full RESP bulk-string wire
// form produced once by the command package) verbatim. Unlike WriteBulk
// and WriteBulkString, it does no encoding of its own: the caller is
// handing over bytes that are already framed.
func WriteToken(buf *bytebufferpool.ByteBuffer, token []byte) {
	buf.Write(token)
}

// WriteBulkString is a convenience over WriteBulk for UTF-8 arguments.
func WriteBulkString(buf *bytebufferpool.ByteBuffer, s string) {
	buf.WriteByte(typeBulkString)
	WriteIntCRLF(buf, int64(len(s)))
	buf.WriteString(s)
	buf.Write(crlf)
}

// WriteIntAsBulk writes n as a RESP bulk string holding its decimal ASCII
// form. Command arguments that are conceptually integers (EXPIRE's
// seconds, HINCRBY's delta, LRANGE's indices) are still sent as bulk
// strings: RESP commands are always an array of bulk strings, never a
// mix with the Integer reply type, which only the server ever sends.
func WriteIntAsBulk(buf *bytebufferpool.ByteBuffer, n int64) {
	var digits [20]byte
	rendered := strconv.AppendInt(digits[:0], n, 10)
	WriteBulk(buf, rendered)
}

// NewCommandBuffer allocates (from the shared pool) a buffer sized for a
// command array with n total elements (the command token itself counts as
// one), writing the array header for the caller.
func NewCommandBuffer(elemCount int) *bytebufferpool.ByteBuffer {
	buf := bytebufferpool.Get()
	WriteArrayHeader(buf, elemCount)
	return buf
}

// ReleaseCommandBuffer returns buf to the shared pool. Callers must not
// touch buf (or any slice taken from it) after calling this.
func ReleaseCommandBuffer(buf *bytebufferpool.ByteBuffer) {
	bytebufferpool.Put(buf)
}
