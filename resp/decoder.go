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
	"bytes"

	"github.com/respconn/respconn/internal/splitio"
)

// frame is one array in progress: it has declared how many elements it
// needs and is accumulating them as they complete.
type frame struct {
	needed int
	elems  []Reply
}

// Decoder turns a byte stream, delivered in arbitrary chunks via Feed, into
// a sequence of Reply values. It never blocks and never assumes a chunk
// boundary lines up with a RESP value boundary: a bulk string's length line
// can arrive in one Feed call and its body three calls later, and the
// decoder picks up exactly where it left off.
//
// A Decoder is not safe for concurrent use; callers serialize access to it
// (the connection's single executor goroutine does this).
type Decoder struct {
	acc []byte
	pos int

	stack []*frame
}

// NewDecoder returns an empty Decoder ready to Feed.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed appends chunk to the decoder's internal accumulator and returns every
// Reply that chunk completed, in arrival order. An empty (nil) return with
// a nil error means chunk advanced the parse state (e.g. filled part of a bulk string
// body) without finishing anything yet; call Feed again once more bytes are
// available. A non-nil error is always a ProtocolError and is fatal: the
// decoder's internal state is no longer trustworthy and it must not be fed
// again.
func (d *Decoder) Feed(chunk []byte) ([]Reply, error) {
	if len(chunk) > 0 {
		d.acc = append(d.acc, chunk...)
	}

	var out []Reply
	for {
		value, isFrame, ok, err := d.parseOne()
		if err != nil {
			return out, err
		}
		if !ok {
			break
		}
		if isFrame {
			continue
		}
		out = d.foldUp(value, out)
	}

	d.compact()
	return out, nil
}

// Pending reports whether the decoder currently holds unconsumed bytes or
// an in-progress array, i.e. whether it would be unsafe to drop it without
// losing a partially-received reply.
func (d *Decoder) Pending() bool {
	return d.pos < len(d.acc) || len(d.stack) > 0
}

// foldUp folds a just-completed value into the innermost in-progress array
// frame, cascading through any number of frames that value also completes,
// and finally appending to out the value(s) that surface at the top level.
func (d *Decoder) foldUp(value Reply, out []Reply) []Reply {
	for {
		if len(d.stack) == 0 {
			return append(out, value)
		}

		top := d.stack[len(d.stack)-1]
		top.elems = append(top.elems, value)
		if len(top.elems) < top.needed {
			return out
		}

		d.stack = d.stack[:len(d.stack)-1]
		value = NewArray(top.elems)
	}
}

// parseOne attempts to parse exactly one RESP value (or array header) at
// d.pos. ok is false when the accumulator doesn't yet hold enough bytes;
// d.pos is left unchanged in that case so the next Feed call retries from
// the same position. isFrame is true when the parsed item was a non-empty
// array header: a frame has been pushed onto d.stack and the caller should
// loop to parse that array's first element rather than treat value as a
// finished result.
func (d *Decoder) parseOne() (value Reply, isFrame bool, ok bool, err error) {
	if d.pos >= len(d.acc) {
		return Reply{}, false, false, nil
	}

	tb := d.acc[d.pos]
	switch tb {
	case typeSimpleString, typeError, typeInteger:
		line, next, ok := d.readLine(d.pos + 1)
		if !ok {
			return Reply{}, false, false, nil
		}
		d.pos = next
		switch tb {
		case typeSimpleString:
			return NewSimpleString(string(line)), false, true, nil
		case typeError:
			return NewError(string(line)), false, true, nil
		default:
			n, perr := parseInt(line)
			if perr != nil {
				return Reply{}, false, false, perr
			}
			return NewInteger(n), false, true, nil
		}

	case typeBulkString:
		line, bodyStart, ok := d.readLine(d.pos + 1)
		if !ok {
			return Reply{}, false, false, nil
		}
		n, perr := parseInt(line)
		if perr != nil {
			return Reply{}, false, false, perr
		}
		if n == -1 {
			d.pos = bodyStart
			return NewNullBulkString(), false, true, nil
		}
		if n < -1 {
			return Reply{}, false, false, newProtocolError("bulk string with negative length %d", n)
		}
		need := bodyStart + int(n) + 2
		if len(d.acc) < need {
			return Reply{}, false, false, nil
		}
		if d.acc[bodyStart+int(n)] != '\r' || d.acc[bodyStart+int(n)+1] != '\n' {
			return Reply{}, false, false, newProtocolError("bulk string missing CRLF terminator")
		}
		body := make([]byte, n)
		copy(body, d.acc[bodyStart:bodyStart+int(n)])
		d.pos = need
		return NewBulkString(body), false, true, nil

	case typeArray:
		line, next, ok := d.readLine(d.pos + 1)
		if !ok {
			return Reply{}, false, false, nil
		}
		n, perr := parseInt(line)
		if perr != nil {
			return Reply{}, false, false, perr
		}
		d.pos = next
		switch {
		case n == -1:
			return NewNullArray(), false, true, nil
		case n == 0:
			return NewArray(nil), false, true, nil
		case n < -1:
			return Reply{}, false, false, newProtocolError("array with negative length %d", n)
		default:
			d.stack = append(d.stack, &frame{needed: int(n), elems: make([]Reply, 0, n)})
			return Reply{}, true, true, nil
		}

	default:
		return Reply{}, false, false, newProtocolError("unknown type byte %q", tb)
	}
}

// readLine looks for a CRLF at or after from within d.acc and, if found,
// returns the bytes between from and the CRLF (exclusive) plus the offset
// just past it. It never consumes bytes from a line it cannot fully see:
// ok is false, with both return positions meaningless, whenever the
// terminator hasn't arrived yet.
//
// splitio.Scanner treats "ran out of buffer with no terminator" as a valid
// final line, which is the right call for its best-effort line-splitting
// use elsewhere but wrong here: the decoder must distinguish "no more bytes
// yet" from "this is the whole line", so it scans for splitio's own CRLF
// constant directly instead of driving a Scanner.
func (d *Decoder) readLine(from int) (line []byte, next int, ok bool) {
	idx := bytes.Index(d.acc[from:], splitio.CharCRLF)
	if idx == -1 {
		return nil, 0, false
	}
	return d.acc[from : from+idx], from + idx + 2, true
}

// compact drops already-consumed bytes from the front of the accumulator
// so a long-lived connection's memory use tracks its current backlog, not
// its lifetime traffic.
func (d *Decoder) compact() {
	if d.pos == 0 {
		return
	}
	n := copy(d.acc, d.acc[d.pos:])
	d.acc = d.acc[:n]
	d.pos = 0
}

// parseInt parses a RESP integer field: an optional leading '-' followed
// by one or more decimal digits. RESP never uses a leading '+' or leading
// zeros beyond a bare "0".
func parseInt(b []byte) (int64, error) {
	if len(b) == 0 {
		return 0, newProtocolError("empty integer field")
	}
	neg := false
	i := 0
	if b[0] == '-' {
		neg = true
		i = 1
	}
	if i == len(b) {
		return 0, newProtocolError("malformed integer field %q", b)
	}
	var n int64
	for ; i < len(b); i++ {
		c := b[i]
		if c < '0' || c > '9' {
			return 0, newProtocolError("malformed integer field %q", b)
		}
		n = n*10 + int64(c-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}
