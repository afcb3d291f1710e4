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

// Package resp implements the RESP (REdis Serialization Protocol) wire
// codec: the byte-level encoder for outbound commands and the incremental,
// chunk-resumable decoder for inbound replies.
package resp

// Type tags the five RESP reply variants.
type Type uint8

const (
	SimpleString Type = iota
	Error
	Integer
	BulkString
	Array
)

func (t Type) String() string {
	switch t {
	case SimpleString:
		return "SimpleString"
	case Error:
		return "Error"
	case Integer:
		return "Integer"
	case BulkString:
		return "BulkString"
	case Array:
		return "Array"
	default:
		return "Unknown"
	}
}

// Reply is an immutable tagged value representing one parsed server reply.
//
// Only the field matching Type is meaningful; consumers must switch on Type
// rather than guess from which fields are non-zero, since an empty
// BulkString and a null BulkString both carry a zero-length/nil Bytes.
type Reply struct {
	Type Type

	Str   string  // SimpleString / Error text
	Int   int64   // Integer value
	Bytes []byte  // BulkString payload; nil means null
	Array []Reply // Array elements; nil Array with Null set means null, non-nil+empty means empty
	Null  bool    // true for a null BulkString ($-1) or a null Array (*-1)
}

// IsNil reports whether r is a null BulkString or a null Array.
func (r Reply) IsNil() bool {
	return (r.Type == BulkString || r.Type == Array) && r.Null
}

// NewSimpleString builds a SimpleString reply.
func NewSimpleString(s string) Reply {
	return Reply{Type: SimpleString, Str: s}
}

// NewError builds an Error reply.
func NewError(s string) Reply {
	return Reply{Type: Error, Str: s}
}

// NewInteger builds an Integer reply.
func NewInteger(n int64) Reply {
	return Reply{Type: Integer, Int: n}
}

// NewBulkString builds a non-null BulkString reply. A nil b is treated as
// an empty (not null) string, matching RESP's `$0\r\n\r\n`.
func NewBulkString(b []byte) Reply {
	if b == nil {
		b = []byte{}
	}
	return Reply{Type: BulkString, Bytes: b}
}

// NewNullBulkString builds a null BulkString reply ($-1).
func NewNullBulkString() Reply {
	return Reply{Type: BulkString, Null: true}
}

// NewArray builds a non-null Array reply. A nil elems is treated as an
// empty (not null) array, matching RESP's `*0\r\n`.
func NewArray(elems []Reply) Reply {
	if elems == nil {
		elems = []Reply{}
	}
	return Reply{Type: Array, Array: elems}
}

// NewNullArray builds a null Array reply (*-1).
func NewNullArray() Reply {
	return Reply{Type: Array, Null: true}
}
