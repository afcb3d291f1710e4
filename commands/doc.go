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

// Package commands hand-authors typed Redis command helpers on top of
// conn.Connection: each helper builds the RESP request array, submits it,
// and projects the reply onto the return type the command's shape
// implies (SimpleString -> string, Integer -> int64, BulkString -> bytes,
// Array -> []Reply), with "nil" meaning the server's null variant.
//
// The helpers here are hand-authored for a representative subset of the
// Redis command catalog (strings, hashes, lists, sets, sorted sets,
// generic key commands, pub/sub). The full catalog would normally be
// produced by the generator in internal/generator; run it with
// `respconn gen` to emit a stub file covering the remaining commands and
// hand-finish the ones you need the way this package's existing helpers
// are written.
//
//go:generate go run ../cmd/respconn gen --out zz_generated.go
package commands
