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

package common

const (
	// App is the library/process name used in metric namespaces and logs.
	App = "respconn"

	// Version is the library version.
	Version = "v0.1.0"

	// ReadWriteBlockSize bounds how much of a single net.Conn.Read we hand
	// to the decoder at a time.
	//
	// TCP segments top out at 64K, but a bulk string reply can be far
	// larger than that, so the decoder must already tolerate arbitrary
	// chunking; this constant only controls how coarsely we chunk our own
	// read buffer before feeding it, not a protocol limit.
	ReadWriteBlockSize = 4096
)
