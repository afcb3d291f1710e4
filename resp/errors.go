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
	"github.com/pkg/errors"
)

// ProtocolError is returned by the decoder whenever the inbound stream is
// not valid RESP: an unknown type byte, a malformed numeric field, or a
// negative length other than -1. It is always fatal to the connection the
// decoder is attached to.
type ProtocolError struct {
	msg string
}

func (e *ProtocolError) Error() string {
	return "resp: protocol error: " + e.msg
}

func newProtocolError(format string, args ...any) error {
	return errors.WithStack(&ProtocolError{msg: errors.Errorf(format, args...).Error()})
}
