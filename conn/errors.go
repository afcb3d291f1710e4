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

package conn

import "github.com/pkg/errors"

// RemoteError is the error variant of a server reply (a `-` line). It
// never invalidates the connection; only the completion waiting on this
// particular reply receives it.
type RemoteError struct {
	msg string
}

func (e *RemoteError) Error() string {
	return "conn: remote error: " + e.msg
}

func newRemoteError(msg string) error {
	return errors.WithStack(&RemoteError{msg: msg})
}

// ConnectionClosedError is delivered to every in-flight completion, in
// FIFO order, once the transport becomes inactive for any reason: a peer
// close, a network error, or a local Disconnect.
type ConnectionClosedError struct {
	cause error
}

func (e *ConnectionClosedError) Error() string {
	if e.cause == nil {
		return "conn: connection closed"
	}
	return "conn: connection closed: " + e.cause.Error()
}

func (e *ConnectionClosedError) Unwrap() error {
	return e.cause
}

func newConnectionClosedError(cause error) error {
	return errors.WithStack(&ConnectionClosedError{cause: cause})
}

// ModeViolationError is returned by Submit when the connection is in
// Channel mode: a connection that has ever subscribed no longer accepts
// ordinary commands.
type ModeViolationError struct{}

func (e *ModeViolationError) Error() string {
	return "conn: submit called while in channel mode"
}

func newModeViolationError() error {
	return errors.WithStack(&ModeViolationError{})
}

// InvariantViolationError marks a reply the connection could not
// attribute to anything: a Normal-mode reply with no completion waiting,
// or a Channel-mode reply that isn't a recognizable message/pmessage
// shape. It never reaches a user completion; it is only ever surfaced to
// whatever is monitoring the connection (logs, metrics, InvariantFunc).
type InvariantViolationError struct {
	msg string
}

func (e *InvariantViolationError) Error() string {
	return "conn: invariant violation: " + e.msg
}

func newInvariantViolationError(format string, args ...any) error {
	return errors.WithStack(&InvariantViolationError{msg: errors.Errorf(format, args...).Error()})
}
