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

// Package conn implements the pipelined, single-connection RESP client
// core: one executor goroutine owns a transport, a decoder, an in-flight
// completion queue, and (once the connection enters pub/sub channel mode)
// a channel listener map. Everything else hands off work to that
// goroutine rather than touching connection state directly.
package conn

import (
	"io"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/respconn/respconn/command"
	"github.com/respconn/respconn/common"
	"github.com/respconn/respconn/internal/fasttime"
	"github.com/respconn/respconn/logger"
	"github.com/respconn/respconn/resp"
)

// Mode is the connection's current dispatch discipline.
type Mode uint8

const (
	// Normal dispatches replies to the in-flight queue, FIFO.
	Normal Mode = iota
	// Channel dispatches replies to listeners by channel hash. A
	// connection that has ever called Subscribe stays in Channel mode
	// for its remaining lifetime, even after every channel is
	// unsubscribed.
	Channel
)

// InvariantFunc is notified of an InvariantViolationError: a reply the
// connection could not attribute to a waiting completion or listener.
// It never receives a user-facing reply or error and exists purely for
// observability; the default does nothing but log.
type InvariantFunc func(err error)

// Connection is a single pipelined RESP client connection. The zero
// value is not usable; construct one with New.
type Connection struct {
	id        string
	transport io.ReadWriteCloser
	exec      *executor
	dec       *resp.Decoder

	mode      Mode
	inflight  *inflightQueue
	listeners *listenerMap

	closed        atomic.Bool
	onInvariant   InvariantFunc
	lastSubmitAt  int64
	lastReplyAt   int64
	readBlockSize int
	queueDepth    atomic.Int64
}

// Option configures a Connection at construction time.
type Option func(*Connection)

// WithInvariantFunc overrides the hook invoked on InvariantViolationError.
func WithInvariantFunc(f InvariantFunc) Option {
	return func(c *Connection) { c.onInvariant = f }
}

// WithReadBlockSize overrides how many bytes are read from the transport
// per Read call before being handed to the decoder.
func WithReadBlockSize(n int) Option {
	return func(c *Connection) {
		if n > 0 {
			c.readBlockSize = n
		}
	}
}

// New wraps transport in a Connection and starts its reader and executor
// goroutines. The caller retains ownership of transport only until New
// returns; from then on the Connection closes it on Disconnect or on a
// transport error.
func New(transport io.ReadWriteCloser, opts ...Option) *Connection {
	id := uuid.New().String()
	c := &Connection{
		id:            id,
		transport:     transport,
		exec:          newExecutor(0),
		dec:           resp.NewDecoder(),
		inflight:      newInflightQueue(id),
		listeners:     newListenerMap(),
		readBlockSize: common.ReadWriteBlockSize,
	}
	for _, o := range opts {
		o(c)
	}
	if c.onInvariant == nil {
		c.onInvariant = func(err error) {
			logger.Errorf("respconn: %s", err)
		}
	}

	now := fasttime.UnixTimestamp()
	atomic.StoreInt64(&c.lastSubmitAt, now)
	atomic.StoreInt64(&c.lastReplyAt, now)

	go c.readLoop()
	return c
}

// Submit writes request (a complete, already-encoded RESP command) and
// arranges for completion to be invoked exactly once with the matching
// reply, a RemoteError, or a ConnectionClosedError. It returns a
// ModeViolationError immediately, without touching the transport, if the
// connection is in Channel mode. On a closed connection it returns nil
// and invokes completion at once with a ConnectionClosedError.
func (c *Connection) Submit(request []byte, completion Completion) error {
	if c.closed.Load() {
		completion(nil, newConnectionClosedError(nil))
		return nil
	}

	done := make(chan error, 1)
	c.exec.submit(func() {
		if c.mode == Channel {
			done <- newModeViolationError()
			return
		}
		if c.closed.Load() {
			done <- nil
			completion(nil, newConnectionClosedError(nil))
			return
		}

		atomic.StoreInt64(&c.lastSubmitAt, fasttime.UnixTimestamp())
		commandsSubmitted.Inc()
		c.inflight.push(completion)
		c.queueDepth.Add(1)
		_, err := c.transport.Write(request)
		if err != nil {
			c.failAll(err)
		}
		done <- nil
	})
	return <-done
}

// Subscribe puts the connection into Channel mode (idempotent) and
// registers listener for channel (or pattern, if isPattern). It writes
// the corresponding SUBSCRIBE/PSUBSCRIBE command but does not allocate an
// in-flight completion: channel-mode replies are routed by channel hash,
// not by FIFO position.
func (c *Connection) Subscribe(channel string, isPattern bool, listener Listener) error {
	cmdName := command.Subscribe
	if isPattern {
		cmdName = command.PSubscribe
	}

	done := make(chan error, 1)
	c.exec.submit(func() {
		if c.closed.Load() {
			done <- newConnectionClosedError(nil)
			return
		}
		c.mode = Channel
		c.listeners.register(channel, listener)

		buf := resp.NewCommandBuffer(2)
		resp.WriteToken(buf, command.Command(cmdName))
		resp.WriteBulkString(buf, channel)
		_, err := c.transport.Write(buf.Bytes())
		resp.ReleaseCommandBuffer(buf)
		if err != nil {
			c.failAll(err)
		}
		done <- err
	})
	return <-done
}

// Unsubscribe removes the listener registered for channel and writes the
// corresponding UNSUBSCRIBE/PUNSUBSCRIBE command. The connection remains
// in Channel mode even once the listener map is empty; Submit still
// fails with ModeViolation until the connection is rebuilt.
func (c *Connection) Unsubscribe(channel string, isPattern bool) error {
	cmdName := command.Unsubscribe
	if isPattern {
		cmdName = command.PUnsubscribe
	}

	done := make(chan error, 1)
	c.exec.submit(func() {
		if c.closed.Load() {
			done <- newConnectionClosedError(nil)
			return
		}
		c.listeners.unregister(channel)

		buf := resp.NewCommandBuffer(2)
		resp.WriteToken(buf, command.Command(cmdName))
		resp.WriteBulkString(buf, channel)
		_, err := c.transport.Write(buf.Bytes())
		resp.ReleaseCommandBuffer(buf)
		if err != nil {
			c.failAll(err)
		}
		done <- err
	})
	return <-done
}

// Disconnect synthesizes a ConnectionClosedError on every in-flight
// completion, in FIFO order, then closes the transport. It is idempotent
// and safe to call from any goroutine.
func (c *Connection) Disconnect() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}

	done := make(chan struct{})
	c.exec.submit(func() {
		c.inflight.drain(newConnectionClosedError(nil))
		c.queueDepth.Store(0)
		connectionsClosed.Inc()
		close(done)
	})
	<-done
	_ = c.transport.Close()
}

// failAll is the transport-error path: called from inside the executor,
// it fails every in-flight completion (FIFO) and marks the connection
// closed without re-entering Disconnect's own executor round-trip.
func (c *Connection) failAll(cause error) {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	c.inflight.drain(newConnectionClosedError(cause))
	c.queueDepth.Store(0)
	connectionsClosed.Inc()
	_ = c.transport.Close()
}

// readLoop owns the only Read calls against the transport. It hands each
// chunk to the executor so decoding and dispatch stay single-threaded;
// the read itself happens off the executor so a slow or stalled peer
// never blocks Submit/Subscribe/Disconnect calls queued behind it.
func (c *Connection) readLoop() {
	buf := make([]byte, c.readBlockSize)
	for {
		n, err := c.transport.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			result := make(chan struct{})
			c.exec.submit(func() {
				c.onChunk(chunk)
				close(result)
			})
			<-result
		}
		if err != nil {
			c.exec.submit(func() {
				c.failAll(err)
			})
			return
		}
	}
}

// onChunk runs on the executor goroutine. It feeds chunk to the decoder
// and dispatches every reply that completes as a result.
func (c *Connection) onChunk(chunk []byte) {
	replies, err := c.dec.Feed(chunk)
	for _, r := range replies {
		c.dispatch(r)
	}
	if err != nil {
		// Every error Feed returns is a *resp.ProtocolError: fatal to
		// the connection, regardless of how it's wrapped.
		c.failAll(err)
	}
}

func (c *Connection) dispatch(r resp.Reply) {
	atomic.StoreInt64(&c.lastReplyAt, fasttime.UnixTimestamp())

	if c.mode == Channel {
		c.dispatchChannel(r)
		return
	}

	completion, ok := c.inflight.pop()
	if !ok {
		invariantViolations.Inc()
		c.onInvariant(newInvariantViolationError("reply arrived with no waiting completion: %s", r.Type))
		return
	}
	c.queueDepth.Add(-1)

	if r.Type == resp.Error {
		repliesCompleted.WithLabelValues(outcomeRemoteError).Inc()
		completion(nil, newRemoteError(r.Str))
		return
	}
	repliesCompleted.WithLabelValues(outcomeReply).Inc()
	completion(r, nil)
}

// dispatchChannel routes a Channel-mode reply. A well-formed push is a
// three-element array [kind, channel, payload] ("message") or a
// four-element array [kind, pattern, channel, payload] ("pmessage").
// Subscription acknowledgements (themselves three-element arrays whose
// kind is "subscribe"/"unsubscribe"/etc.) are silently dropped, matching
// real server behavior where every channel-mode push is shaped like this.
func (c *Connection) dispatchChannel(r resp.Reply) {
	if r.Type == resp.Error {
		l, ok := c.listeners.mostRecent()
		if !ok {
			invariantViolations.Inc()
			c.onInvariant(newInvariantViolationError("channel-mode error with no registered listener: %s", r.Str))
			return
		}
		l(nil, newRemoteError(r.Str))
		return
	}

	if r.Type != resp.Array || len(r.Array) < 3 {
		invariantViolations.Inc()
		c.onInvariant(newInvariantViolationError("channel-mode reply has unexpected shape: %s", r.Type))
		return
	}

	kind := r.Array[0]
	var channelElem, payloadElem resp.Reply
	switch len(r.Array) {
	case 3:
		channelElem, payloadElem = r.Array[1], r.Array[2]
	case 4:
		channelElem, payloadElem = r.Array[2], r.Array[3]
	default:
		invariantViolations.Inc()
		c.onInvariant(newInvariantViolationError("channel-mode array has unexpected length %d", len(r.Array)))
		return
	}

	if kind.Type != resp.BulkString {
		invariantViolations.Inc()
		c.onInvariant(newInvariantViolationError("channel-mode reply kind is not a bulk string"))
		return
	}
	kindStr := string(kind.Bytes)
	if kindStr != command.Message && kindStr != command.PMessage {
		// subscribe/unsubscribe acknowledgement; dropped.
		return
	}
	if channelElem.Type != resp.BulkString || payloadElem.Type != resp.BulkString {
		invariantViolations.Inc()
		c.onInvariant(newInvariantViolationError("channel-mode push has non-bulk-string channel or payload"))
		return
	}

	listener, ok := c.listeners.lookup(channelElem.Bytes)
	if !ok {
		invariantViolations.Inc()
		c.onInvariant(newInvariantViolationError("message for unregistered channel %q", channelElem.Bytes))
		return
	}
	channelMessages.Inc()
	listener(payloadElem.Bytes, nil)
}

// QueueDepth returns the number of commands submitted but not yet
// completed. Informational only, read by the demo harness's stats route
// off a lock-free counter rather than the in-flight queue itself, which is
// touched only by the executor goroutine; it never feeds back into
// protocol decisions.
func (c *Connection) QueueDepth() int {
	return int(c.queueDepth.Load())
}

// IdleSeconds returns how long the connection has had an empty in-flight
// queue, or zero if it currently has work outstanding.
func (c *Connection) IdleSeconds() int64 {
	if c.queueDepth.Load() > 0 {
		return 0
	}
	return fasttime.UnixTimestamp() - atomic.LoadInt64(&c.lastReplyAt)
}

// BusySeconds returns how long ago the last reply completed while
// commands are still outstanding, or zero if the in-flight queue is empty.
func (c *Connection) BusySeconds() int64 {
	if c.queueDepth.Load() == 0 {
		return 0
	}
	return fasttime.UnixTimestamp() - atomic.LoadInt64(&c.lastReplyAt)
}
