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

import (
	"container/list"

	"go.opentelemetry.io/collector/pdata/pcommon"

	"github.com/respconn/respconn/internal/tracekit"
	"github.com/respconn/respconn/logger"
)

// Completion is invoked exactly once for a Submit call: with a reply, a
// RemoteError, or a ConnectionClosedError.
type Completion func(reply any, err error)

// entry pairs a completion with a trace/span identifier generated purely
// for structured-log correlation. RESP carries no trace context of its
// own, and nothing here affects matching, which stays strictly
// positional.
type entry struct {
	completion Completion
	traceID    pcommon.TraceID
	spanID     pcommon.SpanID
}

// inflightQueue is the FIFO correlating Submit order to the order replies
// arrive in. RESP carries no request identifiers, so this queue is the
// only mechanism tying a reply back to the caller that should see it; it
// is touched only by the executor goroutine and needs no locking.
type inflightQueue struct {
	connID string
	l      *list.List
}

// newInflightQueue builds an empty queue tagged with connID, the owning
// Connection's uuid, so every trace/span log line can be correlated back
// to one connection when a process holds several.
func newInflightQueue(connID string) *inflightQueue {
	return &inflightQueue{connID: connID, l: list.New()}
}

func (q *inflightQueue) push(c Completion) {
	e := entry{
		completion: c,
		traceID:    tracekit.RandomTraceID(),
		spanID:     tracekit.RandomSpanID(),
	}
	logger.Debugf("respconn: conn=%s submit trace=%x span=%x", q.connID, e.traceID, e.spanID)
	q.l.PushBack(e)
}

// pop removes and returns the oldest completion, or false if the queue is
// empty (the InvariantViolation case: a reply arrived with nothing
// waiting for it).
func (q *inflightQueue) pop() (Completion, bool) {
	e := q.l.Front()
	if e == nil {
		return nil, false
	}
	q.l.Remove(e)
	en := e.Value.(entry)
	logger.Debugf("respconn: conn=%s complete trace=%x span=%x", q.connID, en.traceID, en.spanID)
	return en.completion, true
}

func (q *inflightQueue) len() int {
	return q.l.Len()
}

// drain removes every queued completion, in FIFO order, invoking each
// with err. Used on Disconnect and on transport failure.
func (q *inflightQueue) drain(err error) {
	for {
		c, ok := q.pop()
		if !ok {
			return
		}
		c(nil, err)
	}
}
