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

import "github.com/respconn/respconn/internal/rescue"

// task is one unit of work the executor goroutine runs: a Submit call
// handed off from a caller's goroutine, a transport read handed off from
// the reader goroutine, or a Disconnect.
type task func()

// executor drains an ordered queue on a single goroutine. It is the sole
// owner of the Connection's decoder, in-flight queue, and listener map;
// nothing else ever touches them, which is what lets the connection core
// skip locking entirely.
type executor struct {
	tasks chan task
	done  chan struct{}
}

func newExecutor(queueDepth int) *executor {
	if queueDepth <= 0 {
		queueDepth = 256
	}
	e := &executor{
		tasks: make(chan task, queueDepth),
		done:  make(chan struct{}),
	}
	go e.run()
	return e
}

func (e *executor) run() {
	defer close(e.done)
	for t := range e.tasks {
		e.dispatch(t)
	}
}

// dispatch recovers a panic raised inside t so one misbehaving completion
// can't take down the executor goroutine or corrupt the in-flight queue
// for every command sharing the connection.
func (e *executor) dispatch(t task) {
	defer rescue.HandleCrash()
	t()
}

// submit enqueues t. It never blocks the caller on task execution, only
// on queue capacity.
func (e *executor) submit(t task) {
	e.tasks <- t
}

// stop closes the task queue and waits for the goroutine to drain it.
// Callers must not submit after calling stop.
func (e *executor) stop() {
	close(e.tasks)
	<-e.done
}
