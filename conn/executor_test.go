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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExecutorOrdering(t *testing.T) {
	e := newExecutor(0)
	defer e.stop()

	var order []int
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		i := i
		e.submit(func() {
			order = append(order, i)
			if i == 4 {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for tasks to run")
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestExecutorSurvivesPanickingTask(t *testing.T) {
	e := newExecutor(0)
	defer e.stop()

	ran := make(chan struct{}, 1)
	e.submit(func() { panic("boom") })
	e.submit(func() { ran <- struct{}{} })

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("executor did not survive a panicking task")
	}
}
