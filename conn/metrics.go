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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/respconn/respconn/common"
)

var (
	commandsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: common.App,
			Name:      "commands_submitted_total",
			Help:      "Commands submitted to a connection.",
		},
	)

	repliesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: common.App,
			Name:      "replies_completed_total",
			Help:      "Completions delivered, by outcome kind.",
		},
		[]string{"kind"},
	)

	invariantViolations = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: common.App,
			Name:      "invariant_violations_total",
			Help:      "Replies the connection could not attribute to a completion or listener.",
		},
	)

	channelMessages = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: common.App,
			Name:      "channel_messages_total",
			Help:      "Pub/sub messages dispatched to a listener.",
		},
	)

	connectionsClosed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: common.App,
			Name:      "connections_closed_total",
			Help:      "Connections that transitioned to closed, by any cause.",
		},
	)
)

const (
	outcomeReply       = "reply"
	outcomeRemoteError = "remote_error"
	outcomeClosed      = "connection_closed"
)
