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

// Package bootstrap is the demo harness's composition root: it wires
// config loading, logger setup, a net.Dial transport, the connection
// core, and an optional debug HTTP server. It is not part of the RESP
// client library itself; an embedder wiring the core into its own
// process would not use this package.
package bootstrap

import (
	"net"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/respconn/respconn/commands"
	"github.com/respconn/respconn/conn"
	"github.com/respconn/respconn/confengine"
	"github.com/respconn/respconn/logger"
	"github.com/respconn/respconn/server"
)

// Config is the top-level demo-harness configuration, unpacked from a
// YAML document via confengine.
type Config struct {
	Dial struct {
		Address string        `config:"address"`
		Timeout time.Duration `config:"timeout"`
	} `config:"dial"`
}

// App is the running demo harness: one Connection, its typed command
// facade, and an optional debug server exposing /metrics, pprof, and a
// stats route.
type App struct {
	cfg  Config
	conn *conn.Connection
	cmds *commands.Client
	svr  *server.Server
}

func setupLogger(conf *confengine.Config) error {
	var opts logger.Options
	if err := conf.UnpackChild("logger", &opts); err != nil {
		return err
	}
	if opts.Filename == "" {
		opts.Filename = "respconn.log"
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = 10
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = 7
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = 100
	}
	logger.SetOptions(opts)
	return nil
}

// New loads conf, dials the configured server address, and wires up a
// Connection and debug server. The caller owns the returned App's
// lifecycle via Start/Stop.
func New(conf *confengine.Config) (*App, error) {
	if err := setupLogger(conf); err != nil {
		return nil, err
	}

	var cfg Config
	if err := conf.Unpack(&cfg); err != nil {
		return nil, err
	}
	if cfg.Dial.Address == "" {
		cfg.Dial.Address = "127.0.0.1:6379"
	}
	if cfg.Dial.Timeout <= 0 {
		cfg.Dial.Timeout = 5 * time.Second
	}

	transport, err := net.DialTimeout("tcp", cfg.Dial.Address, cfg.Dial.Timeout)
	if err != nil {
		return nil, err
	}

	c := conn.New(transport)
	svr, err := server.New(conf)
	if err != nil {
		c.Disconnect()
		return nil, err
	}

	a := &App{
		cfg:  cfg,
		conn: c,
		cmds: commands.New(c),
		svr:  svr,
	}
	if a.svr != nil {
		a.registerRoutes()
	}
	return a, nil
}

// Commands returns the typed command facade bound to this App's
// Connection.
func (a *App) Commands() *commands.Client {
	return a.cmds
}

// Connection returns the underlying Connection, for callers (like the
// bench command) that want its raw idle/busy/queue-depth counters.
func (a *App) Connection() *conn.Connection {
	return a.conn
}

// Start runs the debug server, if configured, blocking until it stops.
// Callers that don't need the debug server can skip calling Start.
func (a *App) Start() error {
	if a.svr == nil {
		return nil
	}
	return a.svr.ListenAndServe()
}

// Stop disconnects the underlying connection and closes the debug server.
func (a *App) Stop() {
	a.conn.Disconnect()
	if a.svr != nil {
		_ = a.svr.Close()
	}
}

type statsResponse struct {
	QueueDepth  int   `json:"queueDepth"`
	IdleSeconds int64 `json:"idleSeconds"`
	BusySeconds int64 `json:"busySeconds"`
}

func (a *App) registerRoutes() {
	a.svr.RegisterGetRoute("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	a.svr.RegisterGetRoute("/debug/respconn/stats", func(w http.ResponseWriter, r *http.Request) {
		stats := statsResponse{
			QueueDepth:  a.conn.QueueDepth(),
			IdleSeconds: a.conn.IdleSeconds(),
			BusySeconds: a.conn.BusySeconds(),
		}
		w.Header().Set("Content-Type", "application/json")
		enc := json.NewEncoder(w)
		_ = enc.Encode(stats)
	})
}
