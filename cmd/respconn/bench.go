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

package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/respconn/respconn/bootstrap"
	"github.com/respconn/respconn/confengine"
	"github.com/respconn/respconn/internal/sigs"
	"github.com/respconn/respconn/logger"
)

var benchCount int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Pipeline a small PING workload against the configured server and print idle/busy counters",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := confengine.LoadConfigPath(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}

		app, err := bootstrap.New(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to dial: %v\n", err)
			os.Exit(1)
		}

		runPingBurst(app, benchCount)

		go func() {
			if err := app.Start(); err != nil {
				logger.Errorf("debug server stopped: %v", err)
			}
		}()

		select {
		case <-sigs.Terminate():
		case <-sigs.Reload():
			logger.Infof("respconn bench does not reload; shutting down instead")
		}
		app.Stop()
	},
	Example: "# respconn bench --config respconn.yaml --count 1000",
}

// runPingBurst submits n PING commands back to back without waiting for
// any individual reply, then waits for all n completions together — a
// minimal demonstration of the core's pipelining guarantee.
func runPingBurst(app *bootstrap.App, n int) {
	start := time.Now()
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		idx := i
		go func() {
			defer wg.Done()
			_, err := app.Commands().Ping()
			errs[idx] = err
		}()
	}
	wg.Wait()

	var failed int
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}

	c := app.Connection()
	fmt.Printf("submitted=%d failed=%d elapsed=%s\n", n, failed, time.Since(start))
	fmt.Printf("queueDepth=%d idleSeconds=%d busySeconds=%d\n",
		c.QueueDepth(), c.IdleSeconds(), c.BusySeconds())
}

func init() {
	benchCmd.Flags().IntVar(&benchCount, "count", 1000, "Number of PING commands to pipeline")
	rootCmd.AddCommand(benchCmd)
}
