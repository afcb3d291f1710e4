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
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/respconn/respconn/internal/generator"
)

var (
	genIndexURL    string
	genDocsBaseURL string
	genPackage     string
	genOut         string
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Fetch the upstream command index and emit a stub helper catalog (performs network I/O)",
	RunE: func(cmd *cobra.Command, args []string) error {
		var out *os.File
		if genOut == "" || genOut == "-" {
			out = os.Stdout
		} else {
			f, err := os.Create(genOut)
			if err != nil {
				return fmt.Errorf("open output: %w", err)
			}
			defer f.Close()
			out = f
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		return generator.Generate(ctx, out, genIndexURL, genDocsBaseURL, genPackage)
	},
	Example: "# respconn gen --out commands/zz_generated.go",
}

func init() {
	genCmd.Flags().StringVar(&genIndexURL, "index-url", generator.DefaultIndexURL, "URL of the upstream command index JSON")
	genCmd.Flags().StringVar(&genDocsBaseURL, "docs-url", generator.DefaultDocsBaseURL, "Base URL of the per-command Markdown docs")
	genCmd.Flags().StringVar(&genPackage, "package", "commands", "Package name for the generated stub file")
	genCmd.Flags().StringVar(&genOut, "out", "-", "Output file path, or - for stdout")
	rootCmd.AddCommand(genCmd)
}
