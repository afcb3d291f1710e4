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

// Package generator is a best-effort, offline skeleton of the external
// command-wrapper generator: the tool that would, in a hardened build,
// read the full Redis command catalog and emit the typed helpers this
// module's commands package hand-authors a representative subset of.
// It is an external collaborator to the connection core, not part of it:
// nothing under conn or resp imports this package, and it performs no
// network I/O unless a caller explicitly invokes Generate.
package generator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"

	"github.com/respconn/respconn/command"
	"github.com/respconn/respconn/internal/splitio"
)

// Default locations for the command index and per-command documentation,
// mirroring the public redis-doc repository's layout.
const (
	DefaultIndexURL    = "https://raw.githubusercontent.com/redis/redis-doc/master/commands.json"
	DefaultDocsBaseURL = "https://raw.githubusercontent.com/redis/redis-doc/master/commands"
)

// Argument is one entry of a CommandSpec's argument list, loosely typed
// since the upstream schema varies across commands (nested "oneof" blocks,
// optional/multiple flags, etc.) — this skeleton keeps only what it needs
// to render a doc comment and a naive positional helper signature.
type Argument struct {
	Name     string `mapstructure:"name"`
	Type     string `mapstructure:"type"`
	Optional bool   `mapstructure:"optional"`
	Multiple bool   `mapstructure:"multiple"`
}

// CommandSpec is the subset of the upstream per-command JSON object this
// skeleton understands.
type CommandSpec struct {
	Summary   string     `mapstructure:"summary"`
	Since     string     `mapstructure:"since"`
	Group     string     `mapstructure:"group"`
	Arguments []Argument `mapstructure:"arguments"`
}

// Client fetches the index and per-command docs over HTTP. The zero value
// uses http.DefaultClient and a 10s per-request timeout.
type Client struct {
	HTTP    *http.Client
	Timeout time.Duration
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return 10 * time.Second
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generator: GET %s: status %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// FetchIndex downloads and decodes the command index at url. The raw
// payload is decoded once into a loosely typed map via goccy/go-json
// (the upstream schema nests differently across commands), then each
// entry is narrowed into a CommandSpec via mapstructure, which tolerates
// the unrecognized fields that loose decode leaves in place.
func (c *Client) FetchIndex(ctx context.Context, url string) (map[string]CommandSpec, error) {
	raw, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	var loose map[string]any
	if err := json.Unmarshal(raw, &loose); err != nil {
		return nil, fmt.Errorf("generator: decode index: %w", err)
	}

	specs := make(map[string]CommandSpec, len(loose))
	for name, entry := range loose {
		var spec CommandSpec
		if err := mapstructure.Decode(entry, &spec); err != nil {
			return nil, fmt.Errorf("generator: decode command %q: %w", name, err)
		}
		specs[name] = spec
	}
	return specs, nil
}

// FetchDoc downloads the Markdown documentation page for name from
// docsBaseURL and returns its first non-blank, non-heading line as a
// fallback Summary for index entries that omit one. It is line-oriented
// rather than a real Markdown parser, and splits lines with splitio.Reader
// instead of bufio.Scanner.
func (c *Client) FetchDoc(ctx context.Context, docsBaseURL, name string) (string, error) {
	url := fmt.Sprintf("%s/%s.md", strings.TrimRight(docsBaseURL, "/"), strings.ToLower(name))
	raw, err := c.fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return firstSummaryLine(raw), nil
}

// firstSummaryLine returns the first line of doc that isn't blank and
// doesn't open a Markdown heading (redis-doc's command pages lead with an
// "# NAME" heading before the actual description).
func firstSummaryLine(doc []byte) string {
	r := splitio.NewReader(doc)
	for {
		line, eof := r.ReadLine()
		if eof {
			return ""
		}
		trimmed := strings.TrimSpace(string(bytes.TrimRight(line, "\r\n")))
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return trimmed
	}
}

// Render emits Go source declaring one doc-comment-only stub function per
// known command name in specs, in sorted order for reproducible output.
// It is intentionally not a full code generator: argument shapes vary too
// widely across the catalog (sub-blocks, oneof groups, multiple-value
// tails) to synthesize a correct typed signature without the hand-tuning
// the commands package already gives its representative subset; this
// renders the scaffolding a maintainer would then flesh out by hand, the
// same way command.list's token catalog was hand-authored here.
func Render(pkg string, specs map[string]CommandSpec) string {
	names := make([]string, 0, len(specs))
	for name := range specs {
		if !command.IsSubscribeCommand(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by respconn gen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	for _, name := range names {
		spec := specs[name]
		fmt.Fprintf(&b, "// %s: %s\n", strings.ToUpper(name), spec.Summary)
		if len(spec.Arguments) > 0 {
			var args []string
			for _, a := range spec.Arguments {
				args = append(args, a.Name)
			}
			fmt.Fprintf(&b, "// Arguments: %s\n", strings.Join(args, ", "))
		}
		fmt.Fprintf(&b, "// func (c *Client) %s(...) // TODO: hand-author, see commands package\n\n",
			exportedName(name))
	}
	return b.String()
}

func exportedName(cmd string) string {
	parts := strings.Split(strings.ToLower(cmd), " ")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "")
}

// Generate fetches the index at indexURL, backfills any missing Summary
// from docsBaseURL, and writes Render's output to w. A doc page that
// can't be fetched just leaves that command's Summary blank rather than
// failing the whole run.
func Generate(ctx context.Context, w io.Writer, indexURL, docsBaseURL, pkg string) error {
	c := &Client{}
	specs, err := c.FetchIndex(ctx, indexURL)
	if err != nil {
		return err
	}

	for name, spec := range specs {
		if spec.Summary != "" {
			continue
		}
		summary, err := c.FetchDoc(ctx, docsBaseURL, name)
		if err != nil {
			continue
		}
		spec.Summary = summary
		specs[name] = spec
	}

	_, err = io.WriteString(w, Render(pkg, specs))
	return err
}
