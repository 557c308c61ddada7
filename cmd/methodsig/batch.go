// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	flag "github.com/spf13/pflag"

	"github.com/kraklabs/methodsig/internal/errors"
	"github.com/kraklabs/methodsig/internal/output"
	"github.com/kraklabs/methodsig/internal/ui"
	"github.com/kraklabs/methodsig/pkg/sigparse"
)

// maxLineBytes bounds a single input line; the parser's own limit applies after.
const maxLineBytes = 1 << 20

// batchLine is a signature with its 1-based line number in the input.
type batchLine struct {
	Number    int
	Signature string
}

// batchItem is the JSON form of one batch result.
type batchItem struct {
	Line      int                       `json:"line"`
	Signature string                    `json:"signature"`
	Method    *sigparse.MethodSignature `json:"method,omitempty"`
	Error     string                    `json:"error,omitempty"`
}

// batchReport is the JSON document written by 'batch --json'.
type batchReport struct {
	Total   int         `json:"total"`
	Parsed  int         `json:"parsed"`
	Failed  int         `json:"failed"`
	Results []batchItem `json:"results"`
}

// runBatch executes the 'batch' CLI command, parsing one signature per line.
//
// Blank lines and lines starting with '#' are skipped. Every line is parsed
// independently; the command exits with ExitInput if any line failed.
//
// Flags:
//   - --mode: Parser backend, simple or treesitter (default from config)
//   - --jsonl: Write one compact JSON result per line
//   - --metrics-addr: HTTP address for Prometheus metrics (default from config)
//   - --metrics-linger: Keep /metrics up after the report so it can be scraped
//
// The metrics listener is bound before any input is parsed, so a bad address
// fails the command immediately. Without --metrics-linger the server stops as
// soon as the report is written.
//
// Examples:
//
//	methodsig batch signatures.txt
//	grep -h 'public' api.txt | methodsig --json batch -
func runBatch(args []string, env *cmdEnv) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	mode := fs.String("mode", "", "Parser backend: simple or treesitter (default from config)")
	jsonLines := fs.Bool("jsonl", false, "Write one compact JSON result per line")
	metricsAddr := fs.String("metrics-addr", env.cfg.MetricsAddr, "HTTP listen address for Prometheus metrics (empty to disable)")
	metricsLinger := fs.Duration("metrics-linger", 0, "Keep serving metrics this long after the batch finishes (Ctrl-C ends early)")

	fs.Usage = func() {
		fmt.Fprintf(env.stderr, `Usage: methodsig batch [options] [file|-]

Parses one signature per line. Reads stdin when no file or '-' is given.
Blank lines and lines starting with '#' are skipped.

Options:
`)
		fs.PrintDefaults()
	}

	if done, err := parseFlags(fs, args); done || err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return errors.NewInputError(
			"Too many arguments",
			fmt.Sprintf("got %d input files", fs.NArg()),
			"Pass a single file, or '-' for stdin",
		)
	}

	parser, err := env.newParser(*mode)
	if err != nil {
		return err
	}

	lines, err := readBatchInput(fs.Arg(0), env.stdin)
	if err != nil {
		return err
	}

	serving := false
	if *metricsAddr != "" {
		ln, err := net.Listen("tcp", *metricsAddr)
		if err != nil {
			return errors.NewInputError(
				"Cannot start metrics server",
				err.Error(),
				"Pass a free host:port to --metrics-addr, or an empty value to disable it",
			).Wrap(err)
		}
		defer serveMetrics(ln, env.logger)()
		serving = true
	}

	progress := newBatchProgress(env, len(lines))
	report := batchReport{Total: len(lines), Results: make([]batchItem, 0, len(lines))}

	for _, line := range lines {
		item := batchItem{Line: line.Number, Signature: line.Signature}
		m, err := parser.Parse(line.Signature)
		if err != nil {
			item.Error = err.Error()
			report.Failed++
		} else {
			item.Method = &m
			report.Parsed++
		}
		report.Results = append(report.Results, item)
		progress.Step()
	}
	progress.Done()

	env.logger.Info("batch.complete",
		"mode", parser.Mode(),
		"total", report.Total,
		"parsed", report.Parsed,
		"failed", report.Failed,
	)

	if err := writeBatchReport(env, report, *jsonLines); err != nil {
		return err
	}

	if serving && *metricsLinger > 0 {
		lingerMetrics(*metricsLinger, env.logger)
	}

	if report.Failed > 0 {
		return errors.NewInputError(
			fmt.Sprintf("%d of %d signatures failed to parse", report.Failed, report.Total),
			"",
			"Fix or remove the reported lines",
		)
	}
	return nil
}

func writeBatchReport(env *cmdEnv, report batchReport, jsonLines bool) error {
	switch {
	case jsonLines:
		return output.JSONLines(env.stdout, report.Results)
	case env.jsonOutput():
		return output.JSONTo(env.stdout, report)
	}

	for _, item := range report.Results {
		if item.Error != "" {
			ui.Errorf("%4d  %s", item.Line, item.Error)
			continue
		}
		ui.Line(fmt.Sprintf("%4d  %s", item.Line, item.Method.String()))
	}

	if !env.globals.Quiet {
		if report.Failed > 0 {
			ui.Warningf("%d of %d signatures failed to parse", report.Failed, report.Total)
		} else {
			ui.Successf("Parsed %d signatures", report.Parsed)
		}
	}
	return nil
}

// readBatchInput reads signatures from path, or from stdin for "" and "-".
func readBatchInput(path string, stdin io.Reader) ([]batchLine, error) {
	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			if stderrors.Is(err, os.ErrNotExist) {
				return nil, errors.NewNotFoundError(
					"Input file not found",
					fmt.Sprintf("No file at %s", path),
					"Check the path or pass '-' to read from stdin",
				)
			}
			return nil, errors.NewInputError("Cannot open input file", err.Error(), "Check the file permissions").Wrap(err)
		}
		defer f.Close()
		r = f
	}

	lines, err := scanSignatures(r)
	if err != nil {
		return nil, errors.NewInputError(
			"Cannot read input",
			err.Error(),
			fmt.Sprintf("Keep each signature on one line under %d bytes", maxLineBytes),
		)
	}
	return lines, nil
}

// scanSignatures returns non-blank, non-comment lines with their line numbers.
func scanSignatures(r io.Reader) ([]batchLine, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []batchLine
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, batchLine{Number: n, Signature: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", n+1, err)
	}
	return lines, nil
}

// serveMetrics serves /metrics on ln in the background. The returned stop
// function shuts the server down and waits for it to exit.
func serveMetrics(ln net.Listener, logger *slog.Logger) (stop func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	addr := ln.Addr().String()

	logger.Info("metrics.http.start", "addr", addr, "path", "/metrics")

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics.http.error", "err", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
		<-done
		logger.Info("metrics.http.stop", "addr", addr)
	}
}

// lingerMetrics blocks for d, or until SIGINT/SIGTERM, so the final counters
// of a one-shot batch can still be scraped.
func lingerMetrics(d time.Duration, logger *slog.Logger) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("metrics.http.linger", "duration", d)
	select {
	case <-ctx.Done():
		logger.Info("metrics.http.linger.interrupted")
	case <-time.After(d):
	}
}
