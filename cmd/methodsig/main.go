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

// Package main implements the methodsig CLI for parsing method signatures.
//
// Usage:
//
//	methodsig parse <signature> [--json]   Parse a single signature
//	methodsig split <source> [-d delim]... Split a string on delimiter characters
//	methodsig batch [file|-]               Parse one signature per line
package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/methodsig/internal/config"
	"github.com/kraklabs/methodsig/internal/errors"
	"github.com/kraklabs/methodsig/internal/ui"
	"github.com/kraklabs/methodsig/pkg/sigparse"
)

// Version information (set via ldflags during build)
var (
	version = "dev"     // Version string
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// GlobalFlags holds flags accepted before the command name.
type GlobalFlags struct {
	ConfigPath string
	JSON       bool
	NoColor    bool
	Quiet      bool
	Verbose    int
}

// cmdEnv is what every command needs: flags, resolved config, logger and streams.
type cmdEnv struct {
	globals GlobalFlags
	cfg     *config.Config
	logger  *slog.Logger
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// jsonOutput reports whether results should be emitted as JSON.
func (e *cmdEnv) jsonOutput() bool {
	return e.globals.JSON || e.cfg.Output == config.OutputJSON
}

// newParser builds a Parser from the config, with modeFlag taking precedence.
func (e *cmdEnv) newParser(modeFlag string) (*sigparse.Parser, error) {
	mode := e.cfg.ParserMode()
	if modeFlag != "" {
		var err error
		if mode, err = sigparse.ParseMode(modeFlag); err != nil {
			return nil, errors.NewInputError(
				"Invalid parser mode",
				err.Error(),
				"Use --mode simple or --mode treesitter",
			)
		}
	}
	return sigparse.NewParser(
		sigparse.WithMode(mode),
		sigparse.WithMaxBytes(e.cfg.MaxSignatureBytes),
		sigparse.WithLogger(e.logger),
	), nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses global flags, dispatches to a command and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var globals GlobalFlags

	fs := flag.NewFlagSet("methodsig", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)
	fs.StringVar(&globals.ConfigPath, "config", "", "Path to config file (default: ./"+config.DefaultPath+" if present)")
	fs.BoolVar(&globals.JSON, "json", false, "Output as JSON")
	fs.BoolVar(&globals.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&globals.Quiet, "quiet", "q", false, "Suppress progress and summaries")
	fs.CountVarP(&globals.Verbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	showVersion := fs.Bool("version", false, "Show version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `methodsig - method signature parser

Usage:
  methodsig [global options] <command> [options]

Commands:
  parse     Parse a single signature
  split     Split a string on delimiter characters
  batch     Parse one signature per line from a file or stdin

Global Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(stderr, `
Examples:
  methodsig parse "private void log(String value)"
  methodsig --json parse "Vector3 distort(int x, int y, int z, float magnitude)"
  methodsig split -d , -d ' ' "a,b c"
  methodsig batch signatures.txt

For detailed command help: methodsig <command> --help
`)
	}

	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return errors.ExitSuccess
		}
		return errors.ExitInput
	}

	if *showVersion {
		fmt.Fprintf(stdout, "methodsig version %s\n", version)
		fmt.Fprintf(stdout, "commit: %s\n", commit)
		fmt.Fprintf(stdout, "built: %s\n", date)
		return errors.ExitSuccess
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return errors.ExitInput
	}

	defer ui.Init(stdout, globals.NoColor)()

	cfg, err := config.Load(globals.ConfigPath)
	if err != nil {
		return errors.Report(stderr, configFailure(err), globals.JSON)
	}

	env := &cmdEnv{
		globals: globals,
		cfg:     cfg,
		logger:  newLogger(stderr, globals.Verbose),
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
	}

	command, cmdArgs := fs.Arg(0), fs.Args()[1:]
	switch command {
	case "parse":
		err = runParse(cmdArgs, env)
	case "split":
		err = runSplit(cmdArgs, env)
	case "batch":
		err = runBatch(cmdArgs, env)
	default:
		err = errors.NewInputError(
			fmt.Sprintf("Unknown command: %s", command),
			"",
			"Run 'methodsig --help' to list commands",
		)
	}

	return errors.Report(stderr, err, env.jsonOutput())
}

// newLogger returns a text logger on w; verbosity raises the level from warn.
func newLogger(w io.Writer, verbose int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose >= 2:
		level = slog.LevelDebug
	case verbose == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func configFailure(err error) error {
	if stderrors.Is(err, os.ErrNotExist) {
		return errors.NewNotFoundError(
			"Config file not found",
			err.Error(),
			"Check the --config path or omit it to use defaults",
		)
	}
	return errors.NewConfigError(
		"Cannot load methodsig configuration",
		err.Error(),
		"Fix the file, see 'methodsig --help' for valid settings",
		err,
	)
}

// parseFlags parses a command's flag set, mapping flag errors to input errors.
// It returns done=true when --help was requested.
func parseFlags(fs *flag.FlagSet, args []string) (done bool, err error) {
	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, errors.NewInputError(
			"Invalid arguments",
			err.Error(),
			fmt.Sprintf("Run 'methodsig %s --help'", fs.Name()),
		)
	}
	return false, nil
}
