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
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/methodsig/internal/errors"
	"github.com/kraklabs/methodsig/internal/output"
	"github.com/kraklabs/methodsig/internal/ui"
	"github.com/kraklabs/methodsig/pkg/strsplit"
)

var defaultSplitDelimiters = []string{",", " "}

// runSplit executes the 'split' CLI command, printing one fragment per line.
//
// Examples:
//
//	methodsig split "a,b c"
//	methodsig split -d 0 -d 4 "we094utp"
func runSplit(args []string, env *cmdEnv) error {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	delims := fs.StringArrayP("delimiter", "d", nil, "Delimiter characters, repeatable (default ',' and ' ')")

	fs.Usage = func() {
		fmt.Fprintf(env.stderr, `Usage: methodsig split [options] <source>

Splits source on every character of every delimiter and drops blank fragments.

Options:
`)
		fs.PrintDefaults()
	}

	if done, err := parseFlags(fs, args); done || err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.NewInputError(
			"Expected exactly one source string",
			fmt.Sprintf("got %d arguments", fs.NArg()),
			`Quote the source: methodsig split "a,b c"`,
		)
	}

	delimiters := *delims
	if len(delimiters) == 0 {
		delimiters = defaultSplitDelimiters
	}

	parts := strsplit.SplitByDelimiters(fs.Arg(0), delimiters)
	env.logger.Info("split.complete", "delimiters", delimiters, "fragments", len(parts))

	if env.jsonOutput() {
		return output.JSONTo(env.stdout, parts)
	}
	for _, p := range parts {
		ui.Line(p)
	}
	return nil
}
