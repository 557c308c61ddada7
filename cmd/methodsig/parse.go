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
	stderrors "errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/methodsig/internal/config"
	"github.com/kraklabs/methodsig/internal/contract"
	"github.com/kraklabs/methodsig/internal/errors"
	"github.com/kraklabs/methodsig/internal/output"
	"github.com/kraklabs/methodsig/internal/ui"
	"github.com/kraklabs/methodsig/pkg/sigparse"
)

// runParse executes the 'parse' CLI command, printing the structure of a
// single signature.
//
// Flags:
//   - --mode: Parser backend, simple or treesitter (default from config)
//
// Examples:
//
//	methodsig parse "private void log(String value)"
//	methodsig --json parse --mode treesitter "public DateTime getCurrentDateTime()"
func runParse(args []string, env *cmdEnv) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	mode := fs.String("mode", "", "Parser backend: simple or treesitter (default from config)")

	fs.Usage = func() {
		fmt.Fprintf(env.stderr, `Usage: methodsig parse [options] <signature>

Parses a signature of the form
  [private|protected|public] returnType methodName(type1 name1, type2 name2)

Options:
`)
		fs.PrintDefaults()
	}

	if done, err := parseFlags(fs, args); done || err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.NewInputError(
			"Expected exactly one signature",
			fmt.Sprintf("got %d arguments", fs.NArg()),
			`Quote the signature: methodsig parse "void run(int times)"`,
		)
	}

	parser, err := env.newParser(*mode)
	if err != nil {
		return err
	}

	m, err := parser.Parse(fs.Arg(0))
	if err != nil {
		return parseFailure(err)
	}

	if env.jsonOutput() {
		return output.JSONTo(env.stdout, m)
	}
	printSignature(m)
	return nil
}

// printSignature renders a MethodSignature for humans.
func printSignature(m sigparse.MethodSignature) {
	ui.Header("Method Signature")

	access := ui.DimText("(none)")
	if m.HasAccessModifier() {
		access = string(m.AccessModifier)
	}
	ui.Field("Access modifier:", access)
	ui.Field("Return type:", m.ReturnType)
	ui.Field("Method name:", m.MethodName)
	ui.Field("Arguments:", ui.CountText(len(m.Arguments)))

	for i, a := range m.Arguments {
		ui.Line(fmt.Sprintf("  %d. %s %s", i+1, a.Type, a.Name))
	}
}

// parseFailure converts a parser error into a UserError.
func parseFailure(err error) error {
	var syntaxErr *sigparse.SyntaxError
	if !stderrors.As(err, &syntaxErr) {
		return errors.NewInternalError(
			"Parser failed unexpectedly",
			"The parser backend returned a non-syntax error",
			"Retry with --mode simple and report the signature",
			err,
		)
	}

	fix := "Use the form: [public|protected|private] returnType name(type arg, ...)"
	if stderrors.Is(err, sigparse.ErrSignatureTooLong) {
		fix = "Raise max_signature_bytes in " + config.DefaultPath + " or set " + contract.MaxSignatureBytesEnv
	}

	return errors.NewInputError("Cannot parse signature", syntaxErr.Reason, fix).Wrap(err)
}
