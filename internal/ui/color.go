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

// Package ui provides user interface utilities for the methodsig CLI.
//
// This package offers color output helpers that respect the --no-color flag
// and NO_COLOR environment variable. Init disables colors when the writer
// it is given is not a terminal (e.g., when piped or buffered in tests).
//
// Color usage guidelines:
//   - Red: Errors, failures
//   - Yellow: Warnings, cautions
//   - Green: Success, completions
//   - Cyan: Info, counts
//   - Bold: Headers, labels
//   - Dim: Less important details
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Pre-configured color instances for consistent CLI output.
var (
	// Red is used for error messages and failures.
	Red = color.New(color.FgRed)

	// Yellow is used for warnings and cautions.
	Yellow = color.New(color.FgYellow)

	// Green is used for success messages and completions.
	Green = color.New(color.FgGreen)

	// Cyan is used for informational messages.
	Cyan = color.New(color.FgCyan)

	// Bold is used for headers and important labels.
	Bold = color.New(color.Bold)

	// Dim is used for less important details.
	Dim = color.New(color.Faint)
)

// out is where message helpers write. Defaults to color.Output (stdout).
var out io.Writer = color.Output

// Init points the message helpers at w and decides whether they color.
//
// Color is off when noColor is set, NO_COLOR is non-empty, TERM is "dumb"
// or w is not a terminal. fatih/color only inspects os.Stdout, so the
// decision is made here for whatever writer the command renders to.
// The returned function restores the previous writer and color state.
func Init(w io.Writer, noColor bool) (restore func()) {
	prevOut, prevNoColor := out, color.NoColor

	out = w
	color.NoColor = noColor || !ColorSupported(w)

	return func() {
		out = prevOut
		color.NoColor = prevNoColor
	}
}

// ColorSupported reports whether w is a terminal that should get ANSI colors.
func ColorSupported(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return IsTerminal(w)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Successf prints a formatted green success message with a checkmark prefix.
func Successf(format string, args ...any) {
	_, _ = Green.Fprintf(out, "✓ "+format+"\n", args...)
}

// Warningf prints a formatted yellow warning message with a warning symbol prefix.
//
// Example output: "⚠ 3 signatures failed to parse"
func Warningf(format string, args ...any) {
	_, _ = Yellow.Fprintf(out, "⚠ "+format+"\n", args...)
}

// Errorf prints a formatted red error message with an X prefix.
//
// Example output: "✗ line 4: malformed signature"
func Errorf(format string, args ...any) {
	_, _ = Red.Fprintf(out, "✗ "+format+"\n", args...)
}

// Header prints a bold header with an underline separator.
//
// Example output:
//
//	Method Signature
//	================
func Header(text string) {
	_, _ = Bold.Fprintln(out, text)
	fmt.Fprintln(out, strings.Repeat("=", len(text)))
}

// Field prints an aligned "label value" line.
func Field(label, value string) {
	fmt.Fprintf(out, "%s %s\n", Label(fmt.Sprintf("%-16s", label)), value)
}

// Line prints text as-is followed by a newline.
func Line(text string) {
	fmt.Fprintln(out, text)
}

// Label returns a bold-formatted label string for inline use.
func Label(text string) string {
	return Bold.Sprint(text)
}

// DimText returns a dim-formatted string for less important text.
//
// Example: ui.Field("Access:", ui.DimText("(none)"))
func DimText(text string) string {
	return Dim.Sprint(text)
}

// CountText returns a cyan-formatted count value for statistics display.
func CountText(count int) string {
	return Cyan.Sprint(count)
}
