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

package ui

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// captureOutput disables colors and redirects helpers into a buffer.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	t.Cleanup(Init(&buf, true))
	return &buf
}

func TestInit(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	original := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = original }()

	tests := []struct {
		name    string
		noColor bool
	}{
		{"buffer without flag", false},
		{"buffer with flag", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			restore := Init(&buf, tt.noColor)

			if !color.NoColor {
				t.Errorf("Init(buffer, %v): color.NoColor = false, want true", tt.noColor)
			}

			Header("Method Signature")
			Errorf("line %d", 2)
			if strings.Contains(buf.String(), "\x1b[") {
				t.Errorf("non-terminal output contains ANSI escapes: %q", buf.String())
			}

			restore()
			if color.NoColor {
				t.Error("restore did not reset color.NoColor")
			}
			if out == io.Writer(&buf) {
				t.Error("restore did not reset the output writer")
			}
		})
	}
}

func TestColorSupported(t *testing.T) {
	t.Run("buffer", func(t *testing.T) {
		if ColorSupported(&bytes.Buffer{}) {
			t.Error("ColorSupported(buffer) = true, want false")
		}
	})

	t.Run("regular file", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "out")
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		if IsTerminal(f) || ColorSupported(f) {
			t.Error("a regular file must not be treated as a terminal")
		}
	})

	t.Run("NO_COLOR set", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		if ColorSupported(os.Stdout) {
			t.Error("ColorSupported must be false when NO_COLOR is set")
		}
	})

	t.Run("dumb terminal", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		t.Setenv("TERM", "dumb")
		if ColorSupported(os.Stdout) {
			t.Error("ColorSupported must be false for TERM=dumb")
		}
	})
}

func TestInlineHelpers(t *testing.T) {
	captureOutput(t)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"label", Label("Return type:"), "Return type:"},
		{"empty label", Label(""), ""},
		{"dim", DimText("(none)"), "(none)"},
		{"count", CountText(42), "42"},
		{"zero count", CountText(0), "0"},
		{"special characters", Label("Test: <>\"'&"), "Test: <>\"'&"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestMessageFunctions(t *testing.T) {
	buf := captureOutput(t)

	tests := []struct {
		name string
		call func()
		want string
	}{
		{"Successf", func() { Successf("parsed %d signatures", 3) }, "✓ parsed 3 signatures\n"},
		{"Warningf", func() { Warningf("%d failed", 2) }, "⚠ 2 failed\n"},
		{"Errorf", func() { Errorf("line %d: bad", 4) }, "✗ line 4: bad\n"},
		{"Header", func() { Header("Method") }, "Method\n======\n"},
		{"Line", func() { Line("log") }, "log\n"},
		{"Field", func() { Field("Name:", "log") }, "Name:" + strings.Repeat(" ", 12) + "log\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.call()
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}
