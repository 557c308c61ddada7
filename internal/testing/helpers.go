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

package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kraklabs/methodsig/pkg/sigparse"
)

// MustParse parses signature with the given options and fails the test on error.
//
// Example:
//
//	m := sigtest.MustParse(t, "public int size()", sigparse.WithMode(sigparse.ModeTreeSitter))
func MustParse(t *testing.T, signature string, opts ...sigparse.Option) sigparse.MethodSignature {
	t.Helper()

	m, err := sigparse.NewParser(opts...).Parse(signature)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", signature, err)
	}
	return m
}

// AssertArguments checks m's arguments against "type name" pairs in order.
func AssertArguments(t *testing.T, m sigparse.MethodSignature, want ...string) {
	t.Helper()

	if len(m.Arguments) != len(want) {
		t.Fatalf("got %d arguments, want %d: %+v", len(m.Arguments), len(want), m.Arguments)
	}
	for i, a := range m.Arguments {
		if got := a.Type + " " + a.Name; got != want[i] {
			t.Errorf("argument %d = %q, want %q", i, got, want[i])
		}
	}
}

// WriteSignatureFile writes lines to a file in t.TempDir() and returns its path.
// The file is removed when the test finishes.
func WriteSignatureFile(t *testing.T, lines ...string) string {
	t.Helper()
	return writeTempFile(t, "signatures.txt", strings.Join(lines, "\n")+"\n")
}

// WriteConfigFile writes a YAML config to a file in t.TempDir() and returns its path.
func WriteConfigFile(t *testing.T, yaml string) string {
	t.Helper()
	return writeTempFile(t, "methodsig.yaml", yaml)
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
