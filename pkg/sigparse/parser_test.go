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

package sigparse

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/methodsig/internal/contract"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", DefaultMode, false},
		{"simple", ModeSimple, false},
		{"  Simple ", ModeSimple, false},
		{"treesitter", ModeTreeSitter, false},
		{"tree-sitter", ModeTreeSitter, false},
		{"TREESITTER", ModeTreeSitter, false},
		{"regex", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown parser mode")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewParser_Defaults(t *testing.T) {
	t.Setenv(contract.MaxSignatureBytesEnv, "")

	p := NewParser()
	assert.Equal(t, DefaultMode, p.Mode())
	assert.Equal(t, contract.DefaultMaxSignatureBytes, p.maxBytes)
	assert.NotNil(t, p.logger)
}

func TestNewParser_NilLoggerKeepsDefault(t *testing.T) {
	p := NewParser(WithLogger(nil))
	assert.NotNil(t, p.logger)
}

func TestParser_MaxBytes(t *testing.T) {
	sig := "void " + strings.Repeat("x", 64) + "()"

	_, err := NewParser(WithMaxBytes(32)).Parse(sig)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSignatureTooLong))
	assert.True(t, errors.Is(err, ErrMalformedSignature))
	assert.Contains(t, err.Error(), "...", "long input is truncated in the message")

	m, err := NewParser(WithMaxBytes(0)).Parse(sig)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("x", 64), m.MethodName)
}

func TestParseFunction_HonorsEnvLimit(t *testing.T) {
	t.Setenv(contract.MaxSignatureBytesEnv, "10")

	_, err := ParseFunction("void log(String value)")
	assert.True(t, errors.Is(err, ErrSignatureTooLong), "err = %v", err)
}

func TestParser_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := NewParser(WithLogger(logger))
	_, err := p.Parse("void foo(int)")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "sigparse.parse.malformed")
	assert.Contains(t, out, "mode=simple")

	buf.Reset()
	_, err = p.Parse("void foo(int x)")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "sigparse.parse.ok")
	assert.Contains(t, buf.String(), "method=foo")
}

func TestParser_ParseAll(t *testing.T) {
	sigs := []string{
		"private void log(String value)",
		"void foo(int)",
		"public DateTime getCurrentDateTime()",
	}

	results := NewParser().ParseAll(sigs)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, sigs[i], r.Signature)
	}

	require.NoError(t, results[0].Err)
	assert.Equal(t, "log", results[0].Method.MethodName)

	assert.True(t, errors.Is(results[1].Err, ErrMalformedSignature))
	assert.Equal(t, MethodSignature{}, results[1].Method)

	require.NoError(t, results[2].Err)
	assert.Equal(t, "getCurrentDateTime", results[2].Method.MethodName)
}

func TestParser_ParseAll_Empty(t *testing.T) {
	assert.Empty(t, NewParser().ParseAll(nil))
}

func TestParser_ConcurrentUse(t *testing.T) {
	p := NewParser()
	done := make(chan error, 16)

	for i := 0; i < cap(done); i++ {
		go func() {
			_, err := p.Parse("Vector3 distort(int x, int y, int z, float magnitude)")
			done <- err
		}()
	}
	for i := 0; i < cap(done); i++ {
		assert.NoError(t, <-done)
	}
}
