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
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kraklabs/methodsig/internal/contract"
)

// Mode determines which parser implementation to use.
type Mode string

const (
	// ModeSimple uses string slicing and delimiter splitting.
	// Does not require CGO.
	ModeSimple Mode = "simple"

	// ModeTreeSitter parses the signature as a Java method declaration.
	// Requires CGO and tree-sitter libraries.
	ModeTreeSitter Mode = "treesitter"
)

// DefaultMode is the default parser mode.
const DefaultMode = ModeSimple

// ParseMode converts a mode name from a flag or config file.
// An empty name yields DefaultMode.
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return DefaultMode, nil
	case ModeSimple:
		return ModeSimple, nil
	case ModeTreeSitter, "tree-sitter":
		return ModeTreeSitter, nil
	}
	return "", fmt.Errorf("unknown parser mode %q (want %s or %s)", name, ModeSimple, ModeTreeSitter)
}

// Parser parses signatures with a fixed mode and size limit.
// It holds no mutable state and is safe for concurrent use.
type Parser struct {
	mode     Mode
	maxBytes int
	logger   *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithMode selects the parsing backend.
func WithMode(mode Mode) Option {
	return func(p *Parser) { p.mode = mode }
}

// WithMaxBytes sets the maximum accepted signature length.
// A non-positive value disables the limit.
func WithMaxBytes(n int) Option {
	return func(p *Parser) { p.maxBytes = n }
}

// WithLogger sets the logger used for parse diagnostics.
// A nil logger leaves the default in place.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser creates a Parser. Without options it runs in DefaultMode with
// the limit from contract.MaxSignatureBytes and slog.Default.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		mode:     DefaultMode,
		maxBytes: contract.MaxSignatureBytes(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Mode returns the parser's backend.
func (p *Parser) Mode() Mode {
	return p.mode
}

// Parse converts signature into a MethodSignature or fails with an error
// matching ErrMalformedSignature.
func (p *Parser) Parse(signature string) (MethodSignature, error) {
	start := time.Now()

	var (
		m   MethodSignature
		err error
	)
	if r := contract.ValidateSignatureLimit(signature, p.maxBytes); !r.OK {
		err = &SyntaxError{Signature: signature, Reason: r.Message, Err: ErrSignatureTooLong}
	} else if p.mode == ModeTreeSitter {
		m, err = parseTreeSitter(signature)
	} else {
		m, err = parseSimple(signature)
	}

	observeParse(p.mode, len(m.Arguments), time.Since(start), err)

	if err != nil {
		p.logger.Debug("sigparse.parse.malformed",
			"mode", p.mode,
			"err", err,
		)
		return MethodSignature{}, err
	}

	p.logger.Debug("sigparse.parse.ok",
		"mode", p.mode,
		"method", m.MethodName,
		"arguments", len(m.Arguments),
	)
	return m, nil
}

// Result is the outcome of parsing one signature in a batch.
type Result struct {
	Signature string
	Method    MethodSignature
	Err       error
}

// ParseAll parses every signature independently. Results are in input
// order and a failure in one entry never affects the others.
func (p *Parser) ParseAll(signatures []string) []Result {
	results := make([]Result, len(signatures))
	for i, sig := range signatures {
		m, err := p.Parse(sig)
		results[i] = Result{Signature: sig, Method: m, Err: err}
	}
	return results
}
