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
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrMalformedSignature is matched by every structural parse failure.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrSignatureTooLong is returned when input exceeds the parser's size limit.
	// It also matches ErrMalformedSignature.
	ErrSignatureTooLong = errors.New("signature too long")
)

// maxQuotedSignature bounds how much of the input is echoed in error messages.
const maxQuotedSignature = 80

// SyntaxError describes why a signature was rejected.
type SyntaxError struct {
	// Signature is the input as given to the parser.
	Signature string

	// Reason is a short human-readable explanation.
	Reason string

	// Err optionally narrows the failure (e.g. ErrSignatureTooLong).
	Err error
}

func (e *SyntaxError) Error() string {
	sig := e.Signature
	if len(sig) > maxQuotedSignature {
		cut := maxQuotedSignature
		for cut > 0 && !utf8.RuneStart(sig[cut]) {
			cut--
		}
		sig = sig[:cut] + "..."
	}
	return fmt.Sprintf("malformed signature %q: %s", sig, e.Reason)
}

// Unwrap exposes ErrMalformedSignature and, when set, the narrower cause.
func (e *SyntaxError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedSignature, e.Err}
	}
	return []error{ErrMalformedSignature}
}

func malformed(signature, format string, args ...any) *SyntaxError {
	return &SyntaxError{Signature: signature, Reason: fmt.Sprintf(format, args...)}
}
