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

package contract

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// DefaultMaxSignatureBytes is the baseline limit for a single signature.
	DefaultMaxSignatureBytes = 4 << 10 // 4 KiB

	// MaxSignatureBytesEnv overrides DefaultMaxSignatureBytes when set to a positive integer.
	MaxSignatureBytesEnv = "METHODSIG_MAX_SIGNATURE_BYTES"
)

// MaxSignatureBytes returns the effective signature size limit.
// Controlled via env METHODSIG_MAX_SIGNATURE_BYTES; falls back to DefaultMaxSignatureBytes.
func MaxSignatureBytes() int {
	if v := os.Getenv(MaxSignatureBytesEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultMaxSignatureBytes
}

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	OK      bool
	Message string
}

// ValidateSignatureLimit checks a signature against an explicit limit.
// A non-positive limit disables the check.
func ValidateSignatureLimit(sig string, limit int) *ValidationResult {
	if limit > 0 && len(sig) > limit {
		return &ValidationResult{
			OK:      false,
			Message: fmt.Sprintf("signature is %d bytes, limit is %d", len(sig), limit),
		}
	}
	return &ValidationResult{OK: true}
}
