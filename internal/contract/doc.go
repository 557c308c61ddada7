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

// Package contract provides input limits and validation for methodsig.
//
// # Signature Size Limit
//
// Signatures are single-line declarations, so anything beyond a few
// kilobytes is treated as malformed input rather than parsed:
//
//	limit := contract.MaxSignatureBytes()
//
//	result := contract.ValidateSignatureLimit(sig, limit)
//	if !result.OK {
//	    log.Printf("Validation failed: %s", result.Message)
//	}
//
// # Configuration via Environment
//
// The limit can be adjusted via the METHODSIG_MAX_SIGNATURE_BYTES
// environment variable:
//
//	export METHODSIG_MAX_SIGNATURE_BYTES=16384
//
// If the environment variable is not set or invalid, the default limit
// of 4 KiB (DefaultMaxSignatureBytes) is used.
package contract
