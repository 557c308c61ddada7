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

// Package testing provides test helpers for methodsig command and
// integration tests.
//
// # Quick Start
//
// Use MustParse to get a MethodSignature or fail the test:
//
//	func TestMyFeature(t *testing.T) {
//	    m := sigtest.MustParse(t, "private void log(String value)")
//	    sigtest.AssertArguments(t, m, "String value")
//	}
//
// # Fixtures
//
// The package provides helpers for writing input files into t.TempDir():
//   - WriteSignatureFile: One signature per line, for 'batch'
//   - WriteConfigFile: A YAML config, for --config
//
// Import it under an alias so it does not shadow the standard library:
//
//	import sigtest "github.com/kraklabs/methodsig/internal/testing"
package testing
