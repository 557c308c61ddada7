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

// Package sigparse parses single-line, Java-like method signatures into a
// structured MethodSignature.
//
// A signature has the shape
//
//	[accessModifier] returnType methodName(type1 name1, type2 name2, ...)
//
// for example:
//
//	private void log(String value)
//	Vector3 distort(int x, int y, int z, float magnitude)
//	public DateTime getCurrentDateTime()
//
// # Quick Start
//
//	m, err := sigparse.ParseFunction("private void log(String value)")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(m.MethodName, len(m.Arguments)) // log 1
//
// # Parser Modes
//
// Two backends produce the same MethodSignature:
//
//   - ModeSimple slices the string and tokenizes it with strsplit. It has
//     no external requirements and is the default.
//   - ModeTreeSitter parses the signature as a Java method declaration with
//     Tree-sitter. It requires CGO.
//
// Configure a Parser explicitly to pick a backend, a size limit or a logger:
//
//	p := sigparse.NewParser(
//	    sigparse.WithMode(sigparse.ModeTreeSitter),
//	    sigparse.WithLogger(logger),
//	)
//	m, err := p.Parse(sig)
//
// # Errors
//
// Every structural failure matches ErrMalformedSignature:
//
//	if errors.Is(err, sigparse.ErrMalformedSignature) {
//	    // reject input
//	}
//
// No partial results are returned; a failed parse yields the zero value.
//
// # Metrics
//
// Parse outcomes are recorded as Prometheus metrics on the default
// registry (methodsig_parse_total, methodsig_parse_arguments,
// methodsig_parse_seconds).
package sigparse
