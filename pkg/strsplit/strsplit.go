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

// Package strsplit splits strings on sets of delimiter characters.
//
// Every delimiter string contributes each of its characters to the split
// set, so {",", " "} and {", "} behave identically. Fragments that are empty
// or whitespace-only are dropped; surviving fragments keep their content
// untouched and their left-to-right order.
//
//	strsplit.SplitByDelimiters("a,b c", []string{",", " "})
//	// ["a", "b", "c"]
package strsplit

import "strings"

// SplitByDelimiters splits source at every occurrence of any character found
// in delimiters and returns the non-blank fragments in source order.
//
// It never fails. An empty source yields an empty slice and an empty
// delimiter set yields source itself (when it is not blank).
func SplitByDelimiters(source string, delimiters []string) []string {
	set := strings.Join(delimiters, "")

	fields := strings.FieldsFunc(source, func(r rune) bool {
		return strings.ContainsRune(set, r)
	})

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			continue
		}
		parts = append(parts, f)
	}
	return parts
}

// SplitBy is the variadic form of SplitByDelimiters.
func SplitBy(source string, delimiters ...string) []string {
	return SplitByDelimiters(source, delimiters)
}
