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

package strsplit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitByDelimiters(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		delimiters []string
		want       []string
	}{
		{
			name:       "comma and space",
			source:     "a,b c",
			delimiters: []string{",", " "},
			want:       []string{"a", "b", "c"},
		},
		{
			name:       "argument list",
			source:     "int x, int y, float magnitude",
			delimiters: []string{",", " "},
			want:       []string{"int", "x", "int", "y", "float", "magnitude"},
		},
		{
			name:       "multi-character delimiter is a character set",
			source:     "a, b,c d",
			delimiters: []string{", "},
			want:       []string{"a", "b", "c", "d"},
		},
		{
			name:       "digits as delimiters",
			source:     "we094utpisjrgokhstowu459wu45-28wfioghe586sdfsdf",
			delimiters: []string{"0", "4", "2", "6"},
			want:       []string{"we", "9", "utpisjrgokhstowu", "59wu", "5-", "8wfioghe58", "sdfsdf"},
		},
		{
			name:       "whitespace-only fragments dropped",
			source:     "a,  ,b",
			delimiters: []string{","},
			want:       []string{"a", "b"},
		},
		{
			name:       "surviving fragments are not trimmed",
			source:     " a ,b ",
			delimiters: []string{","},
			want:       []string{" a ", "b "},
		},
		{
			name:       "no delimiter present",
			source:     "getCurrentDateTime",
			delimiters: []string{",", " "},
			want:       []string{"getCurrentDateTime"},
		},
		{
			name:       "empty source",
			source:     "",
			delimiters: []string{","},
			want:       []string{},
		},
		{
			name:       "empty delimiter set",
			source:     "a,b",
			delimiters: nil,
			want:       []string{"a,b"},
		},
		{
			name:       "blank source with empty delimiter set",
			source:     "   ",
			delimiters: nil,
			want:       []string{},
		},
		{
			name:       "only delimiters",
			source:     ",, ,",
			delimiters: []string{",", " "},
			want:       []string{},
		},
		{
			name:       "regex metacharacters are literal",
			source:     "a]b^c-d",
			delimiters: []string{"]", "^", "-"},
			want:       []string{"a", "b", "c", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitByDelimiters(tt.source, tt.delimiters)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitByDelimiters_NoDelimiterCharacters(t *testing.T) {
	delims := []string{",", ";"}
	for _, s := range []string{"x", "hello world", "  padded  ", "tab\tseparated"} {
		got := SplitByDelimiters(s, delims)
		assert.Equal(t, []string{s}, got, "source %q", s)
	}
	for _, s := range []string{"", " ", "\t\n"} {
		got := SplitByDelimiters(s, delims)
		assert.Empty(t, got, "source %q", s)
	}
}

func TestSplitByDelimiters_PreservesOrder(t *testing.T) {
	source := "one;two,,three;four"
	got := SplitByDelimiters(source, []string{";", ","})

	assert.Equal(t, "onetwothreefour", strings.Join(got, ""))
	assert.Equal(t, strings.NewReplacer(";", "", ",", "").Replace(source), strings.Join(got, ""))
}

func TestSplitBy(t *testing.T) {
	assert.Equal(t, []string{"String", "value"}, SplitBy("String value", ",", " "))
	assert.Equal(t, []string{"void", "log"}, SplitBy("void log", " "))
}
