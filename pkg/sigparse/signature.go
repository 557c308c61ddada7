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

import "strings"

// AccessModifier is a method's visibility keyword. The zero value means
// the signature carried no modifier.
type AccessModifier string

const (
	AccessPrivate   AccessModifier = "private"
	AccessProtected AccessModifier = "protected"
	AccessPublic    AccessModifier = "public"
)

// IsValid reports whether m is one of the recognized modifiers.
func (m AccessModifier) IsValid() bool {
	switch m {
	case AccessPrivate, AccessProtected, AccessPublic:
		return true
	}
	return false
}

// Argument is a single typed parameter.
type Argument struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// MethodSignature is the structured form of a parsed signature.
//
// ReturnType and MethodName are always non-empty after a successful parse.
// Arguments keeps declaration order and is empty, not nil, for "()".
type MethodSignature struct {
	AccessModifier AccessModifier `json:"access_modifier,omitempty"`
	ReturnType     string         `json:"return_type"`
	MethodName     string         `json:"method_name"`
	Arguments      []Argument     `json:"arguments"`
}

// HasAccessModifier reports whether the signature declared a modifier.
func (m MethodSignature) HasAccessModifier() bool {
	return m.AccessModifier != ""
}

// String renders the canonical single-line form, which parses back to an
// equal MethodSignature.
func (m MethodSignature) String() string {
	var b strings.Builder
	if m.HasAccessModifier() {
		b.WriteString(string(m.AccessModifier))
		b.WriteByte(' ')
	}
	b.WriteString(m.ReturnType)
	b.WriteByte(' ')
	b.WriteString(m.MethodName)
	b.WriteByte('(')
	for i, a := range m.Arguments {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.Type)
		b.WriteByte(' ')
		b.WriteString(a.Name)
	}
	b.WriteByte(')')
	return b.String()
}
