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
	"regexp"
	"strings"

	"github.com/kraklabs/methodsig/pkg/strsplit"
)

// accessModifierPattern matches a leading modifier keyword followed by whitespace.
var accessModifierPattern = regexp.MustCompile(`^(private|protected|public)\s+`)

var (
	argumentDelimiters   = []string{",", " ", "\t"}
	definitionDelimiters = []string{" ", "\t"}
)

// ParseFunction parses signature with a default simple-mode Parser.
//
// It fails with ErrMalformedSignature when the signature has no argument
// list closing the line, nested parentheses, an argument without a name,
// or a definition area that is not exactly "returnType methodName".
func ParseFunction(signature string) (MethodSignature, error) {
	return NewParser().Parse(signature)
}

// parseSimple decomposes the signature with plain string slicing:
// modifier, then the parenthesized argument area, then the definition area.
func parseSimple(signature string) (MethodSignature, error) {
	rest := strings.TrimSpace(signature)
	if rest == "" {
		return MethodSignature{}, malformed(signature, "empty signature")
	}

	var modifier AccessModifier
	if m := accessModifierPattern.FindStringSubmatch(rest); m != nil {
		modifier = AccessModifier(m[1])
		rest = rest[len(m[0]):]
	}

	open := strings.IndexByte(rest, '(')
	if open < 0 {
		return MethodSignature{}, malformed(signature, "missing '(' before argument list")
	}
	if !strings.HasSuffix(rest, ")") {
		return MethodSignature{}, malformed(signature, "argument list must end the signature with ')'")
	}

	if strings.IndexByte(rest[:open], ')') >= 0 {
		return MethodSignature{}, malformed(signature, "unbalanced ')' before argument list")
	}

	area := rest[open+1 : len(rest)-1]
	if strings.ContainsAny(area, "()") {
		return MethodSignature{}, malformed(signature, "nested parentheses in argument list")
	}

	args, err := parseArguments(signature, area)
	if err != nil {
		return MethodSignature{}, err
	}

	definition := strsplit.SplitByDelimiters(rest[:open], definitionDelimiters)
	if len(definition) != 2 {
		return MethodSignature{}, malformed(signature,
			"expected return type and method name before '(', got %d tokens", len(definition))
	}

	return MethodSignature{
		AccessModifier: modifier,
		ReturnType:     definition[0],
		MethodName:     definition[1],
		Arguments:      args,
	}, nil
}

// parseArguments pairs the flat type/name token stream of an arguments area.
func parseArguments(signature, area string) ([]Argument, error) {
	tokens := strsplit.SplitByDelimiters(area, argumentDelimiters)
	if len(tokens)%2 != 0 {
		return nil, malformed(signature,
			"argument list has %d tokens, every argument needs a type and a name", len(tokens))
	}

	args := make([]Argument, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		args = append(args, Argument{Type: tokens[i], Name: tokens[i+1]})
	}
	return args, nil
}
