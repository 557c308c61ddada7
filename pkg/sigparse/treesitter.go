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
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// The signature is parsed as the only member of a synthetic class, with an
// empty body appended so it forms a complete method declaration.
const (
	tsClassPrefix = "class MethodsigWrapper {\n"
	tsClassSuffix = " {}\n}\n"
)

// parseTreeSitter extracts the same fields as parseSimple from a Tree-sitter
// Java AST of the signature.
//
// Shapes the simple backend cannot represent are rejected: non-access
// modifiers, annotations, comments, type parameters, throws clauses, array
// dimensions, varargs, parameter modifiers, and types containing commas or
// whitespace (Map<K, V>), which simple mode would split into extra tokens.
//
// The backends still differ on punctuation simple mode treats as a plain
// separator. "void f(int x,)" and "void f(int, x)" parse in simple mode and
// are syntax errors here.
func parseTreeSitter(signature string) (MethodSignature, error) {
	sig := strings.TrimSpace(signature)
	if sig == "" {
		return MethodSignature{}, malformed(signature, "empty signature")
	}
	if i := strings.IndexAny(sig, "{};\r\n"); i >= 0 {
		return MethodSignature{}, malformed(signature, "unexpected %q in signature", sig[i])
	}

	content := []byte(tsClassPrefix + sig + tsClassSuffix)

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return MethodSignature{}, fmt.Errorf("tree-sitter parse: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return MethodSignature{}, malformed(signature, "syntax error")
	}

	if hasTSComment(root) {
		return MethodSignature{}, malformed(signature, "comments are not supported")
	}

	method, err := findTSMethod(signature, root)
	if err != nil {
		return MethodSignature{}, err
	}
	return extractTSMethod(signature, method, content)
}

// findTSMethod returns the single method_declaration in the wrapper class body.
func findTSMethod(signature string, root *sitter.Node) (*sitter.Node, error) {
	if root.NamedChildCount() != 1 || root.NamedChild(0).Type() != "class_declaration" {
		return nil, malformed(signature, "expected a single method declaration")
	}

	body := root.NamedChild(0).ChildByFieldName("body")
	if body == nil || body.NamedChildCount() != 1 {
		return nil, malformed(signature, "expected a single method declaration")
	}

	method := body.NamedChild(0)
	if method.Type() != "method_declaration" {
		return nil, malformed(signature, "expected a method declaration, got %s", method.Type())
	}
	return method, nil
}

func extractTSMethod(signature string, node *sitter.Node, content []byte) (MethodSignature, error) {
	var m MethodSignature

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "modifiers":
			modifier, err := extractTSAccessModifier(signature, child, content)
			if err != nil {
				return MethodSignature{}, err
			}
			m.AccessModifier = modifier
		case "type_parameters":
			return MethodSignature{}, malformed(signature, "type parameters are not supported")
		case "throws":
			return MethodSignature{}, malformed(signature, "argument list must end the signature with ')'")
		}
	}

	if node.ChildByFieldName("dimensions") != nil {
		return MethodSignature{}, malformed(signature, "array return dimensions are not supported")
	}

	typeNode := node.ChildByFieldName("type")
	nameNode := node.ChildByFieldName("name")
	if typeNode == nil || nameNode == nil {
		return MethodSignature{}, malformed(signature, "expected return type and method name before '('")
	}
	m.ReturnType = typeNode.Content(content)
	if strings.ContainsAny(m.ReturnType, " \t") {
		return MethodSignature{}, malformed(signature, "return type %q contains whitespace", m.ReturnType)
	}
	m.MethodName = nameNode.Content(content)

	args, err := extractTSArguments(signature, node.ChildByFieldName("parameters"), content)
	if err != nil {
		return MethodSignature{}, err
	}
	m.Arguments = args

	return m, nil
}

// hasTSComment reports whether any node under n is a line or block comment.
func hasTSComment(n *sitter.Node) bool {
	if strings.HasSuffix(n.Type(), "comment") {
		return true
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if hasTSComment(n.Child(i)) {
			return true
		}
	}
	return false
}

// extractTSAccessModifier accepts at most one of private/protected/public
// and nothing else inside a modifiers node.
func extractTSAccessModifier(signature string, node *sitter.Node, content []byte) (AccessModifier, error) {
	var modifier AccessModifier

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		candidate := AccessModifier(child.Type())
		if !candidate.IsValid() {
			return "", malformed(signature, "unsupported modifier %q", child.Content(content))
		}
		if modifier != "" {
			return "", malformed(signature, "more than one access modifier")
		}
		modifier = candidate
	}
	return modifier, nil
}

// extractTSArguments converts formal_parameters into Arguments.
func extractTSArguments(signature string, node *sitter.Node, content []byte) ([]Argument, error) {
	if node == nil {
		return nil, malformed(signature, "missing '(' before argument list")
	}

	args := make([]Argument, 0, node.NamedChildCount())
	for i := 0; i < int(node.NamedChildCount()); i++ {
		param := node.NamedChild(i)
		switch param.Type() {
		case "formal_parameter":
		case "spread_parameter":
			return nil, malformed(signature, "varargs are not supported")
		default:
			return nil, malformed(signature, "unsupported parameter %q", param.Content(content))
		}

		if param.ChildByFieldName("dimensions") != nil {
			return nil, malformed(signature, "array parameters are not supported")
		}
		for j := 0; j < int(param.NamedChildCount()); j++ {
			if param.NamedChild(j).Type() == "modifiers" {
				return nil, malformed(signature, "parameter modifiers are not supported")
			}
		}

		typeNode := param.ChildByFieldName("type")
		nameNode := param.ChildByFieldName("name")
		if typeNode == nil || nameNode == nil {
			return nil, malformed(signature, "every argument needs a type and a name")
		}
		argType := typeNode.Content(content)
		if strings.ContainsAny(argType, ", \t") {
			return nil, malformed(signature, "argument type %q contains a separator", argType)
		}
		args = append(args, Argument{
			Type: argType,
			Name: nameNode.Content(content),
		})
	}
	return args, nil
}
