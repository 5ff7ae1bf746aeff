// MIT License
//
// Copyright (c) 2025-2026 kid0510z
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package metadata

import (
	"github.com/kid0510z/shardingsphere/nodepath"
	"github.com/kid0510z/shardingsphere/nodepath/version"
)

const rulesNode = "rules"

// DatabaseRulesRootPath returns the rules root path of a database.
func DatabaseRulesRootPath(databaseName string) string {
	return nodepath.Join(rootNode, databaseName, rulesNode)
}

// RulePath returns the canonical path of a rule type under a database,
// optionally extended with item segments: an item key for a unique item, or
// an item key plus an item name for a named item.
func RulePath(databaseName, ruleType string, items ...string) string {
	segments := append([]string{DatabaseRulesRootPath(databaseName), ruleType}, items...)
	return nodepath.Join(segments...)
}

// RuleVersionNodePath returns the version node path of one leaf under a rule
// type's flattened representation.
func RuleVersionNodePath(databaseName, ruleType string, items ...string) version.NodePath {
	return version.NewNodePath(RulePath(databaseName, ruleType, items...))
}
