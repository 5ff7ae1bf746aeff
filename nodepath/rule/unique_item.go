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

package rule

import (
	"github.com/kid0510z/shardingsphere/nodepath"
	"github.com/kid0510z/shardingsphere/nodepath/metadata"
	"github.com/kid0510z/shardingsphere/nodepath/version"
)

// UniqueItem is the path spec of one singleton setting under a rule type.
// The item path {rules root}/{ruleType}/{itemKey} is itself version-bearing.
type UniqueItem struct {
	ruleType      string
	itemKey       string
	versionParser *version.Parser
}

func newUniqueItem(ruleType, itemKey string) *UniqueItem {
	template := metadata.RulePath(nodepath.Identifier, ruleType, itemKey)
	return &UniqueItem{
		ruleType:      ruleType,
		itemKey:       itemKey,
		versionParser: version.NewParser(template),
	}
}

// Key returns the item key of the setting.
func (u *UniqueItem) Key() string {
	return u.itemKey
}

// Path builds the canonical path of the setting.
func (u *UniqueItem) Path(databaseName string) string {
	return metadata.RulePath(databaseName, u.ruleType, u.itemKey)
}

// VersionNodePath returns the version node path of the setting.
func (u *UniqueItem) VersionNodePath(databaseName string) version.NodePath {
	return version.NewNodePath(u.Path(databaseName))
}

// VersionParser returns the pattern-level version parser of the setting.
func (u *UniqueItem) VersionParser() *version.Parser {
	return u.versionParser
}

// IsActiveVersionPath reports whether the candidate path is exactly this
// setting's active version pointer.
func (u *UniqueItem) IsActiveVersionPath(path string) bool {
	return u.versionParser.IsActiveVersionPath(path)
}
