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

// NamedItem addresses the members of a keyed collection under a rule type,
// such as the tables or encryptors of an encrypt rule. A member path is
// {rules root}/{ruleType}/{itemKey}/{itemName}.
//
// In the item path template the database name is slot 1 and the item name is
// slot 2.
const namedItemNameGroup = 2

// NamedItem is the path spec of one named item collection.
type NamedItem struct {
	ruleType            string
	itemKey             string
	itemPattern         *nodepath.Pattern
	activeVersionParser *version.Parser
}

func newNamedItem(ruleType, itemKey string) *NamedItem {
	template := metadata.RulePath(nodepath.Identifier, ruleType, itemKey, nodepath.Identifier)
	return &NamedItem{
		ruleType:            ruleType,
		itemKey:             itemKey,
		itemPattern:         nodepath.NewPattern(template),
		activeVersionParser: version.NewParser(template),
	}
}

// Key returns the item key of the collection.
func (n *NamedItem) Key() string {
	return n.itemKey
}

// Path builds the canonical path of one collection member.
func (n *NamedItem) Path(databaseName, itemName string) string {
	return metadata.RulePath(databaseName, n.ruleType, n.itemKey, itemName)
}

// VersionNodePath returns the version node path of one collection member.
func (n *NamedItem) VersionNodePath(databaseName, itemName string) version.NodePath {
	return version.NewNodePath(n.Path(databaseName, itemName))
}

// FindNameByItemPath extracts the item name from a member path. It returns
// false when the path does not address a member of this collection.
func (n *NamedItem) FindNameByItemPath(path string) (string, bool) {
	return n.itemPattern.FindIdentifier(path, namedItemNameGroup)
}

// FindNameByActiveVersionPath extracts the item name from a member's active
// version pointer path. It returns false when the path is not such a pointer.
func (n *NamedItem) FindNameByActiveVersionPath(path string) (string, bool) {
	return n.activeVersionParser.FindIdentifierByActiveVersionPath(path, namedItemNameGroup)
}
