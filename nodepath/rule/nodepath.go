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
	"fmt"

	gerrors "github.com/kid0510z/shardingsphere/errors"
)

// NodePath is the immutable path descriptor of one rule type. It exposes the
// full set of addressable sub-paths so callers need no per-rule-type
// branching.
type NodePath struct {
	root        Root
	namedItems  map[string]*NamedItem
	uniqueItems map[string]*UniqueItem
}

// NewNodePath builds the descriptor of ruleType from its named and unique
// item keys. Declaring the same key in both sets is a schema-authoring
// violation and fails fast.
func NewNodePath(ruleType string, namedItemKeys, uniqueItemKeys []string) (*NodePath, error) {
	namedItems := make(map[string]*NamedItem, len(namedItemKeys))
	for _, key := range namedItemKeys {
		namedItems[key] = newNamedItem(ruleType, key)
	}

	uniqueItems := make(map[string]*UniqueItem, len(uniqueItemKeys))
	for _, key := range uniqueItemKeys {
		if _, ok := namedItems[key]; ok {
			return nil, fmt.Errorf("%w: %s.%s", gerrors.ErrItemKeyConflict, ruleType, key)
		}
		uniqueItems[key] = newUniqueItem(ruleType, key)
	}

	return &NodePath{
		root:        Root{ruleType: ruleType},
		namedItems:  namedItems,
		uniqueItems: uniqueItems,
	}, nil
}

// Root returns the root entry of the descriptor.
func (n *NodePath) Root() Root {
	return n.root
}

// NamedItems returns the named item specs keyed by item key. The returned map
// is shared and must not be mutated.
func (n *NodePath) NamedItems() map[string]*NamedItem {
	return n.namedItems
}

// UniqueItems returns the unique item specs keyed by item key. The returned
// map is shared and must not be mutated.
func (n *NodePath) UniqueItems() map[string]*UniqueItem {
	return n.uniqueItems
}

// NamedItem returns the named item spec of the given item key.
func (n *NodePath) NamedItem(itemKey string) (*NamedItem, bool) {
	item, ok := n.namedItems[itemKey]
	return item, ok
}

// UniqueItem returns the unique item spec of the given item key.
func (n *NodePath) UniqueItem(itemKey string) (*UniqueItem, bool) {
	item, ok := n.uniqueItems[itemKey]
	return item, ok
}
