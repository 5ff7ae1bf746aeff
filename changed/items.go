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

// Package changed reconstructs strongly typed rule item change events from
// raw store notifications: given a changed path and the owning rule type's
// node path descriptor, it determines which named or unique item the
// notification addresses and whether the item was added, altered or dropped.
package changed

// Kind is the kind of a rule item change.
type Kind int

const (
	// KindAdded marks an item that did not exist before.
	KindAdded Kind = iota
	// KindAltered marks an item whose active version moved.
	KindAltered
	// KindDropped marks a removed item.
	KindDropped
)

// String returns the text representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindAdded:
		return "added"
	case KindAltered:
		return "altered"
	case KindDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// RuleItemChange is one reconstructed rule item change event, applied by each
// proxy node to its in-memory configuration cache.
type RuleItemChange interface {
	// Database returns the owning database name.
	Database() string
	// ItemType returns the changed item's type tag, "{ruleType}.{itemKey}".
	ItemType() string
	// Kind returns the kind of change.
	Kind() Kind
}

// AlterNamedRuleItem signals that one member of a keyed collection gained a
// new active version. Kind distinguishes a freshly added member from an
// altered one, following the store's event kind.
type AlterNamedRuleItem struct {
	databaseName  string
	itemName      string
	itemType      string
	activeVersion int
	created       bool
}

var _ RuleItemChange = (*AlterNamedRuleItem)(nil)

// Database implements RuleItemChange.
func (a *AlterNamedRuleItem) Database() string { return a.databaseName }

// ItemType implements RuleItemChange.
func (a *AlterNamedRuleItem) ItemType() string { return a.itemType }

// Kind implements RuleItemChange.
func (a *AlterNamedRuleItem) Kind() Kind {
	if a.created {
		return KindAdded
	}
	return KindAltered
}

// ItemName returns the collection member's name.
func (a *AlterNamedRuleItem) ItemName() string { return a.itemName }

// ActiveVersion returns the version the item's readers should switch to.
func (a *AlterNamedRuleItem) ActiveVersion() int { return a.activeVersion }

// AlterUniqueRuleItem signals that a singleton setting gained a new active
// version.
type AlterUniqueRuleItem struct {
	databaseName  string
	itemType      string
	activeVersion int
	created       bool
}

var _ RuleItemChange = (*AlterUniqueRuleItem)(nil)

// Database implements RuleItemChange.
func (a *AlterUniqueRuleItem) Database() string { return a.databaseName }

// ItemType implements RuleItemChange.
func (a *AlterUniqueRuleItem) ItemType() string { return a.itemType }

// Kind implements RuleItemChange.
func (a *AlterUniqueRuleItem) Kind() Kind {
	if a.created {
		return KindAdded
	}
	return KindAltered
}

// ActiveVersion returns the version the item's readers should switch to.
func (a *AlterUniqueRuleItem) ActiveVersion() int { return a.activeVersion }

// DropNamedRuleItem signals that one member of a keyed collection was
// removed. It carries no value; the item is gone.
type DropNamedRuleItem struct {
	databaseName string
	itemName     string
	itemType     string
}

var _ RuleItemChange = (*DropNamedRuleItem)(nil)

// Database implements RuleItemChange.
func (d *DropNamedRuleItem) Database() string { return d.databaseName }

// ItemType implements RuleItemChange.
func (d *DropNamedRuleItem) ItemType() string { return d.itemType }

// Kind implements RuleItemChange.
func (d *DropNamedRuleItem) Kind() Kind { return KindDropped }

// ItemName returns the collection member's name.
func (d *DropNamedRuleItem) ItemName() string { return d.itemName }

// DropUniqueRuleItem signals that a singleton setting was removed.
type DropUniqueRuleItem struct {
	databaseName string
	itemType     string
}

var _ RuleItemChange = (*DropUniqueRuleItem)(nil)

// Database implements RuleItemChange.
func (d *DropUniqueRuleItem) Database() string { return d.databaseName }

// ItemType implements RuleItemChange.
func (d *DropUniqueRuleItem) ItemType() string { return d.itemType }

// Kind implements RuleItemChange.
func (d *DropUniqueRuleItem) Kind() Kind { return KindDropped }
