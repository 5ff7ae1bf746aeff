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

package changed

import (
	"fmt"

	gerrors "github.com/kid0510z/shardingsphere/errors"
	"github.com/kid0510z/shardingsphere/internal/strconvx"
	"github.com/kid0510z/shardingsphere/nodepath/rule"
	"github.com/kid0510z/shardingsphere/repository"
)

// Classify reconstructs a typed rule item change from one raw store
// notification, for the rule type described by ruleNodePath.
//
// Classification is a pure function of its inputs: the same event against the
// same descriptor always yields the same item (or none), so redelivered or
// reordered notifications classify identically. The boolean is false when the
// path does not address any item of the rule type, which is the normal case
// for rule roots and unrelated siblings, never an error. An error is only
// returned when a matched alter event carries a corrupt active version value.
func Classify(ruleNodePath *rule.NodePath, databaseName string, event repository.DataChangedEvent) (RuleItemChange, bool, error) {
	switch event.Type {
	case repository.EventAdded:
		return buildAltered(ruleNodePath, databaseName, event, true)
	case repository.EventUpdated:
		return buildAltered(ruleNodePath, databaseName, event, false)
	case repository.EventDeleted:
		change, ok := buildDropped(ruleNodePath, databaseName, event)
		return change, ok, nil
	default:
		return nil, false, nil
	}
}

// buildAltered matches added and updated notifications against the active
// version pointers of the rule's items. The pointer value is the new active
// version number.
func buildAltered(ruleNodePath *rule.NodePath, databaseName string, event repository.DataChangedEvent, created bool) (RuleItemChange, bool, error) {
	ruleType := ruleNodePath.Root().RuleType()
	for itemKey, item := range ruleNodePath.NamedItems() {
		itemName, ok := item.FindNameByActiveVersionPath(event.Key)
		if !ok {
			continue
		}
		activeVersion, err := parseActiveVersion(event)
		if err != nil {
			return nil, false, err
		}
		return &AlterNamedRuleItem{
			databaseName:  databaseName,
			itemName:      itemName,
			itemType:      itemType(ruleType, itemKey),
			activeVersion: activeVersion,
			created:       created,
		}, true, nil
	}

	for itemKey, item := range ruleNodePath.UniqueItems() {
		if !item.IsActiveVersionPath(event.Key) {
			continue
		}
		activeVersion, err := parseActiveVersion(event)
		if err != nil {
			return nil, false, err
		}
		return &AlterUniqueRuleItem{
			databaseName:  databaseName,
			itemType:      itemType(ruleType, itemKey),
			activeVersion: activeVersion,
			created:       created,
		}, true, nil
	}
	return nil, false, nil
}

// buildDropped matches deleted notifications against the item paths of named
// items and the active version pointers of unique items.
func buildDropped(ruleNodePath *rule.NodePath, databaseName string, event repository.DataChangedEvent) (RuleItemChange, bool) {
	ruleType := ruleNodePath.Root().RuleType()
	for itemKey, item := range ruleNodePath.NamedItems() {
		if itemName, ok := item.FindNameByItemPath(event.Key); ok {
			return &DropNamedRuleItem{
				databaseName: databaseName,
				itemName:     itemName,
				itemType:     itemType(ruleType, itemKey),
			}, true
		}
	}

	for itemKey, item := range ruleNodePath.UniqueItems() {
		if item.IsActiveVersionPath(event.Key) {
			return &DropUniqueRuleItem{
				databaseName: databaseName,
				itemType:     itemType(ruleType, itemKey),
			}, true
		}
	}
	return nil, false
}

func parseActiveVersion(event repository.DataChangedEvent) (int, error) {
	activeVersion, err := strconvx.ParseVersion(event.Value)
	if err != nil {
		return 0, fmt.Errorf("%w: active version %q at %s", gerrors.ErrCorruptVersionNode, event.Value, event.Key)
	}
	return activeVersion, nil
}

func itemType(ruleType, itemKey string) string {
	return ruleType + "." + itemKey
}
