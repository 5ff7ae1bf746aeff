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
	"github.com/kid0510z/shardingsphere/internal/syncmap"
)

// Registry maps each rule configuration variant, through its declared entity
// tag, to its node path descriptor. It is populated once at process start and
// is read-only thereafter; every registration failure is a startup defect.
type Registry struct {
	paths *syncmap.SyncMap[string, *NodePath]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{paths: syncmap.New[string, *NodePath]()}
}

// Register adds a descriptor, keyed by its rule type. Registering the same
// rule type twice is fatal.
func (r *Registry) Register(nodePath *NodePath) error {
	ruleType := nodePath.Root().RuleType()
	if !r.paths.SetIfAbsent(ruleType, nodePath) {
		return fmt.Errorf("%w: %s", gerrors.ErrRuleTypeAlreadyRegistered, ruleType)
	}
	return nil
}

// Lookup returns the descriptor of the given configuration's declared rule
// type.
func (r *Registry) Lookup(config Configuration) (*NodePath, error) {
	return r.LookupByRuleType(config.RuleType())
}

// LookupByRuleType returns the descriptor registered under ruleType.
func (r *Registry) LookupByRuleType(ruleType string) (*NodePath, error) {
	nodePath, ok := r.paths.Get(ruleType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", gerrors.ErrRuleTypeNotRegistered, ruleType)
	}
	return nodePath, nil
}

// Len returns the number of registered rule types.
func (r *Registry) Len() int {
	return r.paths.Len()
}
