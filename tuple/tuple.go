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

// Package tuple defines the unit of exchange with the tuple swapper
// collaborator: the flattened key/value leaves of a rule configuration.
package tuple

import "github.com/kid0510z/shardingsphere/nodepath/rule"

// RepositoryTuple is one flattened leaf of a rule configuration. Key is the
// leaf's path relative to the rule's subtree, e.g. "tables/t_user" for a
// named item member or "default_strategy" for a unique item.
type RepositoryTuple struct {
	Key   string
	Value string
}

// Swapper converts between rule configuration object graphs and their
// flattened tuple representation. Implementations are supplied by the rule
// feature packages; tuples are emitted in a dependency-respecting order
// (container before contained item), which the persist and delete paths rely
// on.
type Swapper interface {
	// SwapToTuples flattens a rule configuration. An empty result means the
	// configuration carries nothing to persist.
	SwapToTuples(config rule.Configuration) []RepositoryTuple

	// SwapToRuleConfigurations rebuilds configurations from loaded tuples.
	SwapToRuleConfigurations(tuples []RepositoryTuple) ([]rule.Configuration, error)
}
