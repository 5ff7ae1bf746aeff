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

// Package rule describes, per rule type, the addressable sub-paths of its
// flattened configuration: named items (keyed collections addressed by item
// key plus instance name) and unique items (singleton settings addressed by
// item key alone). Descriptors are built once at process start and are
// immutable afterwards, so both the persist path and the change classifier
// can operate generically without per-rule-type branching.
package rule

// Configuration is a rule configuration variant. RuleType returns the
// declared entity tag, e.g. "encrypt" or "sharding", which names the rule's
// subtree in the keyspace and keys the descriptor registry.
type Configuration interface {
	RuleType() string
}

// Root is the root entry of a rule node path.
type Root struct {
	ruleType string
}

// RuleType returns the rule type the descriptor addresses.
func (r Root) RuleType() string {
	return r.ruleType
}
