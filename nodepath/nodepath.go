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

// Package nodepath implements the canonical path grammar of the coordination
// store keyspace: deterministic path building from literal segments and
// identifiers, and the reverse direction through compiled, suffix-anchored,
// case-insensitive patterns.
//
// Building and matching are exact inverses for paths produced by the same
// template: for any well-formed identifiers I, a pattern compiled from the
// template extracts I back out of the built path. A pattern that does not
// match reports false, never an error.
package nodepath

import (
	"regexp"
	"strings"
)

// Separator is the path separator of the coordination store keyspace.
// Identifiers must not contain it.
const Separator = "/"

const (
	// Identifier is the template slot matching one opaque name segment
	// (database name, storage unit name, rule type, item key, item name).
	Identifier = `([\w\-]+)`

	// QualifiedIdentifier additionally allows dots, for segments such as
	// host-qualified instance names.
	QualifiedIdentifier = `([\w\-\.@]+)`
)

// Join joins path segments with the separator. The first segment carries the
// leading separator when an absolute path is wanted, mirroring the fixed root
// constants of the keyspace.
func Join(segments ...string) string {
	return strings.Join(segments, Separator)
}

// Pattern is a compiled matcher over a path template. Matching is
// case-insensitive and, unless built with NewFloatingPattern, anchored at the
// end of the candidate path so that a deeper path still matches a shallower
// template without prior truncation.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern compiles the given template into a suffix-anchored pattern.
// The template is trusted input assembled from fixed literals and the
// Identifier slots; compilation failure is a programming error and panics.
func NewPattern(template string) *Pattern {
	return &Pattern{re: regexp.MustCompile("(?i)" + template + "$")}
}

// NewFloatingPattern compiles the given template without anchoring; the
// resulting pattern reports whether a candidate path contains the template
// anywhere.
func NewFloatingPattern(template string) *Pattern {
	return &Pattern{re: regexp.MustCompile("(?i)" + template)}
}

// Matches reports whether the candidate path matches the pattern.
func (p *Pattern) Matches(path string) bool {
	return p.re.MatchString(path)
}

// FindIdentifier extracts the identifier captured by the group-th slot of the
// template from the candidate path. Groups are numbered from 1 in template
// order. It returns false when the path does not match.
func (p *Pattern) FindIdentifier(path string, group int) (string, bool) {
	matches := p.re.FindStringSubmatch(path)
	if matches == nil || group >= len(matches) {
		return "", false
	}
	return matches[group], true
}

// FindIdentifiers extracts all identifiers captured by the template's slots
// from the candidate path. It returns false when the path does not match.
func (p *Pattern) FindIdentifiers(path string) ([]string, bool) {
	matches := p.re.FindStringSubmatch(path)
	if matches == nil {
		return nil, false
	}
	return matches[1:], true
}
