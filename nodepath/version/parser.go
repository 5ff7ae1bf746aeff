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

package version

import (
	"github.com/kid0510z/shardingsphere/nodepath"
)

// Parser tests arbitrary store paths against the version sub-namespace of a
// leaf template. The template may substitute identifier slots for the leaf's
// own addressable names, which makes one parser usable against a whole rule
// type's schema rather than one concrete entity.
type Parser struct {
	activeVersionPattern *nodepath.Pattern
	versionsPattern      *nodepath.Pattern
}

// NewParser creates a parser for the version namespace of the given leaf
// template.
func NewParser(leafTemplate string) *Parser {
	n := NewNodePath(leafTemplate)
	return &Parser{
		activeVersionPattern: nodepath.NewPattern(n.ActiveVersionPath()),
		versionsPattern:      nodepath.NewPattern(nodepath.Join(n.VersionsPath(), nodepath.Identifier)),
	}
}

// IsActiveVersionPath reports whether the candidate path is the active version
// pointer of a leaf addressed by this parser's template.
func (p *Parser) IsActiveVersionPath(path string) bool {
	return p.activeVersionPattern.Matches(path)
}

// IsVersionPath reports whether the candidate path is a numbered version node
// of a leaf addressed by this parser's template.
func (p *Parser) IsVersionPath(path string) bool {
	return p.versionsPattern.Matches(path)
}

// FindIdentifierByActiveVersionPath extracts the identifier captured by the
// group-th slot of the leaf template from an active version pointer path.
func (p *Parser) FindIdentifierByActiveVersionPath(path string, group int) (string, bool) {
	return p.activeVersionPattern.FindIdentifier(path, group)
}
