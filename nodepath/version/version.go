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

// Package version defines the version sub-namespace of a leaf entity path:
// the sequentially numbered children under "versions" that hold historical
// values, and the "active_version" pointer naming the currently effective one.
// Historical version nodes are retained and never renumbered.
package version

import (
	"strconv"

	"github.com/kid0510z/shardingsphere/nodepath"
)

const (
	// VersionsNode is the literal segment of the versions sub-namespace.
	VersionsNode = "versions"

	// ActiveVersionNode is the literal segment of the active version pointer.
	ActiveVersionNode = "active_version"
)

// NodePath is the version sub-namespace of one leaf entity path.
type NodePath struct {
	leaf string
}

// NewNodePath creates a version node path for the given leaf entity path.
// The leaf may be a concrete path or a template containing identifier slots.
func NewNodePath(leaf string) NodePath {
	return NodePath{leaf: leaf}
}

// Leaf returns the leaf entity path this version namespace belongs to.
func (n NodePath) Leaf() string {
	return n.leaf
}

// VersionsPath returns the path of the versions sub-namespace.
func (n NodePath) VersionsPath() string {
	return nodepath.Join(n.leaf, VersionsNode)
}

// VersionPath returns the path of one numbered version node.
func (n NodePath) VersionPath(v int) string {
	return nodepath.Join(n.VersionsPath(), strconv.Itoa(v))
}

// ActiveVersionPath returns the path of the active version pointer.
func (n NodePath) ActiveVersionPath() string {
	return nodepath.Join(n.leaf, ActiveVersionNode)
}
