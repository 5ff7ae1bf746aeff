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
	"context"
	"fmt"

	gerrors "github.com/kid0510z/shardingsphere/errors"
	"github.com/kid0510z/shardingsphere/internal/strconvx"
	"github.com/kid0510z/shardingsphere/repository"
)

// Generator computes the next version number of one leaf entity.
//
// NextVersion is a plain read over the store's child listing; it does not
// arbitrate concurrent writers. Two writers may observe the same children and
// compute the same next version, and it is the store adapter's compare-and-set
// on the active version pointer that resolves that race.
type Generator struct {
	nodePath NodePath
}

// NewGenerator creates a generator over the given version node path.
func NewGenerator(nodePath NodePath) *Generator {
	return &Generator{nodePath: nodePath}
}

// NodePath returns the version node path the generator operates on.
func (g *Generator) NodePath() NodePath {
	return g.nodePath
}

// NextVersion returns the next version number to assign: one past the highest
// existing child of the versions node, or 0 when none exist. A child name that
// is not a non-negative integer is store corruption and surfaces as a fatal
// error rather than being skipped.
func (g *Generator) NextVersion(ctx context.Context, repo repository.Repository) (int, error) {
	children, err := repo.ChildrenKeys(ctx, g.nodePath.VersionsPath())
	if err != nil {
		return 0, fmt.Errorf("failed to list version nodes of %s: %w", g.nodePath.Leaf(), err)
	}

	maxVersion := -1
	for _, child := range children {
		parsed, err := strconvx.ParseVersion(child)
		if err != nil {
			return 0, fmt.Errorf("%w: %s under %s", gerrors.ErrCorruptVersionNode, child, g.nodePath.VersionsPath())
		}
		if parsed > maxVersion {
			maxVersion = parsed
		}
	}
	return maxVersion + 1, nil
}
