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

package persist

import (
	"context"
	"fmt"
	"strconv"

	gerrors "github.com/kid0510z/shardingsphere/errors"
	"github.com/kid0510z/shardingsphere/nodepath/version"
	"github.com/kid0510z/shardingsphere/repository"
)

// MetaDataVersionService appends versioned values to leaf entities and
// advances their active version pointer.
type MetaDataVersionService struct {
	repo repository.Repository
}

// NewMetaDataVersionService creates a version persist service over the given
// repository.
func NewMetaDataVersionService(repo repository.Repository) *MetaDataVersionService {
	return &MetaDataVersionService{repo: repo}
}

// Persist writes value as the next version of the leaf and moves the active
// version pointer onto it. It returns the version number just written.
//
// The pointer move is a compare-and-set against the pointer value observed
// before the write; a concurrent writer that moved the pointer in between
// surfaces as ErrActiveVersionConflict, leaving the already written version
// node in place for the winner's history.
func (s *MetaDataVersionService) Persist(ctx context.Context, nodePath version.NodePath, value string) (int, error) {
	nextVersion, err := version.NewGenerator(nodePath).NextVersion(ctx, s.repo)
	if err != nil {
		return 0, err
	}

	activePath := nodePath.ActiveVersionPath()
	currentActive, _, err := s.repo.Query(ctx, activePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read active version of %s: %w", nodePath.Leaf(), err)
	}

	if err := s.repo.Persist(ctx, nodePath.VersionPath(nextVersion), value); err != nil {
		return 0, fmt.Errorf("failed to persist version %d of %s: %w", nextVersion, nodePath.Leaf(), err)
	}

	applied, err := s.repo.CompareAndSet(ctx, activePath, currentActive, strconv.Itoa(nextVersion))
	if err != nil {
		return 0, fmt.Errorf("failed to activate version %d of %s: %w", nextVersion, nodePath.Leaf(), err)
	}
	if !applied {
		return 0, fmt.Errorf("%w: %s", gerrors.ErrActiveVersionConflict, activePath)
	}
	return nextVersion, nil
}
