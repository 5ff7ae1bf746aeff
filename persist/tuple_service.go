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
	"strings"

	gerrors "github.com/kid0510z/shardingsphere/errors"
	"github.com/kid0510z/shardingsphere/internal/strconvx"
	"github.com/kid0510z/shardingsphere/nodepath"
	"github.com/kid0510z/shardingsphere/nodepath/version"
	"github.com/kid0510z/shardingsphere/repository"
	"github.com/kid0510z/shardingsphere/tuple"
)

// RepositoryTupleService reads the active tuple values of a subtree back out
// of the store.
type RepositoryTupleService struct {
	repo repository.Repository
}

// NewRepositoryTupleService creates a tuple load service over the given
// repository.
func NewRepositoryTupleService(repo repository.Repository) *RepositoryTupleService {
	return &RepositoryTupleService{repo: repo}
}

// Load walks the subtree under rootPath and returns one tuple per
// version-bearing leaf, valued at the leaf's active version. Tuple keys are
// the leaf paths relative to rootPath.
func (s *RepositoryTupleService) Load(ctx context.Context, rootPath string) ([]tuple.RepositoryTuple, error) {
	var tuples []tuple.RepositoryTuple
	if err := s.load(ctx, rootPath, rootPath, &tuples); err != nil {
		return nil, err
	}
	return tuples, nil
}

func (s *RepositoryTupleService) load(ctx context.Context, rootPath, currentPath string, out *[]tuple.RepositoryTuple) error {
	children, err := s.repo.ChildrenKeys(ctx, currentPath)
	if err != nil {
		return err
	}

	if containsVersions(children) {
		loaded, ok, err := s.loadActiveValue(ctx, currentPath)
		if err != nil {
			return err
		}
		if ok {
			*out = append(*out, tuple.RepositoryTuple{Key: relativeKey(rootPath, currentPath), Value: loaded})
		}
		return nil
	}

	for _, child := range children {
		if child == version.VersionsNode || child == version.ActiveVersionNode {
			continue
		}
		if err := s.load(ctx, rootPath, nodepath.Join(currentPath, child), out); err != nil {
			return err
		}
	}
	return nil
}

func (s *RepositoryTupleService) loadActiveValue(ctx context.Context, leafPath string) (string, bool, error) {
	versionNodePath := version.NewNodePath(leafPath)
	activeValue, found, err := s.repo.Query(ctx, versionNodePath.ActiveVersionPath())
	if err != nil || !found {
		return "", false, err
	}

	activeVersion, err := strconvx.ParseVersion(activeValue)
	if err != nil {
		return "", false, fmt.Errorf("%w: active version %q of %s", gerrors.ErrCorruptVersionNode, activeValue, leafPath)
	}

	value, found, err := s.repo.Query(ctx, versionNodePath.VersionPath(activeVersion))
	if err != nil || !found {
		return "", false, err
	}
	return value, true, nil
}

func containsVersions(children []string) bool {
	for _, child := range children {
		if child == version.VersionsNode {
			return true
		}
	}
	return false
}

func relativeKey(rootPath, leafPath string) string {
	return strings.TrimPrefix(strings.TrimPrefix(leafPath, rootPath), nodepath.Separator)
}
