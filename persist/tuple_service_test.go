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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/kid0510z/shardingsphere/errors"
	"github.com/kid0510z/shardingsphere/repository/memory"
	"github.com/kid0510z/shardingsphere/tuple"
)

func TestRepositoryTupleServiceLoad(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	t.Cleanup(func() { _ = repo.Close() })

	root := "/metadata/sharding_db/rules"
	seed := map[string]string{
		root + "/encrypt/tables/t_user/versions/0":         "t_user-v0",
		root + "/encrypt/tables/t_user/versions/1":         "t_user-v1",
		root + "/encrypt/tables/t_user/active_version":     "1",
		root + "/encrypt/encryptors/aes/versions/0":        "aes-v0",
		root + "/encrypt/encryptors/aes/active_version":    "0",
		root + "/sharding/default_strategy/versions/0":     "strategy-v0",
		root + "/sharding/default_strategy/versions/1":     "strategy-v1",
		root + "/sharding/default_strategy/versions/2":     "strategy-v2",
		root + "/sharding/default_strategy/active_version": "1",
	}
	for key, value := range seed {
		require.NoError(t, repo.Persist(ctx, key, value))
	}
	// A leaf whose pointer never got written is skipped, not an error.
	require.NoError(t, repo.Persist(ctx, root+"/encrypt/tables/t_order/versions/0", "orphan"))

	tuples, err := NewRepositoryTupleService(repo).Load(ctx, root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []tuple.RepositoryTuple{
		{Key: "encrypt/tables/t_user", Value: "t_user-v1"},
		{Key: "encrypt/encryptors/aes", Value: "aes-v0"},
		{Key: "sharding/default_strategy", Value: "strategy-v1"},
	}, tuples)
}

func TestRepositoryTupleServiceLoadEmpty(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	t.Cleanup(func() { _ = repo.Close() })

	tuples, err := NewRepositoryTupleService(repo).Load(ctx, "/metadata/missing_db/rules")
	require.NoError(t, err)
	assert.Empty(t, tuples)
}

func TestRepositoryTupleServiceLoadCorruptPointer(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	t.Cleanup(func() { _ = repo.Close() })

	root := "/metadata/sharding_db/rules"
	require.NoError(t, repo.Persist(ctx, root+"/encrypt/tables/t_user/versions/0", "v0"))
	require.NoError(t, repo.Persist(ctx, root+"/encrypt/tables/t_user/active_version", "not-a-number"))

	_, err := NewRepositoryTupleService(repo).Load(ctx, root)
	require.ErrorIs(t, err, gerrors.ErrCorruptVersionNode)
}
