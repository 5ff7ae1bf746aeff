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
	"github.com/kid0510z/shardingsphere/log"
	"github.com/kid0510z/shardingsphere/nodepath/rule"
	"github.com/kid0510z/shardingsphere/repository"
	"github.com/kid0510z/shardingsphere/repository/memory"
	"github.com/kid0510z/shardingsphere/tuple"
)

// fakeConfiguration carries its own flattened form so tests control tuple
// emission order directly.
type fakeConfiguration struct {
	ruleType string
	tuples   []tuple.RepositoryTuple
}

func (f fakeConfiguration) RuleType() string { return f.ruleType }

type fakeSwapper struct{}

func (fakeSwapper) SwapToTuples(config rule.Configuration) []tuple.RepositoryTuple {
	return config.(fakeConfiguration).tuples
}

func (fakeSwapper) SwapToRuleConfigurations(tuples []tuple.RepositoryTuple) ([]rule.Configuration, error) {
	return []rule.Configuration{fakeConfiguration{ruleType: "loaded", tuples: tuples}}, nil
}

func newEncryptRegistry(t *testing.T) *rule.Registry {
	t.Helper()
	registry := rule.NewRegistry()
	nodePath, err := rule.NewNodePath("encrypt", []string{"tables", "encryptors"}, nil)
	require.NoError(t, err)
	require.NoError(t, registry.Register(nodePath))
	return registry
}

func TestDatabaseRuleServicePersist(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	t.Cleanup(func() { _ = repo.Close() })

	service := NewDatabaseRuleService(repo, fakeSwapper{}, newEncryptRegistry(t), WithLogger(log.DiscardLogger))
	config := fakeConfiguration{
		ruleType: "encrypt",
		tuples: []tuple.RepositoryTuple{
			{Key: "tables/t_user", Value: "t_user-cfg"},
			{Key: "encryptors/aes", Value: "aes-cfg"},
		},
	}

	stamps, err := service.Persist(ctx, "sharding_db", []rule.Configuration{config})
	require.NoError(t, err)
	require.Len(t, stamps, 2)

	assert.Equal(t, "/metadata/sharding_db/rules/encrypt/tables/t_user", stamps[0].Path())
	current, ok := stamps[0].Version()
	require.True(t, ok)
	assert.Equal(t, InitVersion, current)

	assert.Equal(t, "/metadata/sharding_db/rules/encrypt/encryptors/aes", stamps[1].Path())

	value, ok, err := repo.Query(ctx, "/metadata/sharding_db/rules/encrypt/tables/t_user/versions/0")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "t_user-cfg", value)

	active, ok, err := repo.Query(ctx, "/metadata/sharding_db/rules/encrypt/tables/t_user/active_version")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "0", active)

	t.Run("repersisting appends a new version", func(t *testing.T) {
		stamps, err := service.Persist(ctx, "sharding_db", []rule.Configuration{config})
		require.NoError(t, err)
		require.Len(t, stamps, 2)

		// The stamp trails the freshly written version by one and never
		// goes below the initial version.
		current, ok := stamps[0].Version()
		require.True(t, ok)
		assert.Equal(t, 0, current)

		active, ok, err := repo.Query(ctx, "/metadata/sharding_db/rules/encrypt/tables/t_user/active_version")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "1", active)
	})
}

func TestDatabaseRuleServicePersistSkipsEmptyConfigurations(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	t.Cleanup(func() { _ = repo.Close() })

	service := NewDatabaseRuleService(repo, fakeSwapper{}, newEncryptRegistry(t))

	// An empty flattening never reaches the registry, so even an unknown rule
	// type passes through untouched.
	stamps, err := service.Persist(ctx, "sharding_db", []rule.Configuration{fakeConfiguration{ruleType: "shadow"}})
	require.NoError(t, err)
	assert.Empty(t, stamps)
}

func TestDatabaseRuleServicePersistUnregisteredRuleType(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	t.Cleanup(func() { _ = repo.Close() })

	service := NewDatabaseRuleService(repo, fakeSwapper{}, newEncryptRegistry(t))
	config := fakeConfiguration{
		ruleType: "shadow",
		tuples:   []tuple.RepositoryTuple{{Key: "tables/t_user", Value: "cfg"}},
	}

	_, err := service.Persist(ctx, "sharding_db", []rule.Configuration{config})
	require.ErrorIs(t, err, gerrors.ErrRuleTypeNotRegistered)
}

func TestDatabaseRuleServicePersistInvalidDatabaseName(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	t.Cleanup(func() { _ = repo.Close() })

	service := NewDatabaseRuleService(repo, fakeSwapper{}, newEncryptRegistry(t))

	_, err := service.Persist(ctx, "", nil)
	require.Error(t, err)

	_, err = service.Persist(ctx, "bad/name", nil)
	require.Error(t, err)
}

func TestDatabaseRuleServiceDelete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	t.Cleanup(func() { _ = repo.Close() })

	service := NewDatabaseRuleService(repo, fakeSwapper{}, newEncryptRegistry(t))
	config := fakeConfiguration{
		ruleType: "encrypt",
		tuples:   []tuple.RepositoryTuple{{Key: "tables/t_user", Value: "cfg"}},
	}
	_, err := service.Persist(ctx, "sharding_db", []rule.Configuration{config})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, "sharding_db", "encrypt"))

	_, ok, err := repo.Query(ctx, "/metadata/sharding_db/rules/encrypt/tables/t_user/active_version")
	require.NoError(t, err)
	assert.False(t, ok)
}

// recordingRepository remembers the order of subtree deletions.
type recordingRepository struct {
	repository.Repository
	deleted []string
}

func (r *recordingRepository) Delete(ctx context.Context, key string) error {
	r.deleted = append(r.deleted, key)
	return r.Repository.Delete(ctx, key)
}

func TestDatabaseRuleServiceDeleteConfigurations(t *testing.T) {
	ctx := context.Background()
	recording := &recordingRepository{Repository: memory.NewRepository()}
	t.Cleanup(func() { _ = recording.Close() })

	service := NewDatabaseRuleService(recording, fakeSwapper{}, newEncryptRegistry(t))
	config := fakeConfiguration{
		ruleType: "encrypt",
		tuples: []tuple.RepositoryTuple{
			{Key: "encryptors/aes", Value: "aes-cfg"},
			{Key: "tables/t_user", Value: "t_user-cfg"},
		},
	}
	_, err := service.Persist(ctx, "sharding_db", []rule.Configuration{config})
	require.NoError(t, err)
	recording.deleted = nil

	records, err := service.DeleteConfigurations(ctx, "sharding_db", []rule.Configuration{config})
	require.NoError(t, err)

	// Dependents go first: tuples are walked in reverse emission order.
	expectedOrder := []string{
		"/metadata/sharding_db/rules/encrypt/tables/t_user",
		"/metadata/sharding_db/rules/encrypt/encryptors/aes",
	}
	assert.Equal(t, expectedOrder, recording.deleted)

	require.Len(t, records, 2)
	for i, record := range records {
		assert.Equal(t, expectedOrder[i], record.Path())
		_, ok := record.Version()
		assert.False(t, ok)
	}
}

func TestDatabaseRuleServiceLoad(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	t.Cleanup(func() { _ = repo.Close() })

	service := NewDatabaseRuleService(repo, fakeSwapper{}, newEncryptRegistry(t))
	config := fakeConfiguration{
		ruleType: "encrypt",
		tuples: []tuple.RepositoryTuple{
			{Key: "tables/t_user", Value: "t_user-cfg"},
			{Key: "encryptors/aes", Value: "aes-cfg"},
		},
	}
	_, err := service.Persist(ctx, "sharding_db", []rule.Configuration{config})
	require.NoError(t, err)

	configs, err := service.Load(ctx, "sharding_db")
	require.NoError(t, err)
	require.Len(t, configs, 1)

	loaded := configs[0].(fakeConfiguration)
	assert.ElementsMatch(t, []tuple.RepositoryTuple{
		{Key: "encrypt/tables/t_user", Value: "t_user-cfg"},
		{Key: "encrypt/encryptors/aes", Value: "aes-cfg"},
	}, loaded.tuples)
}
