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

package changed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kid0510z/shardingsphere/changed"
	gerrors "github.com/kid0510z/shardingsphere/errors"
	"github.com/kid0510z/shardingsphere/nodepath/rule"
	"github.com/kid0510z/shardingsphere/repository"
)

func newEncryptNodePath(t *testing.T) *rule.NodePath {
	t.Helper()
	nodePath, err := rule.NewNodePath("encrypt", []string{"tables", "encryptors"}, []string{"default_settings"})
	require.NoError(t, err)
	return nodePath
}

func TestClassifyNamedItemAlter(t *testing.T) {
	nodePath := newEncryptNodePath(t)
	event := repository.DataChangedEvent{
		Key:   "/metadata/db1/rules/encrypt/tables/t_user/active_version",
		Value: "3",
		Type:  repository.EventUpdated,
	}

	change, ok, err := changed.Classify(nodePath, "db1", event)
	require.NoError(t, err)
	require.True(t, ok)

	alter := change.(*changed.AlterNamedRuleItem)
	assert.Equal(t, "db1", alter.Database())
	assert.Equal(t, "t_user", alter.ItemName())
	assert.Equal(t, "encrypt.tables", alter.ItemType())
	assert.Equal(t, 3, alter.ActiveVersion())
	assert.Equal(t, changed.KindAltered, alter.Kind())
}

func TestClassifyNamedItemAdd(t *testing.T) {
	nodePath := newEncryptNodePath(t)
	event := repository.DataChangedEvent{
		Key:   "/metadata/db1/rules/encrypt/tables/t_user/active_version",
		Value: "0",
		Type:  repository.EventAdded,
	}

	change, ok, err := changed.Classify(nodePath, "db1", event)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, changed.KindAdded, change.Kind())
}

func TestClassifyNamedItemDrop(t *testing.T) {
	nodePath := newEncryptNodePath(t)
	event := repository.DataChangedEvent{
		Key:  "/metadata/db1/rules/encrypt/tables/t_user",
		Type: repository.EventDeleted,
	}

	change, ok, err := changed.Classify(nodePath, "db1", event)
	require.NoError(t, err)
	require.True(t, ok)

	drop := change.(*changed.DropNamedRuleItem)
	assert.Equal(t, "db1", drop.Database())
	assert.Equal(t, "t_user", drop.ItemName())
	assert.Equal(t, "encrypt.tables", drop.ItemType())
	assert.Equal(t, changed.KindDropped, drop.Kind())
}

func TestClassifyUniqueItem(t *testing.T) {
	nodePath := newEncryptNodePath(t)

	t.Run("alter", func(t *testing.T) {
		event := repository.DataChangedEvent{
			Key:   "/metadata/db1/rules/encrypt/default_settings/active_version",
			Value: "1",
			Type:  repository.EventUpdated,
		}

		change, ok, err := changed.Classify(nodePath, "db1", event)
		require.NoError(t, err)
		require.True(t, ok)

		alter := change.(*changed.AlterUniqueRuleItem)
		assert.Equal(t, "encrypt.default_settings", alter.ItemType())
		assert.Equal(t, 1, alter.ActiveVersion())
		assert.Equal(t, changed.KindAltered, alter.Kind())
	})

	t.Run("drop", func(t *testing.T) {
		event := repository.DataChangedEvent{
			Key:  "/metadata/db1/rules/encrypt/default_settings/active_version",
			Type: repository.EventDeleted,
		}

		change, ok, err := changed.Classify(nodePath, "db1", event)
		require.NoError(t, err)
		require.True(t, ok)

		drop := change.(*changed.DropUniqueRuleItem)
		assert.Equal(t, "encrypt.default_settings", drop.ItemType())
		assert.Equal(t, changed.KindDropped, drop.Kind())
	})
}

func TestClassifyNonItemPaths(t *testing.T) {
	nodePath := newEncryptNodePath(t)

	testCases := []struct {
		name  string
		event repository.DataChangedEvent
	}{
		{
			name:  "rule root",
			event: repository.DataChangedEvent{Key: "/metadata/db1/rules/encrypt", Type: repository.EventDeleted},
		},
		{
			name:  "named item collection node",
			event: repository.DataChangedEvent{Key: "/metadata/db1/rules/encrypt/tables", Type: repository.EventDeleted},
		},
		{
			name:  "version history node",
			event: repository.DataChangedEvent{Key: "/metadata/db1/rules/encrypt/tables/t_user/versions/0", Type: repository.EventUpdated, Value: "cfg"},
		},
		{
			name:  "member path on an update",
			event: repository.DataChangedEvent{Key: "/metadata/db1/rules/encrypt/tables/t_user", Type: repository.EventUpdated, Value: "cfg"},
		},
		{
			name:  "unknown event type",
			event: repository.DataChangedEvent{Key: "/metadata/db1/rules/encrypt/tables/t_user/active_version", Type: repository.EventUnknown, Value: "0"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			change, ok, err := changed.Classify(nodePath, "db1", tc.event)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, change)
		})
	}
}

func TestClassifyCorruptActiveVersion(t *testing.T) {
	nodePath := newEncryptNodePath(t)
	event := repository.DataChangedEvent{
		Key:   "/metadata/db1/rules/encrypt/tables/t_user/active_version",
		Value: "not-a-number",
		Type:  repository.EventUpdated,
	}

	_, _, err := changed.Classify(nodePath, "db1", event)
	require.ErrorIs(t, err, gerrors.ErrCorruptVersionNode)
}

func TestClassifyIsDeterministic(t *testing.T) {
	nodePath := newEncryptNodePath(t)
	event := repository.DataChangedEvent{
		Key:   "/metadata/db1/rules/encrypt/tables/t_user/active_version",
		Value: "2",
		Type:  repository.EventUpdated,
	}

	first, ok, err := changed.Classify(nodePath, "db1", event)
	require.NoError(t, err)
	require.True(t, ok)

	for n := 0; n < 10; n++ {
		again, ok, err := changed.Classify(nodePath, "db1", event)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}
