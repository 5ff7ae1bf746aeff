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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kid0510z/shardingsphere/nodepath"
)

func TestNodePath(t *testing.T) {
	nodePath := NewNodePath("/metadata/sharding_db/data_sources/units/ds_0")

	assert.Equal(t, "/metadata/sharding_db/data_sources/units/ds_0", nodePath.Leaf())
	assert.Equal(t, "/metadata/sharding_db/data_sources/units/ds_0/versions", nodePath.VersionsPath())
	assert.Equal(t, "/metadata/sharding_db/data_sources/units/ds_0/versions/3", nodePath.VersionPath(3))
	assert.Equal(t, "/metadata/sharding_db/data_sources/units/ds_0/active_version", nodePath.ActiveVersionPath())
}

func TestParserWithConcreteLeaf(t *testing.T) {
	parser := NewParser("/metadata/sharding_db/data_sources/units/ds_0")

	assert.True(t, parser.IsActiveVersionPath("/metadata/sharding_db/data_sources/units/ds_0/active_version"))
	assert.False(t, parser.IsActiveVersionPath("/metadata/sharding_db/data_sources/units/ds_1/active_version"))
	assert.False(t, parser.IsActiveVersionPath("/metadata/sharding_db/data_sources/units/ds_0"))

	assert.True(t, parser.IsVersionPath("/metadata/sharding_db/data_sources/units/ds_0/versions/0"))
	assert.False(t, parser.IsVersionPath("/metadata/sharding_db/data_sources/units/ds_0/active_version"))
}

func TestParserWithWildcardLeaf(t *testing.T) {
	// The pattern-level variant substitutes an identifier slot for the leaf's
	// own name, so one parser covers every unit of every database.
	parser := NewParser(nodepath.Join("/metadata", nodepath.Identifier, "data_sources", "units", nodepath.Identifier))

	assert.True(t, parser.IsActiveVersionPath("/metadata/sharding_db/data_sources/units/ds_0/active_version"))
	assert.True(t, parser.IsActiveVersionPath("/metadata/other_db/data_sources/units/ds_9/active_version"))

	name, ok := parser.FindIdentifierByActiveVersionPath("/metadata/sharding_db/data_sources/units/ds_0/active_version", 2)
	require.True(t, ok)
	assert.Equal(t, "ds_0", name)

	_, ok = parser.FindIdentifierByActiveVersionPath("/metadata/sharding_db/rules/encrypt/tables/t_user/active_version", 2)
	assert.False(t, ok)
}
