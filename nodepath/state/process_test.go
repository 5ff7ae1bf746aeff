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

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootPath(t *testing.T) {
	assert.Equal(t,
		"/execution_nodes/ae7d352a-ee1f-3cd6-8631-cd9e93b70a30",
		RootPath("ae7d352a-ee1f-3cd6-8631-cd9e93b70a30"))
}

func TestInstanceProcessList(t *testing.T) {
	assert.Equal(t,
		"/execution_nodes/ae7d352a-ee1f-3cd6-8631-cd9e93b70a30/proxy_127.0.0.1@983481",
		InstanceProcessList("ae7d352a-ee1f-3cd6-8631-cd9e93b70a30", "proxy_127.0.0.1@983481"))
}

func TestNewProcessID(t *testing.T) {
	first := NewProcessID()
	second := NewProcessID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestFindProcessIDByRootPath(t *testing.T) {
	processID, ok := FindProcessIDByRootPath("/execution_nodes/ae7d352a-ee1f-3cd6-8631-cd9e93b70a30")
	require.True(t, ok)
	assert.Equal(t, "ae7d352a-ee1f-3cd6-8631-cd9e93b70a30", processID)

	_, ok = FindProcessIDByRootPath("/execution_nodes/ae7d352a-ee1f-3cd6-8631-cd9e93b70a30/proxy_1")
	assert.False(t, ok)
}
