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

// Package state builds the execution-node subtree: the per-process paths
// under which proxy instances publish the operations they are running.
package state

import (
	"github.com/google/uuid"

	"github.com/kid0510z/shardingsphere/nodepath"
)

const executionNodes = "/execution_nodes"

// RootPath returns the root path of one process.
func RootPath(processID string) string {
	return nodepath.Join(executionNodes, processID)
}

// InstanceProcessList returns the path under which the given proxy instance
// publishes the process list of processID.
func InstanceProcessList(processID, instanceID string) string {
	return nodepath.Join(RootPath(processID), instanceID)
}

// NewProcessID generates a fresh process identifier.
func NewProcessID() string {
	return uuid.NewString()
}

// FindProcessIDByRootPath extracts the process identifier from a process root
// path. It returns false when the path does not address a process root.
func FindProcessIDByRootPath(path string) (string, bool) {
	return rootPattern.FindIdentifier(path, 1)
}

var rootPattern = nodepath.NewPattern(RootPath(nodepath.Identifier))
