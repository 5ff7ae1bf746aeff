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

// Package repository defines the coordination store contract the metadata
// plane builds on: a shared hierarchical key-value service with read, write,
// delete and watch primitives. Concrete adapters live in the sub-packages.
package repository

import "context"

// Repository is the coordination store collaborator.
//
// The metadata plane performs no mutual exclusion of its own: computing the
// next version of a leaf is a read-then-write sequence, and its atomicity
// under concurrent writers is the adapter's responsibility. Adapters resolve
// the race through CompareAndSet on the active version pointer (or an
// equivalent store primitive); two writers computing the same next version
// must not both succeed in activating it.
//
// I/O failures propagate unchanged to the caller. Retry and backoff policy,
// if any, belongs to the adapter.
type Repository interface {
	// Query returns the value stored at key. The boolean reports whether the
	// key exists; an absent key is not an error.
	Query(ctx context.Context, key string) (string, bool, error)

	// ChildrenKeys returns the sorted child segment names directly under key.
	// A key without children yields an empty slice.
	ChildrenKeys(ctx context.Context, key string) ([]string, error)

	// Persist writes value at key, creating the key when absent.
	Persist(ctx context.Context, key, value string) error

	// Delete removes the entire subtree rooted at key.
	Delete(ctx context.Context, key string) error

	// CompareAndSet atomically writes value at key if the current value equals
	// expected. An empty expected value means the key must not exist yet. It
	// reports whether the write was applied.
	CompareAndSet(ctx context.Context, key, expected, value string) (bool, error)

	// Watch returns a lazy, unbounded stream of change events for keys under
	// keyPrefix. The channel is closed when the watch terminates or ctx is
	// done; a closed watch is not restartable.
	Watch(ctx context.Context, keyPrefix string) (<-chan DataChangedEvent, error)

	// Close releases the resources held by the repository.
	Close() error
}
