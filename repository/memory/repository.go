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

// Package memory provides a mutex-guarded, process-local repository. It backs
// the standalone (single proxy) deployment mode and serves as the store
// double in tests. Watch semantics mirror the clustered adapters: per-prefix
// event streams fed by every mutation.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/kid0510z/shardingsphere/log"
	"github.com/kid0510z/shardingsphere/nodepath"
	"github.com/kid0510z/shardingsphere/repository"
)

const watchBufferSize = 128

// Repository is an in-memory coordination store.
type Repository struct {
	mu       sync.RWMutex
	data     map[string]string
	watchers []*watcher
	closed   bool
	logger   log.Logger
}

type watcher struct {
	prefix string
	events chan repository.DataChangedEvent
	done   <-chan struct{}
}

var _ repository.Repository = (*Repository)(nil)

// Option configures the repository.
type Option func(*Repository)

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(r *Repository) { r.logger = logger }
}

// NewRepository creates an empty in-memory repository.
func NewRepository(opts ...Option) *Repository {
	repo := &Repository{
		data:   make(map[string]string),
		logger: log.DefaultLogger,
	}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

// Query implements repository.Repository.
func (r *Repository) Query(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.data[key]
	return value, ok, nil
}

// ChildrenKeys implements repository.Repository.
func (r *Repository) ChildrenKeys(_ context.Context, key string) ([]string, error) {
	prefix := key + nodepath.Separator

	r.mu.RLock()
	seen := make(map[string]struct{})
	for stored := range r.data {
		if !strings.HasPrefix(stored, prefix) {
			continue
		}
		child := strings.SplitN(stored[len(prefix):], nodepath.Separator, 2)[0]
		if child != "" {
			seen[child] = struct{}{}
		}
	}
	r.mu.RUnlock()

	children := make([]string, 0, len(seen))
	for child := range seen {
		children = append(children, child)
	}
	sort.Strings(children)
	return children, nil
}

// Persist implements repository.Repository.
func (r *Repository) Persist(_ context.Context, key, value string) error {
	r.mu.Lock()
	_, existed := r.data[key]
	r.data[key] = value
	r.mu.Unlock()

	eventType := repository.EventAdded
	if existed {
		eventType = repository.EventUpdated
	}
	r.notify(repository.DataChangedEvent{Key: key, Value: value, Type: eventType})
	return nil
}

// Delete implements repository.Repository. It removes key and everything
// under it, emitting one deleted event per removed node.
func (r *Repository) Delete(_ context.Context, key string) error {
	prefix := key + nodepath.Separator

	r.mu.Lock()
	removed := make([]string, 0)
	for stored := range r.data {
		if stored == key || strings.HasPrefix(stored, prefix) {
			removed = append(removed, stored)
		}
	}
	for _, stored := range removed {
		delete(r.data, stored)
	}
	r.mu.Unlock()

	sort.Strings(removed)
	for _, stored := range removed {
		r.notify(repository.DataChangedEvent{Key: stored, Type: repository.EventDeleted})
	}
	return nil
}

// CompareAndSet implements repository.Repository.
func (r *Repository) CompareAndSet(_ context.Context, key, expected, value string) (bool, error) {
	r.mu.Lock()
	current, existed := r.data[key]
	if expected == "" && existed {
		r.mu.Unlock()
		return false, nil
	}
	if expected != "" && current != expected {
		r.mu.Unlock()
		return false, nil
	}
	r.data[key] = value
	r.mu.Unlock()

	eventType := repository.EventAdded
	if existed {
		eventType = repository.EventUpdated
	}
	r.notify(repository.DataChangedEvent{Key: key, Value: value, Type: eventType})
	return true, nil
}

// Watch implements repository.Repository.
func (r *Repository) Watch(ctx context.Context, keyPrefix string) (<-chan repository.DataChangedEvent, error) {
	w := &watcher{
		prefix: keyPrefix,
		events: make(chan repository.DataChangedEvent, watchBufferSize),
		done:   ctx.Done(),
	}

	r.mu.Lock()
	r.watchers = append(r.watchers, w)
	r.mu.Unlock()
	return w.events, nil
}

// Close implements repository.Repository.
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	for _, w := range r.watchers {
		close(w.events)
	}
	r.watchers = nil
	return nil
}

func (r *Repository) notify(event repository.DataChangedEvent) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return
	}
	for _, w := range r.watchers {
		if !strings.HasPrefix(event.Key, w.prefix) {
			continue
		}
		select {
		case <-w.done:
		case w.events <- event:
		default:
			// A consumer that stopped draining loses events rather than
			// blocking every writer.
			r.logger.Warnf("dropping change event for %s: watch buffer is full", event.Key)
		}
	}
}
