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

package etcd

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/flowchartsman/retry"
	clientv3 "go.etcd.io/etcd/client/v3"
	"go.etcd.io/etcd/client/v3/namespace"

	"github.com/kid0510z/shardingsphere/nodepath"
	"github.com/kid0510z/shardingsphere/repository"
)

// Repository is an etcd-backed coordination store adapter.
//
// Keys are scoped under the configured namespace. The version-generation race
// described on repository.Repository is resolved here through etcd
// transactions: CompareAndSet compares the stored value (or requires the key
// to be absent) before writing, so of two writers racing on the active
// version pointer only one succeeds.
//
// Unless otherwise stated by the called method, any provided context is
// wrapped with the configured per-operation timeout.
type Repository struct {
	config     *Config
	client     *clientv3.Client
	kv         clientv3.KV
	watcher    clientv3.Watcher
	clientFunc func(clientv3.Config) (*clientv3.Client, error)
	closeFunc  func(*clientv3.Client) error
}

var _ repository.Repository = (*Repository)(nil)

// NewRepository creates a new Repository backed by etcd.
//
// It validates the provided configuration, probes the first configured
// endpoint with retries, and applies the configured namespace to all keys.
func NewRepository(config *Config) (*Repository, error) {
	return newRepository(config, clientv3.New, func(client *clientv3.Client) error { return client.Close() })
}

func newRepository(config *Config, clientFunc func(clientv3.Config) (*clientv3.Client, error), closeFunc func(*clientv3.Client) error) (*Repository, error) {
	if config == nil {
		return nil, errors.New("repository/etcd: config is nil")
	}

	config.Sanitize()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if clientFunc == nil {
		clientFunc = clientv3.New
	}

	if closeFunc == nil {
		closeFunc = func(client *clientv3.Client) error { return client.Close() }
	}

	client, err := clientFunc(clientv3.Config{
		Endpoints:   config.Endpoints,
		DialTimeout: config.DialTimeout,
		TLS:         config.TLS,
		Username:    config.Username,
		Password:    config.Password,
		Context:     config.Context,
	})
	if err != nil {
		return nil, err
	}

	retrier := retry.NewRetrier(config.ConnectRetries, 100*time.Millisecond, config.DialTimeout)
	if err := retrier.RunContext(config.Context, func(ctx context.Context) error {
		probeCtx, cancel := context.WithTimeout(ctx, config.DialTimeout)
		defer cancel()
		_, err := client.Status(probeCtx, config.Endpoints[0])
		return err
	}); err != nil {
		if cerr := closeFunc(client); cerr != nil {
			return nil, errors.Join(err, fmt.Errorf("failed to close etcd client: %w", cerr))
		}
		return nil, fmt.Errorf("failed to connect to etcd: %w", err)
	}

	namespacePrefix := normalizeNamespace(config.Namespace)
	return &Repository{
		config:     config,
		client:     client,
		kv:         namespace.NewKV(client.KV, namespacePrefix),
		watcher:    namespace.NewWatcher(client.Watcher, namespacePrefix),
		clientFunc: clientFunc,
		closeFunc:  closeFunc,
	}, nil
}

// Query implements repository.Repository.
func (r *Repository) Query(ctx context.Context, key string) (string, bool, error) {
	opCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	resp, err := r.kv.Get(opCtx, key)
	if err != nil {
		return "", false, fmt.Errorf("repository/etcd: failed to query %s: %w", key, err)
	}
	if len(resp.Kvs) == 0 {
		return "", false, nil
	}
	return string(resp.Kvs[0].Value), true, nil
}

// ChildrenKeys implements repository.Repository. etcd has no directory
// listing, so the children are recovered from a prefix scan by cutting the
// first segment after the key.
func (r *Repository) ChildrenKeys(ctx context.Context, key string) ([]string, error) {
	opCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	prefix := key + nodepath.Separator
	resp, err := r.kv.Get(opCtx, prefix, clientv3.WithPrefix(), clientv3.WithKeysOnly())
	if err != nil {
		return nil, fmt.Errorf("repository/etcd: failed to list children of %s: %w", key, err)
	}

	seen := make(map[string]struct{}, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		if child := childSegment(string(kv.Key), prefix); child != "" {
			seen[child] = struct{}{}
		}
	}

	children := make([]string, 0, len(seen))
	for child := range seen {
		children = append(children, child)
	}
	sort.Strings(children)
	return children, nil
}

// Persist implements repository.Repository.
func (r *Repository) Persist(ctx context.Context, key, value string) error {
	opCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.kv.Put(opCtx, key, value); err != nil {
		return fmt.Errorf("repository/etcd: failed to persist %s: %w", key, err)
	}
	return nil
}

// Delete implements repository.Repository. The key and its whole subtree are
// removed in one transaction.
func (r *Repository) Delete(ctx context.Context, key string) error {
	opCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.kv.Txn(opCtx).
		Then(
			clientv3.OpDelete(key),
			clientv3.OpDelete(key+nodepath.Separator, clientv3.WithPrefix()),
		).
		Commit()
	if err != nil {
		return fmt.Errorf("repository/etcd: failed to delete %s: %w", key, err)
	}
	return nil
}

// CompareAndSet implements repository.Repository.
func (r *Repository) CompareAndSet(ctx context.Context, key, expected, value string) (bool, error) {
	opCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	cmp := clientv3.Compare(clientv3.Value(key), "=", expected)
	if expected == "" {
		cmp = clientv3.Compare(clientv3.CreateRevision(key), "=", 0)
	}

	resp, err := r.kv.Txn(opCtx).
		If(cmp).
		Then(clientv3.OpPut(key, value)).
		Commit()
	if err != nil {
		return false, fmt.Errorf("repository/etcd: failed to compare-and-set %s: %w", key, err)
	}
	return resp.Succeeded, nil
}

// Watch implements repository.Repository.
//
// The returned channel is closed when the watch terminates or when ctx is
// done.
func (r *Repository) Watch(ctx context.Context, keyPrefix string) (<-chan repository.DataChangedEvent, error) {
	if ctx == nil {
		ctx = r.config.Context
	}

	events := make(chan repository.DataChangedEvent)
	watchChan := r.watcher.Watch(ctx, keyPrefix, clientv3.WithPrefix())

	go func() {
		defer close(events)
		for resp := range watchChan {
			if resp.Err() != nil {
				r.config.Logger.Errorf("etcd watch on %s failed: %v", keyPrefix, resp.Err())
				return
			}
			for _, ev := range resp.Events {
				event := toDataChangedEvent(ev)
				if event.Type == repository.EventUnknown {
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

// Close releases the resources held by the repository, including the
// underlying etcd client. Close is idempotent.
func (r *Repository) Close() error {
	if r.client == nil {
		return nil
	}
	if r.closeFunc != nil {
		return r.closeFunc(r.client)
	}
	return r.client.Close()
}

func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = r.config.Context
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, r.config.Timeout)
}

func toDataChangedEvent(ev *clientv3.Event) repository.DataChangedEvent {
	switch {
	case ev.Type == clientv3.EventTypePut && ev.IsCreate():
		return repository.DataChangedEvent{Key: string(ev.Kv.Key), Value: string(ev.Kv.Value), Type: repository.EventAdded}
	case ev.Type == clientv3.EventTypePut:
		return repository.DataChangedEvent{Key: string(ev.Kv.Key), Value: string(ev.Kv.Value), Type: repository.EventUpdated}
	case ev.Type == clientv3.EventTypeDelete:
		return repository.DataChangedEvent{Key: string(ev.Kv.Key), Type: repository.EventDeleted}
	default:
		return repository.DataChangedEvent{Key: string(ev.Kv.Key), Type: repository.EventUnknown}
	}
}

func childSegment(key, prefix string) string {
	if !strings.HasPrefix(key, prefix) {
		return ""
	}
	return strings.SplitN(key[len(prefix):], nodepath.Separator, 2)[0]
}

func normalizeNamespace(namespaceValue string) string {
	trimmed := strings.TrimSpace(namespaceValue)
	if trimmed == "" {
		return defaultNamespace
	}
	return strings.TrimSuffix(trimmed, nodepath.Separator)
}
