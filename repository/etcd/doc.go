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

// Package etcd provides the etcd-backed coordination store adapter for
// clustered deployments.
//
// # Overview
//
// Every proxy process of a cluster points at the same etcd cluster; the
// metadata keyspace lives under a configurable namespace prefix so that
// several proxy clusters can share one etcd installation. Reads, writes,
// subtree deletes and prefix watches map directly onto the etcd v3 API;
// compare-and-set maps onto a value-compare transaction, which is what makes
// concurrent version generation safe.
//
// Operational notes
//
//   - An etcd cluster must be reachable by all participating proxy processes.
//   - Authentication and TLS are handled through the adapter configuration.
//   - Retry of the initial connection probe is bounded by ConnectRetries;
//     established operations are not retried here.
//
// Package etcd is safe for concurrent use unless documented otherwise by a
// specific type.
package etcd
