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

// Package persist turns rule configuration snapshots into versioned writes
// against the coordination store and back: the administrative write path of
// the metadata plane.
package persist

// InitVersion is the version number assigned to the first persisted value of
// a leaf.
const InitVersion = 0

// MetaDataVersion is the version stamp of one leaf path, returned by the
// persist and delete paths and typically broadcast to peers. A stamp without
// a version number is a deletion record.
type MetaDataVersion struct {
	path       string
	version    int
	hasVersion bool
}

// NewMetaDataVersion creates a version stamp for a persisted leaf.
func NewMetaDataVersion(path string, version int) MetaDataVersion {
	return MetaDataVersion{path: path, version: version, hasVersion: true}
}

// NewDeletedMetaDataVersion creates a deletion record for a removed leaf.
func NewDeletedMetaDataVersion(path string) MetaDataVersion {
	return MetaDataVersion{path: path}
}

// Path returns the leaf path the stamp refers to.
func (m MetaDataVersion) Path() string {
	return m.path
}

// Version returns the stamped version number. The boolean is false for
// deletion records.
func (m MetaDataVersion) Version() (int, bool) {
	return m.version, m.hasVersion
}
