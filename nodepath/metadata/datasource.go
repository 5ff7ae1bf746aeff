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

// Package metadata builds and parses the /metadata subtree of the keyspace:
// database topology (storage units and nodes) and per-database rule
// configurations.
package metadata

import (
	"github.com/kid0510z/shardingsphere/nodepath"
	"github.com/kid0510z/shardingsphere/nodepath/version"
)

const (
	rootNode        = "/metadata"
	dataSourcesNode = "data_sources"
	unitsNode       = "units"
	nodesNode       = "nodes"
)

var (
	storageUnitPattern        = nodepath.NewPattern(StorageUnitPath(nodepath.Identifier, nodepath.Identifier))
	storageNodePattern        = nodepath.NewPattern(StorageNodePath(nodepath.Identifier, nodepath.Identifier))
	dataSourceRootPattern     = nodepath.NewFloatingPattern(DataSourceRootPath(nodepath.Identifier))
	storageUnitVersionParsers = version.NewParser(StorageUnitPath(nodepath.Identifier, nodepath.Identifier))
	storageNodeVersionParsers = version.NewParser(StorageNodePath(nodepath.Identifier, nodepath.Identifier))
)

// DataSourceRootPath returns the data source root path of a database.
func DataSourceRootPath(databaseName string) string {
	return nodepath.Join(rootNode, databaseName, dataSourcesNode)
}

// StorageUnitsPath returns the storage units path of a database.
func StorageUnitsPath(databaseName string) string {
	return nodepath.Join(DataSourceRootPath(databaseName), unitsNode)
}

// StorageNodesPath returns the storage nodes path of a database.
func StorageNodesPath(databaseName string) string {
	return nodepath.Join(DataSourceRootPath(databaseName), nodesNode)
}

// StorageUnitPath returns the path of one storage unit.
func StorageUnitPath(databaseName, storageUnitName string) string {
	return nodepath.Join(StorageUnitsPath(databaseName), storageUnitName)
}

// StorageNodePath returns the path of one storage node.
func StorageNodePath(databaseName, storageNodeName string) string {
	return nodepath.Join(StorageNodesPath(databaseName), storageNodeName)
}

// StorageUnitVersionNodePath returns the version node path of one storage
// unit.
func StorageUnitVersionNodePath(databaseName, storageUnitName string) version.NodePath {
	return version.NewNodePath(StorageUnitPath(databaseName, storageUnitName))
}

// StorageNodeVersionNodePath returns the version node path of one storage
// node.
func StorageNodeVersionNodePath(databaseName, storageNodeName string) version.NodePath {
	return version.NewNodePath(StorageNodePath(databaseName, storageNodeName))
}

// StorageUnitVersionParser returns the pattern-level version parser matching
// any database's storage units.
func StorageUnitVersionParser() *version.Parser {
	return storageUnitVersionParsers
}

// StorageNodeVersionParser returns the pattern-level version parser matching
// any database's storage nodes.
func StorageNodeVersionParser() *version.Parser {
	return storageNodeVersionParsers
}

// FindStorageUnitNameByStorageUnitPath extracts the storage unit name from a
// storage unit path. It returns false when the path does not address a
// storage unit.
func FindStorageUnitNameByStorageUnitPath(path string) (string, bool) {
	return storageUnitPattern.FindIdentifier(path, 2)
}

// FindStorageNodeNameByStorageNodePath extracts the storage node name from a
// storage node path. It returns false when the path does not address a
// storage node.
func FindStorageNodeNameByStorageNodePath(path string) (string, bool) {
	return storageNodePattern.FindIdentifier(path, 2)
}

// IsDataSourceRootPath reports whether the path addresses, or lies under, a
// database's data source root.
func IsDataSourceRootPath(path string) bool {
	return dataSourceRootPattern.Matches(path)
}
