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

// Package errors defines the sentinel errors shared across the metadata plane.
package errors

import "errors"

var (
	// ErrRuleTypeNotRegistered is returned when a rule configuration's declared
	// type has no node path descriptor in the registry. The registry is populated
	// once at process start, so hitting this error means a wiring defect.
	ErrRuleTypeNotRegistered = errors.New("rule type is not registered")

	// ErrRuleTypeAlreadyRegistered is returned when two node path descriptors
	// declare the same rule type.
	ErrRuleTypeAlreadyRegistered = errors.New("rule type is already registered")

	// ErrItemKeyConflict is returned when a rule node path declares the same item
	// key as both a named item and a unique item.
	ErrItemKeyConflict = errors.New("rule item key is declared as both named and unique")

	// ErrCorruptVersionNode indicates that a child of a versions node is not a
	// non-negative base-10 integer. Version children are assigned sequentially
	// from 0, so anything else means the store content is corrupt.
	ErrCorruptVersionNode = errors.New("version node name is not a non-negative integer")

	// ErrActiveVersionConflict is returned when the active version pointer was
	// concurrently modified between reading it and the compare-and-set that
	// advances it.
	ErrActiveVersionConflict = errors.New("active version pointer was concurrently modified")
)
