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

package repository

// EventType is the kind of a raw change notification.
type EventType int

const (
	// EventUnknown is an event kind the adapter could not translate.
	EventUnknown EventType = iota
	// EventAdded signals a key was created.
	EventAdded
	// EventUpdated signals an existing key's value changed.
	EventUpdated
	// EventDeleted signals a key was removed.
	EventDeleted
)

// String returns the text representation of the event type.
func (t EventType) String() string {
	switch t {
	case EventAdded:
		return "added"
	case EventUpdated:
		return "updated"
	case EventDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// DataChangedEvent is one raw change notification delivered by the store.
// Events for different keys are not globally ordered; consumers must be
// prepared for re-delivery and deduplicate before applying effects.
type DataChangedEvent struct {
	// Key is the changed path.
	Key string
	// Value is the new value for added and updated events; empty for deletes.
	Value string
	// Type is the kind of change.
	Type EventType
}
