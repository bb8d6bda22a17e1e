/*
 * Copyright © 2026 The Ripple Authors, All rights reserved.
 */

package ripple

import "context"

// Attributes is the raw attribute bag of a document, as handed to and
// received from the backing store.
type Attributes map[string]any

// Clone returns a shallow copy of the bag. Nested maps and slices are shared.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Record is anything that can appear as the value of an association: a
// top-level document or an embedded one.
type Record interface {
	// TypeName is the registered document type name, e.g. "Address".
	TypeName() string
	// Attributes returns the record's current persistable attribute bag.
	Attributes() Attributes
}

// Document is a record that is persisted independently in its own bucket.
// The host document system owns the lifecycle semantics; this layer only
// consumes them when cascading saves.
type Document interface {
	Record
	// Key is the record's key within its bucket.
	Key() string
	// IsNew reports whether the document has never been persisted.
	IsNew() bool
	// Changed reports whether the document has unsaved modifications.
	Changed() bool
	// Save persists the document synchronously.
	Save(ctx context.Context) error
}

// Embeddable is implemented by records whose data is stored inline within an
// owning document. Assigning an embeddable record to an association sets the
// back-reference to its owner.
type Embeddable interface {
	Record
	SetParent(owner Record)
	Parent() Record
}
