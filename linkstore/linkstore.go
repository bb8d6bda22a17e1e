/*
 * Copyright © 2026 The Ripple Authors, All rights reserved.
 */

package linkstore

import (
	"context"

	"github.com/halorgium/ripple"
)

// Store is the external document store the association layer walks for
// linked associations. Implementations are expected to preserve the stored
// order of a document's links.
type Store interface {
	// Get retrieves the attribute bag stored under ref.
	Get(ctx context.Context, ref Ref) (ripple.Attributes, error)

	// Put stores an attribute bag under ref, overwriting any previous value.
	Put(ctx context.Context, ref Ref, attrs ripple.Attributes) error

	// Delete removes the document stored under ref.
	Delete(ctx context.Context, ref Ref) error

	// Walk follows the outgoing links of the document at from that match
	// spec and returns the attribute bags of the reachable documents, in
	// link order.
	Walk(ctx context.Context, from Ref, spec WalkSpec) ([]ripple.Attributes, error)

	// UpdateLinks replaces the outgoing links of the document at from that
	// match spec with links to targets, preserving the given order.
	UpdateLinks(ctx context.Context, from Ref, spec WalkSpec, targets []Ref) error
}
