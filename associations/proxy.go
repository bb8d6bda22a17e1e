/*
 * Copyright © 2026 The Ripple Authors, All rights reserved.
 */

package associations

import (
	"context"
	"fmt"

	"github.com/halorgium/ripple"
	"github.com/halorgium/ripple/linkstore"
)

// Proxy mediates access to one association's current value(s) for one
// owning instance. Exactly one proxy exists per (owner, association) pair
// for the owner's lifetime; Reset drops the cached value without replacing
// the proxy.
//
// A proxy is exclusively owned and mutated by its single owning instance and
// is not safe for concurrent use.
type Proxy interface {
	// Association returns the shared metadata this proxy was built from.
	Association() *Association

	// Get returns the current related value(s). Linked proxies fetch from
	// the store on first access and cache the result; embedded proxies
	// return whatever is held, since embedded data has no separate source
	// of truth. Single proxies yield a ripple.Record or nil, plural ones a
	// []ripple.Record in insertion/fetch order.
	Get(ctx context.Context) (any, error)

	// Replace verifies value against the association's type rules and, on
	// success, fully replaces the cached value(s). On failure the cached
	// state is left untouched. Linked replacements do not touch the store;
	// persistence is deferred to save time.
	Replace(value any) error

	// Loaded reports whether the proxy holds a materialized value.
	Loaded() bool

	// Reset discards the cached value; the next Get re-resolves.
	Reset()
}

// SingleProxy is the contract of singular associations.
type SingleProxy interface {
	Proxy

	// Present reports whether Get yields a value.
	Present(ctx context.Context) (bool, error)
}

// ManyProxy is the contract of plural associations.
type ManyProxy interface {
	Proxy

	// Append verifies a single element and appends it to the cached
	// sequence.
	Append(value any) error
}

// LinkedProxy is implemented by proxies of linked associations.
type LinkedProxy interface {
	Proxy

	// LoadedDocuments returns the currently cached documents without
	// triggering a fetch. Used by the save cascade so that saving never
	// force-loads untouched associations.
	LoadedDocuments() []ripple.Document
}

// newProxy instantiates the proxy variant selected by the association's
// kind, bound to the owner and the shared metadata.
func newProxy(owner ripple.Record, ownerBucket string, a *Association, store linkstore.Store) (Proxy, error) {
	kind, err := a.Kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case SingleEmbedded:
		return &singleEmbeddedProxy{owner: owner, assoc: a}, nil
	case ManyEmbedded:
		return &manyEmbeddedProxy{owner: owner, assoc: a}, nil
	case SingleLinked, ManyLinked:
		doc, ok := owner.(ripple.Document)
		if !ok {
			return nil, fmt.Errorf("owner of linked association %q must be a document, got %s",
				a.Name(), describe(owner))
		}
		if store == nil {
			return nil, fmt.Errorf("linked association %q requires a link store", a.Name())
		}
		if kind == SingleLinked {
			return &singleLinkedProxy{owner: doc, ownerBucket: ownerBucket, assoc: a, store: store}, nil
		}
		return &manyLinkedProxy{owner: doc, ownerBucket: ownerBucket, assoc: a, store: store}, nil
	default:
		return nil, fmt.Errorf("unhandled proxy kind %s", kind)
	}
}

// toRecord coerces an already-verified element into a record: records pass
// through, attribute bags are materialized via the target type's factory.
func toRecord(a *Association, value any) (ripple.Record, error) {
	switch v := value.(type) {
	case ripple.Record:
		return v, nil
	case ripple.Attributes:
		return materialize(a, v)
	case map[string]any:
		return materialize(a, ripple.Attributes(v))
	default:
		return nil, a.typeError(nil, value)
	}
}

func materialize(a *Association, attrs ripple.Attributes) (ripple.Record, error) {
	d, err := a.TargetType()
	if err != nil {
		return nil, err
	}
	if d.New == nil {
		return nil, fmt.Errorf("document type %q has no factory", d.Name)
	}
	return d.New(attrs)
}

// adopt sets the back-reference from an embedded child to its owner.
func adopt(owner ripple.Record, rec ripple.Record) {
	if e, ok := rec.(ripple.Embeddable); ok {
		e.SetParent(owner)
	}
}
