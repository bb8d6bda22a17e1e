/*
 * Copyright © 2026 The Ripple Authors, All rights reserved.
 */

package associations

import (
	"fmt"
	"sync"

	"github.com/halorgium/ripple"
	"github.com/halorgium/ripple/errors"
	"github.com/halorgium/ripple/inflect"
	"github.com/halorgium/ripple/linkstore"
	"github.com/halorgium/ripple/registry"
)

// Association is the metadata of one declared association. It is class-level
// state: a single Association is shared, read-only, by every proxy created
// for that association name across all owning instances.
//
// Nothing is resolved at construction time. The target type may be
// registered after the association is declared, so name resolution and the
// storage strategy are computed lazily on first use and memoized.
type Association struct {
	cardinality Cardinality
	name        string
	opts        Options
	types       *registry.TypeRegistry

	mu       sync.Mutex
	target   *registry.Descriptor
	strategy StorageStrategy
}

// New declares an association. It performs no validation; resolution is
// deferred to first use so forward type references work.
func New(cardinality Cardinality, name string, types *registry.TypeRegistry, opts Options) *Association {
	if opts.Inflector == nil {
		opts.Inflector = inflect.Default()
	}
	return &Association{
		cardinality: cardinality,
		name:        name,
		opts:        opts,
		types:       types,
		strategy:    StorageAuto,
	}
}

// Name returns the association name, unique within its registry.
func (a *Association) Name() string {
	return a.name
}

// Cardinality returns One or Many.
func (a *Association) Cardinality() Cardinality {
	return a.cardinality
}

// Options returns the declaration options.
func (a *Association) Options() Options {
	return a.opts
}

// TargetTypeName derives the target type name: an explicit ClassName or
// Class wins; otherwise the association name is classified, singularizing
// first for Many ("addresses" -> "Address", "account" -> "Account").
func (a *Association) TargetTypeName() string {
	if a.opts.ClassName != "" {
		return a.opts.ClassName
	}
	if a.opts.Class != nil {
		return a.opts.Class.Name
	}
	inf := a.opts.Inflector
	if a.cardinality == Many {
		return inf.Classify(inf.Singularize(a.name))
	}
	return inf.Classify(a.name)
}

// TargetType resolves the target type descriptor, memoizing on success.
// Returns an UnresolvedTypeError while the type is unregistered.
func (a *Association) TargetType() (*registry.Descriptor, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.target != nil {
		return a.target, nil
	}
	if a.opts.Class != nil {
		a.target = a.opts.Class
		return a.target, nil
	}
	d, err := a.types.Resolve(a.TargetTypeName())
	if err != nil {
		return nil, err
	}
	a.target = d
	return d, nil
}

// Embeddable reports whether the target type is an embeddable kind.
func (a *Association) Embeddable() (bool, error) {
	d, err := a.TargetType()
	if err != nil {
		return false, err
	}
	return d.Embeddable, nil
}

// Strategy resolves the storage strategy: the Using override if given, else
// embedded for embeddable targets and linked otherwise. The result is
// decided once and memoized, since proxies are selected based on it.
func (a *Association) Strategy() (StorageStrategy, error) {
	a.mu.Lock()
	memoized := a.strategy
	a.mu.Unlock()
	if memoized != StorageAuto {
		return memoized, nil
	}

	resolved := a.opts.Using
	if resolved == StorageAuto {
		embeddable, err := a.Embeddable()
		if err != nil {
			return StorageAuto, err
		}
		if embeddable {
			resolved = StorageEmbedded
		} else {
			resolved = StorageLinked
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.strategy == StorageAuto {
		a.strategy = resolved
	}
	return a.strategy, nil
}

// Kind maps (cardinality, strategy) onto the proxy variant to instantiate.
func (a *Association) Kind() (ProxyKind, error) {
	strategy, err := a.Strategy()
	if err != nil {
		return 0, err
	}
	switch {
	case a.cardinality == One && strategy == StorageEmbedded:
		return SingleEmbedded, nil
	case a.cardinality == Many && strategy == StorageEmbedded:
		return ManyEmbedded, nil
	case a.cardinality == One && strategy == StorageLinked:
		return SingleLinked, nil
	case a.cardinality == Many && strategy == StorageLinked:
		return ManyLinked, nil
	default:
		return 0, fmt.Errorf("no proxy kind for %s/%s", a.cardinality, strategy)
	}
}

// BucketAddress returns the target type's bucket. Only meaningful for
// linked associations.
func (a *Association) BucketAddress() (string, error) {
	d, err := a.TargetType()
	if err != nil {
		return "", err
	}
	return d.Bucket, nil
}

// LinkTag returns the link label used to address this association's links
// in the store. Only meaningful for linked associations.
func (a *Association) LinkTag() string {
	return a.name
}

// walkSpec builds the store walk specification for a linked association.
func (a *Association) walkSpec() (linkstore.WalkSpec, error) {
	bucket, err := a.BucketAddress()
	if err != nil {
		return linkstore.WalkSpec{}, err
	}
	return linkstore.WalkSpec{Tag: a.LinkTag(), Bucket: bucket}, nil
}

// VerifyType checks that value matches the shape this association expects,
// without mutating anything. One accepts nil, a plain attribute bag (for
// embeddable targets) or an instance of the target type. Many accepts an
// ordered sequence whose every element passes the One check, nil elements
// excluded.
func (a *Association) VerifyType(value any, owner ripple.Record) error {
	switch a.cardinality {
	case Many:
		elems, ok := sequence(value)
		if !ok {
			return a.typeError(owner, value)
		}
		for _, e := range elems {
			if e == nil {
				return a.typeError(owner, e)
			}
			if err := a.verifyElement(e, owner); err != nil {
				return err
			}
		}
		return nil
	default:
		if value == nil {
			return nil
		}
		return a.verifyElement(value, owner)
	}
}

func (a *Association) verifyElement(value any, owner ripple.Record) error {
	switch v := value.(type) {
	case ripple.Attributes, map[string]any:
		embeddable, err := a.Embeddable()
		if err != nil {
			return err
		}
		if !embeddable {
			return a.typeError(owner, value)
		}
		return nil
	case ripple.Record:
		if v.TypeName() != a.TargetTypeName() {
			return a.typeError(owner, value)
		}
		return nil
	default:
		return a.typeError(owner, value)
	}
}

func (a *Association) typeError(owner ripple.Record, value any) error {
	return errors.NewAssociationTypeError(
		a.name, describe(owner), a.TargetTypeName(), describe(value))
}

// sequence normalizes the accepted plural input shapes into a []any.
func sequence(value any) ([]any, bool) {
	switch s := value.(type) {
	case []any:
		return s, true
	case []ripple.Record:
		out := make([]any, len(s))
		for i, v := range s {
			out[i] = v
		}
		return out, true
	case []ripple.Document:
		out := make([]any, len(s))
		for i, v := range s {
			out[i] = v
		}
		return out, true
	case []ripple.Attributes:
		out := make([]any, len(s))
		for i, v := range s {
			out[i] = v
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(s))
		for i, v := range s {
			out[i] = v
		}
		return out, true
	default:
		return nil, false
	}
}

// describe renders a value for error messages: registered records by type
// name, everything else by Go type.
func describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case ripple.Record:
		return t.TypeName()
	default:
		return fmt.Sprintf("%T", v)
	}
}
