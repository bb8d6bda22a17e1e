/*
 * Copyright © 2026 The Ripple Authors, All rights reserved.
 */

package associations

import (
	"github.com/halorgium/ripple/registry"
)

// Registry is the immutable, ordered set of associations declared by one
// document type. It is built once at declaration time and only read
// afterwards, so no locking is needed on the access path.
type Registry struct {
	order  []string
	byName map[string]*Association
}

// Get returns the association declared under name.
func (r *Registry) Get(name string) (*Association, bool) {
	a, ok := r.byName[name]
	return a, ok
}

// All returns every association in declaration order.
func (r *Registry) All() []*Association {
	out := make([]*Association, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Names returns the association names in declaration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of declared associations.
func (r *Registry) Len() int {
	return len(r.order)
}

// Embedded returns the associations whose storage strategy resolves to
// embedded, in declaration order.
func (r *Registry) Embedded() ([]*Association, error) {
	var out []*Association
	for _, name := range r.order {
		a := r.byName[name]
		strategy, err := a.Strategy()
		if err != nil {
			return nil, err
		}
		if strategy == StorageEmbedded {
			out = append(out, a)
		}
	}
	return out, nil
}

// Builder accumulates association declarations for one document type and
// produces an immutable Registry. Declaration is a one-time setup phase; the
// builder is not safe for concurrent use.
type Builder struct {
	types  *registry.TypeRegistry
	order  []string
	byName map[string]*Association
}

// NewBuilder starts a declaration block resolving target types against the
// given type registry.
func NewBuilder(types *registry.TypeRegistry) *Builder {
	return &Builder{
		types:  types,
		byName: make(map[string]*Association),
	}
}

// Inherit seeds the builder with a parent type's associations. Call it
// before the subtype's own declarations: a redeclared name replaces the
// inherited metadata while keeping the inherited position.
func (b *Builder) Inherit(parent *Registry) *Builder {
	if parent == nil {
		return b
	}
	for _, name := range parent.order {
		b.put(parent.byName[name])
	}
	return b
}

// One declares a singular association.
func (b *Builder) One(name string, opts Options) *Builder {
	b.put(New(One, name, b.types, opts))
	return b
}

// Many declares a plural association.
func (b *Builder) Many(name string, opts Options) *Builder {
	b.put(New(Many, name, b.types, opts))
	return b
}

func (b *Builder) put(a *Association) {
	if _, exists := b.byName[a.Name()]; !exists {
		b.order = append(b.order, a.Name())
	}
	b.byName[a.Name()] = a
}

// Build produces the immutable registry. The builder can keep being used;
// later declarations do not affect registries already built.
func (b *Builder) Build() *Registry {
	byName := make(map[string]*Association, len(b.byName))
	for name, a := range b.byName {
		byName[name] = a
	}
	return &Registry{
		order:  append([]string(nil), b.order...),
		byName: byName,
	}
}
