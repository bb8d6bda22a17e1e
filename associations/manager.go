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

// Manager resolves association access for one owning document instance. It
// creates proxies lazily, caches them per association name, and drives the
// two persistence hooks: folding embedded values into the owner's attribute
// bag and cascading saves to loaded linked documents.
//
// A Manager belongs to exactly one owner and, like the proxies it holds, is
// not safe for concurrent use.
type Manager struct {
	owner  ripple.Document
	bucket string
	reg    *Registry
	store  linkstore.Store

	proxies map[string]Proxy
	saving  bool
}

// NewManager binds a manager to its owning document. bucket is the owner's
// own storage bucket, used to address its links; store may be nil when the
// registry declares no linked associations.
func NewManager(owner ripple.Document, bucket string, reg *Registry, store linkstore.Store) *Manager {
	return &Manager{
		owner:   owner,
		bucket:  bucket,
		reg:     reg,
		store:   store,
		proxies: make(map[string]Proxy),
	}
}

// Registry returns the owner type's association registry.
func (m *Manager) Registry() *Registry {
	return m.reg
}

// Proxy returns the owner's proxy for the named association, creating it on
// first access. Successive calls return the identical proxy until Reset.
func (m *Manager) Proxy(name string) (Proxy, error) {
	if p, ok := m.proxies[name]; ok {
		return p, nil
	}
	a, ok := m.reg.Get(name)
	if !ok {
		return nil, fmt.Errorf("no association %q declared for %s", name, describe(m.owner))
	}
	p, err := newProxy(m.owner, m.bucket, a, m.store)
	if err != nil {
		return nil, err
	}
	m.proxies[name] = p
	return p, nil
}

// Get returns the named association's current value(s), fetching linked
// documents on first access.
func (m *Manager) Get(ctx context.Context, name string) (any, error) {
	p, err := m.Proxy(name)
	if err != nil {
		return nil, err
	}
	return p.Get(ctx)
}

// Replace assigns a new value to the named association. The value is
// verified before any state changes; on failure the association keeps its
// previous value.
func (m *Manager) Replace(name string, value any) error {
	p, err := m.Proxy(name)
	if err != nil {
		return err
	}
	return p.Replace(value)
}

// Append adds one element to a plural association.
func (m *Manager) Append(name string, value any) error {
	p, err := m.Proxy(name)
	if err != nil {
		return err
	}
	mp, ok := p.(ManyProxy)
	if !ok {
		return fmt.Errorf("association %q is singular and cannot be appended to", name)
	}
	return mp.Append(value)
}

// Present reports whether a singular association has a value.
func (m *Manager) Present(ctx context.Context, name string) (bool, error) {
	p, err := m.Proxy(name)
	if err != nil {
		return false, err
	}
	sp, ok := p.(SingleProxy)
	if !ok {
		return false, fmt.Errorf("association %q is plural and has no presence check", name)
	}
	return sp.Present(ctx)
}

// ResetAll resets every materialized proxy, dropping cached values so the
// next access re-resolves. Invoked when the owner's persisted state is
// discarded or reloaded.
func (m *Manager) ResetAll() {
	for _, p := range m.proxies {
		p.Reset()
	}
}

// EmbeddedAttributes folds the current values of embedded associations into
// an attribute bag keyed by association name: one bag for singular values, a
// sequence of bags for plural ones. Associations never accessed, or
// explicitly set to nil, contribute nothing.
func (m *Manager) EmbeddedAttributes() (ripple.Attributes, error) {
	embedded, err := m.reg.Embedded()
	if err != nil {
		return nil, err
	}

	out := make(ripple.Attributes)
	for _, a := range embedded {
		p, ok := m.proxies[a.Name()]
		if !ok || !p.Loaded() {
			continue
		}
		switch ep := p.(type) {
		case *singleEmbeddedProxy:
			if doc := ep.document(); doc != nil {
				out[a.Name()] = doc.Attributes()
			}
		case *manyEmbeddedProxy:
			bags := make([]ripple.Attributes, 0, len(ep.values))
			for _, rec := range ep.values {
				bags = append(bags, rec.Attributes())
			}
			out[a.Name()] = bags
		}
	}
	return out, nil
}

// SaveLinked is the pre-save cascade: for every linked association whose
// proxy is already loaded, it saves each cached document that is new or
// changed, then records the association's current link set on the owner.
// Associations never accessed before the save trigger no fetch and no save
// attempt.
//
// The cascade is guarded against re-entrant invocation: saving a child may
// re-trigger the owner's save hooks through a back-reference, in which case
// the nested call is a no-op. The guard is released on every exit path.
func (m *Manager) SaveLinked(ctx context.Context) error {
	if m.saving {
		return nil
	}
	m.saving = true
	defer func() { m.saving = false }()

	for _, a := range m.reg.All() {
		p, ok := m.proxies[a.Name()]
		if !ok {
			continue
		}
		lp, ok := p.(LinkedProxy)
		if !ok {
			continue
		}

		for _, doc := range lp.LoadedDocuments() {
			if doc.IsNew() || doc.Changed() {
				if err := doc.Save(ctx); err != nil {
					return fmt.Errorf("failed to save linked %q: %w", a.Name(), err)
				}
			}
		}

		if p.Loaded() {
			if err := m.updateLinks(ctx, a, lp); err != nil {
				return err
			}
		}
	}
	return nil
}

// updateLinks rewrites the owner's link set for one association from the
// proxy's cached documents.
func (m *Manager) updateLinks(ctx context.Context, a *Association, lp LinkedProxy) error {
	spec, err := a.walkSpec()
	if err != nil {
		return err
	}

	docs := lp.LoadedDocuments()
	targets := make([]linkstore.Ref, len(docs))
	for i, doc := range docs {
		targets[i] = linkstore.Ref{Bucket: spec.Bucket, Key: doc.Key()}
	}

	from := linkstore.Ref{Bucket: m.bucket, Key: m.owner.Key()}
	if err := m.store.UpdateLinks(ctx, from, spec, targets); err != nil {
		return fmt.Errorf("failed to update links for %q: %w", a.Name(), err)
	}
	return nil
}
