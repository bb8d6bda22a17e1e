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

// singleLinkedProxy lazily fetches at most one linked document by walking
// the owner's tagged links.
type singleLinkedProxy struct {
	owner       ripple.Document
	ownerBucket string
	assoc       *Association
	store       linkstore.Store
	value       ripple.Document
	loaded      bool
}

func (p *singleLinkedProxy) Association() *Association {
	return p.assoc
}

func (p *singleLinkedProxy) Get(ctx context.Context) (any, error) {
	if !p.loaded {
		docs, err := fetchLinked(ctx, p.store, p.owner, p.ownerBucket, p.assoc)
		if err != nil {
			return nil, err
		}
		if len(docs) > 0 {
			p.value = docs[0]
		}
		p.loaded = true
	}
	if p.value == nil {
		return nil, nil
	}
	return p.value, nil
}

func (p *singleLinkedProxy) Replace(value any) error {
	if err := p.assoc.VerifyType(value, p.owner); err != nil {
		return err
	}

	if value == nil {
		p.value = nil
		p.loaded = true
		return nil
	}
	doc, err := toDocument(p.assoc, p.owner, value)
	if err != nil {
		return err
	}
	p.value = doc
	p.loaded = true
	return nil
}

func (p *singleLinkedProxy) Present(ctx context.Context) (bool, error) {
	v, err := p.Get(ctx)
	if err != nil {
		return false, err
	}
	return v != nil, nil
}

func (p *singleLinkedProxy) Loaded() bool {
	return p.loaded
}

func (p *singleLinkedProxy) Reset() {
	p.value = nil
	p.loaded = false
}

func (p *singleLinkedProxy) LoadedDocuments() []ripple.Document {
	if !p.loaded || p.value == nil {
		return nil
	}
	return []ripple.Document{p.value}
}

// manyLinkedProxy lazily fetches an ordered set of linked documents.
type manyLinkedProxy struct {
	owner       ripple.Document
	ownerBucket string
	assoc       *Association
	store       linkstore.Store
	values      []ripple.Document
	loaded      bool
}

func (p *manyLinkedProxy) Association() *Association {
	return p.assoc
}

func (p *manyLinkedProxy) Get(ctx context.Context) (any, error) {
	if !p.loaded {
		docs, err := fetchLinked(ctx, p.store, p.owner, p.ownerBucket, p.assoc)
		if err != nil {
			return nil, err
		}
		p.values = docs
		p.loaded = true
	}
	records := make([]ripple.Record, len(p.values))
	for i, d := range p.values {
		records[i] = d
	}
	return records, nil
}

func (p *manyLinkedProxy) Replace(value any) error {
	if err := p.assoc.VerifyType(value, p.owner); err != nil {
		return err
	}

	elems, _ := sequence(value)
	docs := make([]ripple.Document, 0, len(elems))
	for _, e := range elems {
		doc, err := toDocument(p.assoc, p.owner, e)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	p.values = docs
	p.loaded = true
	return nil
}

// Append adds one document to the cached sequence. The new link is recorded
// when the owner saves.
func (p *manyLinkedProxy) Append(value any) error {
	if value == nil {
		return p.assoc.typeError(p.owner, value)
	}
	if err := p.assoc.verifyElement(value, p.owner); err != nil {
		return err
	}
	doc, err := toDocument(p.assoc, p.owner, value)
	if err != nil {
		return err
	}
	p.values = append(p.values, doc)
	p.loaded = true
	return nil
}

func (p *manyLinkedProxy) Loaded() bool {
	return p.loaded
}

func (p *manyLinkedProxy) Reset() {
	p.values = nil
	p.loaded = false
}

func (p *manyLinkedProxy) LoadedDocuments() []ripple.Document {
	return append([]ripple.Document(nil), p.values...)
}

// fetchLinked walks the owner's links for the association and materializes
// each reachable attribute bag into a document.
func fetchLinked(ctx context.Context, store linkstore.Store, owner ripple.Document, ownerBucket string, a *Association) ([]ripple.Document, error) {
	spec, err := a.walkSpec()
	if err != nil {
		return nil, err
	}
	from := linkstore.Ref{Bucket: ownerBucket, Key: owner.Key()}
	bags, err := store.Walk(ctx, from, spec)
	if err != nil {
		return nil, err
	}

	docs := make([]ripple.Document, 0, len(bags))
	for _, attrs := range bags {
		rec, err := materialize(a, attrs)
		if err != nil {
			return nil, err
		}
		doc, ok := rec.(ripple.Document)
		if !ok {
			return nil, fmt.Errorf("linked association %q resolved a non-document %s",
				a.Name(), describe(rec))
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// toDocument coerces a verified element and requires the result to be an
// independently persistable document.
func toDocument(a *Association, owner ripple.Record, value any) (ripple.Document, error) {
	rec, err := toRecord(a, value)
	if err != nil {
		return nil, err
	}
	doc, ok := rec.(ripple.Document)
	if !ok {
		return nil, a.typeError(owner, value)
	}
	return doc, nil
}
