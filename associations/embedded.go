/*
 * Copyright © 2026 The Ripple Authors, All rights reserved.
 */

package associations

import (
	"context"

	"github.com/halorgium/ripple"
)

// singleEmbeddedProxy holds at most one embedded record inline.
type singleEmbeddedProxy struct {
	owner  ripple.Record
	assoc  *Association
	value  ripple.Record
	loaded bool
}

func (p *singleEmbeddedProxy) Association() *Association {
	return p.assoc
}

func (p *singleEmbeddedProxy) Get(ctx context.Context) (any, error) {
	if p.value == nil {
		return nil, nil
	}
	return p.value, nil
}

func (p *singleEmbeddedProxy) Replace(value any) error {
	if err := p.assoc.VerifyType(value, p.owner); err != nil {
		return err
	}

	if value == nil {
		p.value = nil
		p.loaded = true
		return nil
	}
	rec, err := toRecord(p.assoc, value)
	if err != nil {
		return err
	}
	adopt(p.owner, rec)
	p.value = rec
	p.loaded = true
	return nil
}

func (p *singleEmbeddedProxy) Present(ctx context.Context) (bool, error) {
	return p.value != nil, nil
}

func (p *singleEmbeddedProxy) Loaded() bool {
	return p.loaded
}

func (p *singleEmbeddedProxy) Reset() {
	p.value = nil
	p.loaded = false
}

// document returns the held record, for the serialization hook.
func (p *singleEmbeddedProxy) document() ripple.Record {
	return p.value
}

// manyEmbeddedProxy holds an ordered sequence of embedded records inline.
type manyEmbeddedProxy struct {
	owner  ripple.Record
	assoc  *Association
	values []ripple.Record
	loaded bool
}

func (p *manyEmbeddedProxy) Association() *Association {
	return p.assoc
}

func (p *manyEmbeddedProxy) Get(ctx context.Context) (any, error) {
	return p.records(), nil
}

func (p *manyEmbeddedProxy) Replace(value any) error {
	if err := p.assoc.VerifyType(value, p.owner); err != nil {
		return err
	}

	elems, _ := sequence(value)
	// Coerce into a scratch slice first so a factory failure leaves the
	// cached sequence untouched.
	records := make([]ripple.Record, 0, len(elems))
	for _, e := range elems {
		rec, err := toRecord(p.assoc, e)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}
	for _, rec := range records {
		adopt(p.owner, rec)
	}
	p.values = records
	p.loaded = true
	return nil
}

func (p *manyEmbeddedProxy) Append(value any) error {
	if value == nil {
		return p.assoc.typeError(p.owner, value)
	}
	if err := p.assoc.verifyElement(value, p.owner); err != nil {
		return err
	}
	rec, err := toRecord(p.assoc, value)
	if err != nil {
		return err
	}
	adopt(p.owner, rec)
	p.values = append(p.values, rec)
	p.loaded = true
	return nil
}

func (p *manyEmbeddedProxy) Loaded() bool {
	return p.loaded
}

func (p *manyEmbeddedProxy) Reset() {
	p.values = nil
	p.loaded = false
}

func (p *manyEmbeddedProxy) records() []ripple.Record {
	return append([]ripple.Record(nil), p.values...)
}
