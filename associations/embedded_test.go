/*
 * Copyright © 2026 The Ripple Authors, All rights reserved.
 */

package associations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halorgium/ripple"
	"github.com/halorgium/ripple/errors"
	"github.com/halorgium/ripple/testmodels"
)

func TestSingleEmbeddedReplaceInstance(t *testing.T) {
	types, store := setup(t)
	ctx := context.Background()
	customer := testmodels.NewCustomer(types, store, "Robin")

	home := testmodels.NewAddress("12 Main St", "Springfield")
	require.NoError(t, customer.Associations().Replace("billing_address", home))

	got, err := customer.Associations().Get(ctx, "billing_address")
	require.NoError(t, err)
	assert.Same(t, home, got)

	// Embedded child adopts the owner as parent
	assert.Same(t, ripple.Record(customer), home.Parent())

	present, err := customer.Associations().Present(ctx, "billing_address")
	require.NoError(t, err)
	assert.True(t, present)
}

func TestSingleEmbeddedReplaceBag(t *testing.T) {
	types, store := setup(t)
	ctx := context.Background()
	customer := testmodels.NewCustomer(types, store, "Robin")

	err := customer.Associations().Replace("billing_address",
		ripple.Attributes{"street": "12 Main St", "city": "Springfield"})
	require.NoError(t, err)

	got, err := customer.Associations().Get(ctx, "billing_address")
	require.NoError(t, err)
	addr, ok := got.(*testmodels.Address)
	require.True(t, ok)
	assert.Equal(t, "12 Main St", addr.Street())
	assert.Equal(t, "Springfield", addr.City())
}

func TestSingleEmbeddedReplaceNil(t *testing.T) {
	types, store := setup(t)
	ctx := context.Background()
	customer := testmodels.NewCustomer(types, store, "Robin")

	require.NoError(t, customer.Associations().Replace("billing_address", testmodels.NewAddress("A", "X")))
	require.NoError(t, customer.Associations().Replace("billing_address", nil))

	got, err := customer.Associations().Get(ctx, "billing_address")
	require.NoError(t, err)
	assert.Nil(t, got)

	present, err := customer.Associations().Present(ctx, "billing_address")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestSingleEmbeddedFailedReplaceKeepsValue(t *testing.T) {
	types, store := setup(t)
	ctx := context.Background()
	customer := testmodels.NewCustomer(types, store, "Robin")

	home := testmodels.NewAddress("12 Main St", "Springfield")
	require.NoError(t, customer.Associations().Replace("billing_address", home))

	err := customer.Associations().Replace("billing_address", 42)
	require.True(t, errors.IsAssociationType(err))

	got, err := customer.Associations().Get(ctx, "billing_address")
	require.NoError(t, err)
	assert.Same(t, home, got)
}

func TestManyEmbeddedReplace(t *testing.T) {
	types, store := setup(t)
	ctx := context.Background()
	customer := testmodels.NewCustomer(types, store, "Robin")

	a := testmodels.NewAddress("A", "X")
	b := testmodels.NewAddress("B", "Y")
	require.NoError(t, customer.Associations().Replace("addresses", []any{a, b}))

	got, err := customer.Associations().Get(ctx, "addresses")
	require.NoError(t, err)
	records, ok := got.([]ripple.Record)
	require.True(t, ok)
	require.Len(t, records, 2)
	assert.Same(t, ripple.Record(a), records[0])
	assert.Same(t, ripple.Record(b), records[1])
	assert.Same(t, ripple.Record(customer), a.Parent())
}

func TestManyEmbeddedReplaceBags(t *testing.T) {
	types, store := setup(t)
	ctx := context.Background()
	customer := testmodels.NewCustomer(types, store, "Robin")

	err := customer.Associations().Replace("addresses", []ripple.Attributes{
		{"street": "A", "city": "X"},
		{"street": "B", "city": "Y"},
	})
	require.NoError(t, err)

	got, err := customer.Associations().Get(ctx, "addresses")
	require.NoError(t, err)
	records := got.([]ripple.Record)
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].(*testmodels.Address).Street())
	assert.Equal(t, "B", records[1].(*testmodels.Address).Street())
}

func TestManyEmbeddedFailedReplaceKeepsSequence(t *testing.T) {
	types, store := setup(t)
	ctx := context.Background()
	customer := testmodels.NewCustomer(types, store, "Robin")

	a := testmodels.NewAddress("A", "X")
	require.NoError(t, customer.Associations().Replace("addresses", []any{a}))

	err := customer.Associations().Replace("addresses", []any{testmodels.NewAddress("B", "Y"), 42})
	require.True(t, errors.IsAssociationType(err))

	got, err := customer.Associations().Get(ctx, "addresses")
	require.NoError(t, err)
	records := got.([]ripple.Record)
	require.Len(t, records, 1)
	assert.Same(t, ripple.Record(a), records[0])
}

func TestManyEmbeddedAppend(t *testing.T) {
	types, store := setup(t)
	ctx := context.Background()
	customer := testmodels.NewCustomer(types, store, "Robin")

	require.NoError(t, customer.Associations().Append("addresses", testmodels.NewAddress("A", "X")))
	require.NoError(t, customer.Associations().Append("addresses", ripple.Attributes{"street": "B", "city": "Y"}))

	err := customer.Associations().Append("addresses", testmodels.NewOrder(store, 5))
	require.True(t, errors.IsAssociationType(err))

	got, err := customer.Associations().Get(ctx, "addresses")
	require.NoError(t, err)
	records := got.([]ripple.Record)
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].(*testmodels.Address).Street())
	assert.Equal(t, "B", records[1].(*testmodels.Address).Street())
}

func TestManyEmbeddedReset(t *testing.T) {
	types, store := setup(t)
	ctx := context.Background()
	customer := testmodels.NewCustomer(types, store, "Robin")

	require.NoError(t, customer.Associations().Replace("addresses", []any{testmodels.NewAddress("A", "X")}))
	customer.Associations().ResetAll()

	got, err := customer.Associations().Get(ctx, "addresses")
	require.NoError(t, err)
	assert.Empty(t, got.([]ripple.Record))
}
