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
	"github.com/halorgium/ripple/associations"
	"github.com/halorgium/ripple/errors"
	"github.com/halorgium/ripple/linkstore"
	"github.com/halorgium/ripple/linkstore/memstore"
	"github.com/halorgium/ripple/registry"
	"github.com/halorgium/ripple/testmodels"
)

// seedLinked persists a customer plus a linked account and two linked orders
// directly into the store, bypassing the association layer.
func seedLinked(t *testing.T, types *registry.TypeRegistry, store *memstore.Store) *testmodels.Customer {
	t.Helper()
	ctx := context.Background()

	customer := testmodels.NewCustomer(types, store, "Robin")
	account := testmodels.NewAccount(store, "robin@example.com")
	first := testmodels.NewOrder(store, 10)
	second := testmodels.NewOrder(store, 20)
	for _, doc := range []interface{ Save(context.Context) error }{account, first, second} {
		require.NoError(t, doc.Save(ctx))
	}

	from := linkstore.Ref{Bucket: "customers", Key: customer.Key()}
	store.SetLinks(from, "account", linkstore.Ref{Bucket: "accounts", Key: account.Key()})
	store.SetLinks(from, "orders",
		linkstore.Ref{Bucket: "orders", Key: first.Key()},
		linkstore.Ref{Bucket: "orders", Key: second.Key()})
	return customer
}

func TestSingleLinkedLazyFetch(t *testing.T) {
	types, store := setup(t)
	ctx := context.Background()
	customer := seedLinked(t, types, store)

	assert.Equal(t, 0, store.WalkCalls())

	got, err := customer.Associations().Get(ctx, "account")
	require.NoError(t, err)
	account, ok := got.(*testmodels.Account)
	require.True(t, ok)
	assert.Equal(t, "robin@example.com", account.Email())
	assert.False(t, account.IsNew())
	assert.Equal(t, 1, store.WalkCalls())

	// Cached: no further store round trips
	again, err := customer.Associations().Get(ctx, "account")
	require.NoError(t, err)
	assert.Same(t, got, again)
	assert.Equal(t, 1, store.WalkCalls())

	present, err := customer.Associations().Present(ctx, "account")
	require.NoError(t, err)
	assert.True(t, present)
}

func TestSingleLinkedAbsent(t *testing.T) {
	types, store := setup(t)
	ctx := context.Background()
	customer := testmodels.NewCustomer(types, store, "Robin")

	got, err := customer.Associations().Get(ctx, "account")
	require.NoError(t, err)
	assert.Nil(t, got)

	present, err := customer.Associations().Present(ctx, "account")
	require.NoError(t, err)
	assert.False(t, present)

	// The empty result is cached too
	assert.Equal(t, 1, store.WalkCalls())
}

func TestLinkedResetRefetches(t *testing.T) {
	types, store := setup(t)
	ctx := context.Background()
	customer := seedLinked(t, types, store)

	_, err := customer.Associations().Get(ctx, "account")
	require.NoError(t, err)
	require.Equal(t, 1, store.WalkCalls())

	customer.Associations().ResetAll()

	_, err = customer.Associations().Get(ctx, "account")
	require.NoError(t, err)
	assert.Equal(t, 2, store.WalkCalls())
}

func TestLinkedWalkErrorPropagates(t *testing.T) {
	ctx := context.Background()
	store := memstore.New().WithWalkError(errors.ErrNotFound)
	types := registry.NewTypeRegistry()
	require.NoError(t, testmodels.RegisterTypes(types, store))

	customer := testmodels.NewCustomer(types, store, "Robin")
	_, err := customer.Associations().Get(ctx, "account")
	require.Error(t, err)

	// A failed fetch leaves the proxy unloaded so a later access can retry
	p, perr := customer.Associations().Proxy("account")
	require.NoError(t, perr)
	assert.False(t, p.Loaded())
}

func TestSingleLinkedReplaceDefersPersistence(t *testing.T) {
	types, store := setup(t)
	ctx := context.Background()
	customer := testmodels.NewCustomer(types, store, "Robin")

	account := testmodels.NewAccount(store, "new@example.com")
	require.NoError(t, customer.Associations().Replace("account", account))

	// Nothing persisted until the owner saves
	assert.Equal(t, 0, store.Count())
	assert.True(t, account.IsNew())

	got, err := customer.Associations().Get(ctx, "account")
	require.NoError(t, err)
	assert.Same(t, ripple.Record(account), got)
	// Replacement satisfies the proxy without a fetch
	assert.Equal(t, 0, store.WalkCalls())
}

func TestManyLinkedFetchOrder(t *testing.T) {
	types, store := setup(t)
	ctx := context.Background()
	customer := seedLinked(t, types, store)

	got, err := customer.Associations().Get(ctx, "orders")
	require.NoError(t, err)
	records := got.([]ripple.Record)
	require.Len(t, records, 2)
	assert.Equal(t, 10.0, records[0].(*testmodels.Order).Total())
	assert.Equal(t, 20.0, records[1].(*testmodels.Order).Total())
	assert.Equal(t, 1, store.WalkCalls())
}

func TestManyLinkedAppend(t *testing.T) {
	types, store := setup(t)
	ctx := context.Background()
	customer := seedLinked(t, types, store)

	_, err := customer.Associations().Get(ctx, "orders")
	require.NoError(t, err)

	extra := testmodels.NewOrder(store, 30)
	require.NoError(t, customer.Associations().Append("orders", extra))

	got, err := customer.Associations().Get(ctx, "orders")
	require.NoError(t, err)
	records := got.([]ripple.Record)
	require.Len(t, records, 3)
	assert.Equal(t, 30.0, records[2].(*testmodels.Order).Total())

	// Appending to an association rejects the wrong document type
	err = customer.Associations().Append("orders", testmodels.NewAccount(store, "x@y"))
	assert.True(t, errors.IsAssociationType(err))
}

func TestLoadedDocumentsDoesNotFetch(t *testing.T) {
	types, store := setup(t)
	customer := seedLinked(t, types, store)

	p, err := customer.Associations().Proxy("orders")
	require.NoError(t, err)
	lp, ok := p.(associations.LinkedProxy)
	require.True(t, ok)

	assert.Empty(t, lp.LoadedDocuments())
	assert.Equal(t, 0, store.WalkCalls())
}

func TestManyLinkedReplace(t *testing.T) {
	types, store := setup(t)
	ctx := context.Background()
	customer := seedLinked(t, types, store)

	replacement := testmodels.NewOrder(store, 99)
	require.NoError(t, customer.Associations().Replace("orders", []any{replacement}))

	got, err := customer.Associations().Get(ctx, "orders")
	require.NoError(t, err)
	records := got.([]ripple.Record)
	require.Len(t, records, 1)
	assert.Same(t, ripple.Record(replacement), records[0])
	// The replacement satisfied the proxy without walking the store
	assert.Equal(t, 0, store.WalkCalls())
}
