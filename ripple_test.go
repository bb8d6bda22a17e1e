/*
 * Copyright © 2026 The Ripple Authors, All rights reserved.
 */

package ripple_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halorgium/ripple"
	"github.com/halorgium/ripple/linkstore"
	"github.com/halorgium/ripple/linkstore/memstore"
	"github.com/halorgium/ripple/registry"
	"github.com/halorgium/ripple/testmodels"
)

func TestAttributesClone(t *testing.T) {
	original := ripple.Attributes{"name": "Robin", "age": 42}
	clone := original.Clone()

	clone["name"] = "Sam"
	assert.Equal(t, "Robin", original["name"])
	assert.Equal(t, "Sam", clone["name"])

	var empty ripple.Attributes
	assert.Nil(t, empty.Clone())
}

// Full lifecycle: declare, assign embedded and linked values, save, and
// verify both the owner's persisted bag and its link sets.
func TestDocumentLifecycle(t *testing.T) {
	ctx := context.Background()
	types := registry.NewTypeRegistry()
	store := memstore.New()
	require.NoError(t, testmodels.RegisterTypes(types, store))

	customer := testmodels.NewCustomer(types, store, "Robin")
	require.True(t, customer.IsNew())

	require.NoError(t, customer.Associations().Replace("billing_address",
		ripple.Attributes{"street": "12 Main St", "city": "Springfield"}))
	require.NoError(t, customer.Associations().Append("addresses",
		testmodels.NewAddress("1 Side St", "Shelbyville")))

	account := testmodels.NewAccount(store, "robin@example.com")
	require.NoError(t, customer.Associations().Replace("account", account))
	order := testmodels.NewOrder(store, 10)
	require.NoError(t, customer.Associations().Append("orders", order))

	require.NoError(t, customer.Save(ctx))
	assert.False(t, customer.IsNew())

	// Embedded associations landed inside the owner's own document
	ref := linkstore.Ref{Bucket: "customers", Key: customer.Key()}
	attrs, err := store.Get(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, "Robin", attrs["name"])

	billing, ok := attrs["billing_address"].(ripple.Attributes)
	require.True(t, ok)
	assert.Equal(t, "12 Main St", billing["street"])

	bags, ok := attrs["addresses"].([]ripple.Attributes)
	require.True(t, ok)
	require.Len(t, bags, 1)
	assert.Equal(t, "1 Side St", bags[0]["street"])

	// Linked associations landed as separate documents plus link sets
	assert.False(t, account.IsNew())
	assert.False(t, order.IsNew())
	assert.Equal(t,
		[]linkstore.Ref{{Bucket: "accounts", Key: account.Key()}},
		store.Links(ref, "account"))
	assert.Equal(t,
		[]linkstore.Ref{{Bucket: "orders", Key: order.Key()}},
		store.Links(ref, "orders"))

	// A reset manager refetches from the store and materializes fresh
	// documents with the persisted identity
	customer.Associations().ResetAll()
	got, err := customer.Associations().Get(ctx, "account")
	require.NoError(t, err)
	refetched := got.(*testmodels.Account)
	assert.NotSame(t, account, refetched)
	assert.Equal(t, account.Key(), refetched.Key())
	assert.Equal(t, "robin@example.com", refetched.Email())
}

func TestVersionInfo(t *testing.T) {
	info := ripple.GetVersionInfo()
	assert.Equal(t, ripple.Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}
