// Package testmodels provides concrete document types used by the test
// suites: an embeddable Address, linked Account and Order documents, and a
// Customer owner wired to an association manager.
package testmodels

import (
	"context"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"github.com/halorgium/ripple"
	"github.com/halorgium/ripple/associations"
	"github.com/halorgium/ripple/linkstore"
	"github.com/halorgium/ripple/registry"
)

// Embedded is the base of embeddable record fixtures.
type Embedded struct {
	typeName string
	attrs    ripple.Attributes
	parent   ripple.Record
}

func (e *Embedded) TypeName() string              { return e.typeName }
func (e *Embedded) Attributes() ripple.Attributes { return e.attrs }
func (e *Embedded) SetParent(owner ripple.Record) { e.parent = owner }
func (e *Embedded) Parent() ripple.Record         { return e.parent }

// Address is an embeddable record.
type Address struct {
	Embedded
}

func NewAddress(street, city string) *Address {
	return &Address{Embedded{
		typeName: "Address",
		attrs:    ripple.Attributes{"street": street, "city": city},
	}}
}

func (a *Address) Street() string { return str(a.attrs, "street") }
func (a *Address) City() string   { return str(a.attrs, "city") }

func addressFromAttributes(attrs ripple.Attributes) (ripple.Record, error) {
	if attrs == nil {
		attrs = ripple.Attributes{}
	}
	return &Address{Embedded{typeName: "Address", attrs: attrs.Clone()}}, nil
}

// Doc is the base of linked document fixtures. It tracks the lifecycle
// facts the association layer consumes (IsNew, Changed) and persists itself
// into a link store on Save. The key is carried inside the attribute bag so
// documents materialized from a store walk keep their identity.
type Doc struct {
	typeName   string
	bucket     string
	attrs      ripple.Attributes
	isNew      bool
	changed    bool
	store      linkstore.Store
	saves      int
	beforeSave func(ctx context.Context) error
}

func newDoc(typeName, bucket string, attrs ripple.Attributes, store linkstore.Store) *Doc {
	if attrs == nil {
		attrs = ripple.Attributes{}
	}
	attrs["key"] = uuid.NewString()
	return &Doc{
		typeName: typeName,
		bucket:   bucket,
		attrs:    attrs,
		isNew:    true,
		store:    store,
	}
}

func docFromAttributes(typeName, bucket string, attrs ripple.Attributes, store linkstore.Store) *Doc {
	return &Doc{
		typeName: typeName,
		bucket:   bucket,
		attrs:    attrs.Clone(),
		store:    store,
	}
}

func (d *Doc) TypeName() string              { return d.typeName }
func (d *Doc) Bucket() string                { return d.bucket }
func (d *Doc) Key() string                   { return str(d.attrs, "key") }
func (d *Doc) IsNew() bool                   { return d.isNew }
func (d *Doc) Changed() bool                 { return d.changed }
func (d *Doc) Attributes() ripple.Attributes { return d.attrs }

// MarkChanged flags unsaved modifications.
func (d *Doc) MarkChanged() { d.changed = true }

// SaveCount reports how many times Save has completed.
func (d *Doc) SaveCount() int { return d.saves }

// SetBeforeSave installs a hook that runs ahead of persistence, used by
// tests to model symmetric back-references.
func (d *Doc) SetBeforeSave(fn func(ctx context.Context) error) { d.beforeSave = fn }

func (d *Doc) Save(ctx context.Context) error {
	if d.beforeSave != nil {
		if err := d.beforeSave(ctx); err != nil {
			return err
		}
	}
	if d.store != nil {
		ref := linkstore.Ref{Bucket: d.bucket, Key: d.Key()}
		if err := d.store.Put(ctx, ref, d.attrs); err != nil {
			return err
		}
	}
	d.isNew = false
	d.changed = false
	d.saves++
	return nil
}

// Account is a linked document.
type Account struct {
	*Doc
}

func NewAccount(store linkstore.Store, email string) *Account {
	attrs := ripple.Attributes{
		"email":      email,
		"created_at": strfmt.DateTime(time.Now()).String(),
	}
	return &Account{newDoc("Account", "accounts", attrs, store)}
}

func (a *Account) Email() string { return str(a.attrs, "email") }

func (a *Account) SetEmail(email string) {
	a.attrs["email"] = email
	a.MarkChanged()
}

// Order is a linked document.
type Order struct {
	*Doc
}

func NewOrder(store linkstore.Store, total float64) *Order {
	return &Order{newDoc("Order", "orders", ripple.Attributes{"total": total}, store)}
}

func (o *Order) Total() float64 {
	if t, ok := o.attrs["total"].(float64); ok {
		return t
	}
	return 0
}

// Customer owns the associations exercised by the tests:
//
//	one  billing_address (Address, embedded)
//	many addresses       (Address, embedded)
//	one  account         (Account, linked)
//	many orders          (Order, linked)
type Customer struct {
	*Doc
	assoc *associations.Manager
}

// CustomerAssociations builds the Customer type's association registry
// against the given type registry.
func CustomerAssociations(types *registry.TypeRegistry) *associations.Registry {
	return associations.NewBuilder(types).
		One("billing_address", associations.Options{ClassName: "Address"}).
		Many("addresses", associations.Options{}).
		One("account", associations.Options{}).
		Many("orders", associations.Options{}).
		Build()
}

func NewCustomer(types *registry.TypeRegistry, store linkstore.Store, name string) *Customer {
	c := &Customer{
		Doc: newDoc("Customer", "customers", ripple.Attributes{"name": name}, store),
	}
	c.assoc = associations.NewManager(c, "customers", CustomerAssociations(types), store)
	return c
}

// Associations exposes the customer's association manager.
func (c *Customer) Associations() *associations.Manager { return c.assoc }

// Save cascades loaded linked associations, folds embedded association
// values into the attribute bag and persists the result.
func (c *Customer) Save(ctx context.Context) error {
	if c.beforeSave != nil {
		if err := c.beforeSave(ctx); err != nil {
			return err
		}
	}
	if err := c.assoc.SaveLinked(ctx); err != nil {
		return err
	}

	embedded, err := c.assoc.EmbeddedAttributes()
	if err != nil {
		return err
	}
	attrs := c.attrs.Clone()
	for k, v := range embedded {
		attrs[k] = v
	}

	if c.store != nil {
		ref := linkstore.Ref{Bucket: c.bucket, Key: c.Key()}
		if err := c.store.Put(ctx, ref, attrs); err != nil {
			return err
		}
	}
	c.isNew = false
	c.changed = false
	c.saves++
	return nil
}

// RegisterTypes registers the fixture types against a type registry, binding
// document factories to the given store.
func RegisterTypes(types *registry.TypeRegistry, store linkstore.Store) error {
	descriptors := []*registry.Descriptor{
		{
			Name:       "Address",
			Embeddable: true,
			New:        addressFromAttributes,
		},
		{
			Name:   "Account",
			Bucket: "accounts",
			New: func(attrs ripple.Attributes) (ripple.Record, error) {
				return &Account{docFromAttributes("Account", "accounts", attrs, store)}, nil
			},
		},
		{
			Name:   "Order",
			Bucket: "orders",
			New: func(attrs ripple.Attributes) (ripple.Record, error) {
				return &Order{docFromAttributes("Order", "orders", attrs, store)}, nil
			},
		},
	}
	for _, d := range descriptors {
		if err := types.Register(d); err != nil {
			return err
		}
	}
	return nil
}

func str(attrs ripple.Attributes, key string) string {
	if s, ok := attrs[key].(string); ok {
		return s
	}
	return ""
}
