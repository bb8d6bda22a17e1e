/*
Package ripple is an association-resolution layer for document data models.

A document type declares singular or plural associations to other document
types. Related documents are either embedded, meaning their data is stored
inline within the owner's own persisted attributes, or linked, meaning they
live in their own bucket and the owner holds tagged links that are walked on
demand.

The library is split into a small set of packages:

  - ripple (this package): the contracts a host document system supplies,
    namely Record, Document, Embeddable and the Attributes bag.
  - registry: resolves document type names to Descriptor values. Resolution is
    lazy so associations may reference types registered later.
  - associations: the core layer. Association metadata, the per-class
    association registry, the four proxy kinds and the per-instance Manager
    that caches proxies and drives the save lifecycle.
  - linkstore: the external store contract (Walk, UpdateLinks) plus the
    in-memory and DynamoDB backed implementations.
  - inflect: the configurable naming convention used to derive target type
    names from association names.

Basic Usage:

	types := registry.NewTypeRegistry()
	types.Register(&registry.Descriptor{Name: "Address", Embeddable: true, New: newAddress})
	types.Register(&registry.Descriptor{Name: "Account", Bucket: "accounts", New: newAccount})

	reg := associations.NewBuilder(types).
		Many("addresses", associations.Options{}).
		One("account", associations.Options{}).
		Build()

	mgr := associations.NewManager(customer, "customers", reg, store)
	if err := mgr.Replace("account", account); err != nil {
		// value did not match the association's target type
	}

Embedded association values fold into the owner's persisted attributes through
Manager.EmbeddedAttributes. Linked association values are saved ahead of the
owner through Manager.SaveLinked, which only touches documents that are
already loaded and are new or changed.

For more information, see the documentation at https://github.com/halorgium/ripple
*/
package ripple
