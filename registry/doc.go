/*
Package registry manages document type registration for ripple.

Associations refer to their target types by name, so a registry maps each
name to a Descriptor carrying the facts the association layer needs: whether
the type is embeddable, which bucket its documents live in, and how to
materialize an instance from a raw attribute bag.

Type Registry:

	registry.Register(&registry.Descriptor{
	    Name:   "Account",
	    Bucket: "accounts",
	    New: func(attrs ripple.Attributes) (ripple.Record, error) {
	        return accountFromAttributes(attrs), nil
	    },
	})

Resolution is late-bound: associations may be declared before the types they
reference are registered, and resolution only fails if the name is still
unknown when an association is first used.

The registry is thread-safe and should be populated during initialization,
typically in init() functions or through generated code.
*/
package registry
