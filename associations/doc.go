/*
Package associations implements the association-resolution core of ripple.

A document type declares its associations through a Builder, producing an
immutable Registry shared by all instances of that type:

	reg := associations.NewBuilder(types).
	    One("billing_address", associations.Options{ClassName: "Address"}).
	    Many("addresses", associations.Options{}).
	    One("account", associations.Options{}).
	    Build()

Subtypes inherit with NewBuilder(types).Inherit(parentReg), redeclaring names
as needed; the subtype's declarations win on collision.

Each association resolves its target type lazily by name (forward references
are fine), derives its storage strategy from the target's embeddability
unless overridden, and maps onto one of four proxy kinds:

	cardinality x strategy -> SingleEmbedded | ManyEmbedded | SingleLinked | ManyLinked

Per instance, a Manager caches one proxy per association and exposes the
generated-accessor surface (Get, Replace, Append, Present) plus the two
persistence hooks: EmbeddedAttributes folds embedded values into the owner's
persistable bag, and SaveLinked cascades saves to already-loaded linked
documents before the owner itself is written, guarded against re-entrant
invocation through cyclic back-references.

Assignment is all-or-nothing: a value is verified against the association's
cardinality and target type before any cached state changes, and a failed
verification surfaces an errors.AssociationTypeError leaving the previous
value intact.
*/
package associations
