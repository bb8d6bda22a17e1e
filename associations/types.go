/*
 * Copyright © 2026 The Ripple Authors, All rights reserved.
 */

package associations

import (
	"github.com/halorgium/ripple/inflect"
	"github.com/halorgium/ripple/registry"
)

// Cardinality says whether an association holds at most one or many related
// documents.
type Cardinality int

const (
	One Cardinality = iota
	Many
)

func (c Cardinality) String() string {
	switch c {
	case One:
		return "one"
	case Many:
		return "many"
	default:
		return "unknown"
	}
}

// StorageStrategy says how an association's related documents are
// represented: inline in the owner's attributes or linked in their own
// bucket. StorageAuto defers the decision to the target type's
// embeddability.
type StorageStrategy int

const (
	StorageAuto StorageStrategy = iota
	StorageEmbedded
	StorageLinked
)

func (s StorageStrategy) String() string {
	switch s {
	case StorageAuto:
		return "auto"
	case StorageEmbedded:
		return "embedded"
	case StorageLinked:
		return "linked"
	default:
		return "unknown"
	}
}

// ProxyKind identifies the concrete proxy implementation for an association,
// determined by cardinality and storage strategy.
type ProxyKind int

const (
	SingleEmbedded ProxyKind = iota
	ManyEmbedded
	SingleLinked
	ManyLinked
)

func (k ProxyKind) String() string {
	switch k {
	case SingleEmbedded:
		return "single-embedded"
	case ManyEmbedded:
		return "many-embedded"
	case SingleLinked:
		return "single-linked"
	case ManyLinked:
		return "many-linked"
	default:
		return "unknown"
	}
}

// Options configures one association declaration. The zero value is valid:
// the target type is derived from the association name and the storage
// strategy from the target's embeddability.
type Options struct {
	// ClassName names the target type explicitly, e.g. "Address".
	ClassName string

	// Class pins the target type to a descriptor directly, bypassing name
	// resolution.
	Class *registry.Descriptor

	// Using overrides the derived storage strategy.
	Using StorageStrategy

	// Extend carries host-defined extensions. The association layer passes
	// it through untouched.
	Extend []any

	// Inflector overrides the naming convention used to derive the target
	// type name. Defaults to inflect.Default().
	Inflector *inflect.Inflector
}
