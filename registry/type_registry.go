package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/halorgium/ripple"
	"github.com/halorgium/ripple/errors"
)

// NewFunc materializes a record of a registered type from a raw attribute
// bag. An empty bag produces a blank record.
type NewFunc func(attrs ripple.Attributes) (ripple.Record, error)

// Descriptor describes one registered document type.
type Descriptor struct {
	// Name is the type name associations resolve against, e.g. "Account".
	Name string
	// Bucket is the storage bucket for linked documents of this type.
	// Unused for embeddable types.
	Bucket string
	// Embeddable marks types whose instances are stored inline within an
	// owning document rather than in their own bucket.
	Embeddable bool
	// New materializes an instance from raw attributes.
	New NewFunc
}

// TypeRegistry maps document type names to descriptors. Registration happens
// during process start-up; lookups are read-mostly thereafter.
type TypeRegistry struct {
	mu    sync.RWMutex
	types map[string]*Descriptor
}

// NewTypeRegistry creates an empty type registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		types: make(map[string]*Descriptor),
	}
}

// Register adds a descriptor under its name. Registering a name twice fails
// to prevent accidental overrides.
func (r *TypeRegistry) Register(d *Descriptor) error {
	if d == nil || d.Name == "" {
		return fmt.Errorf("descriptor must have a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[d.Name]; exists {
		return errors.NewAlreadyRegisteredError("document type", d.Name)
	}
	r.types[d.Name] = d
	return nil
}

// Resolve returns the descriptor registered under name. Resolution is
// deliberately late-bound: an association may name a type that is registered
// after the association itself is declared.
func (r *TypeRegistry) Resolve(name string) (*Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.types[name]
	if !ok {
		return nil, errors.NewUnresolvedTypeError(name)
	}
	return d, nil
}

// Names returns the registered type names in sorted order.
func (r *TypeRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultRegistry backs the package-level registration functions.
var defaultRegistry = NewTypeRegistry()

// Default returns the process-wide type registry.
func Default() *TypeRegistry {
	return defaultRegistry
}

// Register adds a descriptor to the default registry. It panics on duplicate
// registration to surface wiring mistakes at start-up.
func Register(d *Descriptor) {
	if err := defaultRegistry.Register(d); err != nil {
		panic(fmt.Sprintf("type registry: %v", err))
	}
}

// Resolve looks up a descriptor in the default registry.
func Resolve(name string) (*Descriptor, error) {
	return defaultRegistry.Resolve(name)
}
