/*
 * Copyright © 2026 The Ripple Authors, All rights reserved.
 */

// Package memstore provides an in-memory implementation of the linkstore
// Store interface for testing
package memstore

import (
	"context"
	"sync"

	"github.com/halorgium/ripple"
	"github.com/halorgium/ripple/errors"
	"github.com/halorgium/ripple/linkstore"
)

// Store is an in-memory implementation of linkstore.Store. Link order is
// preserved per (document, tag) pair.
type Store struct {
	mu        sync.RWMutex
	docs      map[linkstore.Ref]ripple.Attributes
	links     map[linkstore.Ref]map[string][]linkstore.Ref
	walkCalls int

	getError    error
	putError    error
	walkError   error
	updateError error
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		docs:  make(map[linkstore.Ref]ripple.Attributes),
		links: make(map[linkstore.Ref]map[string][]linkstore.Ref),
	}
}

// WithGetError makes Get operations return an error
func (s *Store) WithGetError(err error) *Store {
	s.getError = err
	return s
}

// WithPutError makes Put operations return an error
func (s *Store) WithPutError(err error) *Store {
	s.putError = err
	return s
}

// WithWalkError makes Walk operations return an error
func (s *Store) WithWalkError(err error) *Store {
	s.walkError = err
	return s
}

// WithUpdateLinksError makes UpdateLinks operations return an error
func (s *Store) WithUpdateLinksError(err error) *Store {
	s.updateError = err
	return s
}

// Get retrieves the attribute bag stored under ref.
func (s *Store) Get(ctx context.Context, ref linkstore.Ref) (ripple.Attributes, error) {
	if s.getError != nil {
		return nil, s.getError
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	attrs, ok := s.docs[ref]
	if !ok {
		return nil, errors.NewNotFoundError(ref.Bucket, ref.Key)
	}
	return attrs.Clone(), nil
}

// Put stores an attribute bag under ref.
func (s *Store) Put(ctx context.Context, ref linkstore.Ref, attrs ripple.Attributes) error {
	if s.putError != nil {
		return s.putError
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[ref] = attrs.Clone()
	return nil
}

// Delete removes the document and its outgoing links.
func (s *Store) Delete(ctx context.Context, ref linkstore.Ref) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[ref]; !ok {
		return errors.NewNotFoundError(ref.Bucket, ref.Key)
	}
	delete(s.docs, ref)
	delete(s.links, ref)
	return nil
}

// Walk follows the outgoing links of from that match spec. Dangling links are
// skipped rather than failing the walk.
func (s *Store) Walk(ctx context.Context, from linkstore.Ref, spec linkstore.WalkSpec) ([]ripple.Attributes, error) {
	if s.walkError != nil {
		return nil, s.walkError
	}

	s.mu.Lock()
	s.walkCalls++
	s.mu.Unlock()

	s.mu.RLock()
	defer s.mu.RUnlock()

	targets := s.links[from][spec.Tag]
	results := make([]ripple.Attributes, 0, len(targets))
	for _, target := range targets {
		if spec.Bucket != "" && target.Bucket != spec.Bucket {
			continue
		}
		if attrs, ok := s.docs[target]; ok {
			results = append(results, attrs.Clone())
		}
	}
	return results, nil
}

// UpdateLinks replaces the links of from carrying spec.Tag with targets.
func (s *Store) UpdateLinks(ctx context.Context, from linkstore.Ref, spec linkstore.WalkSpec, targets []linkstore.Ref) error {
	if s.updateError != nil {
		return s.updateError
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	byTag, ok := s.links[from]
	if !ok {
		byTag = make(map[string][]linkstore.Ref)
		s.links[from] = byTag
	}
	copied := make([]linkstore.Ref, len(targets))
	copy(copied, targets)
	byTag[spec.Tag] = copied
	return nil
}

// Helper methods for testing

// SetLinks seeds the link set of a document directly.
func (s *Store) SetLinks(from linkstore.Ref, tag string, targets ...linkstore.Ref) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byTag, ok := s.links[from]
	if !ok {
		byTag = make(map[string][]linkstore.Ref)
		s.links[from] = byTag
	}
	byTag[tag] = append([]linkstore.Ref(nil), targets...)
}

// Links returns the current link set of a document.
func (s *Store) Links(from linkstore.Ref, tag string) []linkstore.Ref {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]linkstore.Ref(nil), s.links[from][tag]...)
}

// WalkCalls returns how many times Walk has been invoked.
func (s *Store) WalkCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.walkCalls
}

// Count returns the number of stored documents.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Clear removes all documents and links.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = make(map[linkstore.Ref]ripple.Attributes)
	s.links = make(map[linkstore.Ref]map[string][]linkstore.Ref)
}
