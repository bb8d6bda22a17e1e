/*
 * Copyright © 2026 The Ripple Authors, All rights reserved.
 */

package linkstore

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe registry of named Store implementations, used by
// hosts that switch between backends (for example "memory" in tests and
// "dynamodb" in production).
type Manager struct {
	mu     sync.RWMutex
	stores map[string]Store
}

// NewManager creates an empty store manager.
func NewManager() *Manager {
	return &Manager{
		stores: make(map[string]Store),
	}
}

// Register stores the provided Store under the given name.
func (m *Manager) Register(name string, s Store) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.stores[name]; exists {
		return fmt.Errorf("link store with name %q already registered", name)
	}
	m.stores[name] = s
	return nil
}

// Get retrieves the Store registered under the given name.
func (m *Manager) Get(name string) (Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, exists := m.stores[name]
	if !exists {
		return nil, fmt.Errorf("link store with name %q not found", name)
	}
	return s, nil
}

// List returns all registered store names.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.stores))
	for name := range m.stores {
		names = append(names, name)
	}
	return names
}
