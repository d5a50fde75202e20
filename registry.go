/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

package firecms

import (
	"fmt"
	"sync"

	"github.com/diegotc86/firecms/schema"
)

// SchemaRegistry is a thread-safe map from collection path to the schema
// governing entities under that path. It is populated at configuration time;
// schemas themselves are read-only once registered.
type SchemaRegistry struct {
	mu      sync.RWMutex
	schemas map[string]*schema.Schema
}

// NewSchemaRegistry creates an empty SchemaRegistry.
func NewSchemaRegistry() *SchemaRegistry {
	return &SchemaRegistry{
		schemas: make(map[string]*schema.Schema),
	}
}

// Register associates a schema with a collection path.
func (r *SchemaRegistry) Register(path string, s *schema.Schema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[path]; exists {
		return fmt.Errorf("schema for path %q already registered", path)
	}
	r.schemas[path] = s
	return nil
}

// Get retrieves the schema registered for a collection path.
func (r *SchemaRegistry) Get(path string) (*schema.Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.schemas[path]
	if !exists {
		return nil, fmt.Errorf("no schema registered for path %q", path)
	}
	return s, nil
}

// Remove deletes the registration for a collection path.
func (r *SchemaRegistry) Remove(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[path]; !exists {
		return fmt.Errorf("no schema registered for path %q", path)
	}
	delete(r.schemas, path)
	return nil
}

// Paths returns all registered collection paths.
func (r *SchemaRegistry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paths := make([]string, 0, len(r.schemas))
	for p := range r.schemas {
		paths = append(paths, p)
	}
	return paths
}
