/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

// Package mock provides an in-memory DocumentStore implementation for testing
package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/diegotc86/firecms/errors"
)

// Store is an in-memory implementation of datastore.DocumentStore.
// It records call counts and supports error injection, globally or per id.
type Store struct {
	mu          sync.RWMutex
	data        map[string]map[string]map[string]any // path -> id -> values
	saveErr     error
	deleteErr   error
	deleteErrBy map[string]error // id -> injected error
	saveErrBy   map[string]error
	nextID      int
	saveCalls   int
	deleteCalls int
}

// New creates a new empty mock Store.
func New() *Store {
	return &Store{
		data:        make(map[string]map[string]map[string]any),
		deleteErrBy: make(map[string]error),
		saveErrBy:   make(map[string]error),
	}
}

// WithSaveError makes every Save return err.
func (s *Store) WithSaveError(err error) *Store {
	s.saveErr = err
	return s
}

// WithDeleteError makes every Delete return err.
func (s *Store) WithDeleteError(err error) *Store {
	s.deleteErr = err
	return s
}

// WithSaveErrorFor makes Save fail for one specific id.
func (s *Store) WithSaveErrorFor(id string, err error) *Store {
	s.saveErrBy[id] = err
	return s
}

// WithDeleteErrorFor makes Delete fail for one specific id.
func (s *Store) WithDeleteErrorFor(id string, err error) *Store {
	s.deleteErrBy[id] = err
	return s
}

// Save stores values under path/id, assigning a deterministic id when id is
// empty.
func (s *Store) Save(ctx context.Context, path, id string, values map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putLocked(path, id, values)
}

// Create behaves like Save but fails when path/id already holds a record.
func (s *Store) Create(ctx context.Context, path, id string, values map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[path][id]; exists {
		s.saveCalls++
		return "", errors.NewAlreadyExistsError("entity", id)
	}
	return s.putLocked(path, id, values)
}

func (s *Store) putLocked(path, id string, values map[string]any) (string, error) {
	s.saveCalls++
	if s.saveErr != nil {
		return "", s.saveErr
	}
	if err, ok := s.saveErrBy[id]; ok {
		return "", err
	}

	if id == "" {
		s.nextID++
		id = fmt.Sprintf("id-%d", s.nextID)
	}

	coll, ok := s.data[path]
	if !ok {
		coll = make(map[string]map[string]any)
		s.data[path] = coll
	}
	coll[id] = cloneValues(values)
	return id, nil
}

// Delete removes the record at path/id.
func (s *Store) Delete(ctx context.Context, path, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteCalls++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if err, ok := s.deleteErrBy[id]; ok {
		return err
	}

	coll, ok := s.data[path]
	if !ok {
		return errors.NewNotFoundError("entity", id)
	}
	if _, ok := coll[id]; !ok {
		return errors.NewNotFoundError("entity", id)
	}
	delete(coll, id)
	return nil
}

// Helper methods for testing

// Get returns the stored values for path/id, if present.
func (s *Store) Get(path, id string) (map[string]any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values, ok := s.data[path][id]
	if !ok {
		return nil, false
	}
	return cloneValues(values), true
}

// Count returns the number of records stored under path.
func (s *Store) Count(path string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data[path])
}

// SaveCalls returns how many times Save or Create was invoked.
func (s *Store) SaveCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveCalls
}

// DeleteCalls returns how many times Delete was invoked.
func (s *Store) DeleteCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deleteCalls
}

// Clear removes all data and resets call counts.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]map[string]map[string]any)
	s.saveCalls = 0
	s.deleteCalls = 0
}

func cloneValues(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
