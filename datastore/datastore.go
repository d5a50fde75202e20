/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

package datastore

import "context"

// DocumentStore is the engine's write-side contract with the underlying
// document database. The engine only needs put and delete by collection
// path and id; reads, queries and the persisted shape are owned by the store.
type DocumentStore interface {
	// Save persists values under path/id and returns the definitive id.
	// An empty id asks the store to assign one.
	Save(ctx context.Context, path, id string, values map[string]any) (string, error)

	// Delete removes the record at path/id. Deleting a missing id returns
	// an error matching errors.ErrNotFound.
	Delete(ctx context.Context, path, id string) error
}

// Creator is implemented by stores that can enforce create-only writes.
// Create behaves like Save but fails with an error matching
// errors.ErrAlreadyExists when a record already exists at path/id.
type Creator interface {
	Create(ctx context.Context, path, id string, values map[string]any) (string, error)
}
