/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

package schema

import "context"

// SaveProps is the argument bundle passed to save-side lifecycle hooks.
// All fields are read-only from the hook's perspective.
type SaveProps struct {
	// Schema is the entity type being saved.
	Schema *Schema

	// Path is the collection path the entity is persisted under.
	Path string

	// ID is the entity identifier, empty when the store will assign one.
	ID string

	// Values is the value map about to be (or just) persisted.
	Values map[string]any

	// Status tags the save as new, existing or copy.
	Status EntityStatus

	// Context is the ambient caller context.
	Context OperationContext
}

// DeleteProps is the argument bundle passed to delete-side lifecycle hooks.
type DeleteProps struct {
	Schema *Schema
	Path   string
	ID     string

	// Values holds the entity's last known value map.
	Values map[string]any

	Context OperationContext
}

// PreSaveHook runs before a save. The returned map replaces the values to be
// persisted; a nil map with a nil error keeps the incoming values. An error
// aborts the save before any store write.
type PreSaveHook func(ctx context.Context, props SaveProps) (map[string]any, error)

// SaveHook runs after a save attempt (on success or on failure).
type SaveHook func(ctx context.Context, props SaveProps) error

// DeleteHook runs before or after a delete.
type DeleteHook func(ctx context.Context, props DeleteProps) error

// Hooks holds the optional lifecycle callbacks of a schema. A nil field means
// the slot is absent; the engine distinguishes absent hooks from hooks that
// ran and returned nothing.
type Hooks struct {
	// OnPreSave transforms the value map before persistence. An error or
	// panic aborts the save.
	OnPreSave PreSaveHook

	// OnSaveSuccess runs after the store write succeeded. Its failure does
	// not undo the write.
	OnSaveSuccess SaveHook

	// OnSaveFailure runs after the store write failed.
	OnSaveFailure SaveHook

	// OnPreDelete runs before the store deletion. An error or panic blocks
	// the delete.
	OnPreDelete DeleteHook

	// OnDelete runs after the store deletion succeeded.
	OnDelete DeleteHook
}
