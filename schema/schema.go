/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

package schema

import (
	"fmt"

	"github.com/diegotc86/firecms/errors"
)

// IDMode selects how entity identifiers are produced for new entities.
type IDMode string

const (
	// IDAuto lets the document store assign an identifier.
	IDAuto IDMode = "auto"

	// IDCustom requires the caller to supply an identifier.
	IDCustom IDMode = "custom"

	// IDEnumerated restricts the identifier to a fixed set of allowed values.
	IDEnumerated IDMode = "enumerated"
)

// IDPolicy describes how identifiers are chosen for entities of a schema.
// The zero value is the auto policy.
type IDPolicy struct {
	Mode    IDMode
	Allowed []string
}

// AutoID returns the policy where the store assigns identifiers.
func AutoID() IDPolicy {
	return IDPolicy{Mode: IDAuto}
}

// CustomID returns the policy where the caller chooses identifiers.
func CustomID() IDPolicy {
	return IDPolicy{Mode: IDCustom}
}

// EnumeratedID returns the policy where the identifier must be one of values.
func EnumeratedID(values ...string) IDPolicy {
	return IDPolicy{Mode: IDEnumerated, Allowed: values}
}

// ValidateID checks a caller-supplied identifier against the policy.
// It applies to entities being created (new or copied); existing entities
// already carry a persisted identifier.
func (p IDPolicy) ValidateID(id string) error {
	switch p.Mode {
	case IDCustom:
		if id == "" {
			return errors.NewValidationError("id", "identifier is required by the schema")
		}
	case IDEnumerated:
		for _, v := range p.Allowed {
			if v == id {
				return nil
			}
		}
		return errors.NewValidationError("id", fmt.Sprintf("%q is not one of the allowed values", id))
	}
	return nil
}

// EntityStatus tags an in-flight save with the target's provenance.
// It determines whether identifier-policy checks apply.
type EntityStatus string

const (
	// StatusNew marks an entity being created for the first time.
	StatusNew EntityStatus = "new"

	// StatusExisting marks an already-persisted entity being re-saved.
	StatusExisting EntityStatus = "existing"

	// StatusCopy marks a copy of an existing entity being saved as new.
	StatusCopy EntityStatus = "copy"
)

// IsNew reports whether identifier-policy checks apply for this status.
func (s EntityStatus) IsNew() bool {
	return s == StatusNew || s == StatusCopy
}

// OperationContext carries ambient, read-only caller information through
// every hook call. The engine never mutates or persists it.
type OperationContext map[string]any

// Schema is the immutable descriptor for one entity type: display name,
// identifier policy, ordered property declarations, defaults for new
// entities, and the optional lifecycle hooks.
//
// A Schema is constructed once at configuration time and shared read-only by
// all operations on that entity type.
type Schema struct {
	// Name is the human-facing display name, e.g. "Product".
	Name string

	// Description is an optional longer description.
	Description string

	// ID is the identifier policy applied when entities are created.
	ID IDPolicy

	// Properties holds the ordered field declarations.
	Properties []Property

	// Hooks holds the optional lifecycle callbacks.
	Hooks Hooks
}

// Defaults returns the default value map for a new entity, taken from the
// property declarations in order. Properties without a default are omitted.
func (s *Schema) Defaults() map[string]any {
	values := make(map[string]any, len(s.Properties))
	for _, p := range s.Properties {
		if p.Default != nil {
			values[p.Name] = p.Default
		}
	}
	return values
}

// Property returns the declaration for the named field, if present.
func (s *Schema) Property(name string) (Property, bool) {
	for _, p := range s.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}
