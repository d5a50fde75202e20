/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

package firecms

// Entity is a single persisted (or in-flight) record of a schema, identified
// within a collection path. An entity being created has an empty ID until the
// store assigns or validates one.
type Entity struct {
	// ID is the identifier, unique within the collection path.
	ID string

	// Path is the collection path the entity lives under.
	Path string

	// Values is the value map keyed by field name.
	Values map[string]any
}

// Ref returns the entity's storage reference, "path/id".
func (e Entity) Ref() string {
	return e.Path + "/" + e.ID
}
