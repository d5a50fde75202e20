/*
Package datastore defines the document store contract consumed by the FireCMS
persistence engine.

The main interface is DocumentStore, a deliberately narrow write-side contract:

	type DocumentStore interface {
	    Save(ctx context.Context, path, id string, values map[string]any) (string, error)
	    Delete(ctx context.Context, path, id string) error
	}

Stores that can enforce create-only semantics additionally implement Creator;
the engine uses it for new entities with caller-chosen identifiers so that an
accidental overwrite surfaces as errors.ErrAlreadyExists.

Implementations:
  - ddb: DynamoDB implementation using a single table keyed by collection
    path and entity id
  - mock: in-memory implementation with error injection for testing
*/
package datastore
