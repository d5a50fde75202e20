/*
Package firecms provides a schema-driven entity persistence engine sitting
between a UI and a document store. Callers describe an entity type
declaratively (field set, identifier policy, lifecycle hooks) and the engine
performs create/update/delete operations honoring that declaration: running
pre/post hooks in a fixed order, validating identifiers before any store
write, and aggregating success and failure across single and batch operations.

Key Features:
  - Typed lifecycle hook pipeline (OnPreSave, OnSaveSuccess, OnSaveFailure,
    OnPreDelete, OnDelete) with panic containment at the hook boundary
  - Identifier policies: store-assigned, caller-chosen, or enumerated sets
  - Structured outcomes instead of exceptions: every operation returns
    exactly one Outcome, every batch one BatchOutcome
  - Three-way batch classification (all-succeeded / partial / all-failed)
    with bounded-concurrency fan-out against the store
  - Pure, deterministic mapping of outcomes to UI notifications
  - Pluggable document store backend (DynamoDB, in-memory mock)

Basic Usage:

	store := mock.New() // or ddb.New(client, table)
	engine := firecms.New(store,
	    firecms.WithNotifier(snackbar),
	    firecms.WithMaxConcurrency(16),
	)

	out := engine.Save(ctx, firecms.SaveRequest{
	    Schema: productSchema,
	    Path:   "products",
	    Values: map[string]any{"name": "Widget"},
	    Status: schema.StatusNew,
	})
	if !out.Succeeded() {
	    // out.Err is a typed ValidationError, HookError or StoreError
	}

	batch := engine.BatchDelete(ctx, firecms.BatchDeleteRequest{
	    Schema:   productSchema,
	    Path:     "products",
	    Entities: selected,
	    OnComplete: func(deleted []firecms.Entity) {
	        // reconcile the displayed list with what the store holds
	    },
	})
	switch batch.Classification() {
	case firecms.AllSucceeded, firecms.Partial, firecms.AllFailed:
	}

The engine performs no entity-level locking: concurrent operations on the
same id race at the store layer and the store's concurrency control governs
the result.
*/
package firecms
