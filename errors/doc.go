/*
Package errors provides semantic error types for the FireCMS persistence engine.

The package defines the engine's error taxonomy with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound      = errors.New("entity not found")
	    ErrAlreadyExists = errors.New("entity already exists")
	    ErrInvalidInput  = errors.New("invalid input")
	    ErrHookFailed    = errors.New("lifecycle hook failed")
	    ErrStoreFailed   = errors.New("store operation failed")
	)

The taxonomy maps directly onto the save/delete pipeline:

  - ValidationError: the entity identifier violates the schema's identifier
    policy (for example, an id outside the allowed enumerated set). Raised
    before any store call.
  - HookError: a lifecycle hook raised an error or panicked. The Phase field
    tells which hook slot failed (pre-save, post-save-success,
    post-save-failure, pre-delete, post-delete).
  - StoreError: the underlying document store reported an error. The original
    cause is preserved and reachable via errors.Is/errors.As.

Usage:

	out := engine.Delete(ctx, req)
	if errors.IsStoreFailure(out.Err) {
	    // store-level failure, e.g. the record was already gone
	}
	if he, ok := errors.AsHookError(out.Err); ok && he.Phase == errors.PhasePreDelete {
	    // the delete was blocked by the pre-delete hook
	}

	// Create typed errors
	err := errors.NewValidationError("id", "not in allowed values")
	err := errors.NewHookError(errors.PhasePreSave, cause)
	err := errors.NewStoreError("delete", "products", "p1", cause)

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
