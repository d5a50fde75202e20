/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

package firecms

import (
	"context"

	"github.com/diegotc86/firecms/datastore"
	"github.com/diegotc86/firecms/errors"
	"github.com/diegotc86/firecms/schema"
)

// SaveRequest describes one save operation.
type SaveRequest struct {
	// Schema is the entity type descriptor, shared read-only.
	Schema *schema.Schema

	// Path is the collection path to persist under.
	Path string

	// ID is the target identifier. Empty under the auto policy for new
	// entities; the store assigns one.
	ID string

	// Values is the value map to persist, subject to the OnPreSave
	// transform.
	Values map[string]any

	// Status tags the target as new, existing or copy.
	Status schema.EntityStatus

	// Context is the ambient caller context passed to every hook.
	Context schema.OperationContext
}

// DeleteRequest describes one delete operation.
type DeleteRequest struct {
	Schema  *schema.Schema
	Path    string
	Entity  Entity
	Context schema.OperationContext
}

// Save runs one entity save through the full hook pipeline and returns its
// outcome. Exactly one notification describing the outcome is emitted.
func (e *Engine) Save(ctx context.Context, req SaveRequest) Outcome {
	out := e.save(ctx, req)
	e.notify(Report(out, req.Schema.Name), "op", out.Op, "path", req.Path, "id", out.Entity.ID)
	return out
}

// Delete runs one entity delete through the full hook pipeline and returns
// its outcome. Exactly one notification describing the outcome is emitted.
func (e *Engine) Delete(ctx context.Context, req DeleteRequest) Outcome {
	out := e.delete(ctx, req)
	e.notify(Report(out, req.Schema.Name), "op", out.Op, "path", req.Path, "id", out.Entity.ID)
	return out
}

// save is the un-notified pipeline shared by Save and BatchSave.
func (e *Engine) save(ctx context.Context, req SaveRequest) Outcome {
	values := req.Values
	props := schema.SaveProps{
		Schema:  req.Schema,
		Path:    req.Path,
		ID:      req.ID,
		Values:  values,
		Status:  req.Status,
		Context: req.Context,
	}

	// Phase 1: pre-save transform. A failure here aborts the save before
	// any store write.
	transformed, ran, hookErr := invokePreSave(ctx, req.Schema, props)
	if hookErr != nil {
		return Outcome{
			Op:     OpSave,
			Entity: Entity{ID: req.ID, Path: req.Path, Values: values},
			Err:    hookErr,
		}
	}
	if ran && transformed != nil {
		values = transformed
		props.Values = values
	}

	// Phase 2: identifier policy, checked before the store is touched.
	// Only entities being created are subject to the policy.
	if req.Status.IsNew() {
		if err := req.Schema.ID.ValidateID(req.ID); err != nil {
			return Outcome{
				Op:     OpSave,
				Entity: Entity{ID: req.ID, Path: req.Path, Values: values},
				Err:    err,
			}
		}
	}

	// A cancellation that arrives before the store call aborts like a
	// pre-hook failure. Once the store call starts it runs to completion.
	if err := ctx.Err(); err != nil {
		return Outcome{
			Op:     OpSave,
			Entity: Entity{ID: req.ID, Path: req.Path, Values: values},
			Err:    err,
		}
	}

	// Phase 3: persist. New entities with a caller-chosen id go through a
	// create-only write when the store supports it.
	assignedID, storeErr := e.persist(ctx, req, values)
	if storeErr != nil {
		ent := Entity{ID: req.ID, Path: req.Path, Values: values}
		postErr := invokeSaveHook(ctx, errors.PhasePostSaveFailure, req.Schema.Hooks.OnSaveFailure, props)
		return Outcome{
			Op:      OpSave,
			Entity:  ent,
			Err:     errors.NewStoreError("save", req.Path, req.ID, storeErr),
			HookErr: postErr,
		}
	}

	ent := Entity{ID: assignedID, Path: req.Path, Values: values}
	props.ID = assignedID

	// Phase 4: post-success hook. Its failure does not reverse the write;
	// the save stays a success with the hook error attached.
	postErr := invokeSaveHook(ctx, errors.PhasePostSaveSuccess, req.Schema.Hooks.OnSaveSuccess, props)
	return Outcome{
		Op:      OpSave,
		Entity:  ent,
		HookErr: postErr,
	}
}

func (e *Engine) persist(ctx context.Context, req SaveRequest, values map[string]any) (string, error) {
	if creator, ok := e.store.(datastore.Creator); ok && req.Status == schema.StatusNew && req.ID != "" {
		return creator.Create(ctx, req.Path, req.ID, values)
	}
	return e.store.Save(ctx, req.Path, req.ID, values)
}

// delete is the un-notified pipeline shared by Delete and BatchDelete.
func (e *Engine) delete(ctx context.Context, req DeleteRequest) Outcome {
	ent := req.Entity
	ent.Path = req.Path
	props := schema.DeleteProps{
		Schema:  req.Schema,
		Path:    req.Path,
		ID:      ent.ID,
		Values:  ent.Values,
		Context: req.Context,
	}

	// Phase 1: pre-delete gate. A failure blocks the delete entirely; the
	// store is never called.
	if hookErr := invokeDeleteHook(ctx, errors.PhasePreDelete, req.Schema.Hooks.OnPreDelete, props); hookErr != nil {
		return Outcome{Op: OpDelete, Entity: ent, Err: hookErr}
	}

	if err := ctx.Err(); err != nil {
		return Outcome{Op: OpDelete, Entity: ent, Err: err}
	}

	// Phase 2: delete from the store.
	if err := e.store.Delete(ctx, req.Path, ent.ID); err != nil {
		return Outcome{
			Op:     OpDelete,
			Entity: ent,
			Err:    errors.NewStoreError("delete", req.Path, ent.ID, err),
		}
	}

	// Phase 3: post-delete hook. The record is already gone, so a failure
	// here leaves the delete a success.
	postErr := invokeDeleteHook(ctx, errors.PhasePostDelete, req.Schema.Hooks.OnDelete, props)
	return Outcome{Op: OpDelete, Entity: ent, HookErr: postErr}
}
