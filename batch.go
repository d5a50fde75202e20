/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

package firecms

import (
	"context"

	"github.com/diegotc86/firecms/internal/fanout"
	"github.com/diegotc86/firecms/schema"
)

// BatchDeleteRequest describes a batch of deletes sharing one schema and
// collection path.
type BatchDeleteRequest struct {
	Schema   *schema.Schema
	Path     string
	Entities []Entity
	Context  schema.OperationContext

	// OnComplete, when set, receives the succeeded targets in their
	// original relative order. It is invoked when the batch classifies as
	// all-succeeded or partial, so downstream state can be reconciled with
	// what the store actually holds. It is not invoked on all-failed.
	OnComplete func(succeeded []Entity)
}

// SaveItem is one target of a batch save.
type SaveItem struct {
	ID     string
	Values map[string]any
	Status schema.EntityStatus
}

// BatchSaveRequest describes a batch of saves sharing one schema and
// collection path.
type BatchSaveRequest struct {
	Schema  *schema.Schema
	Path    string
	Items   []SaveItem
	Context schema.OperationContext

	// OnComplete behaves as in BatchDeleteRequest.
	OnComplete func(succeeded []Entity)
}

// BatchDelete deletes the given entities concurrently, bounded by the
// engine's max concurrency, and joins on the full set before returning.
// Items are independent; their hooks and store calls have no ordering
// dependency. Exactly one notification describes the aggregate outcome.
func (e *Engine) BatchDelete(ctx context.Context, req BatchDeleteRequest) BatchOutcome {
	if len(req.Entities) == 0 {
		return BatchOutcome{Outcomes: []Outcome{}}
	}

	outcomes := fanout.Run(ctx, e.maxConcurrency, req.Entities, func(ctx context.Context, ent Entity) Outcome {
		return e.delete(ctx, DeleteRequest{
			Schema:  req.Schema,
			Path:    req.Path,
			Entity:  ent,
			Context: req.Context,
		})
	})

	return e.finishBatch(BatchOutcome{Outcomes: outcomes}, req.Schema, req.Path, req.OnComplete)
}

// BatchSave saves the given items concurrently, with the same join and
// aggregation semantics as BatchDelete.
func (e *Engine) BatchSave(ctx context.Context, req BatchSaveRequest) BatchOutcome {
	if len(req.Items) == 0 {
		return BatchOutcome{Outcomes: []Outcome{}}
	}

	outcomes := fanout.Run(ctx, e.maxConcurrency, req.Items, func(ctx context.Context, item SaveItem) Outcome {
		return e.save(ctx, SaveRequest{
			Schema:  req.Schema,
			Path:    req.Path,
			ID:      item.ID,
			Values:  item.Values,
			Status:  item.Status,
			Context: req.Context,
		})
	})

	return e.finishBatch(BatchOutcome{Outcomes: outcomes}, req.Schema, req.Path, req.OnComplete)
}

func (e *Engine) finishBatch(b BatchOutcome, s *schema.Schema, path string, onComplete func([]Entity)) BatchOutcome {
	class := b.Classification()
	if onComplete != nil && class != AllFailed {
		onComplete(b.Succeeded())
	}

	e.notify(ReportBatch(b, s.Name),
		"path", path,
		"classification", class,
		"total", len(b.Outcomes),
		"succeeded", len(b.Succeeded()),
	)
	return b
}
