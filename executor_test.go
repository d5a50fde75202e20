/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

package firecms

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegotc86/firecms/datastore/mock"
	"github.com/diegotc86/firecms/errors"
	"github.com/diegotc86/firecms/schema"
)

// recordingNotifier captures forwarded notifications.
type recordingNotifier struct {
	mu            sync.Mutex
	notifications []Notification
}

func (r *recordingNotifier) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recordingNotifier) all() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.notifications...)
}

func newTestEngine(store *mock.Store, opts ...Option) *Engine {
	opts = append(opts, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return New(store, opts...)
}

func productSchema(hooks schema.Hooks) *schema.Schema {
	return &schema.Schema{
		Name: "Product",
		ID:   schema.AutoID(),
		Properties: []schema.Property{
			schema.String("name", "Name"),
			schema.Number("price", "Price"),
		},
		Hooks: hooks,
	}
}

func TestSaveWithoutHooksIsPassthrough(t *testing.T) {
	store := mock.New()
	engine := newTestEngine(store)

	out := engine.Save(context.Background(), SaveRequest{
		Schema: productSchema(schema.Hooks{}),
		Path:   "products",
		Values: map[string]any{"name": "Widget"},
		Status: schema.StatusNew,
	})

	require.True(t, out.Succeeded())
	assert.Equal(t, OpSave, out.Op)
	assert.NotEmpty(t, out.Entity.ID, "store should have assigned an id")
	assert.Nil(t, out.HookErr)

	values, ok := store.Get("products", out.Entity.ID)
	require.True(t, ok)
	assert.Equal(t, "Widget", values["name"])
}

func TestSavePreSaveTransformReplacesValues(t *testing.T) {
	store := mock.New()
	engine := newTestEngine(store)

	s := productSchema(schema.Hooks{
		OnPreSave: func(ctx context.Context, props schema.SaveProps) (map[string]any, error) {
			out := map[string]any{"name": props.Values["name"], "stamped": true}
			return out, nil
		},
	})

	out := engine.Save(context.Background(), SaveRequest{
		Schema: s,
		Path:   "products",
		Values: map[string]any{"name": "Widget", "dropped": "yes"},
		Status: schema.StatusNew,
	})

	require.True(t, out.Succeeded())
	persisted, ok := store.Get("products", out.Entity.ID)
	require.True(t, ok)
	assert.Equal(t, true, persisted["stamped"])
	assert.NotContains(t, persisted, "dropped", "pre-save result must replace the incoming values")
	assert.Equal(t, true, out.Entity.Values["stamped"])
}

func TestSavePreSaveNilResultKeepsValues(t *testing.T) {
	store := mock.New()
	engine := newTestEngine(store)

	s := productSchema(schema.Hooks{
		OnPreSave: func(ctx context.Context, props schema.SaveProps) (map[string]any, error) {
			return nil, nil
		},
	})

	out := engine.Save(context.Background(), SaveRequest{
		Schema: s,
		Path:   "products",
		Values: map[string]any{"name": "Widget"},
		Status: schema.StatusNew,
	})

	require.True(t, out.Succeeded())
	persisted, _ := store.Get("products", out.Entity.ID)
	assert.Equal(t, "Widget", persisted["name"])
}

func TestSavePreSaveFailureAbortsBeforeStore(t *testing.T) {
	store := mock.New()
	engine := newTestEngine(store)

	s := productSchema(schema.Hooks{
		OnPreSave: func(ctx context.Context, props schema.SaveProps) (map[string]any, error) {
			return nil, fmt.Errorf("refused")
		},
	})

	out := engine.Save(context.Background(), SaveRequest{
		Schema: s,
		Path:   "products",
		Values: map[string]any{"name": "Widget"},
		Status: schema.StatusNew,
	})

	require.False(t, out.Succeeded())
	assert.Equal(t, 0, store.SaveCalls(), "no store write may occur after a pre-save failure")

	he, ok := errors.AsHookError(out.Err)
	require.True(t, ok)
	assert.Equal(t, errors.PhasePreSave, he.Phase)
}

func TestSavePreSavePanicIsContained(t *testing.T) {
	store := mock.New()
	engine := newTestEngine(store)

	s := productSchema(schema.Hooks{
		OnPreSave: func(ctx context.Context, props schema.SaveProps) (map[string]any, error) {
			panic("hook bug")
		},
	})

	out := engine.Save(context.Background(), SaveRequest{
		Schema: s,
		Path:   "products",
		Values: map[string]any{},
		Status: schema.StatusNew,
	})

	require.False(t, out.Succeeded())
	assert.Equal(t, 0, store.SaveCalls())

	he, ok := errors.AsHookError(out.Err)
	require.True(t, ok)
	assert.Equal(t, errors.PhasePreSave, he.Phase)
	assert.Contains(t, he.Cause.Error(), "panic")
}

func TestSaveEnumeratedIDRejectedBeforeStore(t *testing.T) {
	store := mock.New()
	engine := newTestEngine(store)

	s := productSchema(schema.Hooks{})
	s.ID = schema.EnumeratedID("a", "b")

	out := engine.Save(context.Background(), SaveRequest{
		Schema: s,
		Path:   "products",
		ID:     "c",
		Values: map[string]any{},
		Status: schema.StatusNew,
	})

	require.False(t, out.Succeeded())
	assert.True(t, errors.IsValidationError(out.Err))
	assert.Equal(t, 0, store.SaveCalls(), "validation must run before any store call")
}

func TestSaveEnumeratedIDAccepted(t *testing.T) {
	store := mock.New()
	engine := newTestEngine(store)

	s := productSchema(schema.Hooks{})
	s.ID = schema.EnumeratedID("a", "b")

	out := engine.Save(context.Background(), SaveRequest{
		Schema: s,
		Path:   "products",
		ID:     "b",
		Values: map[string]any{},
		Status: schema.StatusNew,
	})

	require.True(t, out.Succeeded())
	assert.Equal(t, "b", out.Entity.ID)
}

func TestSaveCustomIDRequired(t *testing.T) {
	store := mock.New()
	engine := newTestEngine(store)

	s := productSchema(schema.Hooks{})
	s.ID = schema.CustomID()

	out := engine.Save(context.Background(), SaveRequest{
		Schema: s,
		Path:   "products",
		Values: map[string]any{},
		Status: schema.StatusNew,
	})

	require.False(t, out.Succeeded())
	assert.True(t, errors.IsValidationError(out.Err))
	assert.Equal(t, 0, store.SaveCalls())
}

func TestSaveExistingStatusSkipsIDPolicy(t *testing.T) {
	store := mock.New()
	engine := newTestEngine(store)

	s := productSchema(schema.Hooks{})
	s.ID = schema.EnumeratedID("a", "b")

	// An existing entity keeps its persisted id even if the policy changed.
	out := engine.Save(context.Background(), SaveRequest{
		Schema: s,
		Path:   "products",
		ID:     "legacy",
		Values: map[string]any{},
		Status: schema.StatusExisting,
	})

	require.True(t, out.Succeeded())
	assert.Equal(t, "legacy", out.Entity.ID)
}

func TestSaveNewWithCustomIDUsesCreate(t *testing.T) {
	store := mock.New()
	engine := newTestEngine(store)

	s := productSchema(schema.Hooks{})
	s.ID = schema.CustomID()

	req := SaveRequest{
		Schema: s,
		Path:   "products",
		ID:     "p1",
		Values: map[string]any{"v": 1},
		Status: schema.StatusNew,
	}

	require.True(t, engine.Save(context.Background(), req).Succeeded())

	// A second create of the same new id must surface already-exists.
	out := engine.Save(context.Background(), req)
	require.False(t, out.Succeeded())
	assert.True(t, errors.IsStoreFailure(out.Err))
	assert.True(t, errors.IsAlreadyExists(out.Err))
}

func TestSavePostSuccessHookFailureKeepsSuccess(t *testing.T) {
	store := mock.New()
	engine := newTestEngine(store)

	s := productSchema(schema.Hooks{
		OnSaveSuccess: func(ctx context.Context, props schema.SaveProps) error {
			return fmt.Errorf("downstream sync failed")
		},
	})

	out := engine.Save(context.Background(), SaveRequest{
		Schema: s,
		Path:   "products",
		Values: map[string]any{"name": "Widget"},
		Status: schema.StatusNew,
	})

	require.True(t, out.Succeeded(), "store write already committed")
	require.NotNil(t, out.HookErr)
	assert.Equal(t, errors.PhasePostSaveSuccess, out.HookErr.Phase)

	_, ok := store.Get("products", out.Entity.ID)
	assert.True(t, ok, "the entity must remain persisted")
}

func TestSaveStoreFailureInvokesFailureHook(t *testing.T) {
	store := mock.New().WithSaveError(fmt.Errorf("permission denied"))
	var failureHookRan, successHookRan bool

	s := productSchema(schema.Hooks{
		OnSaveSuccess: func(ctx context.Context, props schema.SaveProps) error {
			successHookRan = true
			return nil
		},
		OnSaveFailure: func(ctx context.Context, props schema.SaveProps) error {
			failureHookRan = true
			return nil
		},
	})

	engine := newTestEngine(store)
	out := engine.Save(context.Background(), SaveRequest{
		Schema: s,
		Path:   "products",
		Values: map[string]any{},
		Status: schema.StatusNew,
	})

	require.False(t, out.Succeeded())
	assert.True(t, errors.IsStoreFailure(out.Err))
	assert.True(t, failureHookRan, "OnSaveFailure must run on store failure")
	assert.False(t, successHookRan, "OnSaveSuccess must not run on store failure")
}

func TestSaveFailureHookErrorDoesNotChangeVerdict(t *testing.T) {
	store := mock.New().WithSaveError(fmt.Errorf("conflict"))

	s := productSchema(schema.Hooks{
		OnSaveFailure: func(ctx context.Context, props schema.SaveProps) error {
			return fmt.Errorf("failure hook also broke")
		},
	})

	engine := newTestEngine(store)
	out := engine.Save(context.Background(), SaveRequest{
		Schema: s,
		Path:   "products",
		Values: map[string]any{},
		Status: schema.StatusNew,
	})

	require.False(t, out.Succeeded())
	assert.True(t, errors.IsStoreFailure(out.Err))
	require.NotNil(t, out.HookErr)
	assert.Equal(t, errors.PhasePostSaveFailure, out.HookErr.Phase)
}

func TestSaveCanceledBeforeStoreCall(t *testing.T) {
	store := mock.New()
	engine := newTestEngine(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := engine.Save(ctx, SaveRequest{
		Schema: productSchema(schema.Hooks{}),
		Path:   "products",
		Values: map[string]any{},
		Status: schema.StatusNew,
	})

	require.False(t, out.Succeeded())
	assert.ErrorIs(t, out.Err, context.Canceled)
	assert.Equal(t, 0, store.SaveCalls(), "cancellation before the store call must abort the write")
}

func TestDeleteWithoutHooksIsPassthrough(t *testing.T) {
	store := mock.New()
	engine := newTestEngine(store)
	ctx := context.Background()

	_, err := store.Save(ctx, "products", "p1", map[string]any{"name": "Widget"})
	require.NoError(t, err)

	out := engine.Delete(ctx, DeleteRequest{
		Schema: productSchema(schema.Hooks{}),
		Path:   "products",
		Entity: Entity{ID: "p1"},
	})

	require.True(t, out.Succeeded())
	assert.Equal(t, OpDelete, out.Op)
	assert.Equal(t, 0, store.Count("products"))
}

func TestDeletePreDeleteFailureBlocksDelete(t *testing.T) {
	store := mock.New()
	ctx := context.Background()
	_, err := store.Save(ctx, "products", "p1", nil)
	require.NoError(t, err)

	s := productSchema(schema.Hooks{
		OnPreDelete: func(ctx context.Context, props schema.DeleteProps) error {
			return fmt.Errorf("entity is referenced elsewhere")
		},
	})

	engine := newTestEngine(store)
	out := engine.Delete(ctx, DeleteRequest{
		Schema: s,
		Path:   "products",
		Entity: Entity{ID: "p1"},
	})

	require.False(t, out.Succeeded())
	assert.Equal(t, 1, store.Count("products"), "the record must survive a blocked delete")
	assert.Equal(t, 0, store.DeleteCalls(), "no store delete may be attempted")

	he, ok := errors.AsHookError(out.Err)
	require.True(t, ok)
	assert.Equal(t, errors.PhasePreDelete, he.Phase)
}

func TestDeletePostDeleteHookFailureKeepsSuccess(t *testing.T) {
	store := mock.New()
	ctx := context.Background()
	_, err := store.Save(ctx, "products", "p1", nil)
	require.NoError(t, err)

	s := productSchema(schema.Hooks{
		OnDelete: func(ctx context.Context, props schema.DeleteProps) error {
			return fmt.Errorf("cleanup failed")
		},
	})

	engine := newTestEngine(store)
	out := engine.Delete(ctx, DeleteRequest{
		Schema: s,
		Path:   "products",
		Entity: Entity{ID: "p1"},
	})

	require.True(t, out.Succeeded(), "the record is already gone")
	require.NotNil(t, out.HookErr)
	assert.Equal(t, errors.PhasePostDelete, out.HookErr.Phase)
	assert.Equal(t, 0, store.Count("products"))
}

func TestDeleteStoreFailureSkipsPostHook(t *testing.T) {
	store := mock.New().WithDeleteError(fmt.Errorf("network down"))
	var postHookRan bool

	s := productSchema(schema.Hooks{
		OnDelete: func(ctx context.Context, props schema.DeleteProps) error {
			postHookRan = true
			return nil
		},
	})

	engine := newTestEngine(store)
	out := engine.Delete(context.Background(), DeleteRequest{
		Schema: s,
		Path:   "products",
		Entity: Entity{ID: "p1"},
	})

	require.False(t, out.Succeeded())
	assert.True(t, errors.IsStoreFailure(out.Err))
	assert.False(t, postHookRan, "OnDelete must not run when the store delete failed")
}

func TestDeleteTwiceSurfacesNotFound(t *testing.T) {
	store := mock.New()
	engine := newTestEngine(store)
	ctx := context.Background()

	_, err := store.Save(ctx, "products", "p1", nil)
	require.NoError(t, err)

	req := DeleteRequest{
		Schema: productSchema(schema.Hooks{}),
		Path:   "products",
		Entity: Entity{ID: "p1"},
	}

	require.True(t, engine.Delete(ctx, req).Succeeded())

	// Deleting an already-deleted id must not crash nor mutate state.
	out := engine.Delete(ctx, req)
	require.False(t, out.Succeeded())
	assert.True(t, errors.IsStoreFailure(out.Err))
	assert.True(t, errors.IsNotFound(out.Err))
}

func TestSingleOperationNotifiesExactlyOnce(t *testing.T) {
	store := mock.New()
	notifier := &recordingNotifier{}
	engine := newTestEngine(store, WithNotifier(notifier))
	ctx := context.Background()

	out := engine.Save(ctx, SaveRequest{
		Schema: productSchema(schema.Hooks{}),
		Path:   "products",
		Values: map[string]any{},
		Status: schema.StatusNew,
	})
	require.True(t, out.Succeeded())

	engine.Delete(ctx, DeleteRequest{
		Schema: productSchema(schema.Hooks{}),
		Path:   "products",
		Entity: Entity{ID: out.Entity.ID},
	})

	notifications := notifier.all()
	require.Len(t, notifications, 2, "one notification per operation")
	assert.Equal(t, SeveritySuccess, notifications[0].Severity)
	assert.Equal(t, SeveritySuccess, notifications[1].Severity)
}
