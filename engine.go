/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

package firecms

import (
	"log/slog"

	"github.com/diegotc86/firecms/datastore"
)

// DefaultMaxConcurrency bounds batch fan-out against the store when no
// explicit limit is configured.
const DefaultMaxConcurrency = 8

// Engine orchestrates the entity lifecycle: it runs save and delete
// operations through their schema's hook pipeline, converts hook and store
// failures into typed outcomes, and aggregates batches.
//
// The engine does not serialize concurrent operations on the same entity id;
// two concurrent saves to one id race at the store layer and the store's own
// concurrency control governs the outcome.
type Engine struct {
	store          datastore.DocumentStore
	notifier       Notifier
	logger         *slog.Logger
	maxConcurrency int
}

// Option configures an Engine.
type Option func(*Engine)

// WithNotifier forwards one Notification per operation to n.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMaxConcurrency bounds the number of concurrent store operations during
// batch fan-out. Values below 1 are clamped to 1.
func WithMaxConcurrency(n int) Option {
	return func(e *Engine) { e.maxConcurrency = n }
}

// New creates an Engine on top of the given document store.
func New(store datastore.DocumentStore, opts ...Option) *Engine {
	e := &Engine{
		store:          store,
		maxConcurrency: DefaultMaxConcurrency,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.maxConcurrency < 1 {
		e.maxConcurrency = 1
	}
	return e
}

// notify emits exactly one notification for a finished operation, to the
// configured sink and to the structured log.
func (e *Engine) notify(n Notification, attrs ...any) {
	switch n.Severity {
	case SeverityError:
		e.logger.Error(n.Title, append(attrs, "body", n.Body)...)
	case SeverityWarning:
		e.logger.Warn(n.Title, append(attrs, "body", n.Body)...)
	default:
		e.logger.Info(n.Title, append(attrs, "body", n.Body)...)
	}
	if e.notifier != nil {
		e.notifier.Notify(n)
	}
}
