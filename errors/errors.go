/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create an entity that already exists
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrHookFailed is returned when a lifecycle hook raises an error
	ErrHookFailed = errors.New("lifecycle hook failed")

	// ErrStoreFailed is returned when the underlying document store reports an error
	ErrStoreFailed = errors.New("store operation failed")
)

// HookPhase identifies the lifecycle phase a hook ran in.
type HookPhase string

const (
	PhasePreSave         HookPhase = "pre-save"
	PhasePostSaveSuccess HookPhase = "post-save-success"
	PhasePostSaveFailure HookPhase = "post-save-failure"
	PhasePreDelete       HookPhase = "pre-delete"
	PhasePostDelete      HookPhase = "post-delete"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error, such as an entity
// identifier that violates the schema's identifier policy.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// HookError represents a failure raised inside a lifecycle hook body.
// Phase identifies where in the save/delete pipeline the hook ran.
type HookError struct {
	Phase HookPhase
	Cause error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("%s hook failed: %v", e.Phase, e.Cause)
}

func (e *HookError) Unwrap() error {
	return e.Cause
}

func (e *HookError) Is(target error) bool {
	return target == ErrHookFailed
}

// StoreError represents a failure reported by the underlying document store.
type StoreError struct {
	Op    string
	Path  string
	ID    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed for %q in %q: %v", e.Op, e.ID, e.Path, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStoreFailed
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entityType, key string) error {
	return &AlreadyExistsError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewHookError creates a new HookError for the given phase.
// It returns the concrete type so callers can inspect the phase.
func NewHookError(phase HookPhase, cause error) *HookError {
	return &HookError{Phase: phase, Cause: cause}
}

// NewStoreError creates a new StoreError wrapping the store's cause.
func NewStoreError(op, path, id string, cause error) error {
	return &StoreError{Op: op, Path: path, ID: id, Cause: cause}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsHookFailure checks if an error is a lifecycle hook failure
func IsHookFailure(err error) bool {
	return errors.Is(err, ErrHookFailed)
}

// IsStoreFailure checks if an error is a store failure
func IsStoreFailure(err error) bool {
	return errors.Is(err, ErrStoreFailed)
}

// AsHookError extracts a HookError from err's chain, if any.
func AsHookError(err error) (*HookError, bool) {
	var he *HookError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}
