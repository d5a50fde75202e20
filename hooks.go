/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

package firecms

import (
	"context"
	"fmt"

	"github.com/diegotc86/firecms/errors"
	"github.com/diegotc86/firecms/schema"
)

// Hook invocation boundary. A failure inside a hook body, error or panic,
// never crosses this boundary as anything but a typed *errors.HookError.

// invokePreSave runs the schema's OnPreSave hook if present. ran reports
// whether the hook existed, so an absent hook is distinguishable from one
// that ran and kept the incoming values (nil map, nil error).
func invokePreSave(ctx context.Context, s *schema.Schema, props schema.SaveProps) (values map[string]any, ran bool, hookErr *errors.HookError) {
	if s.Hooks.OnPreSave == nil {
		return nil, false, nil
	}
	defer func() {
		if r := recover(); r != nil {
			hookErr = errors.NewHookError(errors.PhasePreSave, fmt.Errorf("panic: %v", r))
		}
	}()

	values, err := s.Hooks.OnPreSave(ctx, props)
	if err != nil {
		return nil, true, errors.NewHookError(errors.PhasePreSave, err)
	}
	return values, true, nil
}

// invokeSaveHook runs a save-side hook (success or failure slot) if present.
func invokeSaveHook(ctx context.Context, phase errors.HookPhase, fn schema.SaveHook, props schema.SaveProps) (hookErr *errors.HookError) {
	if fn == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			hookErr = errors.NewHookError(phase, fmt.Errorf("panic: %v", r))
		}
	}()

	if err := fn(ctx, props); err != nil {
		return errors.NewHookError(phase, err)
	}
	return nil
}

// invokeDeleteHook runs a delete-side hook if present.
func invokeDeleteHook(ctx context.Context, phase errors.HookPhase, fn schema.DeleteHook, props schema.DeleteProps) (hookErr *errors.HookError) {
	if fn == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			hookErr = errors.NewHookError(phase, fmt.Errorf("panic: %v", r))
		}
	}()

	if err := fn(ctx, props); err != nil {
		return errors.NewHookError(phase, err)
	}
	return nil
}
