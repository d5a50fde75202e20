/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

package firecms

import (
	"fmt"

	"github.com/diegotc86/firecms/errors"
)

// Severity grades a notification for the UI sink.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is the human-facing message record derived from an outcome.
type Notification struct {
	Severity Severity
	Title    string
	Body     string
}

// Notifier is the external sink notifications are forwarded to, typically a
// snackbar or toast in the consuming UI.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Report maps a single-operation outcome to its notification. It is a pure
// function: the same outcome shape always yields the same message template.
func Report(o Outcome, displayName string) Notification {
	verb := verbFor(o.Op)

	if o.Succeeded() {
		if o.HookErr != nil {
			return Notification{
				Severity: SeverityWarning,
				Title:    fmt.Sprintf("%s %s", displayName, verb),
				Body:     fmt.Sprintf("%s %q has been %s, but the %s hook failed: %v", displayName, o.Entity.ID, verb, o.HookErr.Phase, o.HookErr.Cause),
			}
		}
		return Notification{
			Severity: SeveritySuccess,
			Title:    fmt.Sprintf("%s %s", displayName, verb),
			Body:     fmt.Sprintf("%s %q has been %s", displayName, o.Entity.ID, verb),
		}
	}

	if he, ok := errors.AsHookError(o.Err); ok && (he.Phase == errors.PhasePreSave || he.Phase == errors.PhasePreDelete) {
		return Notification{
			Severity: SeverityError,
			Title:    fmt.Sprintf("%s %s blocked", displayName, string(o.Op)),
			Body:     o.Err.Error(),
		}
	}
	if errors.IsNotFound(o.Err) {
		return Notification{
			Severity: SeverityError,
			Title:    fmt.Sprintf("%s not %s", displayName, verb),
			Body:     fmt.Sprintf("%s %q was not found", displayName, o.Entity.ID),
		}
	}
	return Notification{
		Severity: SeverityError,
		Title:    fmt.Sprintf("%s not %s", displayName, verb),
		Body:     o.Err.Error(),
	}
}

// ReportBatch maps a batch outcome to its single aggregate notification.
func ReportBatch(b BatchOutcome, displayName string) Notification {
	total := len(b.Outcomes)
	if total == 0 {
		return Notification{
			Severity: SeveritySuccess,
			Title:    fmt.Sprintf("No %s entities to process", displayName),
			Body:     "The batch was empty",
		}
	}

	verb := verbFor(b.Outcomes[0].Op)
	succeeded := len(b.Succeeded())

	switch b.Classification() {
	case AllSucceeded:
		return Notification{
			Severity: SeveritySuccess,
			Title:    fmt.Sprintf("%s entities %s", displayName, verb),
			Body:     fmt.Sprintf("All %d entities were %s", total, verb),
		}
	case AllFailed:
		return Notification{
			Severity: SeverityError,
			Title:    fmt.Sprintf("%s entities not %s", displayName, verb),
			Body:     fmt.Sprintf("None of the %d entities were %s", total, verb),
		}
	default:
		return Notification{
			Severity: SeverityWarning,
			Title:    fmt.Sprintf("Some %s entities were not %s", displayName, verb),
			Body:     fmt.Sprintf("%d of %d entities were %s", succeeded, total, verb),
		}
	}
}

func verbFor(op Op) string {
	if op == OpDelete {
		return "deleted"
	}
	return "saved"
}
