// Package errors provides structured error types for npusnap.
//
// StructuredError attaches a classification code to an error so callers can
// distinguish, for example, a diagnostic command that does not exist on the
// current hardware variant (NOT_FOUND, skippable) from one that timed out
// (TIMEOUT, fatal for the run).
//
//	err := errors.Wrap(errors.ErrCodeTimeout, "command timed out", cause)
//	if errors.IsCode(err, errors.ErrCodeTimeout) { ... }
package errors
