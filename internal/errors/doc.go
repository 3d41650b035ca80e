// Package errors provides structured error handling for the tactics engine.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers for config and equip checks
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("creature preset not found")
//	err := errors.InvalidArgumentf("invalid facing: %d", facing)
//
// Adding metadata:
//
//	err := errors.NotFound("creature preset not found").
//	    WithMeta("preset_id", presetID)
//
// Wrapping errors:
//
//	if err := repo.Append(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to append combat log")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Roller == nil {
//	    vb.RequiredField("Roller")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layering Guidelines
//
// Game-condition failures (a blocked attack, an exhausted resource, a failed
// to-hit roll) are values returned by the rules core, never errors from this
// package. Errors here mean a data or programming bug: a missing dependency,
// an unknown preset id, an equip combination the rules forbid.
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Resource not found
//   - InvalidArgument: Invalid input provided
//   - AlreadyExists: Resource already exists
//   - FailedPrecondition: Operation requirements not met
//   - ResourceExhausted: Resource budget exceeded
//   - OutOfRange: Value out of valid range
//   - Internal: Internal engine error
//   - Unavailable: Backing store temporarily unavailable
package errors
