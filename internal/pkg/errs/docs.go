// Package errs provides the typed errors shared by the pickup-request pipeline.
//
// Every type follows one pattern:
//   - a sentinel error (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the parameter name and an optional cause
//   - NewXxx and NewXxxWithCause constructors
//   - Unwrap returning the sentinel
//
// Validation failures in wizard steps surface as ValueIsRequiredError or
// ValueIsInvalidError, a destination store equal to the origin store surfaces
// as ValueIsConflictingError, and lookups of unknown flows, stores or managers
// surface as ObjectNotFoundError.
package errs
