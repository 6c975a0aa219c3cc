// Package errs provides the typed errors shared by the rate finder's domain
// and application layers.
//
// Every error type follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ...) usable with errors.Is
//   - a struct carrying the offending parameter and an optional Cause
//   - New...Error and New...ErrorWithCause constructors
//   - Error() for the message and Unwrap() returning the sentinel
//
// The HTTP adapter relies on the sentinels to tell user-correctable input
// problems apart from missing records.
package errs
