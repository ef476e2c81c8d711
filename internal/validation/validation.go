// Package validation binds request data and validates it.
//
// Payload types declare their rules with `validator` struct tags; the
// resulting errors are converted into field errors the client can read.
package validation
