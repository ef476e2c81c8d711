// Package errs defines the application error types and constructors.
//
// Every error that reaches a client goes through *HTTPError so responses
// share one JSON shape.
package errs
