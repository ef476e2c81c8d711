// Package middleware stores the global middleware of the HTTP server.
//
// These intercept requests to handle cross-cutting concerns such as
// request ids, request logging, CORS, secure headers, rate limiting,
// tracing and panic recovery, and funnel every error into one response shape.
package middleware
