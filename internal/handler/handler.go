// Package handler is the HTTP entry point for the business logic.
//
// Handlers bind and validate requests through the validation package,
// call the service layer and write the result as JSON.
package handler
