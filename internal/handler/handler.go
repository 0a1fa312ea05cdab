// Package handler is the HTTP layer between the router and the services.
//
// Endpoints are typed functions wrapped by Handle, which binds the request
// into its schema, runs Validate, calls the service and writes JSON. Errors
// are returned unchanged to echo's error handler.
package handler
