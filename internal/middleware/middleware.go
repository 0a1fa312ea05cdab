// Package middleware holds the echo middleware shared by every route:
// request ids, request-scoped logging, New Relic tracing, rate limiting,
// CORS, secure headers, panic recovery and the global error handler.
package middleware
