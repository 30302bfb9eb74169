// Package middleware contains the HTTP middleware specific to this API:
// request tracing with a request-scoped logger and Prometheus request
// metrics. Generic middleware (request IDs, panic recovery, content-type
// checks) comes from chi's middleware package.
package middleware
