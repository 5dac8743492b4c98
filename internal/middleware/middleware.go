// Package middleware holds the Echo middlewares: request ids, request
// scoped loggers, tracing, rate limiting and the global error handler.
package middleware
