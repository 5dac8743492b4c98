// Package handler is the HTTP layer between the router and the services.
//
// Handlers receive an already decoded payload, call a service and return
// the value to render. Decoding, error translation, logging and tracing
// are done once in handleRequest.
package handler
