// Package errs defines the error shapes the API returns to clients.
//
// Every failure that leaves the service is rendered as an HTTPError,
// optionally carrying field-level errors produced by request validation.
package errs
