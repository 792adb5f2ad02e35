// Package repository contains data access logic for names, separated
// from HTTP handlers. Errors defined here are sentinel values that
// handlers translate into HTTP statuses.
package repository

import "errors"

// ErrPersistence is returned when the store rejects an operation
// (constraint violation, e.g. a gender outside the allowed set) or the
// connection fails mid-statement. Handlers should translate this into
// an HTTP 500 response.
var ErrPersistence = errors.New("persistence failure")
