// Package repository defines the MySQL data access layer and the sentinel
// errors shared by its repositories.  Handlers translate these values into
// HTTP status codes.
package repository

import "errors"

// ErrAllocationNotFound is returned when no allocation has the requested
// ID.  Handlers should translate this into an HTTP 404 response.
var ErrAllocationNotFound = errors.New("allocation not found")

// ErrOccupantNotFound is returned when the named person holds no seat in
// the allocation.  Handlers should translate this into an HTTP 404 response.
var ErrOccupantNotFound = errors.New("occupant not found")
