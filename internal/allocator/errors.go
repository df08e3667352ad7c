package allocator

import "errors"

// ErrCapacity is returned when there are more names than seats.  The
// allocation is not attempted.
var ErrCapacity = errors.New("not enough seats")

// ErrDuplicateName is returned when the same name is listed twice.  A name
// can hold at most one seat, so the roster must be fixed first.
var ErrDuplicateName = errors.New("duplicate name")

// ErrInvalidLayout is returned when a layout has no tables or no seats.
var ErrInvalidLayout = errors.New("invalid layout")
