package layouts

import "errors"

var (
	// ErrLayoutNotFound is returned when no layout exists for the given id.
	ErrLayoutNotFound = errors.New("layout not found")

	// ErrLastRow is returned when removing a row would leave its section empty.
	ErrLastRow = errors.New("cannot remove the only row of a section")

	// ErrNotSeatingChart is returned when a designer operation targets a
	// general-admission layout. GA layouts are edited through the wizard only.
	ErrNotSeatingChart = errors.New("layout is not a seating chart")
)
