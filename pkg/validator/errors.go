package validator

import "errors"

var (
	// ErrEmptyKind is returned when registering a routine without a kind.
	ErrEmptyKind = errors.New("validator: rule kind is empty")

	// ErrNilRoutine is returned when registering a nil routine.
	ErrNilRoutine = errors.New("validator: rule routine is nil")

	// ErrInvalidParam is returned when a rule parameter has an unusable type or value.
	ErrInvalidParam = errors.New("validator: invalid rule parameter")
)
