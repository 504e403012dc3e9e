package validator

import "errors"

// Configuration errors. Invalid submitted input is never reported through these;
// it is recorded on the field as a ValidationError.
var (
	// ErrMissingCapability is returned when a validator is bound to a field that lacks a required property.
	ErrMissingCapability = errors.New("field lacks required capability")

	// ErrInvalidOption is returned when a validator option has an unacceptable value.
	ErrInvalidOption = errors.New("invalid validator option")

	// ErrConflictingConfig is returned when a validator and its field configure the same property differently.
	ErrConflictingConfig = errors.New("conflicting validator configuration")

	// ErrUnknownValidator is returned when a registry has no factory for the requested name.
	ErrUnknownValidator = errors.New("unknown validator")

	// ErrNotBound is returned when a field is validated before its validators could be bound.
	ErrNotBound = errors.New("validator is not bound")
)
