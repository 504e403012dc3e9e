package config

import "errors"

var (
	// ErrParsingConfig wraps env tag parse failures, such as a bad FORMKIT_* value.
	ErrParsingConfig = errors.New("config: cannot parse environment")

	// ErrConfigNotLoaded means Load ran before for this type but cached nothing.
	ErrConfigNotLoaded = errors.New("config: settings not loaded")

	ErrNilPointer = errors.New("config: Load needs a non-nil pointer")

	ErrLoadingEnvFile = errors.New("config: cannot read env file")

	// ErrInvalidConfig is returned when loaded settings fail their validate tags.
	ErrInvalidConfig = errors.New("config: invalid settings")
)
