package messages

import "errors"

var (
	ErrParsingCancelled  = errors.New("message parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidCode       = errors.New("invalid message code")
	ErrUnsupportedFormat = errors.New("unsupported message file format")
	ErrLoadingCancelled  = errors.New("loading message file cancelled")
	ErrFailedToReadFile  = errors.New("failed to read message file")
	ErrFailedToParseFile = errors.New("failed to parse message file")
	ErrInvalidAdapter    = errors.New("invalid message adapter")
	ErrFailedToApply     = errors.New("failed to apply message overrides")
)
