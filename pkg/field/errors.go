package field

import "errors"

var (
	ErrInvalidName         = errors.New("field name is empty")
	ErrUnknownKind         = errors.New("unknown field kind")
	ErrUnsupportedProperty = errors.New("property not supported by field kind")
	ErrInvalidProperty     = errors.New("invalid property value")
	ErrInvalidWrap         = errors.New("invalid wrap value")
)
