package dnscheck

import "errors"

var (
	ErrUnknownRecordType     = errors.New("unknown DNS record type")
	ErrUnsupportedRecordType = errors.New("DNS record type cannot be checked")
	ErrEmptyHost             = errors.New("empty host")
	ErrInvalidHost           = errors.New("host cannot be converted to ASCII")
	ErrNotResolved           = errors.New("host could not be resolved")
)
