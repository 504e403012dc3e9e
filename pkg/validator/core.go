package validator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Value is a raw or sanitized field value: null, a single string or a list of strings.
type Value struct {
	items []string
	list  bool
	set   bool
}

// Null returns the absent value.
func Null() Value {
	return Value{}
}

// String returns a single-valued Value.
func String(s string) Value {
	return Value{items: []string{s}, set: true}
}

// List returns a multi-valued Value. An empty list is not null.
func List(items ...string) Value {
	return Value{items: slices.Clone(items), list: true, set: true}
}

func (v Value) IsNull() bool {
	return !v.set
}

func (v Value) IsList() bool {
	return v.set && v.list
}

// String returns the single value, or the list joined with commas.
// Null values render as an empty string.
func (v Value) String() string {
	if !v.set || len(v.items) == 0 {
		return ""
	}
	if v.list {
		return strings.Join(v.items, ",")
	}
	return v.items[0]
}

// Strings returns a copy of the underlying items. Nil for null values.
func (v Value) Strings() []string {
	if !v.set {
		return nil
	}
	if v.items == nil {
		return []string{}
	}
	return slices.Clone(v.items)
}

// Equal reports whether both values hold the same items in the same shape.
func (v Value) Equal(other Value) bool {
	return v.set == other.set && v.list == other.list && slices.Equal(v.items, other.items)
}

// MarshalJSON encodes null, a string or an array of strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch {
	case !v.set:
		return []byte("null"), nil
	case v.list:
		return json.Marshal(v.Strings())
	default:
		return json.Marshal(v.String())
	}
}

// ValidationError represents a single validation failure recorded on a field.
type ValidationError struct {
	Field          string   `json:"field"`
	Validator      string   `json:"validator"`
	Code           Code     `json:"code"`
	Template       string   `json:"template"`
	Params         []string `json:"params,omitempty"`
	Message        string   `json:"message"`
	TranslationKey string   `json:"translation_key"`
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the formatted messages recorded for the field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// Codes returns the error codes recorded by the named validator, in order.
func (ve ValidationErrors) Codes(validatorName string) []Code {
	var codes []Code
	for _, err := range ve {
		if err.Validator == validatorName {
			codes = append(codes, err.Code)
		}
	}
	return codes
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// Field is the collaborator a validator records errors on and pulls
// configuration from. Properties returns the field's property set, which may
// implement any of the capability interfaces below.
type Field interface {
	Name() string
	DisplayName() string
	AddValidationError(err ValidationError)
	Properties() any
}

// LengthProperties is implemented by fields carrying minlength/maxlength.
type LengthProperties interface {
	MinLength() (int, bool)
	MaxLength() (int, bool)
	SetMinLength(n int)
	SetMaxLength(n int)
}

// PatternProperties is implemented by fields carrying a pattern attribute.
type PatternProperties interface {
	Pattern() (string, bool)
	SetPattern(pattern string)
}

// MultipleProperties is implemented by fields accepting several values.
type MultipleProperties interface {
	Multiple() (bool, bool)
	SetMultiple(multiple bool)
}

// Validator sanitizes and checks one raw submitted value.
//
// Bind reconciles the validator's configuration with the field it serves and
// fails fast on misconfiguration. Validate never returns an error for invalid
// input: failures are recorded on the field and signalled by a null or partial
// result.
type Validator interface {
	Name() string
	Bind(f Field) error
	Validate(ctx context.Context, f Field, raw Value) Value
}
