package validator

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

const NameLength = "length"

// Length error codes.
const (
	LengthMin Code = iota
	LengthMax
)

var lengthMessages = map[Code]string{
	LengthMin: "Field '{0}' requires at least {1} characters.",
	LengthMax: "Field '{0}' requires no more than {1} characters.",
}

// Length checks the code point length of a trimmed value against optional bounds.
// List values are measured in their comma-joined form and returned as lists.
type Length struct {
	base
	min optional[int]
	max optional[int]
}

// NewLength creates a length validator. A zero bound is left unset and may be
// taken from the field at bind time.
func NewLength(minLength, maxLength int, opts ...Option) *Length {
	v := &Length{base: newBase(NameLength, lengthMessages, opts)}
	if minLength != 0 {
		v.min = some(minLength)
	}
	if maxLength != 0 {
		v.max = some(maxLength)
	}
	return v
}

// MinLength returns the effective lower bound.
func (v *Length) MinLength() (int, bool) {
	return v.min.value, v.min.set
}

// MaxLength returns the effective upper bound.
func (v *Length) MaxLength() (int, bool) {
	return v.max.value, v.max.set
}

func (v *Length) Bind(f Field) error {
	props, ok := f.Properties().(LengthProperties)
	if !ok {
		return fmt.Errorf("%w: %s validator needs minlength/maxlength on field %q", ErrMissingCapability, v.name, f.Name())
	}

	fieldMin, minSet := props.MinLength()
	if err := reconcile("minLength", &v.min, fieldMin, minSet, props.SetMinLength); err != nil {
		return err
	}
	fieldMax, maxSet := props.MaxLength()
	return reconcile("maxLength", &v.max, fieldMax, maxSet, props.SetMaxLength)
}

func (v *Length) Validate(_ context.Context, f Field, raw Value) Value {
	value := sanitizer.Trim(raw.String())
	length := sanitizer.Length(value)
	if length == 0 {
		return Null()
	}

	if v.min.set && v.min.value > 0 && length < v.min.value {
		v.fail(f, LengthMin, strconv.Itoa(v.min.value))
	}
	if v.max.set && v.max.value > 0 && length > v.max.value {
		v.fail(f, LengthMax, strconv.Itoa(v.max.value))
	}
	if raw.IsList() {
		return raw
	}
	return String(value)
}
