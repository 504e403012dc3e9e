package validator

import (
	"context"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

const NamePhone = "phone"

// Phone error codes.
const (
	PhoneInvalid Code = iota
)

var phoneMessages = map[Code]string{
	PhoneInvalid: "Field '{0}' requires a valid phone number.",
}

// Phone keeps digits and the plus sign. Input that loses other characters is
// still returned, with an error recorded.
type Phone struct {
	base
}

var compactPhone = sanitizer.Compose(sanitizer.Trim, sanitizer.RemoveSpaces)

func NewPhone(opts ...Option) *Phone {
	return &Phone{base: newBase(NamePhone, phoneMessages, opts)}
}

// Bind needs no field properties.
func (v *Phone) Bind(Field) error {
	return nil
}

func (v *Phone) Validate(_ context.Context, f Field, raw Value) Value {
	compact := compactPhone(raw.String())
	result := sanitizer.KeepPhoneChars(compact)
	if result == "" {
		return Null()
	}
	if len(result) != len(compact) {
		v.fail(f, PhoneInvalid)
	}
	return String(result)
}
