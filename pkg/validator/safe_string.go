package validator

import (
	"context"
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

const NameSafeString = "safe_string"

// SafeString error codes.
const (
	SafeStringUnsafe Code = iota
)

var safeStringMessages = map[Code]string{
	SafeStringUnsafe: "Field '{0}' contains disallowed markup.",
}

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

func plainTextPolicy() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// SafeString strips markup and control characters from free text and
// normalizes it to NFC. Text that loses markup is still returned, with an
// error recorded. Entities are decoded
// in the result so plain text round-trips.
type SafeString struct {
	base
}

func NewSafeString(opts ...Option) *SafeString {
	return &SafeString{base: newBase(NameSafeString, safeStringMessages, opts)}
}

// Bind needs no field properties.
func (v *SafeString) Bind(Field) error {
	return nil
}

func (v *SafeString) Validate(_ context.Context, f Field, raw Value) Value {
	value := sanitizer.Apply(raw.String(), sanitizer.RemoveControlChars, sanitizer.NormalizeNFC, sanitizer.Trim)
	if value == "" {
		return Null()
	}

	cleaned := sanitizer.Trim(html.UnescapeString(plainTextPolicy().Sanitize(value)))
	if cleaned != sanitizer.Trim(html.UnescapeString(value)) {
		v.fail(f, SafeStringUnsafe)
	}
	if cleaned == "" {
		return Null()
	}
	return String(cleaned)
}
