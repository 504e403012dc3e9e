package validator

import (
	"context"
	"regexp"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

const NameEmail = "email"

// Email error codes.
const (
	EmailInvalid Code = iota
)

var emailMessages = map[Code]string{
	EmailInvalid: "Field '{0}' requires a valid email address.",
}

const (
	emailAtom  = "[-a-z0-9!#$%&'*+/=?^_`{|}~]"
	emailAlpha = `a-z\x{80}-\x{10FFFF}`
)

// Quoted or dot-atom local part, RFC 1034 domain labels, top level domain of 2+ letters.
var emailRegex = regexp.MustCompile(`(?i)^` +
	`("([ !#-\[\]-~]*|\\[ -~])+"|` + emailAtom + `+(\.` + emailAtom + `+)*)` +
	`@` +
	`([0-9` + emailAlpha + `]([-0-9` + emailAlpha + `]{0,61}[0-9` + emailAlpha + `])?\.)+` +
	`[` + emailAlpha + `]([-0-9` + emailAlpha + `]{0,17}[` + emailAlpha + `])$`)

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// Email validates one address, or a comma separated list when multiple is enabled.
type Email struct {
	base
	multiple optional[bool]
}

func NewEmail(opts ...Option) *Email {
	return &Email{base: newBase(NameEmail, emailMessages, opts)}
}

// SetMultiple switches the validator to list mode.
func (v *Email) SetMultiple(multiple bool) *Email {
	v.multiple = some(multiple)
	return v
}

func (v *Email) Multiple() (bool, bool) {
	return v.multiple.value, v.multiple.set
}

// Bind pulls the multiple flag from fields that carry one. Fields without the
// capability are accepted and validated in single mode.
func (v *Email) Bind(f Field) error {
	props, ok := f.Properties().(MultipleProperties)
	if !ok {
		return nil
	}
	fieldMultiple, set := props.Multiple()
	return reconcile("multiple", &v.multiple, fieldMultiple, set, props.SetMultiple)
}

func (v *Email) Validate(_ context.Context, f Field, raw Value) Value {
	value := sanitizer.Trim(raw.String())
	if value == "" {
		return Null()
	}

	if !v.multiple.value {
		if !IsEmail(value) {
			v.fail(f, EmailInvalid)
			return Null()
		}
		return String(value)
	}

	valid := make([]string, 0)
	reported := false
	for _, candidate := range sanitizer.SplitTrim(value, ",") {
		if IsEmail(candidate) {
			valid = append(valid, candidate)
			continue
		}
		if !reported {
			reported = true
			v.fail(f, EmailInvalid)
		}
	}
	return List(valid...)
}
