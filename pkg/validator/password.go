package validator

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

const NamePassword = "password"

// Password error codes.
const (
	PasswordMinLength Code = iota
	PasswordMaxLength
	PasswordLowercase
	PasswordLowercaseMin
	PasswordUppercase
	PasswordUppercaseMin
	PasswordDigit
	PasswordDigitMin
	PasswordSpecial
	PasswordSpecialMin
)

var passwordMessages = map[Code]string{
	PasswordMinLength:    "Password must have a minimum length of {1} characters.",
	PasswordMaxLength:    "Password must have a maximum length of {1} characters.",
	PasswordLowercase:    "Password must contain lower case characters ({1}).",
	PasswordLowercaseMin: "Password must contain at minimum {1} lower case characters ({2}).",
	PasswordUppercase:    "Password must contain upper case characters ({1}).",
	PasswordUppercaseMin: "Password must contain at minimum {1} upper case characters ({2}).",
	PasswordDigit:        "Password must contain digits ({1}).",
	PasswordDigitMin:     "Password must contain at minimum {1} digits ({2}).",
	PasswordSpecial:      "Password must contain special characters ( {1} ).",
	PasswordSpecialMin:   "Password must contain at minimum {1} special characters ( {2} ).",
}

// DefaultSpecialChars is the ASCII punctuation set counted as special characters.
const DefaultSpecialChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// PasswordConfig holds password strength requirements.
type PasswordConfig struct {
	MinLength        int
	MaxLength        int
	RequireLowercase bool
	MinLowercase     int
	RequireUppercase bool
	MinUppercase     int
	RequireDigits    bool
	MinDigits        int
	RequireSpecial   bool
	MinSpecial       int
	SpecialChars     string
}

func DefaultPasswordConfig() PasswordConfig {
	return PasswordConfig{
		MinLength:        12,
		MaxLength:        255,
		RequireLowercase: true,
		MinLowercase:     1,
		RequireUppercase: true,
		MinUppercase:     1,
		RequireDigits:    true,
		MinDigits:        1,
		RequireSpecial:   true,
		MinSpecial:       1,
		SpecialChars:     DefaultSpecialChars,
	}
}

// Password records strength failures but always returns the password, truncated
// to the maximum length, so callers can still hash it.
type Password struct {
	base
	cfg PasswordConfig
}

func NewPassword(cfg PasswordConfig, opts ...Option) (*Password, error) {
	if cfg.MinLength < 0 || cfg.MaxLength < 0 {
		return nil, fmt.Errorf("%w: password length bounds must not be negative", ErrInvalidOption)
	}
	if cfg.MaxLength > 0 && cfg.MinLength > cfg.MaxLength {
		return nil, fmt.Errorf("%w: password minimum length %d exceeds maximum %d", ErrInvalidOption, cfg.MinLength, cfg.MaxLength)
	}
	if cfg.RequireSpecial && cfg.SpecialChars == "" {
		cfg.SpecialChars = DefaultSpecialChars
	}
	return &Password{
		base: newBase(NamePassword, passwordMessages, opts),
		cfg:  cfg,
	}, nil
}

// MustPassword is like NewPassword but panics on invalid configuration.
func MustPassword(cfg PasswordConfig, opts ...Option) *Password {
	v, err := NewPassword(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Password) Config() PasswordConfig {
	return v.cfg
}

// Bind needs no field properties.
func (v *Password) Bind(Field) error {
	return nil
}

func (v *Password) Validate(_ context.Context, f Field, raw Value) Value {
	password := sanitizer.Trim(raw.String())
	length := sanitizer.Length(password)
	if length == 0 {
		return Null()
	}

	if length < v.cfg.MinLength {
		v.fail(f, PasswordMinLength, strconv.Itoa(v.cfg.MinLength))
	}
	if v.cfg.MaxLength > 0 && length > v.cfg.MaxLength {
		password = sanitizer.MaxLength(password, v.cfg.MaxLength)
		v.fail(f, PasswordMaxLength, strconv.Itoa(v.cfg.MaxLength))
	}

	if v.cfg.RequireLowercase {
		v.checkClass(f, sanitizer.CountFunc(password, isLowerASCII), v.cfg.MinLowercase, "[a-z]", PasswordLowercase, PasswordLowercaseMin)
	}
	if v.cfg.RequireUppercase {
		v.checkClass(f, sanitizer.CountFunc(password, isUpperASCII), v.cfg.MinUppercase, "[A-Z]", PasswordUppercase, PasswordUppercaseMin)
	}
	if v.cfg.RequireDigits {
		v.checkClass(f, sanitizer.CountFunc(password, isDigitASCII), v.cfg.MinDigits, "[0-9]", PasswordDigit, PasswordDigitMin)
	}
	if v.cfg.RequireSpecial {
		v.checkClass(f, sanitizer.CountIn(password, v.cfg.SpecialChars), v.cfg.MinSpecial, v.cfg.SpecialChars, PasswordSpecial, PasswordSpecialMin)
	}

	return String(password)
}

// checkClass records the count variant when a minimum above one is missed,
// otherwise the plain variant when the class is absent.
func (v *Password) checkClass(f Field, count, minCount int, class string, plain, counted Code) {
	switch {
	case minCount > 1 && count < minCount:
		v.fail(f, counted, strconv.Itoa(minCount), class)
	case count == 0:
		v.fail(f, plain, class)
	}
}

func isLowerASCII(r rune) bool { return r >= 'a' && r <= 'z' }
func isUpperASCII(r rune) bool { return r >= 'A' && r <= 'Z' }
func isDigitASCII(r rune) bool { return r >= '0' && r <= '9' }
