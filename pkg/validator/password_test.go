package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestPassword_Default(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		codes    []validator.Code
	}{
		{
			name:     "strong password",
			input:    "Correct-Horse-42",
			expected: "Correct-Horse-42",
			codes:    []validator.Code{},
		},
		{
			name:     "lowercase only",
			input:    "alllowercase",
			expected: "alllowercase",
			codes:    []validator.Code{validator.PasswordUppercase, validator.PasswordDigit, validator.PasswordSpecial},
		},
		{
			name:     "short but varied",
			input:    "Sh0rt!",
			expected: "Sh0rt!",
			codes:    []validator.Code{validator.PasswordMinLength},
		},
		{
			name:     "trimmed before checks",
			input:    "   Sh0rt!   ",
			expected: "Sh0rt!",
			codes:    []validator.Code{validator.PasswordMinLength},
		},
		{
			name:     "non-ascii letters are not counted",
			input:    "ŽLUŤOUČKÝ-KŮŇ-1",
			expected: "ŽLUŤOUČKÝ-KŮŇ-1",
			codes:    []validator.Code{validator.PasswordLowercase},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newField("password")
			v := validator.MustPassword(validator.DefaultPasswordConfig())
			require.NoError(t, v.Bind(f))

			result := v.Validate(t.Context(), f, validator.String(tt.input))
			assert.Equal(t, tt.expected, result.String())
			assert.Equal(t, tt.codes, f.codes())
		})
	}

	t.Run("empty is null", func(t *testing.T) {
		f := newField("password")
		result := validator.MustPassword(validator.DefaultPasswordConfig()).Validate(t.Context(), f, validator.String("  "))
		assert.True(t, result.IsNull())
		assert.Empty(t, f.errors)
	})
}

func TestPassword_Truncation(t *testing.T) {
	cfg := validator.DefaultPasswordConfig()
	cfg.MinLength = 4
	cfg.MaxLength = 8
	v := validator.MustPassword(cfg)

	f := newField("password")
	// the only digit and special character sit past the maximum length
	result := v.Validate(t.Context(), f, validator.String("Abcdefgh1!"))

	assert.Equal(t, "Abcdefgh", result.String())
	assert.Equal(t, []validator.Code{
		validator.PasswordMaxLength,
		validator.PasswordDigit,
		validator.PasswordSpecial,
	}, f.codes())
	assert.Equal(t, "Password must have a maximum length of 8 characters.", f.errors[0].Message)
}

func TestPassword_MinimumCounts(t *testing.T) {
	cfg := validator.DefaultPasswordConfig()
	cfg.MinLength = 1
	cfg.MinLowercase = 3
	cfg.MinUppercase = 2
	cfg.MinDigits = 2
	cfg.MinSpecial = 2
	v := validator.MustPassword(cfg)

	t.Run("short counts use the counted variant", func(t *testing.T) {
		f := newField("password")
		v.Validate(t.Context(), f, validator.String("abAB1!"))

		assert.Equal(t, []validator.Code{validator.PasswordLowercaseMin, validator.PasswordDigitMin, validator.PasswordSpecialMin}, f.codes())
		assert.Equal(t, []string{"3", "[a-z]"}, f.errors[0].Params)
		assert.Equal(t, "Password must contain at minimum 3 lower case characters ([a-z]).", f.errors[0].Message)
		assert.Equal(t, "Password must contain at minimum 2 digits ([0-9]).", f.errors[1].Message)
		assert.Equal(t, []string{"2", validator.DefaultSpecialChars}, f.errors[2].Params)
	})

	t.Run("all minimums met", func(t *testing.T) {
		f := newField("password")
		v.Validate(t.Context(), f, validator.String("abcAB12!?"))

		assert.Equal(t, []validator.Code{}, f.codes())
	})

	t.Run("duplicate specials count each time", func(t *testing.T) {
		f := newField("password")
		v.Validate(t.Context(), f, validator.String("abcAB12!!"))
		assert.Empty(t, f.errors)
	})
}

func TestPassword_DisabledClasses(t *testing.T) {
	cfg := validator.PasswordConfig{MinLength: 3, MaxLength: 10}
	v := validator.MustPassword(cfg)

	f := newField("pin")
	result := v.Validate(t.Context(), f, validator.String("1234"))
	assert.Equal(t, "1234", result.String())
	assert.Empty(t, f.errors)
}

func TestPassword_PlainMessages(t *testing.T) {
	f := newField("password")
	cfg := validator.DefaultPasswordConfig()
	cfg.SpecialChars = "!?"
	v := validator.MustPassword(cfg)

	v.Validate(t.Context(), f, validator.String(strings.Repeat("a", 12)))
	assert.Equal(t, []string{
		"Password must contain upper case characters ([A-Z]).",
		"Password must contain digits ([0-9]).",
		"Password must contain special characters ( !? ).",
	}, f.errors.Get("password"))
}

func TestNewPassword_InvalidConfig(t *testing.T) {
	_, err := validator.NewPassword(validator.PasswordConfig{MinLength: 10, MaxLength: 5})
	require.ErrorIs(t, err, validator.ErrInvalidOption)

	_, err = validator.NewPassword(validator.PasswordConfig{MinLength: -1})
	require.ErrorIs(t, err, validator.ErrInvalidOption)

	assert.Panics(t, func() {
		validator.MustPassword(validator.PasswordConfig{MinLength: 10, MaxLength: 5})
	})

	v, err := validator.NewPassword(validator.PasswordConfig{RequireSpecial: true})
	require.NoError(t, err)
	assert.Equal(t, validator.DefaultSpecialChars, v.Config().SpecialChars)
}
