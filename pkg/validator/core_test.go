package validator_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestValue(t *testing.T) {
	t.Run("null", func(t *testing.T) {
		v := validator.Null()
		assert.True(t, v.IsNull())
		assert.False(t, v.IsList())
		assert.Equal(t, "", v.String())
		assert.Nil(t, v.Strings())
	})

	t.Run("single string", func(t *testing.T) {
		v := validator.String("hello")
		assert.False(t, v.IsNull())
		assert.False(t, v.IsList())
		assert.Equal(t, "hello", v.String())
		assert.Equal(t, []string{"hello"}, v.Strings())
	})

	t.Run("empty string is not null", func(t *testing.T) {
		assert.False(t, validator.String("").IsNull())
	})

	t.Run("list joins with comma", func(t *testing.T) {
		v := validator.List("a@b.cz", "c@d.cz")
		assert.True(t, v.IsList())
		assert.Equal(t, "a@b.cz,c@d.cz", v.String())
		assert.Equal(t, []string{"a@b.cz", "c@d.cz"}, v.Strings())
	})

	t.Run("empty list", func(t *testing.T) {
		v := validator.List()
		assert.False(t, v.IsNull())
		assert.True(t, v.IsList())
		assert.Equal(t, []string{}, v.Strings())
	})

	t.Run("list is copied", func(t *testing.T) {
		items := []string{"a"}
		v := validator.List(items...)
		items[0] = "b"
		assert.Equal(t, "a", v.String())

		out := v.Strings()
		out[0] = "c"
		assert.Equal(t, "a", v.String())
	})

	t.Run("equal", func(t *testing.T) {
		assert.True(t, validator.String("a").Equal(validator.String("a")))
		assert.False(t, validator.String("a").Equal(validator.List("a")))
		assert.True(t, validator.Null().Equal(validator.Null()))
		assert.False(t, validator.Null().Equal(validator.String("")))
	})
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "email",
			Message: "Field 'email' requires a valid email address.",
		})
		assert.Equal(t, "validation failed: email: Field 'email' requires a valid email address.", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "bad email"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})

		errorMsg := errs.Error()
		assert.Contains(t, errorMsg, "email: bad email")
		assert.Contains(t, errorMsg, "password: too short")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "password", Validator: "password", Code: 0, Message: "too short"})
	errs.Add(validator.ValidationError{Field: "password", Validator: "password", Code: 8, Message: "no special"})
	errs.Add(validator.ValidationError{Field: "email", Validator: "email", Code: 0, Message: "bad email"})

	assert.True(t, errs.Has("password"))
	assert.False(t, errs.Has("phone"))
	assert.Equal(t, []string{"too short", "no special"}, errs.Get("password"))
	assert.Nil(t, errs.Get("phone"))
	assert.Len(t, errs.GetErrors("password"), 2)
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
	assert.Equal(t, []validator.Code{0, 8}, errs.Codes("password"))
	assert.False(t, errs.IsEmpty())

	var empty validator.ValidationErrors
	assert.True(t, empty.IsEmpty())
	assert.Nil(t, empty.Fields())
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts from direct error", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "name", Message: "required"}}
		extracted := validator.ExtractValidationErrors(errs)
		require.NotNil(t, extracted)
		assert.Equal(t, "name", extracted[0].Field)
	})

	t.Run("extracts from wrapped error", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "name", Message: "required"}}
		wrapped := fmt.Errorf("submit: %w", errs)
		assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
		assert.True(t, validator.IsValidationError(wrapped))
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
		assert.False(t, validator.IsValidationError(nil))
	})
}

func TestValue_MarshalJSON(t *testing.T) {
	tests := []struct {
		value    validator.Value
		expected string
	}{
		{value: validator.Null(), expected: `null`},
		{value: validator.String("a"), expected: `"a"`},
		{value: validator.List("a", "b"), expected: `["a","b"]`},
		{value: validator.List(), expected: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}

	t.Run("validation error", func(t *testing.T) {
		data, err := json.Marshal(validator.ValidationError{
			Field:          "email",
			Validator:      "email",
			Code:           validator.EmailInvalid,
			Template:       "Field '{0}' requires a valid email address.",
			Message:        "Field 'email' requires a valid email address.",
			TranslationKey: "validation.email.0",
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"field": "email",
			"validator": "email",
			"code": 0,
			"template": "Field '{0}' requires a valid email address.",
			"message": "Field 'email' requires a valid email address.",
			"translation_key": "validation.email.0"
		}`, string(data))
	})
}
