package config

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	gvalidator "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/formkit/pkg/dnscheck"
)

var schemeRegex = regexp.MustCompile(`^[a-z]+$`)

var customRules = map[string]gvalidator.Func{
	"urlscheme": func(fl gvalidator.FieldLevel) bool {
		return schemeRegex.MatchString(fl.Field().String())
	},
	"dnstype": func(fl gvalidator.FieldLevel) bool {
		_, err := dnscheck.ParseRecordType(fl.Field().String())
		return err == nil
	},
}

// structValidator panics if a custom rule fails to register.
var structValidator = sync.OnceValue(func() *gvalidator.Validate {
	v := gvalidator.New(gvalidator.WithRequiredStructEnabled())
	for tag, fn := range customRules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("config: register %s rule: %v", tag, err))
		}
	}
	return v
})

// Validate checks the validate tags of a loaded configuration struct.
// Besides the built-in rules, urlscheme accepts lowercase ASCII letters and
// dnstype accepts any record type the URL validator can check.
func Validate(v any) error {
	if err := structValidator().Struct(v); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
