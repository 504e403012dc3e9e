package validator

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Option configures the behaviour shared by every validator.
type Option func(*base)

// WithMessages overrides message templates for the given codes.
// Codes not present keep their default template.
func WithMessages(overrides map[Code]string) Option {
	return func(b *base) {
		if len(overrides) > 0 {
			b.catalog = b.catalog.With(overrides)
		}
	}
}

// WithLogger provides a logger for configuration and DNS diagnostics.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(b *base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

type base struct {
	name    string
	catalog Catalog
	logger  *slog.Logger
}

func newBase(name string, defaults map[Code]string, opts []Option) base {
	b := base{
		name:    name,
		catalog: NewCatalog(defaults),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *base) Name() string {
	return b.name
}

// Catalog returns the validator's effective message templates.
func (b *base) Catalog() Catalog {
	return b.catalog
}

func (b *base) fail(f Field, code Code, params ...string) {
	tpl, ok := b.catalog.Message(code)
	if !ok {
		tpl = "Field '{0}' is invalid."
	}
	f.AddValidationError(ValidationError{
		Field:          f.Name(),
		Validator:      b.name,
		Code:           code,
		Template:       tpl,
		Params:         params,
		Message:        Format(tpl, f.DisplayName(), params...),
		TranslationKey: "validation." + b.name + "." + strconv.Itoa(int(code)),
	})
}

// optional is a configuration value that may be left unset.
type optional[T comparable] struct {
	value T
	set   bool
}

func some[T comparable](v T) optional[T] {
	return optional[T]{value: v, set: true}
}

// reconcile merges a validator setting with the field's copy of it.
// The first configured value wins. An unset field receives the validator's
// value through push; an unset validator adopts the field's value.
func reconcile[T comparable](property string, own *optional[T], fieldValue T, fieldSet bool, push func(T)) error {
	switch {
	case own.set && fieldSet:
		if own.value != fieldValue {
			return fmt.Errorf("%w: %s is %v on the validator and %v on the field", ErrConflictingConfig, property, own.value, fieldValue)
		}
	case own.set:
		push(own.value)
	case fieldSet:
		*own = some(fieldValue)
	}
	return nil
}
