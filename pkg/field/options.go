package field

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Option configures a Field. Options that cannot apply to the field's kind
// make New fail.
type Option func(*Field)

func WithLabel(label string) Option {
	return func(f *Field) {
		f.label = label
	}
}

// WithValidators replaces the kind's default validator chain.
func WithValidators(refs ...validator.Ref) Option {
	return func(f *Field) {
		f.refs = append([]validator.Ref(nil), refs...)
	}
}

// AddValidators appends to the validator chain.
func AddValidators(refs ...validator.Ref) Option {
	return func(f *Field) {
		f.refs = append(f.refs, refs...)
	}
}

// WithRegistry sets the registry named validators are resolved from.
// Defaults to a shared validator.DefaultRegistry.
func WithRegistry(reg *validator.Registry) Option {
	return func(f *Field) {
		if reg != nil {
			f.registry = reg
		}
	}
}

// WithResolveOptions are passed to every named validator at resolve time.
func WithResolveOptions(opts ...validator.Option) Option {
	return func(f *Field) {
		f.resolveOpts = append(f.resolveOpts, opts...)
	}
}

// WithLogger provides a logger for bind and validation diagnostics.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Field) {
		if logger != nil {
			f.logger = logger
		}
	}
}

func WithMinLength(n int) Option {
	return withProps(func(f *Field) error {
		p, ok := f.props.(validator.LengthProperties)
		if !ok {
			return unsupported(f, "minlength")
		}
		if n < 0 {
			return fmt.Errorf("%w: minlength %d", ErrInvalidProperty, n)
		}
		p.SetMinLength(n)
		return nil
	})
}

func WithMaxLength(n int) Option {
	return withProps(func(f *Field) error {
		p, ok := f.props.(validator.LengthProperties)
		if !ok {
			return unsupported(f, "maxlength")
		}
		if n < 0 {
			return fmt.Errorf("%w: maxlength %d", ErrInvalidProperty, n)
		}
		p.SetMaxLength(n)
		return nil
	})
}

func WithPattern(pattern string) Option {
	return withProps(func(f *Field) error {
		p, ok := f.props.(validator.PatternProperties)
		if !ok {
			return unsupported(f, "pattern")
		}
		p.SetPattern(pattern)
		return nil
	})
}

func WithMultiple(multiple bool) Option {
	return withProps(func(f *Field) error {
		p, ok := f.props.(validator.MultipleProperties)
		if !ok {
			return unsupported(f, "multiple")
		}
		p.SetMultiple(multiple)
		return nil
	})
}

func WithRows(n int) Option {
	return withProps(func(f *Field) error {
		p, ok := f.props.(*TextareaProps)
		if !ok {
			return unsupported(f, "rows")
		}
		return p.SetRows(n)
	})
}

func WithCols(n int) Option {
	return withProps(func(f *Field) error {
		p, ok := f.props.(*TextareaProps)
		if !ok {
			return unsupported(f, "cols")
		}
		return p.SetCols(n)
	})
}

func WithWrap(wrap string) Option {
	return withProps(func(f *Field) error {
		p, ok := f.props.(*TextareaProps)
		if !ok {
			return unsupported(f, "wrap")
		}
		return p.SetWrap(wrap)
	})
}

func WithSpellCheck(enabled bool) Option {
	return withProps(func(f *Field) error {
		p, ok := f.props.(interface{ SetSpellCheck(bool) })
		if !ok {
			return unsupported(f, "spellcheck")
		}
		p.SetSpellCheck(enabled)
		return nil
	})
}

func WithPlaceholder(text string) Option {
	return withProps(func(f *Field) error {
		p, ok := f.props.(interface{ SetPlaceHolder(string) })
		if !ok {
			return unsupported(f, "placeholder")
		}
		p.SetPlaceHolder(text)
		return nil
	})
}

func WithInputMode(mode string) Option {
	return withProps(func(f *Field) error {
		p, ok := f.props.(interface{ SetInputMode(string) error })
		if !ok {
			return unsupported(f, "inputmode")
		}
		return p.SetInputMode(mode)
	})
}

func withProps(apply func(f *Field) error) Option {
	return func(f *Field) {
		if err := apply(f); err != nil {
			f.optErrs = append(f.optErrs, err)
		}
	}
}

func unsupported(f *Field, property string) error {
	return fmt.Errorf("%w: %s on %s field %q", ErrUnsupportedProperty, property, f.kind, f.name)
}
