package field

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

var defaultRegistry = sync.OnceValue(validator.DefaultRegistry)

// Field is a typed form field with an ordered validator chain.
//
// Validators are resolved and bound on first use. A bound field may be
// validated from several goroutines; recorded errors are appended under a lock.
type Field struct {
	name        string
	label       string
	kind        Kind
	props       any
	refs        []validator.Ref
	registry    *validator.Registry
	resolveOpts []validator.Option
	logger      *slog.Logger
	optErrs     []error

	mu     sync.Mutex
	bound  bool
	chain  []validator.Validator
	errors validator.ValidationErrors
}

// New creates a field of the given kind. The chain starts with the kind's
// default validator; email, url and search fields get a default placeholder.
func New(kind Kind, name string, opts ...Option) (*Field, error) {
	if !slices.Contains(Kinds(), kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}

	f := &Field{
		name:   name,
		kind:   kind,
		props:  kind.newProps(),
		refs:   []validator.Ref{validator.Named(kind.defaultValidator())},
		logger: logger.Discard(),
	}
	if placeholder := kind.defaultPlaceholder(); placeholder != "" {
		f.props.(interface{ SetPlaceHolder(string) }).SetPlaceHolder(placeholder)
	}

	for _, opt := range opts {
		opt(f)
	}
	if len(f.optErrs) > 0 {
		return nil, errors.Join(f.optErrs...)
	}
	if f.registry == nil {
		f.registry = defaultRegistry()
	}
	return f, nil
}

// MustNew is like New but panics on error.
func MustNew(kind Kind, name string, opts ...Option) *Field {
	f, err := New(kind, name, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Field) Name() string {
	return f.name
}

func (f *Field) Label() string {
	return f.label
}

// DisplayName is the label, or the name when no label is set.
func (f *Field) DisplayName() string {
	if f.label != "" {
		return f.label
	}
	return f.name
}

func (f *Field) Kind() Kind {
	return f.kind
}

// Properties returns *TextProps, *EmailProps or *TextareaProps.
func (f *Field) Properties() any {
	return f.props
}

// Attributes returns the configured properties keyed by HTML attribute name.
func (f *Field) Attributes() map[string]string {
	return f.props.(interface{ Attributes() map[string]string }).Attributes()
}

// Validators returns the validator chain. After binding it includes the
// validators added for length and pattern properties.
func (f *Field) Validators() []validator.Ref {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.refs)
}

func (f *Field) AddValidationError(err validator.ValidationError) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = append(f.errors, err)
}

// Errors returns every error recorded since the last ResetErrors.
func (f *Field) Errors() validator.ValidationErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.errors)
}

func (f *Field) ResetErrors() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = nil
}

// Bind resolves and binds the validator chain. It is a no-op once it has
// succeeded.
func (f *Field) Bind() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bindLocked()
}

func (f *Field) bindLocked() error {
	if f.bound {
		return nil
	}

	refs := f.autoWire()
	chain := make([]validator.Validator, 0, len(refs))
	for _, ref := range refs {
		v, err := ref.Resolve(f.registry, f.resolveOpts...)
		if err != nil {
			return fmt.Errorf("bind field %q: %w", f.name, err)
		}
		if err := v.Bind(f); err != nil {
			return fmt.Errorf("bind field %q: validator %q: %w", f.name, v.Name(), err)
		}
		chain = append(chain, v)
	}

	f.refs = refs
	f.chain = chain
	f.bound = true

	names := make([]string, 0, len(chain))
	for _, v := range chain {
		names = append(names, v.Name())
	}
	f.logger.Debug("field bound",
		logger.Field(f.name),
		logger.Kind(f.kind.String()),
		slog.Any("validators", names),
	)
	return nil
}

// autoWire appends length and pattern validators when the field carries
// those properties and the chain has none.
func (f *Field) autoWire() []validator.Ref {
	refs := slices.Clone(f.refs)
	if p, ok := f.props.(validator.LengthProperties); ok {
		_, hasMin := p.MinLength()
		_, hasMax := p.MaxLength()
		if (hasMin || hasMax) && !hasRef(refs, validator.NameLength) {
			refs = append(refs, validator.Named(validator.NameLength))
		}
	}
	if p, ok := f.props.(validator.PatternProperties); ok {
		if _, has := p.Pattern(); has && !hasRef(refs, validator.NamePattern) {
			refs = append(refs, validator.Named(validator.NamePattern))
		}
	}
	return refs
}

func hasRef(refs []validator.Ref, name string) bool {
	return slices.ContainsFunc(refs, func(r validator.Ref) bool { return r.Name() == name })
}

// Validate runs raw through the chain in order, feeding each output to the
// next validator and stopping at the first null. The errors of this pass are
// returned as validator.ValidationErrors and also kept on the field.
func (f *Field) Validate(ctx context.Context, raw validator.Value) (validator.Value, error) {
	f.mu.Lock()
	err := f.bindLocked()
	chain := f.chain
	f.mu.Unlock()
	if err != nil {
		return validator.Null(), err
	}

	start := time.Now()
	rec := &recorder{Field: f}
	value := raw
	for _, v := range chain {
		value = v.Validate(ctx, rec, value)
		if value.IsNull() {
			break
		}
	}

	if len(rec.errs) > 0 {
		f.mu.Lock()
		f.errors = append(f.errors, rec.errs...)
		f.mu.Unlock()
	}

	f.logger.DebugContext(ctx, "field validated",
		logger.Field(f.name),
		logger.Kind(f.kind.String()),
		slog.Bool("null", value.IsNull()),
		logger.ErrorCount(len(rec.errs)),
		logger.Duration(time.Since(start)),
	)

	if len(rec.errs) > 0 {
		return value, rec.errs
	}
	return value, nil
}

// recorder collects the errors of one validation pass.
type recorder struct {
	*Field
	errs validator.ValidationErrors
}

func (r *recorder) AddValidationError(err validator.ValidationError) {
	r.errs = append(r.errs, err)
}
