package validator

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Factory builds a fresh validator. Every resolution gets its own instance so
// bound configuration is never shared between fields.
type Factory func(opts ...Option) (Validator, error)

// Registry maps validator names to factories and per-name message overrides.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	messages  map[string]map[Code]string
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		messages:  make(map[string]map[Code]string),
	}
}

// DefaultRegistry returns a registry with every built-in validator registered
// under its default configuration.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.factories[NameLength] = func(opts ...Option) (Validator, error) { return NewLength(0, 0, opts...), nil }
	r.factories[NamePattern] = func(opts ...Option) (Validator, error) { return NewPattern("", opts...), nil }
	r.factories[NameEmail] = func(opts ...Option) (Validator, error) { return NewEmail(opts...), nil }
	r.factories[NameURL] = URLFactory(DefaultURLConfig())
	r.factories[NamePhone] = func(opts ...Option) (Validator, error) { return NewPhone(opts...), nil }
	r.factories[NamePassword] = PasswordFactory(DefaultPasswordConfig())
	r.factories[NameSafeString] = func(opts ...Option) (Validator, error) { return NewSafeString(opts...), nil }
	return r
}

// URLFactory returns a factory for URL validators sharing cfg.
func URLFactory(cfg URLConfig) Factory {
	return func(opts ...Option) (Validator, error) {
		return NewURL(cfg, opts...)
	}
}

// PasswordFactory returns a factory for password validators sharing cfg.
func PasswordFactory(cfg PasswordConfig) Factory {
	return func(opts ...Option) (Validator, error) {
		return NewPassword(cfg, opts...)
	}
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("%w: validator name is empty", ErrInvalidOption)
	}
	if factory == nil {
		return fmt.Errorf("%w: nil factory for %q", ErrInvalidOption, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
	return nil
}

// SetMessages merges message overrides applied to every validator resolved under name.
func (r *Registry) SetMessages(name string, overrides map[Code]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownValidator, name)
	}
	merged := maps.Clone(r.messages[name])
	if merged == nil {
		merged = make(map[Code]string, len(overrides))
	}
	maps.Copy(merged, overrides)
	r.messages[name] = merged
	return nil
}

// Resolve builds a new validator registered under name. Registry message
// overrides apply first, so explicit opts take precedence.
func (r *Registry) Resolve(name string, opts ...Option) (Validator, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	overrides := r.messages[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValidator, name)
	}

	all := make([]Option, 0, len(opts)+1)
	if len(overrides) > 0 {
		all = append(all, WithMessages(overrides))
	}
	all = append(all, opts...)

	v, err := factory(all...)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", name, err)
	}
	return v, nil
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[name]
	return ok
}

// Names returns the registered validator names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.factories))
}
