package validator

import "fmt"

// Ref identifies a validator either by registry name or by a configured instance.
type Ref struct {
	name     string
	instance Validator
}

// Named refers to a validator resolved from a registry at bind time.
func Named(name string) Ref {
	return Ref{name: name}
}

// Instance refers to an already configured validator. An instance belongs to
// the field it is attached to.
func Instance(v Validator) Ref {
	return Ref{instance: v}
}

func (r Ref) Name() string {
	if r.instance != nil {
		return r.instance.Name()
	}
	return r.name
}

func (r Ref) IsInstance() bool {
	return r.instance != nil
}

// Resolve returns the instance or builds the named validator from reg.
func (r Ref) Resolve(reg *Registry, opts ...Option) (Validator, error) {
	if r.instance != nil {
		return r.instance, nil
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: no registry to resolve %q", ErrUnknownValidator, r.name)
	}
	return reg.Resolve(r.name, opts...)
}
