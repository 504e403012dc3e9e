package messages

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Overrides maps a validator name to replacement templates keyed by code.
type Overrides map[string]map[validator.Code]string

// Merge returns a new set with other's templates layered over o's.
func (o Overrides) Merge(other Overrides) Overrides {
	out := make(Overrides, len(o)+len(other))
	for _, src := range []Overrides{o, other} {
		for name, templates := range src {
			if out[name] == nil {
				out[name] = make(map[validator.Code]string, len(templates))
			}
			maps.Copy(out[name], templates)
		}
	}
	return out
}

// Apply registers the overrides on reg. Every validator name must already
// be registered; all unknown names are reported together.
func (o Overrides) Apply(reg *validator.Registry) error {
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(o)) {
		if err := reg.SetMessages(name, o[name]); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(ErrFailedToApply, errors.Join(errs...))
	}
	return nil
}

// fromRaw converts decoded string keys into codes.
func fromRaw(raw map[string]map[string]string) (Overrides, error) {
	out := make(Overrides, len(raw))
	for name, templates := range raw {
		codes := make(map[validator.Code]string, len(templates))
		for key, tpl := range templates {
			n, err := strconv.Atoi(strings.TrimSpace(key))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: %q for validator %q", ErrInvalidCode, key, name)
			}
			codes[validator.Code(n)] = tpl
		}
		out[name] = codes
	}
	return out, nil
}
