package field

import (
	"context"
	"net/url"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// RawValue reads a field's submitted value. Missing keys are null and
// repeated keys become a list.
func RawValue(values url.Values, name string) validator.Value {
	items := values[name]
	switch len(items) {
	case 0:
		return validator.Null()
	case 1:
		return validator.String(items[0])
	default:
		return validator.List(items...)
	}
}

// ValidateAll validates the fields of one submission in order. It returns
// the sanitized values keyed by field name and the combined validation
// errors. Bind failures and context cancellation abort the run.
func ValidateAll(ctx context.Context, fields []*Field, values url.Values) (map[string]validator.Value, error) {
	out := make(map[string]validator.Value, len(fields))
	var all validator.ValidationErrors

	for _, f := range fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		value, err := f.Validate(ctx, RawValue(values, f.Name()))
		if err != nil {
			errs := validator.ExtractValidationErrors(err)
			if errs == nil {
				return nil, err
			}
			all = append(all, errs...)
		}
		out[f.Name()] = value
	}

	if len(all) > 0 {
		return out, all
	}
	return out, nil
}
