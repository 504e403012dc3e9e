package field

import "github.com/dmitrymomot/formkit/pkg/validator"

// Result is the JSON form of one field's validation outcome.
type Result struct {
	Field  string                     `json:"field"`
	Value  validator.Value            `json:"value"`
	Valid  bool                       `json:"valid"`
	Errors validator.ValidationErrors `json:"errors"`
}

// NewResult builds a Result from the output of Field.Validate. Errors that
// are not validation errors are not part of a result and are ignored here.
func NewResult(name string, value validator.Value, err error) Result {
	errs := validator.ExtractValidationErrors(err)
	if errs == nil {
		errs = validator.ValidationErrors{}
	}
	return Result{
		Field:  name,
		Value:  value,
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
