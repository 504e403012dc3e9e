package validator_test

import "github.com/dmitrymomot/formkit/pkg/validator"

// textProps carries every capability a validator can ask for.
type textProps struct {
	minLength *int
	maxLength *int
	pattern   *string
	multiple  *bool
}

func (p *textProps) MinLength() (int, bool) {
	if p.minLength == nil {
		return 0, false
	}
	return *p.minLength, true
}

func (p *textProps) MaxLength() (int, bool) {
	if p.maxLength == nil {
		return 0, false
	}
	return *p.maxLength, true
}

func (p *textProps) SetMinLength(n int) { p.minLength = &n }
func (p *textProps) SetMaxLength(n int) { p.maxLength = &n }

func (p *textProps) Pattern() (string, bool) {
	if p.pattern == nil {
		return "", false
	}
	return *p.pattern, true
}

func (p *textProps) SetPattern(pattern string) { p.pattern = &pattern }

func (p *textProps) Multiple() (bool, bool) {
	if p.multiple == nil {
		return false, false
	}
	return *p.multiple, true
}

func (p *textProps) SetMultiple(multiple bool) { p.multiple = &multiple }

// bareProps has no capabilities at all.
type bareProps struct{}

type testField struct {
	name   string
	label  string
	props  any
	errors validator.ValidationErrors
}

func newField(name string) *testField {
	return &testField{name: name, props: &textProps{}}
}

func (f *testField) Name() string { return f.name }

func (f *testField) DisplayName() string {
	if f.label != "" {
		return f.label
	}
	return f.name
}

func (f *testField) AddValidationError(err validator.ValidationError) { f.errors.Add(err) }
func (f *testField) Properties() any                                  { return f.props }

func (f *testField) codes() []validator.Code {
	codes := make([]validator.Code, 0, len(f.errors))
	for _, err := range f.errors {
		codes = append(codes, err.Code)
	}
	return codes
}

func ptr[T any](v T) *T { return &v }
