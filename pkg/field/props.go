package field

import (
	"fmt"
	"slices"
	"strconv"
)

// MinMaxLength holds the minlength and maxlength attributes.
type MinMaxLength struct {
	minLength *int
	maxLength *int
}

func (p *MinMaxLength) MinLength() (int, bool) {
	if p.minLength == nil {
		return 0, false
	}
	return *p.minLength, true
}

func (p *MinMaxLength) MaxLength() (int, bool) {
	if p.maxLength == nil {
		return 0, false
	}
	return *p.maxLength, true
}

func (p *MinMaxLength) SetMinLength(n int) { p.minLength = &n }
func (p *MinMaxLength) SetMaxLength(n int) { p.maxLength = &n }

func (p *MinMaxLength) writeAttrs(m map[string]string) {
	putInt(m, "minlength", p.minLength)
	putInt(m, "maxlength", p.maxLength)
}

// PatternProp holds the pattern attribute.
type PatternProp struct {
	pattern *string
}

func (p *PatternProp) Pattern() (string, bool) {
	if p.pattern == nil {
		return "", false
	}
	return *p.pattern, true
}

func (p *PatternProp) SetPattern(pattern string) { p.pattern = &pattern }

func (p *PatternProp) writeAttrs(m map[string]string) {
	if p.pattern != nil {
		m["pattern"] = *p.pattern
	}
}

// MultipleProp holds the multiple attribute.
type MultipleProp struct {
	multiple *bool
}

func (p *MultipleProp) Multiple() (bool, bool) {
	if p.multiple == nil {
		return false, false
	}
	return *p.multiple, true
}

func (p *MultipleProp) SetMultiple(multiple bool) { p.multiple = &multiple }

func (p *MultipleProp) writeAttrs(m map[string]string) {
	if p.multiple != nil && *p.multiple {
		m["multiple"] = "multiple"
	}
}

// Wrap values accepted by RowsColsWrap.SetWrap.
const (
	WrapSoft = "soft"
	WrapHard = "hard"
	WrapOff  = "off"
)

// RowsColsWrap holds the textarea sizing attributes.
type RowsColsWrap struct {
	rows *int
	cols *int
	wrap *string
}

func (p *RowsColsWrap) Rows() (int, bool) { return deref(p.rows) }
func (p *RowsColsWrap) Cols() (int, bool) { return deref(p.cols) }

func (p *RowsColsWrap) Wrap() (string, bool) {
	if p.wrap == nil {
		return "", false
	}
	return *p.wrap, true
}

func (p *RowsColsWrap) SetRows(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidProperty, n)
	}
	p.rows = &n
	return nil
}

func (p *RowsColsWrap) SetCols(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: cols must be positive, got %d", ErrInvalidProperty, n)
	}
	p.cols = &n
	return nil
}

func (p *RowsColsWrap) SetWrap(wrap string) error {
	switch wrap {
	case WrapSoft, WrapHard, WrapOff:
		p.wrap = &wrap
		return nil
	}
	return fmt.Errorf("%w: %q, expected %s, %s or %s", ErrInvalidWrap, wrap, WrapSoft, WrapHard, WrapOff)
}

func (p *RowsColsWrap) writeAttrs(m map[string]string) {
	putInt(m, "rows", p.rows)
	putInt(m, "cols", p.cols)
	if p.wrap != nil {
		m["wrap"] = *p.wrap
	}
}

// SpellCheckProp holds the spellcheck attribute. Unset leaves the browser default.
type SpellCheckProp struct {
	spellcheck *bool
}

func (p *SpellCheckProp) SpellCheck() (bool, bool) {
	if p.spellcheck == nil {
		return false, false
	}
	return *p.spellcheck, true
}

func (p *SpellCheckProp) SetSpellCheck(enabled bool) { p.spellcheck = &enabled }

func (p *SpellCheckProp) writeAttrs(m map[string]string) {
	if p.spellcheck != nil {
		m["spellcheck"] = strconv.FormatBool(*p.spellcheck)
	}
}

type PlaceHolderProp struct {
	placeholder *string
}

func (p *PlaceHolderProp) PlaceHolder() (string, bool) {
	if p.placeholder == nil {
		return "", false
	}
	return *p.placeholder, true
}

func (p *PlaceHolderProp) SetPlaceHolder(text string) { p.placeholder = &text }

func (p *PlaceHolderProp) writeAttrs(m map[string]string) {
	if p.placeholder != nil && *p.placeholder != "" {
		m["placeholder"] = *p.placeholder
	}
}

var inputModes = []string{"none", "text", "decimal", "numeric", "tel", "search", "email", "url"}

type InputModeProp struct {
	mode *string
}

func (p *InputModeProp) InputMode() (string, bool) {
	if p.mode == nil {
		return "", false
	}
	return *p.mode, true
}

func (p *InputModeProp) SetInputMode(mode string) error {
	if !slices.Contains(inputModes, mode) {
		return fmt.Errorf("%w: inputmode %q", ErrInvalidProperty, mode)
	}
	p.mode = &mode
	return nil
}

func (p *InputModeProp) writeAttrs(m map[string]string) {
	if p.mode != nil {
		m["inputmode"] = *p.mode
	}
}

// TextProps are the properties of single-line text inputs.
type TextProps struct {
	MinMaxLength
	PatternProp
	SpellCheckProp
	PlaceHolderProp
	InputModeProp
}

func (p *TextProps) Attributes() map[string]string {
	m := make(map[string]string)
	p.MinMaxLength.writeAttrs(m)
	p.PatternProp.writeAttrs(m)
	p.SpellCheckProp.writeAttrs(m)
	p.PlaceHolderProp.writeAttrs(m)
	p.InputModeProp.writeAttrs(m)
	return m
}

// EmailProps add multiple to the text properties.
type EmailProps struct {
	TextProps
	MultipleProp
}

func (p *EmailProps) Attributes() map[string]string {
	m := p.TextProps.Attributes()
	p.MultipleProp.writeAttrs(m)
	return m
}

// TextareaProps are the properties of multi-line inputs. There is no pattern.
type TextareaProps struct {
	MinMaxLength
	RowsColsWrap
	SpellCheckProp
	PlaceHolderProp
}

func (p *TextareaProps) Attributes() map[string]string {
	m := make(map[string]string)
	p.MinMaxLength.writeAttrs(m)
	p.RowsColsWrap.writeAttrs(m)
	p.SpellCheckProp.writeAttrs(m)
	p.PlaceHolderProp.writeAttrs(m)
	return m
}

func deref(v *int) (int, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

func putInt(m map[string]string, key string, v *int) {
	if v != nil {
		m[key] = strconv.Itoa(*v)
	}
}
