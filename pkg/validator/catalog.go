package validator

import (
	"maps"
	"regexp"
	"slices"
	"strconv"
)

// Code identifies one failure kind of a validator. Codes are indexed per validator.
type Code int

// Catalog maps error codes to message templates. It is immutable: With returns a copy.
type Catalog struct {
	templates map[Code]string
}

func NewCatalog(templates map[Code]string) Catalog {
	return Catalog{templates: maps.Clone(templates)}
}

// Message returns the template registered for code.
func (c Catalog) Message(code Code) (string, bool) {
	tpl, ok := c.templates[code]
	return tpl, ok
}

// With returns a new catalog with overrides merged over the receiver's templates.
func (c Catalog) With(overrides map[Code]string) Catalog {
	merged := make(map[Code]string, len(c.templates)+len(overrides))
	maps.Copy(merged, c.templates)
	maps.Copy(merged, overrides)
	return Catalog{templates: merged}
}

func (c Catalog) Codes() []Code {
	return slices.Sorted(maps.Keys(c.templates))
}

var placeholderRegex = regexp.MustCompile(`\{(\d+)\}`)

// Format substitutes {0} with name and {n} with params[n-1].
// Placeholders without a matching argument are left as is.
func Format(template, name string, params ...string) string {
	return placeholderRegex.ReplaceAllStringFunc(template, func(m string) string {
		idx, err := strconv.Atoi(m[1 : len(m)-1])
		if err != nil {
			return m
		}
		if idx == 0 {
			return name
		}
		if idx-1 < len(params) {
			return params[idx-1]
		}
		return m
	})
}
