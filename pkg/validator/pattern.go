package validator

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

const NamePattern = "pattern"

// Pattern error codes.
const (
	PatternInvalidFormat Code = iota
)

var patternMessages = map[Code]string{
	PatternInvalidFormat: "Field '{0}' has invalid format ('{1}').",
}

const patternDelimiters = "#/~"

// Pattern checks a trimmed value against a regular expression.
//
// Patterns may be written with delimiters and trailing flags (#...#i, /.../ms,
// ~...~x) or bare. Bare patterns are used as is with no anchoring added.
// Patterns that fail to compile never match.
type Pattern struct {
	base
	pattern optional[string]

	mu    sync.Mutex
	cache map[string]*regexp.Regexp
}

// NewPattern creates a pattern validator. An empty pattern is left unset and
// may be taken from the field at bind time.
func NewPattern(pattern string, opts ...Option) *Pattern {
	v := &Pattern{
		base:  newBase(NamePattern, patternMessages, opts),
		cache: make(map[string]*regexp.Regexp),
	}
	if pattern != "" {
		v.pattern = some(pattern)
	}
	return v
}

// Pattern returns the effective pattern.
func (v *Pattern) Pattern() (string, bool) {
	return v.pattern.value, v.pattern.set
}

func (v *Pattern) Bind(f Field) error {
	props, ok := f.Properties().(PatternProperties)
	if !ok {
		return fmt.Errorf("%w: %s validator needs a pattern property on field %q", ErrMissingCapability, v.name, f.Name())
	}
	fieldPattern, set := props.Pattern()
	return reconcile("pattern", &v.pattern, fieldPattern, set, props.SetPattern)
}

func (v *Pattern) Validate(_ context.Context, f Field, raw Value) Value {
	if raw.IsList() {
		return v.validateList(f, raw)
	}

	value := sanitizer.Trim(raw.String())
	if value == "" {
		return Null()
	}
	if !v.pattern.set {
		return String(value)
	}
	if !v.match(value) {
		v.fail(f, PatternInvalidFormat, v.pattern.value)
		return Null()
	}
	return String(value)
}

// validateList requires every item to match. One error is recorded at most.
func (v *Pattern) validateList(f Field, raw Value) Value {
	items := raw.Strings()
	if !v.pattern.set {
		return raw
	}
	for _, item := range items {
		if !v.match(sanitizer.Trim(item)) {
			v.fail(f, PatternInvalidFormat, v.pattern.value)
			return Null()
		}
	}
	return raw
}

func (v *Pattern) match(value string) bool {
	re := v.compiled(v.pattern.value)
	return re != nil && re.MatchString(value)
}

func (v *Pattern) compiled(pattern string) *regexp.Regexp {
	v.mu.Lock()
	defer v.mu.Unlock()

	if re, ok := v.cache[pattern]; ok {
		return re
	}
	re, err := CompilePattern(pattern)
	if err != nil {
		v.logger.Debug("pattern does not compile", "pattern", pattern, "error", err)
	}
	v.cache[pattern] = re
	return re
}

// CompilePattern compiles a delimited or bare pattern into a Go regexp.
// Supported flags are i, m, s, U and x; u and D are accepted and ignored.
// Patterns followed by any other letters are compiled bare.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	expr, flags := splitDelimited(pattern)

	var inline strings.Builder
	for _, flag := range flags {
		switch flag {
		case 'i', 'm', 's', 'U':
			if !strings.ContainsRune(inline.String(), flag) {
				inline.WriteRune(flag)
			}
		case 'x':
			expr = stripExtended(expr)
		}
	}
	if inline.Len() > 0 {
		expr = "(?" + inline.String() + ")" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	return re, nil
}

// patternFlags are the letters accepted after a closing delimiter.
const patternFlags = "imsxUuD"

// splitDelimited strips a leading delimiter, its closing twin and the trailing
// flags. A pattern is delimited only when everything after the closing
// delimiter is a known flag, so bare patterns such as /docs/index stay bare.
func splitDelimited(pattern string) (expr, flags string) {
	if len(pattern) < 2 || !strings.ContainsRune(patternDelimiters, rune(pattern[0])) {
		return pattern, ""
	}
	delim := pattern[0]
	end := strings.LastIndexByte(pattern, delim)
	if end == 0 {
		return pattern, ""
	}
	for _, r := range pattern[end+1:] {
		if !strings.ContainsRune(patternFlags, r) {
			return pattern, ""
		}
	}
	return pattern[1:end], pattern[end+1:]
}

// stripExtended removes unescaped whitespace and #-comments outside character classes.
func stripExtended(expr string) string {
	var b strings.Builder
	inClass := false
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c == '\\' && i+1 < len(expr):
			b.WriteByte(c)
			b.WriteByte(expr[i+1])
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
			b.WriteByte(c)
		case c == '[':
			inClass = true
			b.WriteByte(c)
		case c == ' ', c == '\t', c == '\n', c == '\r', c == '\f', c == '\v':
		case c == '#':
			for i < len(expr) && expr[i] != '\n' {
				i++
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
