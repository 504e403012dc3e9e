package field

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Kind is the input type of a field.
type Kind string

const (
	KindText     Kind = "text"
	KindSearch   Kind = "search"
	KindTel      Kind = "tel"
	KindURL      Kind = "url"
	KindPassword Kind = "password"
	KindEmail    Kind = "email"
	KindTextarea Kind = "textarea"
)

// Kinds lists every supported kind.
func Kinds() []Kind {
	return []Kind{KindText, KindSearch, KindTel, KindURL, KindPassword, KindEmail, KindTextarea}
}

// ParseKind accepts a kind name in any letter case.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindText, KindSearch, KindTel, KindURL, KindPassword, KindEmail, KindTextarea:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) String() string {
	return string(k)
}

// defaultValidator is the validator every field of the kind starts with.
func (k Kind) defaultValidator() string {
	switch k {
	case KindEmail:
		return validator.NameEmail
	case KindPassword:
		return validator.NamePassword
	case KindTel:
		return validator.NamePhone
	case KindURL:
		return validator.NameURL
	default:
		return validator.NameSafeString
	}
}

func (k Kind) defaultPlaceholder() string {
	switch k {
	case KindEmail:
		return "your.name@domain.com"
	case KindURL:
		return "http(s)://domain.com"
	case KindSearch:
		return "Search"
	}
	return ""
}

func (k Kind) newProps() any {
	switch k {
	case KindEmail:
		return &EmailProps{}
	case KindTextarea:
		return &TextareaProps{}
	default:
		return &TextProps{}
	}
}
