package messages

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a message file. The document maps validator names to
// objects keyed by numeric code:
//
//	email:
//	  0: "'{0}' is not an email address."
//	length:
//	  0: "'{0}' needs {1}+ characters."
type Parser interface {
	Parse(ctx context.Context, content []byte) (Overrides, error)

	// SupportsFileExtension accepts the extension with or without a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser for the file's extension, or nil.
func NewParserForFile(filename string) Parser {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content []byte) (Overrides, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var raw map[string]map[string]string
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return fromRaw(raw)
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content []byte) (Overrides, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var raw map[string]map[string]string
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return fromRaw(raw)
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
