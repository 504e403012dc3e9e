package messages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Adapter is a source of message overrides.
type Adapter interface {
	Load(ctx context.Context) (Overrides, error)
}

// MapAdapter serves overrides held in memory.
type MapAdapter struct {
	Data Overrides
}

func (a *MapAdapter) Load(_ context.Context) (Overrides, error) {
	if a.Data == nil {
		return Overrides{}, nil
	}
	return a.Data, nil
}

// FileAdapter reads overrides from a file on disk or in an fs.FS.
type FileAdapter struct {
	parser Parser
	fsys   fs.FS
	path   string
}

// NewFileAdapter reads path from the local filesystem.
// Returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// NewFSAdapter reads path from fsys, for example an embed.FS.
// Returns nil if any argument is missing.
func NewFSAdapter(fsys fs.FS, parser Parser, path string) *FileAdapter {
	if fsys == nil || parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, fsys: fsys, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (Overrides, error) {
	if a == nil || a.parser == nil || a.path == "" {
		return nil, ErrInvalidAdapter
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		defer close(done)
		if a.fsys != nil {
			content, readErr = fs.ReadFile(a.fsys, a.path)
			return
		}
		content, readErr = os.ReadFile(a.path)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}

	overrides, err := a.parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", a.path, err))
	}
	return overrides, nil
}

// Load merges every adapter's overrides in order; later adapters win.
func Load(ctx context.Context, adapters ...Adapter) (Overrides, error) {
	out := Overrides{}
	for _, a := range adapters {
		if a == nil {
			return nil, ErrInvalidAdapter
		}
		loaded, err := a.Load(ctx)
		if err != nil {
			return nil, err
		}
		out = out.Merge(loaded)
	}
	return out, nil
}

// LoadFile picks a parser from the file extension and loads path.
func LoadFile(ctx context.Context, path string) (Overrides, error) {
	parser := NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return NewFileAdapter(parser, path).Load(ctx)
}
