package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"fitforge/plan-generator/internal/domain"
)

// Source loads the exercise dataset from somewhere at process start. The
// loaded Catalog is immutable afterwards; sources are not consulted again
// during generation.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// --- Built-in source ---

// builtinSource serves the compiled-in default dataset.
type builtinSource struct{}

// NewBuiltinSource returns a Source backed by the default dataset shipped
// with the binary.
func NewBuiltinSource() Source {
	return builtinSource{}
}

func (builtinSource) Load(ctx context.Context) (*Catalog, error) {
	return New(defaultEntries())
}

// --- File source ---

// fileSource reads a JSON array of catalog entries from disk.
type fileSource struct {
	path string
}

// NewFileSource returns a Source reading the dataset from a JSON file.
func NewFileSource(path string) Source {
	return fileSource{path: path}
}

func (s fileSource) Load(ctx context.Context) (*Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", s.path, err)
	}
	var entries []domain.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", s.path, err)
	}
	return New(entries)
}
