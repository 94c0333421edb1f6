package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"
)

//go:embed locales/*.yaml
var builtinLocales embed.FS

// TranslationAdapter loads translations keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every .yaml/.yml file in a directory of an fs.FS and
// merges them. Later files win on duplicate languages.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	return &FSAdapter{fsys: fsys, dir: dir}
}

// BuiltinAdapter returns the adapter for the catalogs shipped with the
// package: validation messages for date/time formats in English and German.
func BuiltinAdapter() *FSAdapter {
	return NewFSAdapter(builtinLocales, "locales")
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadEmbeddedDirectory, err)
	}

	result := make(map[string]map[string]any)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !(strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			continue
		}

		content, err := fs.ReadFile(a.fsys, path.Join(a.dir, name))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadEmbeddedFile, fmt.Errorf("%s: %w", name, err))
		}
		parsed, err := ParseYAML(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseEmbeddedFile, fmt.Errorf("%s: %w", name, err))
		}
		maps.Copy(result, parsed)
	}
	return result, nil
}
