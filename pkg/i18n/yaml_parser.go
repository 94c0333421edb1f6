package i18n

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a catalog whose top-level keys are language codes and
// whose values are nested maps of translation keys.
func ParseYAML(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
		}
		result[lang] = m
	}
	return result, nil
}
