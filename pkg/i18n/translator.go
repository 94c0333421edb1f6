package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when a requested language has no catalog or
// cannot be negotiated.
const DefaultLanguage = "en"

// Translator resolves translation keys for a language and substitutes named
// %{param} placeholders. It is read-only after construction and safe for
// concurrent use.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger

	langs   []string
	matcher language.Matcher
}

// NewTranslator loads translations through adapter and prepares language
// negotiation over the languages found.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, m := range translations {
		if lang == "" || m == nil {
			return nil, fmt.Errorf("%w: empty language or nil map for %q", ErrInvalidStructure, lang)
		}
	}
	t.translations = translations

	// The matcher falls back to its first tag, so the default language leads.
	t.langs = make([]string, 0, len(translations)+1)
	t.langs = append(t.langs, t.defaultLang)
	for _, lang := range sortedKeys(translations) {
		if lang != t.defaultLang {
			t.langs = append(t.langs, lang)
		}
	}
	tags := make([]language.Tag, 0, len(t.langs))
	for _, lang := range t.langs {
		tags = append(tags, language.Make(lang))
	}
	t.matcher = language.NewMatcher(tags)

	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return t, nil
}

// SupportedLanguages returns the sorted language codes with translations.
func (t *Translator) SupportedLanguages() []string {
	return sortedKeys(t.translations)
}

// Match picks the best supported language for an Accept-Language header
// value. Unparseable or unmatched input yields the default language.
func (t *Translator) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	m, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(m, key).(string)
	return ok
}

// T translates a dot-separated key for lang. args are key/value pairs that
// replace %{key} placeholders. Unknown languages fall back to the default
// language; unknown keys fall back to the key itself unless disabled.
func (t *Translator) T(lang, key string, args ...string) string {
	m, ok := t.translations[lang]
	if !ok {
		m = t.translations[t.defaultLang]
	}

	tmpl, ok := lookup(m, key).(string)
	if !ok {
		t.logger.Debug("translation not found", slog.String("lang", lang), slog.String("key", key))
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return substitute(tmpl, args)
}

// lookup walks nested maps following a dot-separated key.
func lookup(m map[string]any, key string) any {
	var current any = m
	for _, part := range strings.Split(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = node[part]
	}
	return current
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}

func sortedKeys(m map[string]map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
