// Package i18n localizes validation messages.
//
// Catalogs are YAML documents whose top-level keys are language codes:
//
//	en:
//	  validation:
//	    datetime:
//	      out_of_range: "%{field} does not match %{format}: %{reason}"
//
// A Translator is built from a TranslationAdapter. BuiltinAdapter serves the
// catalogs embedded in this package, which cover every translation key the
// validator package emits for date/time rules. FSAdapter loads catalogs from
// any fs.FS and MapAdapter from memory.
//
//	tr, err := i18n.NewTranslator(ctx, i18n.BuiltinAdapter())
//	lang := tr.Match(r.Header.Get("Accept-Language"))
//	msg := tr.T(lang, "validation.datetime.out_of_range",
//	    "field", "birthday", "format", "yyyy-MM-dd", "reason", "invalid month 13")
//
// Language negotiation uses golang.org/x/text/language, so "de-AT" or
// "de;q=0.9, en;q=0.5" resolve to the closest catalog.
package i18n
