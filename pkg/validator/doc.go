// Package validator turns value checks into declarative rules that collect
// field-level, translation-friendly errors.
//
// A Rule pairs a Check function with the ValidationError reported when the
// check fails. Apply runs every rule and aggregates the failures into a
// ValidationErrors slice, which implements error and unwraps to the causes
// returned by each check, so errors.Is and errors.As see through it.
//
// # Date/time formats
//
// DateTimeFormat plugs the dtpattern matcher into this rule model:
//
//	err := validator.Apply(
//	    validator.DateTimeFormat("birthday", req.Birthday, "yyyy-MM-dd"),
//	    validator.OptionalDateTimeFormat("expires", req.Expires, "MM/yy"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        // e.TranslationKey is "validation.datetime.<code>" where code
//	        // comes from dtpattern.Code, e.g. "out_of_range".
//	    }
//	}
//
// DateTimeFormatWith accepts any Validator, usually a shared
// *dtpattern.Cache, so that frequently used formats are compiled only once.
//
// # Translation values
//
// Date/time failures carry "field" and "format" plus, when available,
// "reason", "remaining", "token" and "offset" in TranslationValues.
package validator
