// Package dtpattern checks whether a text value has the shape described by a
// date/time format pattern such as "yyyy-MM-dd".
//
// Matching happens in two phases. Compile turns the pattern into an ordered
// list of tokens, and Validate consumes the value left to right, one token at
// a time, requiring that nothing is left over at the end. ValidateDateTime
// composes both steps and is the usual entry point.
//
// The package never builds a time.Time and never does calendar arithmetic.
// It only answers "does this value look like this pattern" and, when it does
// not, explains where and why matching stopped.
//
// # Pattern Letters
//
// The following letters are reserved. A run of the same letter (or of letters
// from the same group) compiles into a single token; the run length is
// dropped, so "y" and "yyyy" behave identically.
//
//	G      era               ad, bc (case-insensitive)
//	y Y    year              one or more digits
//	M L    month             month name, 3-letter abbreviation or 1..12
//	w      week in year      1..56
//	W      week in month     1..5
//	D      day in year       1..356, at most two digits
//	d      day in month      1..31
//	F      day of week in month   one or more digits, not range checked
//	E      day name          weekday name or 3-letter abbreviation
//	u      day of week       single digit 1..7
//	a      am/pm marker      am, pm (case-insensitive)
//	H      hour of day       0..23
//	k      clock hour of day 1..24
//	K      hour of am/pm     0..11
//	h      clock hour of am/pm   1..12
//	m      minute            0..59
//	s      second            0..59
//	S      millisecond       up to three digits
//
// Text wrapped in apostrophes is matched verbatim, with a doubled apostrophe
// standing for a single one. A bare doubled apostrophe outside quotes also
// matches a single apostrophe. Any other character is matched literally; the
// time zone letters z, Z and X are not supported and are treated as text.
//
// Because the time-of-day letters are reserved too, words in a pattern must
// be quoted: "hello" compiles to an hour token followed by text and does not
// match the value "hello", while "'hello'" does. Likewise write "'at' HH",
// not "at HH".
//
// # Usage
//
//	if err := dtpattern.ValidateDateTime("2001-07-04", "yyyy-MM-dd"); err != nil {
//	    var mm *dtpattern.MismatchError
//	    if errors.As(err, &mm) {
//	        // mm.Token, mm.Remaining and mm.Reason describe the failure
//	    }
//	}
//
// Patterns used repeatedly can be compiled once with NewPattern, or looked up
// through a Cache which keeps the most recently used compiled patterns.
//
// # Concurrency
//
// Compile, Validate and ValidateDateTime are pure functions. A *Pattern is
// immutable after construction and a Cache is safe for concurrent use.
package dtpattern
