package dtpattern

import "strings"

const quote = '\''

// fieldTokens maps each reserved pattern letter to the token it compiles to.
// Letters sharing a token (y/Y, M/L) form a single run.
var fieldTokens = [256]Token{
	'G': Era{},
	'y': Year{},
	'Y': Year{},
	'M': Month{},
	'L': Month{},
	'w': WeekInYear{},
	'W': WeekInMonth{},
	'D': DayInYear{},
	'd': DayInMonth{},
	'F': DayOfWeekInMonth{},
	'E': DayName{},
	'u': DayOfWeek{},
	'a': AmPm{},
	'H': HourOfDay{},
	'k': ClockHourOfDay{},
	'K': HourOfAmPm{},
	'h': ClockHourOfAmPm{},
	'm': MinuteOfHour{},
	's': SecondOfMinute{},
	'S': Millisecond{},
}

func isReserved(c byte) bool {
	return c == quote || fieldTokens[c] != nil
}

// Compile turns a pattern into its token sequence. An empty pattern compiles
// to an empty sequence. The only failure is a quoted literal that is never
// closed, reported as a *CompileError wrapping ErrUnterminatedQuote.
func Compile(pattern string) ([]Token, error) {
	var tokens []Token
	for pos := 0; pos < len(pattern); {
		var (
			tok Token
			n   int
		)
		switch c := pattern[pos]; {
		case fieldTokens[c] != nil:
			tok, n = compileField(pattern[pos:])
		case c == quote:
			var ok bool
			if tok, n, ok = compileQuoted(pattern[pos:]); !ok {
				return nil, &CompileError{Pattern: pattern, Offset: pos, Err: ErrUnterminatedQuote}
			}
		default:
			tok, n = compileText(pattern[pos:])
		}
		tokens = append(tokens, tok)
		pos += n
	}
	return tokens, nil
}

// compileField consumes the run of letters compiling to the same token as
// the first one. Only the token kind survives, not the run length.
func compileField(s string) (Token, int) {
	tok := fieldTokens[s[0]]
	n := 1
	for n < len(s) && fieldTokens[s[n]] == tok {
		n++
	}
	return tok, n
}

// compileQuoted handles input starting with an apostrophe. It first tries a
// quoted literal with at least one segment, then a bare doubled apostrophe.
func compileQuoted(s string) (Token, int, bool) {
	if lit, n, ok := quotedLiteral(s); ok {
		return Text{Literal: lit}, n, true
	}
	if strings.HasPrefix(s, "''") {
		return Text{Literal: "'"}, 2, true
	}
	return nil, 0, false
}

// quotedLiteral reads an apostrophe-delimited literal whose segments are
// either a doubled apostrophe (one apostrophe) or a run of other characters.
func quotedLiteral(s string) (string, int, bool) {
	var b strings.Builder
	pos, segments := 1, 0
	for pos < len(s) {
		switch {
		case strings.HasPrefix(s[pos:], "''"):
			b.WriteByte(quote)
			pos += 2
		case s[pos] == quote:
			if segments == 0 {
				return "", 0, false
			}
			return b.String(), pos + 1, true
		default:
			end := strings.IndexByte(s[pos:], quote)
			if end < 0 {
				return "", 0, false
			}
			b.WriteString(s[pos : pos+end])
			pos += end
		}
		segments++
	}
	return "", 0, false
}

func compileText(s string) (Token, int) {
	n := 0
	for n < len(s) && !isReserved(s[n]) {
		n++
	}
	return Text{Literal: s[:n]}, n
}
