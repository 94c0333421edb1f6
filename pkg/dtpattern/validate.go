package dtpattern

import "fmt"

// Validate matches value against tokens in order. Each token consumes a
// prefix of what is left; the first token that cannot match stops the check
// and is reported in a *MismatchError. Characters left over after the last
// token are reported as ErrTrailingData. There is no backtracking between
// tokens.
func Validate(value string, tokens []Token) error {
	rest := value
	for _, tok := range tokens {
		n, rej := tok.recognize(rest)
		if rej != nil {
			return &MismatchError{
				Token:     tok,
				Remaining: rest,
				Reason:    rej.reason,
				Err:       rej.err,
			}
		}
		rest = rest[n:]
	}

	if rest != "" {
		return &MismatchError{
			Remaining: rest,
			Reason:    fmt.Sprintf("remaining data after applying pattern %q", rest),
			Err:       ErrTrailingData,
		}
	}
	return nil
}

// ValidateDateTime compiles format and validates value against it. A broken
// format yields a *CompileError; a value that does not conform yields a
// *MismatchError.
func ValidateDateTime(value, format string) error {
	tokens, err := Compile(format)
	if err != nil {
		return err
	}
	return Validate(value, tokens)
}
