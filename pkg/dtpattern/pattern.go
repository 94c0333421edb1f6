package dtpattern

import "slices"

// Pattern is a compiled format, reusable across any number of values.
type Pattern struct {
	format string
	tokens []Token
}

// NewPattern compiles format into a Pattern.
func NewPattern(format string) (*Pattern, error) {
	tokens, err := Compile(format)
	if err != nil {
		return nil, err
	}
	return &Pattern{format: format, tokens: tokens}, nil
}

// MustPattern is like NewPattern but panics if format does not compile.
// Intended for package-level patterns known at build time.
func MustPattern(format string) *Pattern {
	p, err := NewPattern(format)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate reports whether value conforms to the pattern.
func (p *Pattern) Validate(value string) error {
	return Validate(value, p.tokens)
}

// Match is a boolean shortcut for Validate.
func (p *Pattern) Match(value string) bool {
	return p.Validate(value) == nil
}

// Tokens returns a copy of the compiled token sequence.
func (p *Pattern) Tokens() []Token {
	return slices.Clone(p.tokens)
}

// String returns the source format.
func (p *Pattern) String() string {
	return p.format
}
