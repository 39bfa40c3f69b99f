// Package expand implements the shortcut expansion engine: parsing
// NAME, NAME<n> and NAME<low>..<high> tokens, resolving them against an
// immutable table of sequences and combinations, and producing the
// literal text to type.
package expand

import (
	"fmt"
	"strings"
)

// repeatKind discriminates the three repetition forms.
type repeatKind int

const (
	repeatOnce repeatKind = iota
	repeatFixed
	repeatRange
)

// Repeat is a repetition specifier: implicit once, a fixed count, or a
// count drawn uniformly from an inclusive range.
type Repeat struct {
	kind repeatKind
	low  int
	high int
}

// Once returns the implicit single repetition.
func Once() Repeat {
	return Repeat{kind: repeatOnce}
}

// Fixed returns a repetition of exactly n, n >= 0.
func Fixed(n int) Repeat {
	return Repeat{kind: repeatFixed, low: n, high: n}
}

// Range returns a repetition drawn uniformly from [low, high] inclusive.
func Range(low, high int) Repeat {
	return Repeat{kind: repeatRange, low: low, high: high}
}

// Rand is the source of randomness for range resolution. *rand.Rand from
// math/rand/v2 satisfies it; tests inject seeded or fixed sources.
type Rand interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// Count resolves the specifier to a concrete repeat count. Range
// resolution is an independent draw on every call.
func (r Repeat) Count(rng Rand) int {
	switch r.kind {
	case repeatFixed:
		return r.low
	case repeatRange:
		return r.low + rng.IntN(r.high-r.low+1)
	default:
		return 1
	}
}

func (r Repeat) String() string {
	switch r.kind {
	case repeatFixed:
		return fmt.Sprintf("%d", r.low)
	case repeatRange:
		return fmt.Sprintf("%d..%d", r.low, r.high)
	default:
		return ""
	}
}

// Reference is one parsed token: a definition name plus its repetition.
type Reference struct {
	Name   string
	Repeat Repeat
}

func (ref Reference) String() string {
	return ref.Name + ref.Repeat.String()
}

// ParseReference parses a raw token into a Reference. The repetition
// suffix starts at the first ASCII digit; everything before it is the
// name. Names never contain digits, so the split is unambiguous.
func ParseReference(token string) (Reference, error) {
	i := strings.IndexFunc(token, isDigit)
	if i < 0 {
		if token == "" {
			return Reference{}, fmt.Errorf("%w: token %q", ErrEmptyName, token)
		}
		return Reference{Name: token, Repeat: Once()}, nil
	}
	if i == 0 {
		return Reference{}, fmt.Errorf("%w: token %q", ErrEmptyName, token)
	}
	rep, err := parseRepeat(token[i:])
	if err != nil {
		return Reference{}, fmt.Errorf("token %q: %w", token, err)
	}
	return Reference{Name: token[:i], Repeat: rep}, nil
}

// parseRepeat parses a repetition suffix, which always begins with a digit.
func parseRepeat(s string) (Repeat, error) {
	if n, ok := parseCount(s); ok {
		return Fixed(n), nil
	}
	dots := strings.Index(s, "..")
	if dots < 0 {
		return Repeat{}, fmt.Errorf("%w: %q", ErrMalformedRepetition, s)
	}
	low, okLow := parseCount(s[:dots])
	high, okHigh := parseCount(s[dots+2:])
	if !okLow || !okHigh {
		return Repeat{}, fmt.Errorf("%w: %q", ErrMalformedRepetition, s)
	}
	if low > high {
		return Repeat{}, fmt.Errorf("%w: %d..%d", ErrInvalidRange, low, high)
	}
	return Range(low, high), nil
}

// parseCount parses a non-negative decimal integer. Unlike strconv.Atoi
// it rejects signs, so "3..+4" is malformed rather than a range.
func parseCount(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
