package mask

import (
	"strings"
	"unicode/utf8"
)

// Result is the output of formatting a value against a pattern.
type Result struct {
	// Masked is the display string. Its rune length always equals the
	// pattern length.
	Masked string
	// Raw holds the digits that actually landed in digit slots. It becomes
	// the canonical value and may be shorter than the input.
	Raw string
}

// Filled reports how many digit slots hold a digit.
func (r Result) Filled() int {
	return utf8.RuneCountInString(r.Raw)
}

// Apply formats raw against the pattern. It is pure and total: digits beyond
// the pattern's capacity are dropped, empty digit slots get the placeholder,
// and literal slots always show their literal.
//
// A literal slot also swallows a matching rune at the read cursor, so an
// already formatted string ("123-456-7890") masks the same as its digits.
// Any other non-digit met while filling a digit slot is skipped.
func (p Pattern) Apply(raw string, placeholder rune) Result {
	in := []rune(raw)
	var masked, consumed strings.Builder
	masked.Grow(len(p.slots))

	vi := 0
	for _, s := range p.slots {
		if s.Kind == SlotLiteral {
			masked.WriteRune(s.Literal)
			if vi < len(in) && in[vi] == s.Literal {
				vi++
			}
			continue
		}

		for vi < len(in) && !isDigit(in[vi]) {
			vi++
		}
		if vi < len(in) {
			masked.WriteRune(in[vi])
			consumed.WriteRune(in[vi])
			vi++
			continue
		}
		masked.WriteRune(placeholder)
	}

	return Result{Masked: masked.String(), Raw: consumed.String()}
}

// Fill places digits into the digit slots in order and never matches them
// against literal slots. It is the formatting used for a canonical raw value,
// where a literal digit such as the 1 in "+1 (999) 999-9999" is not part of
// the value. Non-digits are skipped and digits past the capacity dropped.
func (p Pattern) Fill(digits string, placeholder rune) Result {
	in := []rune(Digits(digits))
	var masked, consumed strings.Builder
	masked.Grow(len(p.slots))

	vi := 0
	for _, s := range p.slots {
		switch {
		case s.Kind == SlotLiteral:
			masked.WriteRune(s.Literal)
		case vi < len(in):
			masked.WriteRune(in[vi])
			consumed.WriteRune(in[vi])
			vi++
		default:
			masked.WriteRune(placeholder)
		}
	}

	return Result{Masked: masked.String(), Raw: consumed.String()}
}

// Empty returns the masked value of an empty raw value: every digit slot
// shows the placeholder.
func (p Pattern) Empty(placeholder rune) string {
	return p.Fill("", placeholder).Masked
}

// Digits strips everything except ASCII decimal digits.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format is a convenience for one-off formatting: parse, filter and apply.
func Format(pattern, raw string, placeholder rune) Result {
	return Parse(pattern).Apply(Digits(raw), placeholder)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
