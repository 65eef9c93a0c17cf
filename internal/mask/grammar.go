// Package mask implements the positional input-mask engine used by the
// masked text input widget.
//
// A mask pattern is a template string where every '9' is a digit slot and
// every other character is a fixed literal:
//
//	999-999-9999    phone number
//	(999) 999-9999  phone number with area code parens
//	99/99/9999      date
//
// There is no escape syntax: a literal '9' cannot appear in a mask.
//
// The package is pure. It knows nothing about terminals or Bubble Tea; the
// inputmask package owns state and event wiring and calls into this one to
// format values and place the caret.
package mask

// DigitRune is the mask character that marks a digit slot.
const DigitRune = '9'

// DefaultPlaceholder fills digit slots that have no digit yet.
const DefaultPlaceholder = '*'

// SlotKind classifies a single mask position.
type SlotKind int

const (
	SlotDigit SlotKind = iota
	SlotLiteral
)

// String returns a human-readable label for the slot kind.
func (k SlotKind) String() string {
	switch k {
	case SlotDigit:
		return "digit"
	case SlotLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Slot is one position of a parsed mask.
type Slot struct {
	Kind    SlotKind
	Literal rune // Only meaningful for SlotLiteral
}

// IsLiteral reports whether the slot holds a fixed character.
func (s Slot) IsLiteral() bool {
	return s.Kind == SlotLiteral
}

// Pattern is a parsed mask. It is immutable once built; callers that need a
// different mask parse a new one.
type Pattern struct {
	source   string
	slots    []Slot
	capacity int
}

// Parse classifies each rune of the mask string in a single pass. It never
// fails: an empty mask yields an empty pattern and a mask without any '9'
// yields a pattern that formats every value as the literal text.
// Every '9' is a digit slot; a literal 9 cannot be expressed.
func Parse(source string) Pattern {
	slots := make([]Slot, 0, len(source))
	capacity := 0
	for _, r := range source {
		if r == DigitRune {
			slots = append(slots, Slot{Kind: SlotDigit})
			capacity++
			continue
		}
		slots = append(slots, Slot{Kind: SlotLiteral, Literal: r})
	}
	return Pattern{source: source, slots: slots, capacity: capacity}
}

// Source returns the mask string the pattern was parsed from.
func (p Pattern) Source() string {
	return p.source
}

// Len returns the number of positions in the pattern, which is also the rune
// length of every masked value it produces.
func (p Pattern) Len() int {
	return len(p.slots)
}

// Capacity returns the number of digit slots.
func (p Pattern) Capacity() int {
	return p.capacity
}

// Slot returns the slot at position i. Out-of-range positions report a zero
// Slot and false.
func (p Pattern) Slot(i int) (Slot, bool) {
	if i < 0 || i >= len(p.slots) {
		return Slot{}, false
	}
	return p.slots[i], true
}

// Slots returns a copy of the slot sequence.
func (p Pattern) Slots() []Slot {
	out := make([]Slot, len(p.slots))
	copy(out, p.slots)
	return out
}

// IsLiteralAt reports whether position i is a literal slot.
func (p Pattern) IsLiteralAt(i int) bool {
	s, ok := p.Slot(i)
	return ok && s.IsLiteral()
}

// DigitsBefore counts the digit slots strictly before position pos.
func (p Pattern) DigitsBefore(pos int) int {
	if pos > len(p.slots) {
		pos = len(p.slots)
	}
	n := 0
	for i := 0; i < pos; i++ {
		if p.slots[i].Kind == SlotDigit {
			n++
		}
	}
	return n
}

// DigitSlotOffset returns the position of the n-th digit slot (zero based),
// or Len() when the pattern has fewer than n+1 digit slots.
func (p Pattern) DigitSlotOffset(n int) int {
	seen := 0
	for i, s := range p.slots {
		if s.Kind != SlotDigit {
			continue
		}
		if seen == n {
			return i
		}
		seen++
	}
	return len(p.slots)
}
