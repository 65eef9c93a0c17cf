package mask

// IntentKind names the interaction that moved the caret.
type IntentKind int

const (
	IntentFocus IntentKind = iota
	IntentClick
	IntentInsert
	IntentBackspace
	IntentDelete
	IntentPaste
	IntentMove
)

// String returns a human-readable label for the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentFocus:
		return "focus"
	case IntentClick:
		return "click"
	case IntentInsert:
		return "insert"
	case IntentBackspace:
		return "backspace"
	case IntentDelete:
		return "delete"
	case IntentPaste:
		return "paste"
	case IntentMove:
		return "move"
	default:
		return "unknown"
	}
}

// Intent is a semantic caret request. Pos is the caret offset the
// interaction happened at; focus and paste ignore it.
type Intent struct {
	Kind IntentKind
	Pos  int
}

// FocusIntent places the caret on the first empty digit slot.
func FocusIntent() Intent { return Intent{Kind: IntentFocus, Pos: -1} }

// PasteIntent places the caret like focus does, after the new value lands.
func PasteIntent() Intent { return Intent{Kind: IntentPaste, Pos: -1} }

// ClickIntent honors pos as-is. A negative pos means the click carried no
// target and behaves like focus.
func ClickIntent(pos int) Intent { return Intent{Kind: IntentClick, Pos: pos} }

// InsertIntent requests the caret at pos, pushed forward past any literals.
func InsertIntent(pos int) Intent { return Intent{Kind: IntentInsert, Pos: pos} }

// MoveIntent puts the caret at pos, clamped. Used for arrow keys and for the
// caret left behind by a deletion.
func MoveIntent(pos int) Intent { return Intent{Kind: IntentMove, Pos: pos} }

// BackspaceIntent and DeleteIntent carry the caret offset the key was
// pressed at.
func BackspaceIntent(pos int) Intent { return Intent{Kind: IntentBackspace, Pos: pos} }

// DeleteIntent is the forward counterpart of BackspaceIntent.
func DeleteIntent(pos int) Intent { return Intent{Kind: IntentDelete, Pos: pos} }

// Caret resolves an intent to an absolute offset in the masked value.
// filled is the number of digits currently in the value. The result is
// always within [0, Len()].
func (p Pattern) Caret(in Intent, filled int) int {
	switch in.Kind {
	case IntentFocus, IntentPaste:
		return p.FirstEmpty(filled)
	case IntentClick:
		if in.Pos < 0 {
			return p.FirstEmpty(filled)
		}
		return p.clamp(in.Pos)
	case IntentInsert:
		return p.skipLiterals(p.clamp(in.Pos))
	case IntentBackspace:
		return p.Backspace(in.Pos, filled).Caret
	case IntentDelete:
		return p.Delete(in.Pos, filled).Caret
	default:
		return p.clamp(in.Pos)
	}
}

// FirstEmpty returns where the next digit goes: right after the last filled
// digit slot, so "123-***-****" puts the caret at 3, not past the dash. An
// empty value starts at the first digit slot and a full value at Len().
func (p Pattern) FirstEmpty(filled int) int {
	if filled <= 0 {
		return p.DigitSlotOffset(0)
	}
	if filled >= p.capacity {
		return len(p.slots)
	}
	return p.DigitSlotOffset(filled-1) + 1
}

// Edit describes what a Backspace or Delete keystroke does.
type Edit struct {
	// Caret is the offset after the key is handled.
	Caret int
	// Suppress is true when the keystroke must not delete anything, either
	// because it stepped over a literal or because there is nothing there.
	Suppress bool
	// DigitIndex is the index into the raw value to remove, or -1.
	DigitIndex int
}

// Backspace handles a Backspace keystroke at pos. A literal before the caret
// is stepped over, never deleted.
func (p Pattern) Backspace(pos, filled int) Edit {
	pos = p.clamp(pos)
	if pos == 0 {
		return Edit{Caret: 0, Suppress: true, DigitIndex: -1}
	}
	if p.IsLiteralAt(pos - 1) {
		return Edit{Caret: pos - 1, Suppress: true, DigitIndex: -1}
	}
	idx := p.DigitsBefore(pos - 1)
	if idx >= filled {
		return Edit{Caret: pos - 1, Suppress: true, DigitIndex: -1}
	}
	return Edit{Caret: pos - 1, DigitIndex: idx}
}

// Delete handles a forward Delete keystroke at pos. A literal under the caret
// is stepped over, never deleted.
func (p Pattern) Delete(pos, filled int) Edit {
	pos = p.clamp(pos)
	if pos >= len(p.slots) {
		return Edit{Caret: pos, Suppress: true, DigitIndex: -1}
	}
	if p.IsLiteralAt(pos) {
		return Edit{Caret: pos + 1, Suppress: true, DigitIndex: -1}
	}
	idx := p.DigitsBefore(pos)
	if idx >= filled {
		return Edit{Caret: pos, Suppress: true, DigitIndex: -1}
	}
	return Edit{Caret: pos, DigitIndex: idx}
}

// InsertIndex returns the raw index a digit typed at pos lands on. Typing
// past the last digit appends; typing into a full value inserts and lets the
// applier drop the overflow. ok is false when pos is beyond every digit slot
// and the value is full.
func (p Pattern) InsertIndex(pos, filled int) (int, bool) {
	idx := p.DigitsBefore(p.clamp(pos))
	if idx > filled {
		idx = filled
	}
	if idx >= p.capacity {
		return 0, false
	}
	return idx, true
}

// AfterInsert returns the caret intent for a digit that landed on raw index
// idx: just past its slot, then past any literals.
func (p Pattern) AfterInsert(idx int) Intent {
	return InsertIntent(p.DigitSlotOffset(idx) + 1)
}

func (p Pattern) skipLiterals(pos int) int {
	for pos < len(p.slots) && p.slots[pos].Kind == SlotLiteral {
		pos++
	}
	return pos
}

func (p Pattern) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(p.slots) {
		return len(p.slots)
	}
	return pos
}
