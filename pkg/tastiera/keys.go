package tastiera

// KeyKind identifies what a key on the grid does when pressed.
type KeyKind int

const (
	// KeyText inserts its label into the focused text input.
	KeyText KeyKind = iota
	// KeyBackspace deletes the character before the cursor.
	KeyBackspace
	// KeyShift toggles between the lowercase and uppercase grids.
	KeyShift
	// KeySpace inserts a literal space. Its width is computed, not fixed:
	// it absorbs the row's slack so the row lines up with the widest row.
	KeySpace
	// KeySymbols toggles between the letter and symbol grids.
	KeySymbols
)

// Key is one abstract key descriptor as produced by a Layout. Label is only
// meaningful for KeyText keys; toggle and backspace labels come from the
// glyphs the Keyboard was constructed with.
type Key struct {
	Kind  KeyKind
	Label string
}

// TextKey returns a text key that inserts label when pressed.
func TextKey(label string) Key {
	return Key{Kind: KeyText, Label: label}
}

// RelativeWidth is the key's width as a multiple of a standard letter key.
// Space returns 0 because its width is assigned by the layout engine.
func (k Key) RelativeWidth() float32 {
	switch k.Kind {
	case KeyBackspace, KeyShift, KeySymbols:
		return 1.5
	case KeySpace:
		return 0
	default:
		return 1.0
	}
}

// Row is an ordered sequence of keys. Empty rows are skipped by the layout
// engine.
type Row []Key

// Grid is the full key arrangement for one shift/symbol mode combination.
// Grids are produced fresh each frame and never persisted.
type Grid []Row
