package tastiera

// KeyCode identifies the non-text key carried by a KeyEvent.
type KeyCode int

const (
	// KeyCodeBackspace is the delete-backwards key.
	KeyCodeBackspace KeyCode = iota
)

// Modifiers is the modifier state attached to a KeyEvent. Synthetic key
// presses from the overlay always carry the zero value.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

// Event is a synthetic input event destined for the host toolkit's input
// queue. Events queued during one frame must be handed to the host before
// it processes widget logic for the next frame; Keyboard.PumpEvents does
// exactly that.
type Event interface {
	event()
}

// TextEvent inserts Text into the focused text input.
type TextEvent struct {
	Text string
}

// KeyEvent is a synthetic press of a non-text key.
type KeyEvent struct {
	Code      KeyCode
	Pressed   bool
	Repeat    bool
	Modifiers Modifiers
}

func (TextEvent) event() {}
func (KeyEvent) event()  {}
