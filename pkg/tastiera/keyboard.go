package tastiera

import "strings"

// clipboardPreviewLimit is the longest clipboard preview shown on the paste
// button, in runes. The emitted event always carries the full text.
const clipboardPreviewLimit = 20

type overlayState int

const (
	overlayHidden overlayState = iota
	overlayVisible
)

// Keyboard is the on-screen keyboard overlay. It owns all cross-frame
// state: shift/symbol mode, the visibility countdown, the remembered focus
// target and the queue of synthetic events. Store one per UI session and
// call PumpEvents and Show once per frame.
type Keyboard struct {
	layout         Layout
	shiftGlyphs    [2]rune
	backspaceGlyph rune

	shift   bool
	symbols bool
	tracker visibilityTracker

	state    overlayState
	lastRect Rect

	inputWidget    WidgetID
	hasInputWidget bool

	events []Event
}

// New returns a keyboard using the QWERTY layout. shiftGlyphs holds the
// shift key's two faces (shift active, shift inactive); backspaceGlyph is
// the backspace key's face.
func New(shiftGlyphs [2]rune, backspaceGlyph rune) *Keyboard {
	return &Keyboard{
		layout:         QWERTY,
		shiftGlyphs:    shiftGlyphs,
		backspaceGlyph: backspaceGlyph,
	}
}

// SetLayout replaces the layout provider. A nil layout is ignored.
func (k *Keyboard) SetLayout(layout Layout) {
	if layout != nil {
		k.layout = layout
	}
}

// PumpEvents moves the events queued by last frame's key presses into the
// host's input queue. Call it at the start of the frame, before the host
// processes any widget logic, or the presses never reach the text input.
func (k *Keyboard) PumpEvents(host HostContext) {
	for _, ev := range k.events {
		host.PushEvent(ev)
	}
	k.events = k.events[:0]
}

// Show renders the keyboard if input is needed this frame. Call it once per
// frame after the host's own widgets so the overlay draws on top.
func (k *Keyboard) Show(host HostContext) {
	k.rememberInputWidget(host)

	if !k.tracker.update(host.WantsKeyboardInput()) {
		k.state = overlayHidden
		k.lastRect = Rect{}
		return
	}

	// The countdown only advances on rendered frames.
	host.RequestRepaint()
	k.state = overlayVisible

	grid := k.layout.Keys(k.shift, k.symbols)
	clip, hasClip := host.ClipboardText()
	hasClip = hasClip && clip != ""
	plan := PlanGrid(grid, host.AvailableRect(), hasClip)

	if hasClip && plan.Clipboard != nil {
		if host.Button(*plan.Clipboard, trimPreview(clip, clipboardPreviewLimit), false) {
			k.events = append(k.events, TextEvent{Text: clip})
			k.focusInputWidget(host)
		}
	}

	for _, row := range plan.Rows {
		for _, placed := range row {
			if host.Button(placed.Rect, k.keyLabel(placed.Key), true) {
				k.press(placed.Key, host)
			}
		}
	}

	k.lastRect = plan.Bounds
	if host.PointerOver(k.lastRect) {
		// Clicking a key steals focus from the text input. Hand it back
		// while the pointer is still on the keyboard so the focus-loss
		// hide never fires mid-interaction.
		k.focusInputWidget(host)
	}
	host.SuppressNativeInput()
}

// SafeRect is the portion of the screen not covered by the keyboard, for
// hosts that want to keep their own windows out from under the overlay.
func (k *Keyboard) SafeRect(host HostContext) Rect {
	screen := host.ScreenRect()
	if k.state != overlayVisible || k.lastRect.IsZero() {
		return screen
	}
	return NewRect(screen.MinX, screen.MinY, screen.MaxX, screen.MaxY-k.lastRect.Height())
}

// Visible reports whether the keyboard rendered on the last Show call.
func (k *Keyboard) Visible() bool {
	return k.state == overlayVisible
}

func (k *Keyboard) press(key Key, host HostContext) {
	switch key.Kind {
	case KeyText:
		k.events = append(k.events, TextEvent{Text: key.Label})
	case KeySpace:
		k.events = append(k.events, TextEvent{Text: " "})
	case KeyBackspace:
		k.events = append(k.events, KeyEvent{Code: KeyCodeBackspace, Pressed: true})
	case KeyShift:
		k.shift = !k.shift
	case KeySymbols:
		k.symbols = !k.symbols
	}
	k.focusInputWidget(host)
}

func (k *Keyboard) keyLabel(key Key) string {
	switch key.Kind {
	case KeyBackspace:
		return string(k.backspaceGlyph)
	case KeyShift:
		if k.shift {
			return string(k.shiftGlyphs[0])
		}
		return string(k.shiftGlyphs[1])
	case KeySymbols:
		if k.symbols {
			return "ABC"
		}
		return "!#1"
	case KeySpace:
		return ""
	default:
		return key.Label
	}
}

// rememberInputWidget captures the focused widget before the keyboard
// renders, so clicking keyboard buttons cannot overwrite the remembered
// target with the keyboard itself.
func (k *Keyboard) rememberInputWidget(host HostContext) {
	if !host.WantsKeyboardInput() {
		return
	}
	if id, ok := host.FocusedWidget(); ok {
		k.inputWidget = id
		k.hasInputWidget = true
	}
}

func (k *Keyboard) focusInputWidget(host HostContext) {
	if k.hasInputWidget {
		host.RequestFocus(k.inputWidget)
	}
}

// trimPreview shortens text to maxRunes runes, marking the cut with an
// ellipsis.
func trimPreview(text string, maxRunes int) string {
	var b strings.Builder
	for n, r := range []rune(text) {
		if n >= maxRunes {
			b.WriteRune('…')
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
