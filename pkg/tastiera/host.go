package tastiera

// WidgetID identifies a widget in the host toolkit's tree.
type WidgetID uint64

// HostContext is the per-frame view of the host toolkit. The Keyboard never
// touches the host through globals; the controller receives this interface
// every frame, which keeps the core testable without a real UI.
//
// The sdlhost package provides a reference implementation over SDL2.
type HostContext interface {
	// WantsKeyboardInput reports whether a text input currently has
	// keyboard focus in the host.
	WantsKeyboardInput() bool

	// FocusedWidget returns the id of the currently focused widget, if any.
	FocusedWidget() (WidgetID, bool)

	// RequestFocus asks the host to move focus to the given widget at the
	// next opportunity.
	RequestFocus(id WidgetID)

	// ScreenRect is the full screen rectangle.
	ScreenRect() Rect

	// AvailableRect is the content rectangle the keyboard may occupy the
	// bottom third of.
	AvailableRect() Rect

	// PointerOver reports whether the pointer is currently inside r.
	PointerOver(r Rect) bool

	// ClipboardText returns the system clipboard's text content, if any.
	ClipboardText() (string, bool)

	// PushEvent appends a synthetic event to the host's input queue. The
	// host must consume pushed events at the start of its next
	// input-processing phase, never mid-frame.
	PushEvent(ev Event)

	// RequestRepaint asks for another frame even without input, so the
	// visibility countdown keeps ticking.
	RequestRepaint()

	// SuppressNativeInput stops the platform's own on-screen keyboard or
	// input method from appearing alongside the overlay this frame.
	SuppressNativeInput()

	// Button draws a key button at r and reports whether it was clicked
	// this frame. heading selects the larger key-cap text style.
	Button(r Rect, label string, heading bool) bool
}
