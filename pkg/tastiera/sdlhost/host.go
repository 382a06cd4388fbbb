// Package sdlhost is the reference tastiera.HostContext implementation,
// backed by the SDL2 window the library initializes. It owns a small widget
// registry (text fields), the pointer state, and the deferred input-event
// queue the overlay feeds.
package sdlhost

import (
	"github.com/BrandonKowalski/tastiera/pkg/tastiera"
	"github.com/BrandonKowalski/tastiera/pkg/tastiera/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Host implements tastiera.HostContext for SDL. Create one after
// tastiera.Init and drive it once per frame:
//
//	keyboard.PumpEvents(host)
//	if !host.BeginFrame() { break }
//	// draw application widgets
//	keyboard.Show(host)
//	host.EndFrame()
type Host struct {
	window  *internal.Window
	pointer internal.Pointer

	fields  []*TextField
	nextID  tastiera.WidgetID
	focused tastiera.WidgetID
	focus   bool

	queue          []tastiera.Event
	repaintWanted  bool
	suppressNative bool

	disableWithHardwareKeyboard bool
}

// New returns a host over the window tastiera.Init created.
func New(options tastiera.Options) *Host {
	return &Host{
		window:                      internal.GetWindow(),
		disableWithHardwareKeyboard: options.DisableWithHardwareKeyboard,
	}
}

// AddTextField registers a single-line text input occupying rect.
func (h *Host) AddTextField(rect tastiera.Rect, placeholder string) *TextField {
	h.nextID++
	field := newTextField(h.nextID, rect, placeholder)
	h.fields = append(h.fields, field)
	return field
}

// BeginFrame polls SDL, applies the queued synthetic events to the focused
// field, resolves click focus changes and clears the background. Events
// queued by the overlay are consumed here, at the very start of input
// processing, before any widget logic runs. Returns false when the
// application should quit.
func (h *Host) BeginFrame() bool {
	h.pointer.BeginFrame()
	h.repaintWanted = false
	h.suppressNative = false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.TextInputEvent:
			// Hardware keyboard text lands directly on the focused field.
			if field := h.focusedField(); field != nil {
				field.insert(ev.GetText())
			}

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_BACKSPACE {
				if field := h.focusedField(); field != nil {
					field.backspace()
				}
			}

		default:
			h.pointer.Process(event, h.window.GetWidth(), h.window.GetHeight())
		}
	}

	h.dispatchQueued()

	// A click inside a field focuses it; a click anywhere else (keyboard
	// buttons included) blurs. The overlay's focus restore undoes the blur
	// when the click was one of its own keys.
	for _, click := range h.pointer.Clicks() {
		if field := h.fieldAt(click[0], click[1]); field != nil {
			h.focused = field.id
			h.focus = true
		} else {
			h.focus = false
		}
	}

	for _, field := range h.fields {
		field.updateBlink()
	}

	h.clear()
	return true
}

// EndFrame reconciles SDL's native text input state and presents the frame.
func (h *Host) EndFrame() {
	if h.suppressNative || !h.focus {
		if sdl.IsTextInputActive() {
			sdl.StopTextInput()
		}
	} else if !sdl.IsTextInputActive() {
		sdl.StartTextInput()
	}

	h.window.Renderer.Present()
}

// RenderFields draws every registered text field.
func (h *Host) RenderFields() {
	for _, field := range h.fields {
		field.render(h.window.Renderer, h.focus && h.focused == field.id)
	}
}

// RepaintWanted reports whether the overlay asked for another frame.
func (h *Host) RepaintWanted() bool {
	return h.repaintWanted
}

func (h *Host) clear() {
	renderer := h.window.Renderer
	theme := internal.GetTheme()
	renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, theme.BackgroundColor.A)
	renderer.Clear()
	h.window.RenderBackground()
}

func (h *Host) dispatchQueued() {
	field := h.focusedField()
	for _, ev := range h.queue {
		if field != nil {
			field.handleEvent(ev)
		}
	}
	h.queue = h.queue[:0]
}

func (h *Host) focusedField() *TextField {
	if !h.focus {
		return nil
	}
	for _, field := range h.fields {
		if field.id == h.focused {
			return field
		}
	}
	return nil
}

func (h *Host) fieldAt(x, y float32) *TextField {
	for _, field := range h.fields {
		if field.rect.Contains(x, y) {
			return field
		}
	}
	return nil
}

// tastiera.HostContext implementation

func (h *Host) WantsKeyboardInput() bool {
	if h.disableWithHardwareKeyboard && internal.HasHardwareKeyboard() {
		return false
	}
	return h.focus
}

func (h *Host) FocusedWidget() (tastiera.WidgetID, bool) {
	return h.focused, h.focus
}

func (h *Host) RequestFocus(id tastiera.WidgetID) {
	for _, field := range h.fields {
		if field.id == id {
			h.focused = id
			h.focus = true
			return
		}
	}
}

func (h *Host) ScreenRect() tastiera.Rect {
	return tastiera.NewRect(0, 0, float32(h.window.GetWidth()), float32(h.window.GetHeight()))
}

func (h *Host) AvailableRect() tastiera.Rect {
	return h.ScreenRect()
}

func (h *Host) PointerOver(r tastiera.Rect) bool {
	x, y := h.pointer.Position()
	return r.Contains(x, y)
}

func (h *Host) ClipboardText() (string, bool) {
	if !sdl.HasClipboardText() {
		return "", false
	}
	text, err := sdl.GetClipboardText()
	if err != nil || text == "" {
		return "", false
	}
	return text, true
}

func (h *Host) PushEvent(ev tastiera.Event) {
	h.queue = append(h.queue, ev)
}

func (h *Host) RequestRepaint() {
	h.repaintWanted = true
}

func (h *Host) SuppressNativeInput() {
	h.suppressNative = true
}

func (h *Host) Button(r tastiera.Rect, label string, heading bool) bool {
	renderer := h.window.Renderer
	theme := internal.GetTheme()
	rect := toSDLRect(r)

	background := theme.KeyColor
	if h.pointer.IsDown() && h.PointerOver(r) {
		background = theme.KeyPressedColor
	}

	radius := internal.Min32(6, internal.Min32(rect.W, rect.H)/4)
	internal.DrawRoundedRect(renderer, &rect, radius, background)

	font := internal.Fonts.MediumFont
	if heading {
		font = internal.Fonts.LargeFont
	}
	internal.RenderCenteredText(renderer, font, label, rect, theme.KeyTextColor)

	return h.pointer.ClickedIn(r.MinX, r.MinY, r.MaxX, r.MaxY)
}

func toSDLRect(r tastiera.Rect) sdl.Rect {
	return sdl.Rect{
		X: int32(r.MinX),
		Y: int32(r.MinY),
		W: int32(r.Width()),
		H: int32(r.Height()),
	}
}
