package sdlhost

import (
	"time"

	"github.com/BrandonKowalski/tastiera/pkg/tastiera"
	"github.com/BrandonKowalski/tastiera/pkg/tastiera/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// TextField is a minimal single-line text input. It exists so the overlay
// has something to type into: it takes focus on click, consumes the
// synthetic TextEvent/KeyEvent stream, and renders a blinking cursor.
type TextField struct {
	id          tastiera.WidgetID
	rect        tastiera.Rect
	placeholder string

	text   []rune
	cursor int

	cursorVisible bool
	lastBlink     time.Time
}

const cursorBlinkRate = 500 * time.Millisecond

func newTextField(id tastiera.WidgetID, rect tastiera.Rect, placeholder string) *TextField {
	return &TextField{
		id:            id,
		rect:          rect,
		placeholder:   placeholder,
		cursorVisible: true,
		lastBlink:     time.Now(),
	}
}

// ID returns the field's widget id, usable with RequestFocus.
func (f *TextField) ID() tastiera.WidgetID {
	return f.id
}

// Text returns the field's current content.
func (f *TextField) Text() string {
	return string(f.text)
}

// SetText replaces the content and moves the cursor to the end.
func (f *TextField) SetText(text string) {
	f.text = []rune(text)
	f.cursor = len(f.text)
}

func (f *TextField) handleEvent(ev tastiera.Event) {
	switch e := ev.(type) {
	case tastiera.TextEvent:
		f.insert(e.Text)
	case tastiera.KeyEvent:
		if e.Code == tastiera.KeyCodeBackspace && e.Pressed {
			f.backspace()
		}
	}
}

func (f *TextField) insert(text string) {
	inserted := []rune(text)
	f.text = append(f.text[:f.cursor], append(inserted, f.text[f.cursor:]...)...)
	f.cursor += len(inserted)
	f.showCursor()
}

func (f *TextField) backspace() {
	if f.cursor == 0 {
		return
	}
	f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
	f.cursor--
	f.showCursor()
}

func (f *TextField) showCursor() {
	f.cursorVisible = true
	f.lastBlink = time.Now()
}

func (f *TextField) updateBlink() {
	if time.Since(f.lastBlink) > cursorBlinkRate {
		f.cursorVisible = !f.cursorVisible
		f.lastBlink = time.Now()
	}
}

func (f *TextField) render(renderer *sdl.Renderer, focused bool) {
	theme := internal.GetTheme()
	rect := toSDLRect(f.rect)

	renderer.SetDrawColor(theme.FieldColor.R, theme.FieldColor.G, theme.FieldColor.B, theme.FieldColor.A)
	renderer.FillRect(&rect)

	border := theme.KeyBorderColor
	if focused {
		border = theme.FieldBorderColor
	}
	renderer.SetDrawColor(border.R, border.G, border.B, border.A)
	renderer.DrawRect(&rect)

	font := internal.Fonts.MediumFont
	padding := int32(10)

	content := string(f.text)
	color := theme.FieldTextColor
	if content == "" {
		content = f.placeholder
		color = theme.KeyBorderColor
	}

	var textWidth int32
	if content != "" {
		surface, err := font.RenderUTF8Blended(content, color)
		if err == nil {
			texture, err := renderer.CreateTextureFromSurface(surface)
			if err == nil {
				textRect := sdl.Rect{
					X: rect.X + padding,
					Y: rect.Y + (rect.H-surface.H)/2,
					W: internal.Min32(surface.W, rect.W-2*padding),
					H: surface.H,
				}
				srcRect := sdl.Rect{X: 0, Y: 0, W: textRect.W, H: surface.H}
				renderer.Copy(texture, &srcRect, &textRect)
				texture.Destroy()
			}
			if len(f.text) > 0 {
				textWidth = surface.W
			}
			surface.Free()
		}
	}

	if focused && f.cursorVisible {
		cursorX := rect.X + padding + f.cursorOffset(font, textWidth)
		fontHeight := int32(font.Height())
		cursorRect := sdl.Rect{
			X: internal.Min32(cursorX, rect.X+rect.W-padding),
			Y: rect.Y + (rect.H-fontHeight)/2,
			W: 2,
			H: fontHeight,
		}
		renderer.SetDrawColor(theme.FieldTextColor.R, theme.FieldTextColor.G, theme.FieldTextColor.B, theme.FieldTextColor.A)
		renderer.FillRect(&cursorRect)
	}
}

// cursorOffset measures the text before the cursor; the full width is
// reused when the cursor sits at the end.
func (f *TextField) cursorOffset(font *ttf.Font, fullWidth int32) int32 {
	if f.cursor == 0 {
		return 0
	}
	if f.cursor == len(f.text) {
		return fullWidth
	}
	width, _, err := font.SizeUTF8(string(f.text[:f.cursor]))
	if err != nil {
		return fullWidth
	}
	return int32(width)
}
