package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Pointer folds SDL mouse and touch events into the single pointer driving
// the overlay. Touch coordinates arrive normalized to [0, 1] and are scaled
// to window pixels.
type Pointer struct {
	x, y float32
	down bool

	clicks [][2]float32
}

// BeginFrame discards the previous frame's clicks. Call once per frame
// before processing events.
func (p *Pointer) BeginFrame() {
	p.clicks = p.clicks[:0]
}

// Process consumes one SDL event. Events other than mouse/touch input are
// ignored.
func (p *Pointer) Process(event sdl.Event, windowWidth, windowHeight int32) {
	switch ev := event.(type) {
	case *sdl.MouseMotionEvent:
		p.x, p.y = float32(ev.X), float32(ev.Y)

	case *sdl.MouseButtonEvent:
		if ev.Button != sdl.BUTTON_LEFT {
			return
		}
		p.x, p.y = float32(ev.X), float32(ev.Y)
		switch ev.Type {
		case sdl.MOUSEBUTTONDOWN:
			p.down = true
			p.clicks = append(p.clicks, [2]float32{p.x, p.y})
		case sdl.MOUSEBUTTONUP:
			p.down = false
		}

	case *sdl.TouchFingerEvent:
		p.x = ev.X * float32(windowWidth)
		p.y = ev.Y * float32(windowHeight)
		switch ev.Type {
		case sdl.FINGERDOWN:
			p.down = true
			p.clicks = append(p.clicks, [2]float32{p.x, p.y})
		case sdl.FINGERUP:
			p.down = false
		}
	}
}

// Position returns the pointer's last known position in window pixels.
func (p *Pointer) Position() (float32, float32) {
	return p.x, p.y
}

// IsDown reports whether the button or finger is currently held.
func (p *Pointer) IsDown() bool {
	return p.down
}

// Clicks returns the positions pressed during this frame, oldest first.
func (p *Pointer) Clicks() [][2]float32 {
	return p.clicks
}

// ClickedIn reports whether any click this frame landed inside the given
// box (min-inclusive, max-exclusive).
func (p *Pointer) ClickedIn(minX, minY, maxX, maxY float32) bool {
	for _, c := range p.clicks {
		if c[0] >= minX && c[0] < maxX && c[1] >= minY && c[1] < maxY {
			return true
		}
	}
	return false
}
