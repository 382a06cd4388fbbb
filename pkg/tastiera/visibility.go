package tastiera

// visibilityHold is how many frames the keyboard stays up after the host
// stops wanting keyboard input. Focus is lost for a frame or two while a
// keyboard button handles its own click, so hiding immediately would make
// the keyboard flicker away mid-interaction.
const visibilityHold = 20

// visibilityTracker is the hysteresis countdown behind show/hide. The
// countdown is clamped at zero; a strictly positive value means visible.
type visibilityTracker struct {
	countdown int
}

// update advances the tracker by one frame and reports whether the keyboard
// should render this frame. While it returns true the caller must request a
// repaint so the countdown keeps ticking even without other input.
func (t *visibilityTracker) update(wantsInput bool) bool {
	if wantsInput {
		t.countdown = visibilityHold
		return true
	}
	// Consume one held frame per update so the keyboard survives exactly
	// visibilityHold frames after the last wanted-input frame.
	if t.countdown == 0 {
		return false
	}
	t.countdown--
	return true
}
