package tastiera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibilityTrackerHiddenByDefault(t *testing.T) {
	var tracker visibilityTracker
	assert.False(t, tracker.update(false))
}

func TestVisibilityTrackerShowsImmediately(t *testing.T) {
	var tracker visibilityTracker
	assert.True(t, tracker.update(true))
}

func TestVisibilityTrackerHoldsExactly20Frames(t *testing.T) {
	var tracker visibilityTracker
	assert.True(t, tracker.update(true))

	for frame := 1; frame <= 20; frame++ {
		assert.True(t, tracker.update(false), "frame %d should still be visible", frame)
	}
	assert.False(t, tracker.update(false), "frame 21 should be hidden")
}

func TestVisibilityTrackerResetsOnWantedInput(t *testing.T) {
	var tracker visibilityTracker
	tracker.update(true)

	for frame := 0; frame < 15; frame++ {
		tracker.update(false)
	}
	assert.True(t, tracker.update(true))

	// The countdown starts over from the full hold.
	for frame := 1; frame <= 20; frame++ {
		assert.True(t, tracker.update(false), "frame %d should still be visible", frame)
	}
	assert.False(t, tracker.update(false))
}

func TestVisibilityTrackerStaysHiddenAfterExpiry(t *testing.T) {
	var tracker visibilityTracker
	tracker.update(true)
	for frame := 0; frame < 30; frame++ {
		tracker.update(false)
	}
	assert.False(t, tracker.update(false))
	assert.False(t, tracker.update(false))
}
