package internal

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// The overlay targets devices without a physical keyboard; when one is
// attached there is no reason to cover a third of the screen with buttons.
// Scanning evdev devices takes file I/O and ioctls, so it runs off the UI
// thread and publishes through an atomic flag.

var (
	hardwareKeyboard atomic.Bool
	hwWatchOnce      sync.Once
)

// HasHardwareKeyboard reports the result of the most recent device scan.
// Always false until StartHardwareKeyboardWatch has run.
func HasHardwareKeyboard() bool {
	return hardwareKeyboard.Load()
}

// StartHardwareKeyboardWatch performs one synchronous scan, then keeps
// rescanning every interval in the background so hotplugged keyboards are
// picked up. Subsequent calls are no-ops.
func StartHardwareKeyboardWatch(interval time.Duration) {
	hwWatchOnce.Do(func() {
		hardwareKeyboard.Store(scanForHardwareKeyboard())

		go func() {
			for range time.Tick(interval) {
				hardwareKeyboard.Store(scanForHardwareKeyboard())
			}
		}()
	})
}

func scanForHardwareKeyboard() bool {
	entries, err := os.ReadDir("/dev/input")
	if err != nil {
		GetInternalLogger().Debug("Cannot read /dev/input", "error", err)
		return false
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "event") {
			continue
		}

		path := filepath.Join("/dev/input", entry.Name())
		dev, err := evdev.OpenWithFlags(path, os.O_RDONLY)
		if err != nil {
			continue
		}

		isKeyboard := deviceIsKeyboard(dev)
		if isKeyboard {
			if name, err := dev.Name(); err == nil {
				GetInternalLogger().Debug("Hardware keyboard present", "device", path, "name", name)
			}
		}
		dev.Close()

		if isKeyboard {
			return true
		}
	}

	return false
}

// deviceIsKeyboard requires the letter block plus space and enter, so mice,
// power buttons and volume rockers (which also report EV_KEY) do not count.
func deviceIsKeyboard(dev *evdev.InputDevice) bool {
	hasKeys := false
	for _, t := range dev.CapableTypes() {
		if t == evdev.EV_KEY {
			hasKeys = true
			break
		}
	}
	if !hasKeys {
		return false
	}

	have := make(map[evdev.EvCode]bool)
	for _, code := range dev.CapableEvents(evdev.EV_KEY) {
		have[code] = true
	}

	return have[evdev.KEY_A] && have[evdev.KEY_Z] && have[evdev.KEY_SPACE] && have[evdev.KEY_ENTER]
}
