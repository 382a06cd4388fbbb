package tastiera

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/tastiera/pkg/tastiera/internal"
	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// Options configures the SDL side of the overlay. Applications either fill
// it in code or load it from a TOML file with LoadOptions.
type Options struct {
	WindowTitle          string `toml:"window_title"`
	ShowBackground       bool   `toml:"show_background"`
	PrimaryThemeColorHex uint32 `toml:"primary_theme_color_hex"`
	FontPath             string `toml:"font_path"`
	LogFilename          string `toml:"log_filename"`
	LogLevel             string `toml:"log_level"`

	// ShiftActiveGlyph / ShiftInactiveGlyph are the shift key's two faces;
	// BackspaceGlyph is the backspace face. Only the first rune is used.
	ShiftActiveGlyph   string `toml:"shift_active_glyph"`
	ShiftInactiveGlyph string `toml:"shift_inactive_glyph"`
	BackspaceGlyph     string `toml:"backspace_glyph"`

	// LayoutLanguage is a BCP-47 tag selecting the letter layout
	// (en -> QWERTY, fr -> AZERTY, de -> QWERTZ).
	LayoutLanguage string `toml:"layout_language"`

	// DisableWithHardwareKeyboard suppresses the overlay while a physical
	// keyboard is attached, rescanning for hotplug in the background.
	DisableWithHardwareKeyboard bool `toml:"disable_with_hardware_keyboard"`
}

// DefaultOptions returns the options the demo ships with.
func DefaultOptions() Options {
	return Options{
		WindowTitle:        "tastiera",
		ShiftActiveGlyph:   "⬆",
		ShiftInactiveGlyph: "⇧",
		BackspaceGlyph:     "⌫",
		LayoutLanguage:     "en",
		LogLevel:           "info",
	}
}

// LoadOptions reads Options from a TOML file, with defaults for everything
// the file leaves out.
func LoadOptions(path string) (Options, error) {
	options := DefaultOptions()
	if _, err := toml.DecodeFile(path, &options); err != nil {
		return options, fmt.Errorf("load options from %s: %w", path, err)
	}
	return options, nil
}

// Init initializes SDL and the UI.
// Must be called before any other UI function!
func Init(options Options) {
	if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}

	if os.Getenv("TASTIERA_DEBUG") != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	theme := internal.DefaultTheme()
	if options.PrimaryThemeColorHex != 0 {
		theme.KeyPressedColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	if options.FontPath != "" {
		theme.FontPath = options.FontPath
	}
	internal.SetTheme(theme)

	internal.Init(options.WindowTitle, options.ShowBackground)

	if options.DisableWithHardwareKeyboard {
		internal.StartHardwareKeyboardWatch(3 * time.Second)
	}
}

// Close tidies up SDL and the UI.
// Must be called after all UI functions!
func Close() {
	internal.Cleanup()
}

// NewFromOptions builds a Keyboard with the glyphs and layout the options
// describe. Glyph fields left empty fall back to the defaults.
func NewFromOptions(options Options) *Keyboard {
	defaults := DefaultOptions()
	k := New(
		[2]rune{firstRune(options.ShiftActiveGlyph, defaults.ShiftActiveGlyph), firstRune(options.ShiftInactiveGlyph, defaults.ShiftInactiveGlyph)},
		firstRune(options.BackspaceGlyph, defaults.BackspaceGlyph),
	)
	if options.LayoutLanguage != "" {
		tag, err := language.Parse(options.LayoutLanguage)
		if err != nil {
			internal.GetInternalLogger().Warn("Invalid layout language; using QWERTY", "value", options.LayoutLanguage, "error", err)
		} else {
			k.SetLayout(ForLanguage(tag))
		}
	}
	return k
}

// HasHardwareKeyboard reports whether the most recent device scan found a
// physical keyboard. Always false unless Init ran with
// DisableWithHardwareKeyboard.
func HasHardwareKeyboard() bool {
	return internal.HasHardwareKeyboard()
}

func firstRune(s, fallback string) rune {
	for _, r := range s {
		return r
	}
	for _, r := range fallback {
		return r
	}
	return '?'
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
