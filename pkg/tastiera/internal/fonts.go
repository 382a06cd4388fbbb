package internal

import (
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are base point sizes before resolution scaling.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
}

var DefaultFontSizes = FontSizes{
	Large:  50,
	Medium: 36,
	Small:  26,
}

var Fonts fontsManager

type fontsManager struct {
	LargeFont  *ttf.Font // key caps
	MediumFont *ttf.Font // text fields, clipboard preview
	SmallFont  *ttf.Font // hints
}

// CalculateFontSizeForResolution scales a base size for the screen width,
// with damped growth above the 1024px reference so large screens do not get
// comically large glyphs.
func CalculateFontSizeForResolution(baseSize int, screenWidth int32) int {
	const referenceWidth int32 = 1024
	scaleFactor := float32(screenWidth) / float32(referenceWidth)

	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75
	}

	return int(float32(baseSize) * scaleFactor)
}

func initFonts(sizes FontSizes) {
	screenWidth := GetWindow().GetWidth()

	calcSize := func(base int) int {
		return CalculateFontSizeForResolution(base, screenWidth)
	}

	Fonts = fontsManager{
		LargeFont:  loadFont(calcSize(sizes.Large)),
		MediumFont: loadFont(calcSize(sizes.Medium)),
		SmallFont:  loadFont(calcSize(sizes.Small)),
	}
}

// loadFont opens the theme's font, then the FALLBACK_FONT environment
// override, then a couple of common system font paths. There is no point
// rendering a keyboard without glyphs, so running out of candidates is
// fatal.
func loadFont(size int) *ttf.Font {
	candidates := []string{
		GetTheme().FontPath,
		os.Getenv("FALLBACK_FONT"),
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
	}

	for _, path := range candidates {
		if path == "" {
			continue
		}
		font, err := ttf.OpenFont(path, size)
		if err == nil {
			return font
		}
		GetInternalLogger().Debug("Failed to load font candidate", "path", path, "error", err)
	}

	GetInternalLogger().Error("No usable font found; set Theme.FontPath or FALLBACK_FONT")
	os.Exit(1)
	return nil
}

func closeFonts() {
	Fonts.LargeFont.Close()
	Fonts.MediumFont.Close()
	Fonts.SmallFont.Close()
}
