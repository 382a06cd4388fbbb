package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme holds the colors and font used to draw the keyboard overlay.
type Theme struct {
	KeyColor            sdl.Color // key cap background
	KeyPressedColor     sdl.Color // key cap while the pointer is down on it
	KeyBorderColor      sdl.Color // key cap outline
	KeyTextColor        sdl.Color // key cap label
	PanelColor          sdl.Color // keyboard panel behind the keys
	FieldColor          sdl.Color // text field background
	FieldBorderColor    sdl.Color // text field outline, brighter when focused
	FieldTextColor      sdl.Color // text field content
	BackgroundColor     sdl.Color // screen background
	FontPath            string
	BackgroundImagePath string
}

var currentTheme = DefaultTheme()

// DefaultTheme is the dark slate theme used when the application sets
// nothing else.
func DefaultTheme() Theme {
	return Theme{
		KeyColor:         sdl.Color{R: 50, G: 50, B: 60, A: 255},
		KeyPressedColor:  sdl.Color{R: 100, G: 100, B: 240, A: 255},
		KeyBorderColor:   sdl.Color{R: 70, G: 70, B: 80, A: 255},
		KeyTextColor:     sdl.Color{R: 255, G: 255, B: 255, A: 255},
		PanelColor:       sdl.Color{R: 22, G: 22, B: 28, A: 255},
		FieldColor:       sdl.Color{R: 50, G: 50, B: 50, A: 255},
		FieldBorderColor: sdl.Color{R: 200, G: 200, B: 200, A: 255},
		FieldTextColor:   sdl.Color{R: 255, G: 255, B: 255, A: 255},
		BackgroundColor:  sdl.Color{R: 0, G: 0, B: 0, A: 255},
	}
}

func SetTheme(theme Theme) {
	currentTheme = theme
}

func GetTheme() Theme {
	return currentTheme
}
