package internal

import (
	"os"
	"strconv"
	"sync"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var (
	window     *Window
	windowOnce sync.Once
)

// Window wraps the SDL window and renderer the overlay draws into.
type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
}

// IsDevMode reports whether the library runs on a desktop for development
// rather than on a device. Dev mode gets a movable window with environment
// size overrides.
func IsDevMode() bool {
	return os.Getenv("TASTIERA_DEV") != ""
}

// Init brings up SDL, the window, and the fonts. Must run on the main
// thread before any other UI call.
func Init(title string, displayBackground bool) {
	windowOnce.Do(func() {
		if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
			panic(err)
		}
		if err := ttf.Init(); err != nil {
			panic(err)
		}

		window = initWindow(title, displayBackground)
		initFonts(DefaultFontSizes)
	})
}

func initWindow(title string, displayBackground bool) *Window {
	displayIndex := 0
	displayMode, err := sdl.GetCurrentDisplayMode(displayIndex)

	if err != nil {
		GetInternalLogger().Error("Failed to get display mode!", "error", err)
	}

	return initWindowWithSize(title, displayMode.W, displayMode.H, displayBackground)
}

func initWindowWithSize(title string, width, height int32, displayBackground bool) *Window {
	x, y := int32(0), int32(0)

	if IsDevMode() {
		x, y = int32(50), int32(50)
		if v := os.Getenv("WINDOW_WIDTH"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				width = int32(n)
			} else {
				GetInternalLogger().Warn("Invalid WINDOW_WIDTH; using default", "value", v, "error", err)
				width = 1024
			}
		} else {
			width = 1024
		}

		if v := os.Getenv("WINDOW_HEIGHT"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				height = int32(n)
			} else {
				GetInternalLogger().Warn("Invalid WINDOW_HEIGHT; using default", "value", v, "error", err)
				height = 768
			}
		} else {
			height = 768
		}
	}

	var windowFlags uint32
	windowFlags = sdl.WINDOW_SHOWN

	if !IsDevMode() {
		windowFlags = windowFlags | sdl.WINDOW_BORDERLESS
	}

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, windowFlags)
	if err != nil {
		panic(err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		GetInternalLogger().Error("Failed to create renderer!", "error", err)
		os.Exit(1)
	}

	renderer.SetLogicalSize(width, height)

	win := &Window{
		Window:            sdlWindow,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
	}

	win.loadBackground()

	return win
}

func (window *Window) loadBackground() {
	if !window.DisplayBackground {
		return
	}

	img.Init(img.INIT_PNG)

	theme := GetTheme()
	if theme.BackgroundImagePath == "" {
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, theme.BackgroundImagePath)
	if err == nil {
		window.Background = bgTexture
	} else {
		GetInternalLogger().Debug("No background image loaded", "path", theme.BackgroundImagePath, "error", err)
		window.Background = nil
	}
}

func GetWindow() *Window {
	return window
}

func (window *Window) GetWidth() int32 {
	w, _ := window.Window.GetSize()
	return w
}

func (window *Window) GetHeight() int32 {
	_, h := window.Window.GetSize()
	return h
}

func (window *Window) RenderBackground() {
	if window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()})
	}
}

// Cleanup tears down the window, fonts and SDL. Call once on shutdown.
func Cleanup() {
	if window == nil {
		return
	}

	if window.Background != nil {
		window.Background.Destroy()
		img.Quit()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
	window = nil

	closeFonts()
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
