// tastiera-demo opens a window with one text field and lets the on-screen
// keyboard overlay do the rest. Run with TASTIERA_DEV=1 for a desktop-sized
// window instead of fullscreen.
package main

import (
	_ "embed"
	"flag"
	"os"

	"github.com/BrandonKowalski/tastiera/pkg/tastiera"
	"github.com/BrandonKowalski/tastiera/pkg/tastiera/i18n"
	"github.com/BrandonKowalski/tastiera/pkg/tastiera/sdlhost"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed messages/en.toml
var messagesEN []byte

//go:embed messages/it.toml
var messagesIT []byte

func main() {
	configPath := flag.String("config", "", "path to a TOML options file")
	langCode := flag.String("lang", "", "UI language as a BCP-47 code (also selects the letter layout)")
	flag.Parse()

	logger := tastiera.GetLogger()

	options := tastiera.DefaultOptions()
	options.LogFilename = "tastiera-demo.log"
	options.DisableWithHardwareKeyboard = false
	if *configPath != "" {
		var err error
		options, err = tastiera.LoadOptions(*configPath)
		if err != nil {
			logger.Error("Failed to load options", "error", err)
			os.Exit(1)
		}
	}
	if *langCode != "" {
		options.LayoutLanguage = *langCode
	}

	err := i18n.InitFromBytes([]i18n.MessageFile{
		{Name: "en.toml", Content: messagesEN},
		{Name: "it.toml", Content: messagesIT},
	})
	if err != nil {
		logger.Error("Failed to load message catalogs", "error", err)
		os.Exit(1)
	}
	if err := i18n.SetWithCode(options.LayoutLanguage); err != nil {
		logger.Warn("Unknown language; staying with English", "code", options.LayoutLanguage, "error", err)
	}

	options.WindowTitle = i18n.Localize(&i18n.Message{ID: "window_title", Other: "tastiera demo"}, nil)

	tastiera.Init(options)
	defer tastiera.Close()

	logger.Info(i18n.Localize(&i18n.Message{ID: "quit_hint", Other: "Close the window to quit"}, nil))

	keyboard := tastiera.NewFromOptions(options)
	host := sdlhost.New(options)

	screen := host.ScreenRect()
	fieldHeight := float32(70)
	fieldTop := screen.Height() * 0.15
	field := host.AddTextField(
		tastiera.NewRect(screen.Width()*0.1, fieldTop, screen.Width()*0.9, fieldTop+fieldHeight),
		i18n.Localize(&i18n.Message{ID: "field_placeholder", Other: "Tap here to type"}, nil),
	)

	for {
		keyboard.PumpEvents(host)
		if !host.BeginFrame() {
			break
		}
		host.RenderFields()
		keyboard.Show(host)
		host.EndFrame()
		sdl.Delay(16)
	}

	logger.Info("Session finished", "text", field.Text())
}
