// Package i18n localizes the strings the demo and host-side chrome display
// (hints, placeholders, window titles). Key-cap labels are glyphs and go
// through the Layout, not through here.
package i18n

import (
	"encoding/json"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var active *localization

type localization struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

// MessageFile is one embedded message catalog; Name's extension selects the
// unmarshal format (json or toml).
type MessageFile struct {
	Name    string
	Content []byte
}

// InitFromBytes loads embedded message catalogs. English is the base
// language and the fallback for missing translations.
func InitFromBytes(messageFiles []MessageFile) error {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, messageFile := range messageFiles {
		if _, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name); err != nil {
			return err
		}
	}

	active = &localization{
		localizer: i18n.NewLocalizer(bundle, language.English.String()),
		bundle:    bundle,
	}
	return nil
}

// SetLanguage switches the preferred language, keeping English as fallback.
func SetLanguage(lang language.Tag) {
	active = &localization{
		localizer: i18n.NewLocalizer(active.bundle, lang.String(), language.English.String()),
		bundle:    active.bundle,
	}
}

// SetWithCode parses a BCP-47 code and switches to it.
func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// Message is an alias for i18n.Message so callers need not import go-i18n.
type Message = i18n.Message

// Localize resolves a message in the current language, falling back to the
// message's own Other text.
func Localize(message *Message, templateData map[string]interface{}) string {
	if active == nil || message == nil {
		if message != nil {
			return message.Other
		}
		return ""
	}

	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
	}
	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := active.localizer.Localize(config)
	if err != nil {
		return message.Other
	}
	return msg
}
