// Package i18n localizes menu entry labels. Message files are TOML or JSON
// keyed by message ID; labels passed to the menu builders can be message IDs
// resolved through Label.
package i18n

import (
	"encoding/json"
	"errors"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var active *localization

type localization struct {
	localizer *goi18n.Localizer
	bundle    *goi18n.Bundle
}

// MessageFile pairs a file name (its extension selects the unmarshaller)
// with embedded message bytes.
type MessageFile struct {
	Name    string
	Content []byte
}

func newBundle() *goi18n.Bundle {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// Init loads message files from disk paths.
func Init(messageFilePaths []string) error {
	bundle := newBundle()

	for _, path := range messageFilePaths {
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return err
		}
	}

	active = &localization{
		localizer: goi18n.NewLocalizer(bundle, language.English.String()),
		bundle:    bundle,
	}

	return nil
}

// InitFromBytes loads message files shipped inside the host binary.
func InitFromBytes(messageFiles []MessageFile) error {
	bundle := newBundle()

	for _, file := range messageFiles {
		if _, err := bundle.ParseMessageFileBytes(file.Content, file.Name); err != nil {
			return err
		}
	}

	active = &localization{
		localizer: goi18n.NewLocalizer(bundle, language.English.String()),
		bundle:    bundle,
	}

	return nil
}

// SetLanguage switches the preferred language for subsequent lookups. No-op
// until a message bundle has been loaded.
func SetLanguage(lang language.Tag) {
	if active == nil {
		return
	}

	active = &localization{
		localizer: goi18n.NewLocalizer(active.bundle, lang.String()),
		bundle:    active.bundle,
	}
}

// SetWithCode switches language from a BCP 47 code like "es" or "pt-BR".
func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}

	if active == nil {
		return errors.New("no message bundle loaded")
	}

	SetLanguage(lang)
	return nil
}

// Label resolves a message ID to the active language. Unknown IDs come back
// unchanged, so plain labels pass through untranslated.
func Label(key string) string {
	if active == nil {
		return key
	}

	msg, err := active.localizer.Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}

	return msg
}

// LabelWithData resolves a message ID with template data.
func LabelWithData(key string, data map[string]interface{}) string {
	if active == nil {
		return key
	}

	msg, err := active.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		return key
	}

	return msg
}
