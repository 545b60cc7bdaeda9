package i18n

import (
	"embed"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"catalogrenamer/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var messageFiles = []string{"active.en.toml", "active.sv.toml"}

var _ output.T = (*Translator)(nil)

// Translator renders report messages through a go-i18n Bundle. Localizers
// are built once per requested locale. Not safe for concurrent use.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	localizers      map[string]*i18n.Localizer
}

// NewTranslator builds a Translator from the embedded active.*.toml files.
// An unparsable defaultLocale falls back to English.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range messageFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("i18n: failed to load %s: %v", file, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		localizers:      map[string]*i18n.Localizer{},
	}
}

func (t *Translator) localizer(locale string) *i18n.Localizer {
	if l, ok := t.localizers[locale]; ok {
		return l
	}
	l := i18n.NewLocalizer(t.bundle, locale, t.defaultLanguage.String())
	t.localizers[locale] = l
	return l
}

// T renders key for locale, falling back to the default language and then
// to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	msg, err := t.localizer(locale).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: no message %s for %q: %v", key, locale, err)
		return key
	}
	return msg
}
