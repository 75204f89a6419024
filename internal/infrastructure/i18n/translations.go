package i18n

import (
	"embed"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"mergington/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	matcher         language.Matcher
	supported       []language.Tag
}

// NewTranslator builds a Translator with the embedded en and fr messages.
// An unparsable defaultLocale falls back to English.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.fr.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("⚠️ i18n: failed to load %s: %v", file, err)
		}
	}

	supported := bundle.LanguageTags()
	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		matcher:         language.NewMatcher(supported),
		supported:       supported,
	}
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("⚠️ i18n: localize failed (key=%s, locales=%v): %v", key, languages, err)
		return key
	}
	return msg
}

// Locale returns the first preference that matches a loaded language, or the
// default language. Each preference may be a single tag or an Accept-Language
// header value.
func (t *Translator) Locale(preferences ...string) string {
	for _, pref := range preferences {
		if pref == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, idx, confidence := t.matcher.Match(tags...)
		if confidence != language.No {
			return t.supported[idx].String()
		}
	}
	return t.defaultLanguage.String()
}
