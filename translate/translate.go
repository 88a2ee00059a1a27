// Package translate formats user-facing messages for the host locale.
package translate

import (
	"os"

	"github.com/jeandeaual/go-locale"
	log "github.com/sirupsen/logrus"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LANG_OVERRIDE names the environment variable that forces a message locale.
const LANG_OVERRIDE = "NA32_LANG"

var (
	printer *message.Printer
	current language.Tag
)

func init() {
	SetLocales(hostLocales()...)
}

// hostLocales returns the preferred locales, honouring LANG_OVERRIDE first.
func hostLocales() (locales []string) {
	if lang, ok := os.LookupEnv(LANG_OVERRIDE); ok && len(lang) > 0 {
		return []string{lang}
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Warnf("na32: locale: %v", err)
	}

	return
}

// SetLocales selects the first locale that parses as a language tag,
// falling back to en-US. The printer uses the best catalog match.
func SetLocales(locales ...string) {
	current = language.AmericanEnglish
	for _, name := range locales {
		tag, err := language.Parse(name)
		if err == nil {
			current = tag
			break
		}
	}

	printer = message.NewPrinter(message.MatchLanguage(current.String()))
}

// Tag returns the language tag messages are currently formatted for.
func Tag() language.Tag {
	return current
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
