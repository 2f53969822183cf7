// Package translate formats user facing messages for a language.
//
// The language is matched from the system locales at start up, and may be
// replaced with SetLanguage before any messages are formatted.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

const FALLBACK_LANGUAGE = "en-US"

var printer = newPrinter()

// newPrinter matches the system locales.
func newPrinter() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("translate: locale: %v", err)
	}

	return printerFor(locales...)
}

func printerFor(langs ...string) *message.Printer {
	if len(langs) == 0 {
		langs = []string{FALLBACK_LANGUAGE}
	}

	return message.NewPrinter(message.MatchLanguage(langs...))
}

// SetLanguage selects the message language from BCP 47 tags, in order of
// preference. With no tags the system locales are used again.
// Not safe to call while messages are being formatted.
func SetLanguage(langs ...string) {
	if len(langs) == 0 {
		printer = newPrinter()
		return
	}

	printer = printerFor(langs...)
}

// From formats an en-US Sprintf() style key in the selected language.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
