// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user facing messages for the host locale.
//
// The locale list comes from the I8080_LANG environment variable (a
// colon separated list of BCP 47 tags) when set, otherwise from the host.
package translate

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const ENV_LANG = "I8080_LANG"

var printer *message.Printer

func init() {
	SetLanguage(hostLocales()...)
}

// hostLocales lists the preferred locales, most preferred first.
func hostLocales() (locales []string) {
	if env := os.Getenv(ENV_LANG); len(env) != 0 {
		locales = strings.Split(env, ":")
		return
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("i8080: locale: %v", err)
	}

	return
}

// SetLanguage selects the message printer from a list of locales. Locales
// that do not parse are skipped; with none left, en-US is used.
func SetLanguage(locales ...string) (tags []language.Tag) {
	for _, name := range locales {
		tag, err := language.Parse(name)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}

	if len(tags) == 0 {
		tags = []language.Tag{language.AmericanEnglish}
	}

	printer = message.NewPrinter(tags[0])
	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
