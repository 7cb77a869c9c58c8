// Package locale parses the locale negotiation header into ordered language
// tags.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is assumed when the request carries no usable header.
const DefaultLocale = "en-US"

// ParseHeader parses an Accepted-Language style header value into an ordered
// list of locale tags. Segments carrying a quality weight are discarded and
// every surviving tag must parse as a BCP 47 language tag. An absent or
// unusable header yields the default locale.
func ParseHeader(value string) []string {
	var locales []string
	for s := range strings.SplitSeq(value, ",") {
		if strings.Contains(s, ";") {
			continue
		}

		s = strings.TrimSpace(s)
		if s == "" || s == "*" {
			continue
		}

		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		locales = append(locales, tag.String())
	}

	if len(locales) == 0 {
		return []string{DefaultLocale}
	}
	return locales
}
