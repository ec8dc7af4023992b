// Package chat interprets free-text order messages: it classifies an
// utterance as an order or an order-lookup command, extracts the
// structured fields, and renders the plain-text replies.
package chat

import (
	"strings"
	"unicode"
)

// Normalize strips every whitespace character from name. Catalog names
// keep their original spacing in storage; comparison always happens on
// the normalized forms of both sides.
func Normalize(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
}
