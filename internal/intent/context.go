package intent

import (
	"strings"
	"unicode/utf8"
)

type contextPattern struct {
	prefix string
	// when set the text after prefix must start with it and it becomes the context
	literal string
}

// Patterns are tried in order. The first one that yields a usable phrase wins.
var contextPatterns = []contextPattern{
	{prefix: "met them at "},
	{prefix: "met her at "},
	{prefix: "met him at "},
	{prefix: "met at "},
	{prefix: "i met at "},
	{prefix: "from the "},
	{prefix: "from "},
	{prefix: "at the "},
	{prefix: "at a "},
	{prefix: "at "},
	{prefix: "works at "},
	{prefix: "working at "},
	{prefix: "my ", literal: "neighbor"},
	{prefix: "our "},
}

var contextStops = []string{",", ".", " and ", " who ", " she ", " he ", " they ", " with "}

// ExtractContext pulls a short "where we met" phrase out of a transcript,
// e.g. "met her at the climbing gym, tall" gives "The Climbing Gym".
// It returns "" when nothing matches.
func ExtractContext(transcript string) string {
	lower := strings.ToLower(transcript)

	for _, p := range contextPatterns {
		idx := strings.Index(lower, p.prefix)
		if idx < 0 {
			continue
		}
		after := lower[idx+len(p.prefix):]

		if p.literal != "" {
			if strings.HasPrefix(after, p.literal) {
				return titleCase(p.literal)
			}
			continue
		}

		end := len(after)
		for _, stop := range contextStops {
			if i := strings.Index(after, stop); i >= 0 && i < end {
				end = i
			}
		}

		phrase := strings.TrimSpace(after[:end])
		if n := utf8.RuneCountInString(phrase); n >= 2 && n <= 40 {
			return titleCase(phrase)
		}
	}

	return ""
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}
