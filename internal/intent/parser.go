// Package intent classifies short voice transcripts as a request to
// remember someone or to search for them.
package intent

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Kind string

const (
	KindRemember Kind = "remember"
	KindSearch   Kind = "search"
	KindUnknown  Kind = "unknown"
)

// Intent is the result of Parse. Name and Description are set for
// KindRemember, Query for KindSearch.
type Intent struct {
	Kind        Kind   `json:"kind"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Query       string `json:"query,omitempty"`
}

var searchPrefixes = []string{
	"who is the ",
	"who's the ",
	"who is ",
	"who's ",
	"who has ",
	"who wears ",
	"who works ",
	"who was ",
	"find the ",
	"find ",
	"search for ",
	"look up ",
	"which person ",
	"what's the name of the ",
	"what is the name of the ",
}

var questionWords = []string{"who ", "what ", "which "}

var rememberPrefixes = []string{"remember ", "save ", "add "}

// shortPhraseWords is the word count at or below which an unmatched
// transcript is treated as a search.
const shortPhraseWords = 6

func Parse(transcript string) Intent {
	lower := strings.ToLower(strings.TrimSpace(transcript))

	if q, ok := searchQuery(lower); ok {
		return Intent{Kind: KindSearch, Query: q}
	}

	if name, desc, ok := rememberRequest(transcript); ok {
		return Intent{Kind: KindRemember, Name: name, Description: desc}
	}

	if len(strings.Fields(lower)) <= shortPhraseWords {
		return Intent{Kind: KindSearch, Query: transcript}
	}

	return Intent{Kind: KindUnknown}
}

func searchQuery(text string) (string, bool) {
	for _, prefix := range searchPrefixes {
		if rest, ok := strings.CutPrefix(text, prefix); ok {
			if q := strings.Trim(rest, "?"); q != "" {
				return q, true
			}
		}
	}

	if !strings.Contains(text, "?") {
		return "", false
	}

	q := strings.ReplaceAll(text, "?", "")
	for _, w := range questionWords {
		q = strings.TrimPrefix(q, w)
	}
	return strings.TrimSpace(q), true
}

func rememberRequest(text string) (string, string, bool) {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	for _, prefix := range rememberPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return nameAndDescription(trimmed[len(prefix):])
		}
	}

	// "Sarah, red glasses, marketing"
	return nameAndDescription(trimmed)
}

func nameAndDescription(text string) (string, string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", "", false
	}

	if name, desc, found := strings.Cut(trimmed, ","); found {
		name = strings.TrimSpace(name)
		if validName(name) {
			return capitalize(name), strings.TrimSpace(desc), true
		}
	}

	first, rest, _ := strings.Cut(trimmed, " ")
	if validName(first) {
		return capitalize(first), strings.TrimSpace(rest), true
	}

	return "", "", false
}

// validName accepts 2 to 20 characters that start with a letter and are
// more than 80% letters.
func validName(s string) bool {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < 2 || n > 20 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(first) {
		return false
	}

	letters := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return float64(letters)/float64(n) > 0.8
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}
