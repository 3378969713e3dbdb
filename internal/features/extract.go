package features

import "strings"

// Extract returns every known phrase found in the transcript, in table order:
// attribute phrases first, then at most one "from <origin>", then descriptive
// words. The match is a case-insensitive substring test. A phrase string is
// reported at most once.
func Extract(transcript string) []string {
	text := strings.ToLower(transcript)
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	keywords := make([]string, 0, 8)
	seen := make(map[string]struct{})
	add := func(k string) {
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		keywords = append(keywords, k)
	}

	for _, phrase := range attributePhrases() {
		if strings.Contains(text, phrase) {
			add(phrase)
		}
	}

	for _, origin := range OriginKeywords {
		if strings.Contains(text, origin) {
			add("from " + origin)
			break
		}
	}

	for _, word := range DescriptiveKeywords {
		if strings.Contains(text, word) {
			add(word)
		}
	}

	return keywords
}

func attributePhrases() []string {
	out := make([]string, 0, 96)
	out = appendTexts(out, HairColorPhrases)
	out = appendTexts(out, HairStylePhrases)
	out = appendTexts(out, GlassesPhrases)
	out = appendTexts(out, FacialHairPhrases)
	out = appendTexts(out, AgePhrases)
	out = appendTexts(out, FaceShapePhrases)
	out = appendTexts(out, SkinTonePhrases)
	return out
}

func appendTexts[T ~string](dst []string, table []Phrase[T]) []string {
	for _, p := range table {
		dst = append(dst, p.Text)
	}
	return dst
}
