package features

import "strings"

// Parse folds keywords into SketchFeatures. Keywords are applied in order and
// a later match overwrites an earlier one of the same category. Unknown
// keywords are ignored.
func Parse(keywords []string) SketchFeatures {
	var f SketchFeatures

	for _, kw := range keywords {
		lower := strings.ToLower(kw)

		if v, ok := lastMatch(lower, HairColorPhrases); ok {
			f.HairColor = v
		}
		if v, ok := lastMatch(lower, HairStylePhrases); ok {
			f.HairStyle = v
		}
		if v, ok := lastMatch(lower, GlassesPhrases); ok {
			f.GlassesStyle = v
			f.HasGlasses = true
		}
		if v, ok := lastMatch(lower, FacialHairPhrases); ok {
			f.FacialHairStyle = v
			f.HasFacialHair = true
		}
		if v, ok := lastMatch(lower, AgePhrases); ok {
			f.AgeRange = v
		}
		if v, ok := lastMatch(lower, FaceShapePhrases); ok {
			f.FaceShape = v
		}
		if v, ok := lastMatch(lower, SkinTonePhrases); ok {
			f.SkinTone = v
		}
	}

	return f
}

// FromDescription is Parse(Extract(text)).
func FromDescription(text string) SketchFeatures {
	return Parse(Extract(text))
}

func lastMatch[T ~string](keyword string, table []Phrase[T]) (T, bool) {
	var (
		out   T
		found bool
	)
	for _, p := range table {
		if strings.Contains(keyword, p.Text) {
			out = p.Value
			found = true
		}
	}
	return out, found
}
