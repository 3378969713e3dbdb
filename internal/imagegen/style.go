package imagegen

import (
	"fmt"
	"strings"
)

// IllustrationStyle selects the look of an AI-generated portrait.
type IllustrationStyle string

const (
	StyleCourtroom IllustrationStyle = "courtroom"
	StylePopArt    IllustrationStyle = "pop_art"
	StylePixar3D   IllustrationStyle = "pixar_3d"
	StylePolaroid  IllustrationStyle = "polaroid"
	StyleAnime     IllustrationStyle = "anime"

	DefaultStyle = StylePolaroid
)

var AllStyles = []IllustrationStyle{StyleCourtroom, StylePopArt, StylePixar3D, StylePolaroid, StyleAnime}

// ParseStyle accepts a style value. An empty string gives DefaultStyle.
func ParseStyle(s string) (IllustrationStyle, error) {
	if s == "" {
		return DefaultStyle, nil
	}
	for _, st := range AllStyles {
		if strings.EqualFold(string(st), s) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown illustration style %q", s)
}

func (s IllustrationStyle) DisplayName() string {
	switch s {
	case StyleCourtroom:
		return "Courtroom Sketch"
	case StylePopArt:
		return "Pop Art"
	case StylePixar3D:
		return "Pixar 3D"
	case StylePolaroid:
		return "Vintage Polaroid"
	case StyleAnime:
		return "Anime"
	default:
		return string(s)
	}
}

// Prompt is the art direction sent ahead of the description.
func (s IllustrationStyle) Prompt() string {
	switch s {
	case StyleCourtroom:
		return "Courtroom sketch style CARICATURE portrait. Drawn with charcoal and soft pastels on cream-colored paper. " +
			"Expressive, loose strokes characteristic of a skilled courtroom artist. " +
			"EXAGGERATE distinctive features like a political cartoonist would. " +
			"Head and shoulders view, dramatic lighting from the side."
	case StylePopArt:
		return "Pop art CARICATURE portrait in the style of a screen print. " +
			"Bold, flat colors with high contrast and a Ben-Day dot background. " +
			"Thick black outlines and a limited palette of vibrant primary colors. " +
			"EXAGGERATE the most distinctive facial features. Head and shoulders view."
	case StylePixar3D:
		return "3D animated CARICATURE character portrait in a modern feature animation style. " +
			"Smooth, stylized features with expressive eyes and soft, appealing lighting. " +
			"EXAGGERATE distinctive features for charm and memorability. Head and shoulders view."
	case StyleAnime:
		return "Japanese anime style CARICATURE portrait. Clean, precise linework with cel-shaded coloring. " +
			"Large expressive eyes and stylized hair with defined strands. " +
			"EXAGGERATE the person's unique features. Head and shoulders view."
	default:
		return "Vintage Polaroid instant photo style portrait with CARICATURE elements. " +
			"Slightly faded colors with warm nostalgic tones, soft focus and slight vignetting. " +
			"SUBTLY EXAGGERATE the person's most distinctive features to make them memorable. " +
			"The characteristic Polaroid white border frame."
	}
}

// BuildPrompt combines the style direction with the description and keywords.
func BuildPrompt(style IllustrationStyle, description string, keywords []string) string {
	var b strings.Builder
	b.WriteString(style.Prompt())
	b.WriteString(" Capture the likeness based on this description: ")
	b.WriteString(strings.TrimSpace(description))
	b.WriteString(".")
	if len(keywords) > 0 {
		b.WriteString(" Key features: ")
		b.WriteString(strings.Join(keywords, ", "))
		b.WriteString(".")
	}
	return b.String()
}
