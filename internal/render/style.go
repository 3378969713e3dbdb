package render

import (
	"fmt"
	"image/color"
	"strings"
)

// Style controls stroke width and ink/paper colors of a sketch.
type Style struct {
	Name       string
	LineWidth  float64
	LineColor  color.NRGBA
	Background color.NRGBA
}

var (
	StyleDefault = Style{
		Name:       "default",
		LineWidth:  2,
		LineColor:  gray(0),
		Background: gray(1),
	}
	StyleSketchy = Style{
		Name:       "sketchy",
		LineWidth:  1.5,
		LineColor:  gray(0.2),
		Background: gray(0.98),
	}
	StyleBold = Style{
		Name:       "bold",
		LineWidth:  3,
		LineColor:  gray(0),
		Background: gray(1),
	}
)

// Styles is the rotation used by StyleForVariant.
var Styles = []Style{StyleDefault, StyleSketchy, StyleBold}

// StyleForVariant picks a style by variant mod 3.
func StyleForVariant(variant int) Style {
	return Styles[wrap(variant, len(Styles))]
}

// StyleByName resolves a style by its name, ignoring case.
func StyleByName(name string) (Style, error) {
	for _, s := range Styles {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return Style{}, fmt.Errorf("unknown sketch style %q", name)
}

// wrap is a modulo that never returns a negative index.
func wrap(v, n int) int {
	return ((v % n) + n) % n
}
