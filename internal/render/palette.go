package render

import (
	"image/color"

	"github.com/your-org/remember/internal/features"
)

func rgb(r, g, b float64) color.NRGBA {
	return color.NRGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func gray(v float64) color.NRGBA {
	return rgb(v, v, v)
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = channel(a)
	return c
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

var defaultSkin = rgb(0.95, 0.82, 0.70)

func skinColor(t features.SkinTone) color.NRGBA {
	switch t {
	case features.SkinLight:
		return rgb(1.0, 0.87, 0.77)
	case features.SkinMedium:
		return rgb(0.87, 0.72, 0.53)
	case features.SkinTan:
		return rgb(0.76, 0.57, 0.42)
	case features.SkinDark:
		return rgb(0.55, 0.38, 0.28)
	default:
		return defaultSkin
	}
}

var defaultHair = gray(0.3)

// hairColor is shared by scalp and facial hair.
func hairColor(c features.HairColor) color.NRGBA {
	switch c {
	case features.HairBlack:
		return gray(0.1)
	case features.HairBrown:
		return rgb(0.4, 0.26, 0.13)
	case features.HairBlonde:
		return rgb(0.9, 0.8, 0.5)
	case features.HairRed:
		return rgb(0.7, 0.25, 0.1)
	case features.HairGray:
		return gray(0.6)
	case features.HairWhite:
		return gray(0.9)
	case features.HairAuburn:
		return rgb(0.6, 0.2, 0.1)
	default:
		return defaultHair
	}
}
