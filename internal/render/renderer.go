// Package render draws a layered face sketch from SketchFeatures.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/fogleman/gg"

	"github.com/your-org/remember/internal/features"
)

const maxCanvas = 4096

// Config sizes the canvas. Width and Height are logical units that all
// geometry is laid out in. Scale multiplies them to get output pixels.
type Config struct {
	Width  int
	Height int
	Scale  float64
}

// DefaultConfig is a 200x200 canvas at 1x.
func DefaultConfig() Config {
	return Config{Width: 200, Height: 200, Scale: 1}
}

// Renderer is safe for concurrent use. Every call draws into its own context.
type Renderer struct {
	cfg Config
}

func New(cfg Config) (*Renderer, error) {
	if cfg.Scale == 0 {
		cfg.Scale = 1
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, &RenderError{Message: "canvas size must be positive"}
	}
	if cfg.Scale < 0 || math.IsNaN(cfg.Scale) || math.IsInf(cfg.Scale, 0) {
		return nil, &RenderError{Message: "scale must be a positive number"}
	}
	if float64(cfg.Width)*cfg.Scale > maxCanvas || float64(cfg.Height)*cfg.Scale > maxCanvas {
		return nil, &RenderError{Message: "canvas exceeds 4096 pixels"}
	}
	return &Renderer{cfg: cfg}, nil
}

func (r *Renderer) Config() Config {
	return r.cfg
}

// Render draws the sketch with the style chosen by the variant.
func (r *Renderer) Render(f features.SketchFeatures, variant int) image.Image {
	return r.RenderWithStyle(f, variant, StyleForVariant(variant))
}

// RenderWithStyle draws the layers back to front: hair, face, eyes,
// nose and mouth, facial hair, glasses.
func (r *Renderer) RenderWithStyle(f features.SketchFeatures, variant int, st Style) image.Image {
	pw := int(float64(r.cfg.Width)*r.cfg.Scale + 0.5)
	ph := int(float64(r.cfg.Height)*r.cfg.Scale + 0.5)

	dc := gg.NewContext(pw, ph)
	dc.SetColor(st.Background)
	dc.Clear()
	dc.Scale(r.cfg.Scale, r.cfg.Scale)

	p := &pen{dc: dc, scale: r.cfg.Scale, style: st}
	face := faceRect(float64(r.cfg.Width))

	drawHair(p, face, f, variant)
	drawFace(p, face, f)
	drawEyes(p, face, f, variant)
	drawNoseAndMouth(p, face, variant)
	if f.HasFacialHair {
		drawFacialHair(p, face, f, variant)
	}
	if f.HasGlasses {
		drawGlasses(p, face, f)
	}

	return dc.Image()
}

// EncodePNG renders and encodes the sketch as PNG.
func (r *Renderer) EncodePNG(f features.SketchFeatures, variant int) ([]byte, error) {
	return r.EncodePNGWithStyle(f, variant, StyleForVariant(variant))
}

func (r *Renderer) EncodePNGWithStyle(f features.SketchFeatures, variant int, st Style) ([]byte, error) {
	img := r.RenderWithStyle(f, variant, st)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &RenderError{Message: "encode png", Cause: err}
	}
	return buf.Bytes(), nil
}

// rect is the face bounding box in logical units.
type rect struct {
	X, Y, W, H float64
}

func (r rect) MinX() float64 { return r.X }
func (r rect) MinY() float64 { return r.Y }
func (r rect) MaxX() float64 { return r.X + r.W }
func (r rect) MaxY() float64 { return r.Y + r.H }
func (r rect) MidX() float64 { return r.X + r.W/2 }
func (r rect) MidY() float64 { return r.Y + r.H/2 }

func faceRect(canvasWidth float64) rect {
	const padding = 25.0
	w := canvasWidth - padding*2 - 20
	return rect{
		X: (canvasWidth - w) / 2,
		Y: padding + 15,
		W: w,
		H: w * 1.2,
	}
}

// pen wraps a gg context. gg does not scale line widths with the
// transform so widths are converted to pixels here.
type pen struct {
	dc    *gg.Context
	scale float64
	style Style
}

func (p *pen) lineWidth(w float64) {
	p.dc.SetLineWidth(w * p.scale)
}

func (p *pen) ellipse(x, y, w, h float64) {
	p.dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
}

func (p *pen) line(x1, y1, x2, y2 float64) {
	p.dc.MoveTo(x1, y1)
	p.dc.LineTo(x2, y2)
	p.dc.Stroke()
}

// fillStroke fills the current path and outlines it with the style ink.
func (p *pen) fillStroke(fill color.Color, width float64) {
	p.dc.SetColor(fill)
	p.dc.FillPreserve()
	p.dc.SetColor(p.style.LineColor)
	p.lineWidth(width)
	p.dc.Stroke()
}
