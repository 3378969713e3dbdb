package render

import "github.com/your-org/remember/internal/features"

func drawGlasses(p *pen, r rect, f features.SketchFeatures) {
	dc := p.dc
	style := f.GlassesStyle
	if style == "" {
		style = features.GlassesRectangular
	}

	dc.SetColor(p.style.LineColor)
	p.lineWidth(p.style.LineWidth)

	eyeY := r.MinY() + r.H*0.38
	const lensW = 28.0
	lensH := 22.0
	if style == features.GlassesAviator {
		lensH = 28
	}
	spacing := r.W * 0.35
	leftX := r.MidX() - spacing/2 - lensW/2
	rightX := r.MidX() + spacing/2 - lensW/2

	for _, x := range []float64{leftX, rightX} {
		switch style {
		case features.GlassesRound:
			p.ellipse(x, eyeY-lensW/2+5, lensW, lensW)
		case features.GlassesSquare:
			dc.DrawRoundedRectangle(x, eyeY-lensH/2+5, lensW, lensH, 3)
		case features.GlassesAviator:
			aviatorLens(p, x, eyeY, lensW, lensH)
		default:
			h := lensH * 0.7
			dc.DrawRoundedRectangle(x, eyeY-h/2+5, lensW, h, 2)
		}
		dc.Stroke()
	}

	// bridge and temple arms
	p.line(leftX+lensW, eyeY+2, rightX, eyeY+2)
	p.line(leftX, eyeY, leftX-15, eyeY-5)
	p.line(rightX+lensW, eyeY, rightX+lensW+15, eyeY-5)
}

func aviatorLens(p *pen, x, eyeY, w, h float64) {
	dc := p.dc
	topY := eyeY - h/2 + 8
	bottomY := eyeY + h/2 + 5

	dc.MoveTo(x+w/2, topY)
	dc.QuadraticTo(x+w, topY, x+w, eyeY+5)
	dc.QuadraticTo(x+w, bottomY, x+w/2, bottomY)
	dc.QuadraticTo(x, bottomY, x, eyeY+5)
	dc.QuadraticTo(x, topY, x+w/2, topY)
}
