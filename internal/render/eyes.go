package render

import (
	"image/color"

	"github.com/your-org/remember/internal/features"
)

func drawEyes(p *pen, r rect, f features.SketchFeatures, variant int) {
	dc := p.dc
	eyeY := r.MinY() + r.H*0.4
	spacing := r.W * 0.35
	leftX := r.MidX() - spacing/2
	rightX := r.MidX() + spacing/2

	const (
		eyeW  = 12.0
		eyeH  = 8.0
		pupil = 5.0
	)

	for _, x := range []float64{leftX, rightX} {
		p.ellipse(x-eyeW/2, eyeY-eyeH/2, eyeW, eyeH)
		p.fillStroke(color.White, p.style.LineWidth*0.8)
	}

	// gaze shifts by -1, 0 or +1
	gaze := float64(wrap(variant, 3)) - 1
	dc.SetColor(p.style.LineColor)
	for _, x := range []float64{leftX, rightX} {
		p.ellipse(x-pupil/2+gaze, eyeY-pupil/2, pupil, pupil)
		dc.Fill()
	}

	older := f.AgeRange == features.AgeOlder
	drawBrows(p, leftX, rightX, eyeY, older)
	if older {
		drawCrowsFeet(p, leftX, rightX, eyeY)
	}
}

func drawBrows(p *pen, leftX, rightX, eyeY float64, older bool) {
	dc := p.dc
	browY := eyeY - 12
	const browW = 15.0
	thickness := 2.0
	if older {
		thickness = 3
	}

	dc.SetColor(p.style.LineColor)
	p.lineWidth(p.style.LineWidth)
	for _, x := range []float64{leftX, rightX} {
		dc.MoveTo(x-browW/2, browY+2)
		dc.QuadraticTo(x, browY-thickness, x+browW/2, browY+2)
		dc.Stroke()
	}
}

func drawCrowsFeet(p *pen, leftX, rightX, eyeY float64) {
	const length = 8.0

	p.dc.SetColor(withAlpha(p.style.LineColor, 0.5))
	p.lineWidth(p.style.LineWidth * 0.5)
	for i := 0; i < 3; i++ {
		startY := eyeY - 5 + float64(i)*5
		endY := startY - 2 + float64(i)*2
		p.line(leftX-15, startY, leftX-15-length, endY)
	}
	for i := 0; i < 3; i++ {
		startY := eyeY - 5 + float64(i)*5
		endY := startY - 2 + float64(i)*2
		p.line(rightX+15, startY, rightX+15+length, endY)
	}
}
