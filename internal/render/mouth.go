package render

func drawNoseAndMouth(p *pen, r rect, variant int) {
	dc := p.dc
	dc.SetColor(p.style.LineColor)
	p.lineWidth(p.style.LineWidth)

	y := r.MinY() + r.H*0.72
	x := r.MidX()
	const width = 25.0

	switch wrap(variant, 4) {
	case 0:
		smile(p, x, y, width, 8)
	case 1:
		p.line(x-width/2, y, x+width/2, y)
	case 2:
		smile(p, x, y, width, 12)
	case 3:
		smile(p, x, y, width, 6)
		p.line(x-width/2, y-2, x-width/2+3, y)
		p.line(x+width/2, y-2, x+width/2-3, y)
	}

	noseY := r.MinY() + r.H*0.52
	const noseW = 12.0
	dc.MoveTo(x, noseY-10)
	dc.QuadraticTo(x+noseW/3, noseY, x+noseW/2, noseY+5)
	dc.Stroke()
}

func smile(p *pen, x, y, width, depth float64) {
	p.dc.MoveTo(x-width/2, y)
	p.dc.QuadraticTo(x, y+depth, x+width/2, y)
	p.dc.Stroke()
}
