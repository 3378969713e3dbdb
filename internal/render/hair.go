package render

import (
	"math"

	"github.com/your-org/remember/internal/features"
)

func drawHair(p *pen, r rect, f features.SketchFeatures, variant int) {
	style := f.HairStyle
	if style == "" {
		style = features.HairShort
	}
	if style == features.HairBald {
		return
	}

	p.dc.SetColor(hairColor(f.HairColor))

	switch style {
	case features.HairLong, features.HairStraight:
		longHair(p, r)
	case features.HairCurly:
		curlyHair(p, r, variant)
	case features.HairWavy:
		wavyHair(p, r)
	case features.HairPonytail:
		shortHair(p, r, variant)
		ponytail(p, r)
	case features.HairBun:
		shortHair(p, r, variant)
		p.ellipse(r.MidX()-12.5, r.MinY()-30, 25, 25)
		p.dc.Fill()
	case features.HairBuzzCut:
		buzzCut(p, r)
	case features.HairMohawk:
		mohawk(p, r)
	default:
		shortHair(p, r, variant)
	}
}

func shortHair(p *pen, r rect, variant int) {
	dc := p.dc
	topY := r.MinY() - 10
	side := 8.0
	if wrap(variant, 2) == 1 {
		side = 12
	}

	dc.MoveTo(r.MinX()-side, r.MinY()+30)
	dc.QuadraticTo(r.MinX()-5, topY-10, r.MidX(), topY)
	dc.QuadraticTo(r.MaxX()+5, topY-10, r.MaxX()+side, r.MinY()+30)
	dc.ClosePath()
	dc.Fill()
}

func longHair(p *pen, r rect) {
	dc := p.dc
	topY := r.MinY() - 15
	bottom := r.MaxY() + 30
	const ext = 15.0

	dc.MoveTo(r.MinX()-ext, r.MinY()+20)
	dc.QuadraticTo(r.MinX(), topY, r.MidX(), topY)
	dc.QuadraticTo(r.MaxX(), topY, r.MaxX()+ext, r.MinY()+20)
	dc.LineTo(r.MaxX()+ext, bottom)
	dc.LineTo(r.MinX()-ext, bottom)
	dc.ClosePath()
	dc.Fill()
}

func curlyHair(p *pen, r rect, variant int) {
	n := 10 + wrap(variant, 4)
	for i := 0; i < n; i++ {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		dist := r.W/2 + 5 + float64(i%3)*3
		x := r.MidX() + math.Cos(angle)*dist
		y := r.MinY() + 20 + math.Sin(angle)*dist*0.6
		radius := 12 + float64(i%3)*2
		p.dc.DrawCircle(x, y, radius)
		p.dc.Fill()
	}
}

func wavyHair(p *pen, r rect) {
	dc := p.dc
	topY := r.MinY() - 12
	bottom := r.MaxY() + 20
	const ext = 12.0

	dc.MoveTo(r.MinX()-ext, r.MinY()+20)
	dc.QuadraticTo(r.MinX(), topY-5, r.MidX(), topY)
	dc.QuadraticTo(r.MaxX(), topY-5, r.MaxX()+ext, r.MinY()+20)

	for i := 0; i < 3; i++ {
		startY := r.MinY() + 20 + float64(i)*25
		endY := startY + 25
		off := -5.0
		if i%2 == 0 {
			off = 5
		}
		dc.QuadraticTo(r.MaxX()+ext-off, (startY+endY)/2, r.MaxX()+ext+off, endY)
	}

	dc.LineTo(r.MinX()-ext, bottom)
	dc.ClosePath()
	dc.Fill()
}

func ponytail(p *pen, r rect) {
	dc := p.dc
	tailX := r.MaxX() + 10
	tailY := r.MidY() - 10
	const (
		tailW = 15.0
		tailL = 40.0
	)

	dc.MoveTo(r.MaxX(), tailY-10)
	dc.QuadraticTo(tailX+tailW+10, tailY+tailL/2, tailX+tailW, tailY+tailL)
	dc.QuadraticTo(tailX-5, tailY+tailL/2, r.MaxX(), tailY+10)
	dc.ClosePath()
	dc.Fill()
}

func buzzCut(p *pen, r rect) {
	dc := p.dc
	dc.NewSubPath()
	dc.DrawArc(r.MidX(), r.MinY()+5, r.W/2+3, math.Pi, 2*math.Pi)
	dc.ClosePath()
	dc.Fill()
}

func mohawk(p *pen, r rect) {
	dc := p.dc
	dc.MoveTo(r.MidX()-10, r.MinY())
	dc.LineTo(r.MidX(), r.MinY()-30)
	dc.LineTo(r.MidX()+10, r.MinY())
	dc.ClosePath()
	dc.Fill()
}
