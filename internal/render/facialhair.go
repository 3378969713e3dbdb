package render

import (
	"math/rand/v2"

	"github.com/your-org/remember/internal/features"
)

// stubbleSeed is mixed with the variant so each variant gets its own
// repeatable dot pattern.
const stubbleSeed = 0x5eed_5b1e

func drawFacialHair(p *pen, r rect, f features.SketchFeatures, variant int) {
	if f.FacialHairStyle == "" {
		return
	}

	p.dc.SetColor(hairColor(f.HairColor))
	p.lineWidth(p.style.LineWidth * 0.5)

	switch f.FacialHairStyle {
	case features.FacialBeard:
		beard(p, r, variant)
		mustache(p, r, variant)
	case features.FacialGoatee:
		goatee(p, r, variant)
	case features.FacialMustache:
		mustache(p, r, variant)
	case features.FacialStubble:
		stubble(p, r, variant)
	case features.FacialSoulPatch:
		p.ellipse(r.MidX()-5, r.MaxY()-25, 10, 12)
		p.dc.Fill()
	}
}

func beard(p *pen, r rect, variant int) {
	dc := p.dc
	chinY := r.MaxY() - 10
	bottom := chinY + 25 + float64(wrap(variant, 3))*5

	dc.MoveTo(r.MinX()+20, r.MidY()+20)
	dc.QuadraticTo(r.MinX()+10, chinY+10, r.MidX(), bottom)
	dc.QuadraticTo(r.MaxX()-10, chinY+10, r.MaxX()-20, r.MidY()+20)
	dc.ClosePath()
	dc.Fill()
}

func goatee(p *pen, r rect, variant int) {
	dc := p.dc
	chinY := r.MaxY() - 10
	const width = 30.0
	height := 25 + float64(wrap(variant, 2))*5

	dc.MoveTo(r.MidX()-width/2, chinY-15)
	dc.QuadraticTo(r.MidX()-width/3, chinY+height/2, r.MidX(), chinY+height-10)
	dc.QuadraticTo(r.MidX()+width/3, chinY+height/2, r.MidX()+width/2, chinY-15)
	dc.ClosePath()
	dc.Fill()
}

func mustache(p *pen, r rect, variant int) {
	dc := p.dc
	y := r.MinY() + r.H*0.62
	width := 35 + float64(wrap(variant, 2))*10
	const height = 8.0
	x := r.MidX()

	// each half is drawn from the middle outwards, dir picks the side
	for _, dir := range []float64{-1, 1} {
		dc.MoveTo(x, y)
		dc.QuadraticTo(x+dir*width/4, y-height, x+dir*width/2, y+5)
		dc.QuadraticTo(x+dir*width/4, y+height+3, x, y+height)
		dc.ClosePath()
		dc.Fill()
	}
}

func stubble(p *pen, r rect, variant int) {
	areaX := r.MinX() + 25
	areaY := r.MidY() + 10
	areaW := r.W - 50
	areaH := r.H * 0.35

	rng := rand.New(rand.NewPCG(uint64(int64(variant)), stubbleSeed))
	dots := 40 + wrap(variant, 10)*10

	for i := 0; i < dots; i++ {
		x := areaX + rng.Float64()*areaW
		y := areaY + rng.Float64()*areaH

		// keep dots inside a rough face oval
		nx := (x - r.MidX()) / (r.W / 2)
		ny := (y - r.MidY()) / (r.H / 2)
		if nx*nx+ny*ny < 0.9 {
			p.ellipse(x, y, 1.5, 1.5)
			p.dc.Fill()
		}
	}
}
