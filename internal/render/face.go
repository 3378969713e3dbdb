package render

import "github.com/your-org/remember/internal/features"

func drawFace(p *pen, r rect, f features.SketchFeatures) {
	dc := p.dc

	switch f.FaceShape {
	case features.FaceSquare:
		dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, r.W*0.15)
	case features.FaceLong:
		p.ellipse(r.MinX()+r.W*0.1, r.MinY()-r.H*0.05, r.W*0.8, r.H*1.1)
	case features.FaceHeart:
		heartPath(p, r)
	default:
		// round, oval and unset all use the plain ellipse
		p.ellipse(r.X, r.Y, r.W, r.H)
	}

	p.fillStroke(skinColor(f.SkinTone), p.style.LineWidth)
}

func heartPath(p *pen, r rect) {
	dc := p.dc
	topY := r.MinY() + r.H*0.15

	dc.MoveTo(r.MidX(), r.MaxY())
	dc.CubicTo(
		r.MinX()+r.W*0.1, r.MaxY()-r.H*0.2,
		r.MinX(), r.MidY(),
		r.MinX(), topY+r.H*0.2,
	)
	dc.QuadraticTo(r.MinX()+r.W*0.2, topY, r.MidX(), topY)
	dc.QuadraticTo(r.MaxX()-r.W*0.2, topY, r.MaxX(), topY+r.H*0.2)
	dc.CubicTo(
		r.MaxX(), r.MidY(),
		r.MaxX()-r.W*0.1, r.MaxY()-r.H*0.2,
		r.MidX(), r.MaxY(),
	)
	dc.ClosePath()
}
