package features

// VectorDims is the length of the vector returned by Vector.
const VectorDims = 40

var (
	hairColorOrder  = []HairColor{HairBlack, HairBrown, HairBlonde, HairRed, HairGray, HairWhite, HairAuburn}
	hairStyleOrder  = []HairStyle{HairShort, HairLong, HairCurly, HairStraight, HairWavy, HairBald, HairPonytail, HairBun, HairBuzzCut, HairMohawk}
	glassesOrder    = []GlassesStyle{GlassesRound, GlassesSquare, GlassesRectangular, GlassesAviator}
	facialHairOrder = []FacialHairStyle{FacialBeard, FacialGoatee, FacialMustache, FacialStubble, FacialSoulPatch}
	ageOrder        = []AgeRange{AgeYoung, AgeMiddle, AgeOlder}
	faceShapeOrder  = []FaceShape{FaceRound, FaceOval, FaceSquare, FaceLong, FaceHeart}
	skinToneOrder   = []SkinTone{SkinLight, SkinMedium, SkinTan, SkinDark}
)

// Vector one-hot encodes the features for similarity search. Absent
// attributes leave their block zero.
func (f SketchFeatures) Vector() []float32 {
	v := make([]float32, 0, VectorDims)
	v = oneHot(v, hairColorOrder, f.HairColor)
	v = oneHot(v, hairStyleOrder, f.HairStyle)
	v = oneHot(v, glassesOrder, f.GlassesStyle)
	v = oneHot(v, facialHairOrder, f.FacialHairStyle)
	v = oneHot(v, ageOrder, f.AgeRange)
	v = oneHot(v, faceShapeOrder, f.FaceShape)
	v = oneHot(v, skinToneOrder, f.SkinTone)
	v = append(v, flag(f.HasGlasses), flag(f.HasFacialHair))
	return v
}

func oneHot[T comparable](dst []float32, order []T, value T) []float32 {
	for _, o := range order {
		if o == value {
			dst = append(dst, 1)
		} else {
			dst = append(dst, 0)
		}
	}
	return dst
}

func flag(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
