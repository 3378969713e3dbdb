// Package features turns free-text descriptions of a person into keyword
// lists and structured visual attributes for sketch rendering.
package features

type HairColor string

const (
	HairBlack  HairColor = "black"
	HairBrown  HairColor = "brown"
	HairBlonde HairColor = "blonde"
	HairRed    HairColor = "red"
	HairGray   HairColor = "gray"
	HairWhite  HairColor = "white"
	HairAuburn HairColor = "auburn"
)

type HairStyle string

const (
	HairShort    HairStyle = "short"
	HairLong     HairStyle = "long"
	HairCurly    HairStyle = "curly"
	HairStraight HairStyle = "straight"
	HairWavy     HairStyle = "wavy"
	HairBald     HairStyle = "bald"
	HairPonytail HairStyle = "ponytail"
	HairBun      HairStyle = "bun"
	HairBuzzCut  HairStyle = "buzzCut"
	HairMohawk   HairStyle = "mohawk"
)

type GlassesStyle string

const (
	GlassesRound       GlassesStyle = "round"
	GlassesSquare      GlassesStyle = "square"
	GlassesRectangular GlassesStyle = "rectangular"
	GlassesAviator     GlassesStyle = "aviator"
)

type FacialHairStyle string

const (
	FacialBeard     FacialHairStyle = "beard"
	FacialGoatee    FacialHairStyle = "goatee"
	FacialMustache  FacialHairStyle = "mustache"
	FacialStubble   FacialHairStyle = "stubble"
	FacialSoulPatch FacialHairStyle = "soulPatch"
)

type AgeRange string

const (
	AgeYoung  AgeRange = "young"
	AgeMiddle AgeRange = "middle"
	AgeOlder  AgeRange = "older"
)

type FaceShape string

const (
	FaceRound  FaceShape = "round"
	FaceOval   FaceShape = "oval"
	FaceSquare FaceShape = "square"
	FaceLong   FaceShape = "long"
	FaceHeart  FaceShape = "heart"
)

type SkinTone string

const (
	SkinLight  SkinTone = "light"
	SkinMedium SkinTone = "medium"
	SkinTan    SkinTone = "tan"
	SkinDark   SkinTone = "dark"
)

// Accessory is reserved for future layers. The renderer ignores it.
type Accessory string

// SketchFeatures is the set of visual attributes a sketch is drawn from.
// An empty string field means the attribute was not mentioned.
type SketchFeatures struct {
	HairColor       HairColor       `json:"hair_color,omitempty"`
	HairStyle       HairStyle       `json:"hair_style,omitempty"`
	HasGlasses      bool            `json:"has_glasses"`
	GlassesStyle    GlassesStyle    `json:"glasses_style,omitempty"`
	HasFacialHair   bool            `json:"has_facial_hair"`
	FacialHairStyle FacialHairStyle `json:"facial_hair_style,omitempty"`
	AgeRange        AgeRange        `json:"age_range,omitempty"`
	FaceShape       FaceShape       `json:"face_shape,omitempty"`
	SkinTone        SkinTone        `json:"skin_tone,omitempty"`
	Accessories     []Accessory     `json:"accessories,omitempty"`
}

// IsZero reports whether no attribute was detected.
func (f SketchFeatures) IsZero() bool {
	return f.HairColor == "" && f.HairStyle == "" && !f.HasGlasses &&
		f.GlassesStyle == "" && !f.HasFacialHair && f.FacialHairStyle == "" &&
		f.AgeRange == "" && f.FaceShape == "" && f.SkinTone == "" &&
		len(f.Accessories) == 0
}
