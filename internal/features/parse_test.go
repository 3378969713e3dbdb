package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Empty(t *testing.T) {
	f := Parse(nil)
	assert.True(t, f.IsZero())
	assert.False(t, f.HasGlasses)
	assert.False(t, f.HasFacialHair)
	assert.True(t, Parse([]string{}).IsZero())
}

func TestParse_LastKeywordWins(t *testing.T) {
	f := Parse([]string{"blonde hair", "red hair"})
	assert.Equal(t, HairRed, f.HairColor)

	f = Parse([]string{"young", "elderly"})
	assert.Equal(t, AgeOlder, f.AgeRange)
}

func TestParse_SpecificPhraseWithinKeyword(t *testing.T) {
	tests := []struct {
		keyword string
		want    GlassesStyle
	}{
		{"glasses", GlassesRectangular},
		{"round glasses", GlassesRound},
		{"square glasses", GlassesSquare},
		{"aviators", GlassesAviator},
		{"aviator glasses", GlassesAviator},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			f := Parse([]string{tt.keyword})
			assert.Equal(t, tt.want, f.GlassesStyle)
			assert.True(t, f.HasGlasses)
		})
	}
}

func TestParse_FacialHairSetsFlag(t *testing.T) {
	for _, kw := range []string{"bearded", "goatee", "moustache", "scruffy", "soul patch"} {
		f := Parse([]string{kw})
		assert.True(t, f.HasFacialHair, kw)
		assert.NotEmpty(t, f.FacialHairStyle, kw)
	}
	assert.Equal(t, FacialSoulPatch, Parse([]string{"soul patch"}).FacialHairStyle)
	assert.Equal(t, FacialStubble, Parse([]string{"five o'clock shadow"}).FacialHairStyle)
}

func TestParse_UnknownKeywordsIgnored(t *testing.T) {
	f := Parse([]string{"tall", "friendly", "from peru"})
	assert.True(t, f.IsZero())
}

func TestFromDescription_FullPipeline(t *testing.T) {
	f := FromDescription("Older man, buzzcut, gray beard")

	assert.Equal(t, HairBuzzCut, f.HairStyle)
	assert.Equal(t, FacialBeard, f.FacialHairStyle)
	assert.True(t, f.HasFacialHair)
	assert.Equal(t, AgeOlder, f.AgeRange)
	assert.Empty(t, f.HairColor)
	assert.False(t, f.HasGlasses)
}

func TestFromDescription_AllCategories(t *testing.T) {
	f := FromDescription("Auburn hair in a ponytail, heart-shaped face, light skin, in their 30s, aviator glasses, mustache")

	assert.Equal(t, HairAuburn, f.HairColor)
	assert.Equal(t, HairPonytail, f.HairStyle)
	assert.Equal(t, FaceHeart, f.FaceShape)
	assert.Equal(t, SkinLight, f.SkinTone)
	assert.Equal(t, AgeMiddle, f.AgeRange)
	assert.Equal(t, GlassesAviator, f.GlassesStyle)
	assert.Equal(t, FacialMustache, f.FacialHairStyle)
}

// Matching is by substring, so one phrase can land in several categories.
func TestParse_SubstringCollisions(t *testing.T) {
	f := Parse([]string{"rectangular glasses"})
	assert.Equal(t, GlassesRectangular, f.GlassesStyle)
	assert.Equal(t, SkinTan, f.SkinTone)
	assert.Equal(t, FaceSquare, f.FaceShape)

	f = FromDescription("light skin, rectangular glasses")
	assert.Equal(t, SkinTan, f.SkinTone)
}

func TestVector_Encoding(t *testing.T) {
	zero := SketchFeatures{}.Vector()
	require.Len(t, zero, VectorDims)
	for _, v := range zero {
		assert.Zero(t, v)
	}

	v := SketchFeatures{HairColor: HairRed, HasGlasses: true, GlassesStyle: GlassesRound}.Vector()
	require.Len(t, v, VectorDims)
	assert.Equal(t, float32(1), v[3])
	assert.Equal(t, float32(1), v[17])
	assert.Equal(t, float32(1), v[VectorDims-2])
	assert.Equal(t, float32(0), v[VectorDims-1])
}
