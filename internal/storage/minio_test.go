package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/remember/internal/features"
)

func TestObjectKeys(t *testing.T) {
	id := uuid.MustParse("6f1c8a3e-2b4d-4e5f-9a7b-0c1d2e3f4a5b")

	assert.Equal(t, "sketches/6f1c8a3e-2b4d-4e5f-9a7b-0c1d2e3f4a5b.png", SketchKey(id))
	assert.Equal(t, "audio/6f1c8a3e-2b4d-4e5f-9a7b-0c1d2e3f4a5b.m4a", AudioKey(id))
	assert.Equal(t, "photos/6f1c8a3e-2b4d-4e5f-9a7b-0c1d2e3f4a5b.jpg", PhotoKey(id))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_sale \\ x`, escapeLike(`50% off_sale \ x`))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func TestFeatureVector(t *testing.T) {
	assert.Nil(t, featureVector(features.SketchFeatures{}))

	v := featureVector(features.FromDescription("red hair and glasses"))
	require.NotNil(t, v)
	assert.Len(t, v.Slice(), features.VectorDims)
}
