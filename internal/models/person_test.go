package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/your-org/remember/internal/review"
)

func TestPerson_PreferredVisualKey(t *testing.T) {
	p := &Person{SketchKey: "sketches/a.png", PreferredVisual: VisualPhoto}
	assert.Equal(t, "sketches/a.png", p.PreferredVisualKey(), "falls back without a photo")

	p.PhotoKey = "photos/a.jpg"
	assert.Equal(t, "photos/a.jpg", p.PreferredVisualKey())

	p.PreferredVisual = VisualSketch
	assert.Equal(t, "sketches/a.png", p.PreferredVisualKey())
}

func TestPerson_Description(t *testing.T) {
	p := &Person{Transcript: "uh tall guy"}
	assert.Equal(t, "uh tall guy", p.Description())
	p.EditedDescription = "He is tall."
	assert.Equal(t, "He is tall.", p.Description())
}

func TestPerson_ReviewCard(t *testing.T) {
	now := time.Now()
	p := &Person{ID: uuid.New(), Name: "Luis", Context: "Gym", Review: review.NewRecord(now)}

	c := p.ReviewCard()
	assert.Equal(t, p.ID, c.ID)
	assert.Equal(t, "Luis", c.Name)
	assert.Equal(t, now, c.Record.NextDueAt)
}
