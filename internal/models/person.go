package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/your-org/remember/internal/review"
)

type VisualType string

const (
	VisualSketch VisualType = "sketch"
	VisualPhoto  VisualType = "photo"
)

// SketchSource records which generator produced the stored sketch.
type SketchSource string

const (
	SketchSourceLocal  SketchSource = "local"
	SketchSourceOpenAI SketchSource = "openai"
)

type Person struct {
	ID                uuid.UUID     `json:"id" db:"id"`
	Name              string        `json:"name" db:"name"`
	Context           string        `json:"context" db:"context"`
	CategoryID        *uuid.UUID    `json:"category_id,omitempty" db:"category_id"`
	Transcript        string        `json:"transcript" db:"transcript"`
	EditedDescription string        `json:"edited_description" db:"edited_description"`
	Keywords          []string      `json:"keywords" db:"keywords"`
	SketchKey         string        `json:"sketch_key" db:"sketch_key"`
	SketchVariant     int           `json:"sketch_variant" db:"sketch_variant"`
	SketchSource      SketchSource  `json:"sketch_source" db:"sketch_source"`
	IllustrationStyle string        `json:"illustration_style" db:"illustration_style"`
	PhotoKey          string        `json:"photo_key" db:"photo_key"`
	AudioKey          string        `json:"audio_key" db:"audio_key"`
	PreferredVisual   VisualType    `json:"preferred_visual" db:"preferred_visual"`
	Review            review.Record `json:"review"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at" db:"updated_at"`
}

// Description is the best available text describing the person.
func (p *Person) Description() string {
	if p.EditedDescription != "" {
		return p.EditedDescription
	}
	return p.Transcript
}

// PreferredVisualKey returns the object key of the image to show, falling
// back to the sketch when no photo exists.
func (p *Person) PreferredVisualKey() string {
	if p.PreferredVisual == VisualPhoto && p.PhotoKey != "" {
		return p.PhotoKey
	}
	return p.SketchKey
}

// ReviewCard converts the person for a review session.
func (p *Person) ReviewCard() review.Card {
	return review.Card{
		ID:        p.ID,
		Name:      p.Name,
		Context:   p.Context,
		Keywords:  p.Keywords,
		SketchKey: p.PreferredVisualKey(),
		Record:    p.Review,
	}
}
