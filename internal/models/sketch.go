package models

import (
	"time"

	"github.com/google/uuid"
)

// SketchTask is the message published to NATS for sketch workers.
type SketchTask struct {
	PersonID uuid.UUID `json:"person_id"`
	Variant  int       `json:"variant"`
	// Style is a render style name. Empty picks one from the variant.
	Style string `json:"style,omitempty"`
	// Illustration is the AI illustration style, empty for the configured default.
	Illustration string    `json:"illustration,omitempty"`
	RequestedAt  time.Time `json:"requested_at"`
}

// SketchEvent is published once a sketch task finishes.
type SketchEvent struct {
	PersonID  uuid.UUID    `json:"person_id"`
	SketchKey string       `json:"sketch_key,omitempty"`
	Variant   int          `json:"variant"`
	Source    SketchSource `json:"source,omitempty"`
	Error     string       `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}
