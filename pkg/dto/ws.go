package dto

import "github.com/google/uuid"

const (
	WSSketchReady    = "sketch_ready"
	WSSketchFailed   = "sketch_failed"
	WSReviewRecorded = "review_recorded"
)

// WSEvent is the envelope pushed to WebSocket clients.
type WSEvent struct {
	Type     string    `json:"type"`
	PersonID uuid.UUID `json:"person_id"`
	Data     any       `json:"data"`
}
