package dto

import "github.com/google/uuid"

type ReviewResponse struct {
	LastReviewedAt string  `json:"last_reviewed_at,omitempty"`
	NextDueAt      string  `json:"next_due_at"`
	EaseFactor     float64 `json:"ease_factor"`
	IntervalDays   int     `json:"interval_days"`
	IsDue          bool    `json:"is_due"`
}

type RecordReviewRequest struct {
	Recalled *bool `json:"recalled" binding:"required"`
}

type RecordReviewResponse struct {
	PersonID uuid.UUID      `json:"person_id"`
	Recalled bool           `json:"recalled"`
	Review   ReviewResponse `json:"review"`
}

type DueCountResponse struct {
	DueCount int `json:"due_count"`
}

type ReviewQueueResponse struct {
	Queue []PersonResponse `json:"queue"`
	Total int              `json:"total"`
}
