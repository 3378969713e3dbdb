package dto

import (
	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"created_at"`
}

type CreatePersonRequest struct {
	Name       string     `json:"name" binding:"required"`
	Context    string     `json:"context"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Transcript string     `json:"transcript"`
}

type PersonQuery struct {
	Query      string `form:"q"`
	CategoryID string `form:"category_id"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

type PersonResponse struct {
	ID                uuid.UUID      `json:"id"`
	Name              string         `json:"name"`
	Context           string         `json:"context"`
	CategoryID        *uuid.UUID     `json:"category_id,omitempty"`
	Transcript        string         `json:"transcript"`
	EditedDescription string         `json:"edited_description,omitempty"`
	Keywords          []string       `json:"keywords"`
	SketchURL         string         `json:"sketch_url,omitempty"`
	SketchVariant     int            `json:"sketch_variant"`
	SketchSource      string         `json:"sketch_source,omitempty"`
	PhotoURL          string         `json:"photo_url,omitempty"`
	AudioURL          string         `json:"audio_url,omitempty"`
	PreferredVisual   string         `json:"preferred_visual"`
	Review            ReviewResponse `json:"review"`
	SketchQueued      bool           `json:"sketch_queued,omitempty"`
	CreatedAt         string         `json:"created_at"`
	UpdatedAt         string         `json:"updated_at"`
}

type PersonListResponse struct {
	Persons []PersonResponse `json:"persons"`
	Total   int              `json:"total"`
}

type TranscriptRequest struct {
	Transcript string `json:"transcript" binding:"required"`
	// EditDescription asks the language model to tidy the transcript.
	EditDescription bool `json:"edit_description"`
}

type SketchRequest struct {
	Variant      int    `json:"variant"`
	Style        string `json:"style"`
	Illustration string `json:"illustration"`
	// Async overrides the server's dispatch mode when set.
	Async *bool `json:"async,omitempty"`
}

type SketchResponse struct {
	PersonID  uuid.UUID `json:"person_id"`
	Status    string    `json:"status"`
	SketchURL string    `json:"sketch_url,omitempty"`
	Variant   int       `json:"variant"`
	Source    string    `json:"source,omitempty"`
}

type PreferredVisualRequest struct {
	Visual string `json:"visual" binding:"required,oneof=sketch photo"`
}

type KeywordsRequest struct {
	Description string `json:"description"`
}

type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
	Features any      `json:"features"`
}

type SearchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

type SearchResult struct {
	PersonID uuid.UUID `json:"person_id"`
	Name     string    `json:"name"`
	Context  string    `json:"context,omitempty"`
	Score    float32   `json:"score"`
}

type SearchResponse struct {
	Mode    string         `json:"mode"`
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}

type VoiceRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

type VoiceResponse struct {
	Intent string          `json:"intent"`
	Person *PersonResponse `json:"person,omitempty"`
	Search *SearchResponse `json:"search,omitempty"`
}
