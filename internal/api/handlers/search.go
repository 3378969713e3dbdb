package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/remember/internal/features"
	"github.com/your-org/remember/internal/intent"
	"github.com/your-org/remember/internal/storage"
	"github.com/your-org/remember/pkg/dto"
)

const (
	searchModeFeatures = "features"
	searchModeText     = "text"
)

type SearchHandler struct {
	store     Store
	persons   *PersonHandler
	threshold float64
}

func NewSearchHandler(store Store, persons *PersonHandler, threshold float64) *SearchHandler {
	return &SearchHandler{store: store, persons: persons, threshold: threshold}
}

// search ranks people by sketch features when the query describes any,
// and falls back to a text match otherwise or when nothing is similar.
func (h *SearchHandler) search(ctx context.Context, query string, limit int) (*dto.SearchResponse, error) {
	if limit <= 0 {
		limit = 5
	}

	if f := features.FromDescription(query); !f.IsZero() {
		matches, err := h.store.SearchByFeatures(ctx, f, h.threshold, limit)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			results := make([]dto.SearchResult, 0, len(matches))
			for _, m := range matches {
				results = append(results, dto.SearchResult{PersonID: m.PersonID, Name: m.Name, Score: m.Score})
			}
			return &dto.SearchResponse{Mode: searchModeFeatures, Results: results, Total: len(results)}, nil
		}
	}

	persons, err := h.store.ListPersons(ctx, storage.PersonFilter{Query: query, Limit: limit})
	if err != nil {
		return nil, err
	}
	results := make([]dto.SearchResult, 0, len(persons))
	for _, p := range persons {
		results = append(results, dto.SearchResult{PersonID: p.ID, Name: p.Name, Context: p.Context, Score: 1})
	}
	return &dto.SearchResponse{Mode: searchModeText, Results: results, Total: len(results)}, nil
}

func (h *SearchHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.search(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) ExtractKeywords(c *gin.Context) {
	var req dto.KeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	keywords := features.Extract(req.Description)
	c.JSON(http.StatusOK, dto.KeywordsResponse{Keywords: keywords, Features: features.Parse(keywords)})
}

// Voice routes a spoken command: "remember ..." creates a person and a
// question searches.
func (h *SearchHandler) Voice(c *gin.Context) {
	var req dto.VoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	in := intent.Parse(req.Transcript)
	switch in.Kind {
	case intent.KindRemember:
		person, queued, err := h.persons.create(ctx, newPerson{Name: in.Name, Transcript: in.Description})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		resp := personResponse(person, h.persons.now())
		resp.SketchQueued = queued
		c.JSON(http.StatusCreated, dto.VoiceResponse{Intent: string(in.Kind), Person: &resp})

	case intent.KindSearch:
		resp, err := h.search(ctx, in.Query, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.VoiceResponse{Intent: string(in.Kind), Search: resp})

	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not understand the request", "intent": string(in.Kind)})
	}
}
