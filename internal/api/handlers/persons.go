package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/your-org/remember/internal/features"
	"github.com/your-org/remember/internal/intent"
	"github.com/your-org/remember/internal/models"
	"github.com/your-org/remember/internal/review"
	"github.com/your-org/remember/internal/storage"
	"github.com/your-org/remember/pkg/dto"
)

type PersonHandler struct {
	store     Store
	objects   ObjectStore
	sketches  *SketchHandler
	describer Describer
	now       func() time.Time
}

// NewPersonHandler takes an optional describer for AI description edits.
func NewPersonHandler(store Store, objects ObjectStore, sketches *SketchHandler, describer Describer, now func() time.Time) *PersonHandler {
	if now == nil {
		now = time.Now
	}
	return &PersonHandler{store: store, objects: objects, sketches: sketches, describer: describer, now: now}
}

type newPerson struct {
	Name       string
	Context    string
	CategoryID *uuid.UUID
	Transcript string
}

// create stores a person that is due for review immediately and starts
// their first sketch when a transcript was given. It reports whether the
// sketch was queued.
func (h *PersonHandler) create(ctx context.Context, in newPerson) (*models.Person, bool, error) {
	transcript := strings.TrimSpace(in.Transcript)
	contextText := strings.TrimSpace(in.Context)
	if contextText == "" && transcript != "" {
		contextText = intent.ExtractContext(transcript)
	}

	keywords := features.Extract(transcript)
	person := &models.Person{
		Name:            strings.TrimSpace(in.Name),
		Context:         contextText,
		CategoryID:      in.CategoryID,
		Transcript:      transcript,
		Keywords:        keywords,
		PreferredVisual: models.VisualSketch,
		Review:          review.NewRecord(h.now()),
	}
	if err := h.store.CreatePerson(ctx, person, features.Parse(keywords)); err != nil {
		return nil, false, err
	}

	queued := false
	if transcript != "" {
		queued = h.startSketch(ctx, person)
	}
	return person, queued, nil
}

// startSketch never fails the request. A sketch can be regenerated later.
func (h *PersonHandler) startSketch(ctx context.Context, person *models.Person) bool {
	event, err := h.sketches.dispatch(ctx, models.SketchTask{PersonID: person.ID})
	if err != nil {
		slog.Warn("start sketch", "person_id", person.ID, "error", err)
		return false
	}
	if event == nil {
		return true
	}
	person.SketchKey = event.SketchKey
	person.SketchVariant = event.Variant
	person.SketchSource = event.Source
	return false
}

func (h *PersonHandler) Create(c *gin.Context) {
	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if req.CategoryID != nil {
		cat, err := h.store.GetCategory(c.Request.Context(), *req.CategoryID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if cat == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
	}

	person, queued, err := h.create(c.Request.Context(), newPerson{
		Name:       req.Name,
		Context:    req.Context,
		CategoryID: req.CategoryID,
		Transcript: req.Transcript,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := personResponse(person, h.now())
	resp.SketchQueued = queued
	c.JSON(http.StatusCreated, resp)
}

func (h *PersonHandler) List(c *gin.Context) {
	var q dto.PersonQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := storage.PersonFilter{Query: q.Query, Limit: q.Limit, Offset: q.Offset}
	if q.CategoryID != "" {
		id, err := uuid.Parse(q.CategoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
			return
		}
		filter.CategoryID = &id
	}

	persons, err := h.store.ListPersons(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := h.now()
	resp := make([]dto.PersonResponse, 0, len(persons))
	for i := range persons {
		resp = append(resp, personResponse(&persons[i], now))
	}
	c.JSON(http.StatusOK, dto.PersonListResponse{Persons: resp, Total: len(resp)})
}

func (h *PersonHandler) Get(c *gin.Context) {
	person := loadPerson(c, h.store)
	if person == nil {
		return
	}
	c.JSON(http.StatusOK, personResponse(person, h.now()))
}

// Delete removes the person and then their stored media.
func (h *PersonHandler) Delete(c *gin.Context) {
	person := loadPerson(c, h.store)
	if person == nil {
		return
	}

	if err := h.store.DeletePerson(c.Request.Context(), person.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.objects.DeleteObjects(c.Request.Context(), person.SketchKey, person.PhotoKey, person.AudioKey); err != nil {
		slog.Warn("delete person media", "person_id", person.ID, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// UpdateTranscript replaces the description, re-extracts keywords and
// redraws the sketch.
func (h *PersonHandler) UpdateTranscript(c *gin.Context) {
	var req dto.TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	person := loadPerson(c, h.store)
	if person == nil {
		return
	}
	ctx := c.Request.Context()

	transcript := strings.TrimSpace(req.Transcript)
	keywords := features.Extract(transcript)

	edited := ""
	if req.EditDescription && h.describer != nil {
		out, err := h.describer.EditDescription(ctx, transcript, keywords, person.Name)
		if err != nil {
			slog.Warn("edit description", "person_id", person.ID, "error", err)
		} else {
			edited = out
		}
	}

	if err := h.store.UpdateTranscript(ctx, person.ID, transcript, edited, keywords, features.Parse(keywords)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	person.Transcript = transcript
	person.EditedDescription = edited
	person.Keywords = keywords

	if person.Context == "" {
		if inferred := intent.ExtractContext(transcript); inferred != "" {
			if err := h.store.UpdateContext(ctx, person.ID, inferred); err != nil {
				slog.Warn("update context", "person_id", person.ID, "error", err)
			} else {
				person.Context = inferred
			}
		}
	}

	queued := h.startSketch(ctx, person)
	resp := personResponse(person, h.now())
	resp.SketchQueued = queued
	c.JSON(http.StatusOK, resp)
}

func (h *PersonHandler) RecentContexts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	contexts, err := h.store.RecentContexts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if contexts == nil {
		contexts = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"contexts": contexts, "total": len(contexts)})
}
