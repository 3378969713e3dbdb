package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/your-org/remember/internal/features"
	"github.com/your-org/remember/internal/models"
	"github.com/your-org/remember/internal/review"
	"github.com/your-org/remember/internal/storage"
	"github.com/your-org/remember/pkg/dto"
)

// Store is the persistence the handlers need. *storage.PostgresStore
// implements it.
type Store interface {
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)

	CreatePerson(ctx context.Context, p *models.Person, f features.SketchFeatures) error
	GetPerson(ctx context.Context, id uuid.UUID) (*models.Person, error)
	ListPersons(ctx context.Context, f storage.PersonFilter) ([]models.Person, error)
	UpdateTranscript(ctx context.Context, id uuid.UUID, transcript, edited string, keywords []string, f features.SketchFeatures) error
	UpdateContext(ctx context.Context, id uuid.UUID, contextText string) error
	UpdateSketch(ctx context.Context, id uuid.UUID, key string, variant int, source models.SketchSource, illustration string) error
	UpdatePhoto(ctx context.Context, id uuid.UUID, key string) error
	UpdateAudio(ctx context.Context, id uuid.UUID, key string) error
	UpdatePreferredVisual(ctx context.Context, id uuid.UUID, v models.VisualType) error
	// ApplyReview returns nil when the person does not exist.
	ApplyReview(ctx context.Context, id uuid.UUID, recalled bool, now time.Time) (*review.Record, error)
	DeletePerson(ctx context.Context, id uuid.UUID) error
	RecentContexts(ctx context.Context, limit int) ([]string, error)

	ListReviewCandidates(ctx context.Context, until time.Time) ([]models.Person, error)
	CountDue(ctx context.Context, now time.Time) (int, error)
	SearchByFeatures(ctx context.Context, f features.SketchFeatures, threshold float64, limit int) ([]storage.SearchMatch, error)
}

// ObjectStore is implemented by *storage.MinIOStore.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) error
	GetObject(ctx context.Context, key string) ([]byte, string, error)
	DeleteObjects(ctx context.Context, keys ...string) error
}

// SketchQueue hands sketch work to the worker.
type SketchQueue interface {
	PublishSketchTask(ctx context.Context, task models.SketchTask) error
}

// Describer rewrites a rambling transcript into a short description.
type Describer interface {
	EditDescription(ctx context.Context, transcript string, keywords []string, name string) (string, error)
}

// Notifier pushes live events to connected clients.
type Notifier interface {
	BroadcastEvent(event *dto.WSEvent)
}

type nopNotifier struct{}

func (nopNotifier) BroadcastEvent(*dto.WSEvent) {}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid person id"})
		return uuid.Nil, false
	}
	return id, true
}

// loadPerson writes the error response itself when it returns nil.
func loadPerson(c *gin.Context, store Store) *models.Person {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	person, err := store.GetPerson(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil
	}
	if person == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
		return nil
	}
	return person
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func reviewResponse(r review.Record, now time.Time) dto.ReviewResponse {
	resp := dto.ReviewResponse{
		NextDueAt:    formatTime(r.NextDueAt),
		EaseFactor:   r.EaseFactor,
		IntervalDays: r.IntervalDays,
		IsDue:        r.IsDue(now),
	}
	if r.LastReviewedAt != nil {
		resp.LastReviewedAt = formatTime(*r.LastReviewedAt)
	}
	return resp
}

func personResponse(p *models.Person, now time.Time) dto.PersonResponse {
	base := "/v1/persons/" + p.ID.String()
	resp := dto.PersonResponse{
		ID:                p.ID,
		Name:              p.Name,
		Context:           p.Context,
		CategoryID:        p.CategoryID,
		Transcript:        p.Transcript,
		EditedDescription: p.EditedDescription,
		Keywords:          p.Keywords,
		SketchVariant:     p.SketchVariant,
		SketchSource:      string(p.SketchSource),
		PreferredVisual:   string(p.PreferredVisual),
		Review:            reviewResponse(p.Review, now),
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
	if resp.Keywords == nil {
		resp.Keywords = []string{}
	}
	if p.SketchKey != "" {
		resp.SketchURL = base + "/sketch"
	}
	if p.PhotoKey != "" {
		resp.PhotoURL = base + "/photo"
	}
	if p.AudioKey != "" {
		resp.AudioURL = base + "/audio"
	}
	return resp
}
