package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/your-org/remember/internal/imagegen"
	"github.com/your-org/remember/internal/models"
	"github.com/your-org/remember/internal/render"
	"github.com/your-org/remember/internal/sketch"
	"github.com/your-org/remember/internal/storage"
	"github.com/your-org/remember/pkg/dto"
)

type SketchHandler struct {
	store    Store
	objects  ObjectStore
	svc      *sketch.Service
	runner   *sketch.Runner
	queue    SketchQueue
	notifier Notifier
}

// NewSketchHandler renders inline when queue is nil.
func NewSketchHandler(store Store, objects ObjectStore, svc *sketch.Service, queue SketchQueue, notifier Notifier) *SketchHandler {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &SketchHandler{
		store:    store,
		objects:  objects,
		svc:      svc,
		runner:   sketch.NewRunner(svc, store),
		queue:    queue,
		notifier: notifier,
	}
}

// dispatch queues the task, or runs it inline when no queue is configured.
// The returned event is nil when the task was queued.
func (h *SketchHandler) dispatch(ctx context.Context, task models.SketchTask) (*models.SketchEvent, error) {
	return h.dispatchAsync(ctx, task, nil)
}

// dispatchAsync lets the caller override the configured mode. Asking for
// async without a queue still runs inline.
func (h *SketchHandler) dispatchAsync(ctx context.Context, task models.SketchTask, async *bool) (*models.SketchEvent, error) {
	if task.RequestedAt.IsZero() {
		task.RequestedAt = time.Now().UTC()
	}
	queued := h.queue != nil
	if async != nil {
		queued = queued && *async
	}
	if queued {
		if err := h.queue.PublishSketchTask(ctx, task); err != nil {
			return nil, err
		}
		return nil, nil
	}

	event, err := h.runner.Run(ctx, task)
	if err != nil {
		return nil, err
	}
	h.notifier.BroadcastEvent(&dto.WSEvent{Type: dto.WSSketchReady, PersonID: event.PersonID, Data: event})
	return event, nil
}

// Generate (re)draws a person's sketch. The body is optional.
func (h *SketchHandler) Generate(c *gin.Context) {
	var req dto.SketchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Style != "" {
		if _, err := render.StyleByName(req.Style); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.Illustration != "" {
		if _, err := imagegen.ParseStyle(req.Illustration); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	person := loadPerson(c, h.store)
	if person == nil {
		return
	}

	event, err := h.dispatchAsync(c.Request.Context(), models.SketchTask{
		PersonID:     person.ID,
		Variant:      req.Variant,
		Style:        req.Style,
		Illustration: req.Illustration,
	}, req.Async)
	if err != nil {
		writeSketchError(c, err)
		return
	}
	if event == nil {
		c.JSON(http.StatusAccepted, dto.SketchResponse{PersonID: person.ID, Status: "queued", Variant: req.Variant})
		return
	}

	c.JSON(http.StatusOK, dto.SketchResponse{
		PersonID:  person.ID,
		Status:    "ready",
		SketchURL: "/v1/persons/" + person.ID.String() + "/sketch",
		Variant:   event.Variant,
		Source:    string(event.Source),
	})
}

func (h *SketchHandler) Get(c *gin.Context) {
	person := loadPerson(c, h.store)
	if person == nil {
		return
	}
	serveObject(c, h.objects, person.SketchKey, "image/png", "sketch not generated")
}

// Visual serves the person's preferred image, falling back to the sketch.
func (h *SketchHandler) Visual(c *gin.Context) {
	person := loadPerson(c, h.store)
	if person == nil {
		return
	}
	serveObject(c, h.objects, person.PreferredVisualKey(), "image/png", "no visual available")
}

// Preview renders a description without storing anything.
func (h *SketchHandler) Preview(c *gin.Context) {
	variant := 0
	if v := c.Query("variant"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid variant"})
			return
		}
		variant = n
	}

	data, _, err := h.svc.Preview(c.Query("description"), variant, c.Query("style"))
	if err != nil {
		writeSketchError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}

func writeSketchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, sketch.ErrInvalidStyle):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
	case errors.Is(err, sketch.ErrGenerationFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		slog.Error("sketch request failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	}
}

func serveObject(c *gin.Context, objects ObjectStore, key, fallbackType, missing string) {
	if key == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": missing})
		return
	}
	data, contentType, err := objects.GetObject(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": missing})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if contentType == "" {
		contentType = fallbackType
	}
	c.Data(http.StatusOK, contentType, data)
}
