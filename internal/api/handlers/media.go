package handlers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/your-org/remember/internal/models"
	"github.com/your-org/remember/internal/storage"
	"github.com/your-org/remember/pkg/dto"
)

type MediaHandler struct {
	store    Store
	objects  ObjectStore
	maxBytes int64
	now      func() time.Time
}

func NewMediaHandler(store Store, objects ObjectStore, maxBytes int64, now func() time.Time) *MediaHandler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	if now == nil {
		now = time.Now
	}
	return &MediaHandler{store: store, objects: objects, maxBytes: maxBytes, now: now}
}

// readUpload returns the file in the named form field and its content type.
func (h *MediaHandler) readUpload(c *gin.Context, field, wantPrefix, fallbackType string) ([]byte, string, bool) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": field + " file required"})
		return nil, "", false
	}
	defer file.Close()

	if header.Size > h.maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": field + " file too large"})
		return nil, "", false
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = fallbackType
	}
	if !strings.HasPrefix(contentType, wantPrefix) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unsupported content type " + contentType})
		return nil, "", false
	}

	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "read " + field + " failed"})
		return nil, "", false
	}
	return data, contentType, true
}

func (h *MediaHandler) UploadPhoto(c *gin.Context) {
	person := loadPerson(c, h.store)
	if person == nil {
		return
	}
	data, contentType, ok := h.readUpload(c, "photo", "image/", "image/jpeg")
	if !ok {
		return
	}

	key := storage.PhotoKey(person.ID)
	if err := h.objects.PutObject(c.Request.Context(), key, data, contentType); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store photo failed"})
		return
	}
	if err := h.store.UpdatePhoto(c.Request.Context(), person.ID, key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	person.PhotoKey = key
	c.JSON(http.StatusOK, personResponse(person, h.now()))
}

func (h *MediaHandler) UploadAudio(c *gin.Context) {
	person := loadPerson(c, h.store)
	if person == nil {
		return
	}
	data, contentType, ok := h.readUpload(c, "audio", "audio/", "audio/mp4")
	if !ok {
		return
	}

	key := storage.AudioKey(person.ID)
	if err := h.objects.PutObject(c.Request.Context(), key, data, contentType); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store audio failed"})
		return
	}
	if err := h.store.UpdateAudio(c.Request.Context(), person.ID, key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	person.AudioKey = key
	c.JSON(http.StatusOK, personResponse(person, h.now()))
}

func (h *MediaHandler) GetPhoto(c *gin.Context) {
	person := loadPerson(c, h.store)
	if person == nil {
		return
	}
	serveObject(c, h.objects, person.PhotoKey, "image/jpeg", "photo not found")
}

func (h *MediaHandler) GetAudio(c *gin.Context) {
	person := loadPerson(c, h.store)
	if person == nil {
		return
	}
	serveObject(c, h.objects, person.AudioKey, "audio/mp4", "audio not found")
}

// SetPreferredVisual chooses between the sketch and the photo. Choosing the
// photo requires one to be uploaded.
func (h *MediaHandler) SetPreferredVisual(c *gin.Context) {
	var req dto.PreferredVisualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	person := loadPerson(c, h.store)
	if person == nil {
		return
	}

	visual := models.VisualType(req.Visual)
	if visual == models.VisualPhoto && person.PhotoKey == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "person has no photo"})
		return
	}

	if err := h.store.UpdatePreferredVisual(c.Request.Context(), person.ID, visual); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	person.PreferredVisual = visual
	c.JSON(http.StatusOK, personResponse(person, h.now()))
}
