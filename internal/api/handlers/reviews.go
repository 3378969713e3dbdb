package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/your-org/remember/internal/observability"
	"github.com/your-org/remember/internal/review"
	"github.com/your-org/remember/pkg/dto"
)

type ReviewHandler struct {
	store       Store
	notifier    Notifier
	queueLimit  int
	nearDueDays int
	now         func() time.Time
}

func NewReviewHandler(store Store, notifier Notifier, queueLimit, nearDueDays int, now func() time.Time) *ReviewHandler {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if queueLimit <= 0 {
		queueLimit = review.DefaultQueueLimit
	}
	if nearDueDays <= 0 {
		nearDueDays = review.NearDueDays
	}
	if now == nil {
		now = time.Now
	}
	return &ReviewHandler{store: store, notifier: notifier, queueLimit: queueLimit, nearDueDays: nearDueDays, now: now}
}

func (h *ReviewHandler) DueCount(c *gin.Context) {
	count, err := h.store.CountDue(c.Request.Context(), h.now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	observability.DuePeople.Set(float64(count))
	c.JSON(http.StatusOK, dto.DueCountResponse{DueCount: count})
}

// Queue returns the people to review now: overdue first, then those due
// within the near-due window.
func (h *ReviewHandler) Queue(c *gin.Context) {
	limit := h.queueLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	now := h.now()
	candidates, err := h.store.ListReviewCandidates(c.Request.Context(), now.AddDate(0, 0, h.nearDueDays))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]review.Item, 0, len(candidates))
	byID := make(map[uuid.UUID]int, len(candidates))
	for i, p := range candidates {
		items = append(items, review.Item{ID: p.ID, Record: p.Review})
		byID[p.ID] = i
	}

	ids := review.BuildReviewQueueWindow(items, now, limit, h.nearDueDays)
	resp := make([]dto.PersonResponse, 0, len(ids))
	for _, id := range ids {
		resp = append(resp, personResponse(&candidates[byID[id]], now))
	}
	c.JSON(http.StatusOK, dto.ReviewQueueResponse{Queue: resp, Total: len(resp)})
}

// Record applies a got-it or missed outcome to the person's schedule.
func (h *ReviewHandler) Record(c *gin.Context) {
	var req dto.RecordReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	now := h.now()
	rec, err := h.store.ApplyReview(c.Request.Context(), id, *req.Recalled, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
		return
	}
	observability.ReviewsRecorded.WithLabelValues(observability.Outcome(*req.Recalled)).Inc()

	resp := dto.RecordReviewResponse{
		PersonID: id,
		Recalled: *req.Recalled,
		Review:   reviewResponse(*rec, now),
	}
	h.notifier.BroadcastEvent(&dto.WSEvent{Type: dto.WSReviewRecorded, PersonID: id, Data: resp})
	c.JSON(http.StatusOK, resp)
}
