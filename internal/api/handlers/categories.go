package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/your-org/remember/internal/models"
	"github.com/your-org/remember/pkg/dto"
)

type CategoryHandler struct {
	store Store
}

func NewCategoryHandler(store Store) *CategoryHandler {
	return &CategoryHandler{store: store}
}

func categoryResponse(cat models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: cat.ID, Name: cat.Name, CreatedAt: formatTime(cat.CreatedAt)}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	cat, err := h.store.CreateCategory(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, categoryResponse(*cat))
}

func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.store.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		resp = append(resp, categoryResponse(cat))
	}
	c.JSON(http.StatusOK, gin.H{"categories": resp, "total": len(resp)})
}
