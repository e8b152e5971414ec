package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amarupazila/app-local-info/internal/services"
)

// CategoryHandler serves category summaries.
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler creates a category handler.
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GetCategories godoc
// @Summary List categories with live record counts and preferences
// @Description Returns every known category with its current record count from the feed mirror and the user's preference entry, sortable by priority, count or label.
// @Tags categories
// @Produce json
// @Param sort_by query string false "Sort criterion" Enums(priority, count, alpha) default(priority)
// @Param order query string false "Sort direction" Enums(asc, desc) default(desc)
// @Success 200 {object} models.CategoriesResponse
// @Failure 400 {object} map[string]string "Invalid sort_by or order"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	sortBy := c.DefaultQuery("sort_by", "priority")
	order := c.DefaultQuery("order", "desc")

	validSortBy := map[string]bool{
		"priority": true,
		"count":    true,
		"alpha":    true,
	}
	if !validSortBy[sortBy] {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid sort_by parameter",
			"details": "valid values: priority, count, alpha",
		})
		return
	}
	if order != "asc" && order != "desc" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid order parameter",
			"details": "valid values: asc, desc",
		})
		return
	}

	c.JSON(http.StatusOK, h.categoryService.GetCategories(sortBy, order))
}
