package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amarupazila/app-local-info/internal/search"
)

// SearchHandler serves full-text search over the record collection.
type SearchHandler struct {
	searchService *search.Service
	collection    string
}

// NewSearchHandler creates a search handler for the given collection.
func NewSearchHandler(searchService *search.Service, collection string) *SearchHandler {
	return &SearchHandler{searchService: searchService, collection: collection}
}

// Search godoc
// @Summary Search records
// @Description Keyword search over record content; runs hybrid (keyword + vector) when embeddings are configured. Results are projected feed items.
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Param district query string false "Filter by district"
// @Param upazila query string false "Filter by upazila"
// @Param page query int false "Page number (minimum: 1)" minimum(1) default(1)
// @Param per_page query int false "Items per page (maximum: 100)" minimum(1) maximum(100) default(20)
// @Success 200 {object} search.Result
// @Failure 400 {object} map[string]string "Missing query"
// @Failure 502 {object} map[string]string "Search backend failed"
// @Router /api/v1/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	page := parseIntQuery(c, "page", 1)
	if page < 1 {
		page = 1
	}
	perPage := parseIntQuery(c, "per_page", 20)
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	result, err := h.searchService.Search(
		c.Request.Context(),
		h.collection,
		query,
		c.Query("district"),
		c.Query("upazila"),
		page,
		perPage,
	)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "search failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(c *gin.Context, param string, defaultValue int) int {
	valueStr := c.Query(param)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
