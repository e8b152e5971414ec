// Package handlers contains the Gin handlers of the HTTP API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amarupazila/app-local-info/internal/models"
	"github.com/amarupazila/app-local-info/internal/services"
)

// FeedHandler serves the ranked record feed.
type FeedHandler struct {
	feedService *services.FeedService
}

// NewFeedHandler creates a feed handler.
func NewFeedHandler(feedService *services.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// GetFeed godoc
// @Summary Ranked record feed
// @Description Pages through the last computed ranking of the record mirror. The order only changes when new data arrives or after an explicit refresh, so repeated reads are stable.
// @Tags feed
// @Produce json
// @Param district query string false "Filter by district (case and diacritic insensitive)"
// @Param upazila query string false "Filter by upazila (case and diacritic insensitive)"
// @Param page query int false "Page number (minimum: 1)" minimum(1) default(1)
// @Param per_page query int false "Items per page (maximum: 100)" minimum(1) maximum(100) default(20)
// @Success 200 {object} models.FeedResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /api/v1/feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	var req models.FeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.feedService.Feed(req))
}

// RefreshFeed godoc
// @Summary Re-rank the feed
// @Description Recomputes the feed order against the current preferences and returns the first page of the new order. This is the only operation that reshuffles an already-served feed.
// @Tags feed
// @Produce json
// @Param district query string false "Filter by district"
// @Param upazila query string false "Filter by upazila"
// @Param per_page query int false "Items per page (maximum: 100)" minimum(1) maximum(100) default(20)
// @Success 200 {object} models.FeedResponse
// @Router /api/v1/feed/refresh [post]
func (h *FeedHandler) RefreshFeed(c *gin.Context) {
	var req models.FeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid query parameters",
			"details": err.Error(),
		})
		return
	}
	req.Page = 1

	h.feedService.Refresh()
	c.JSON(http.StatusOK, h.feedService.Feed(req))
}

// RefetchFeed godoc
// @Summary Refetch the record snapshot
// @Description Forces a one-shot snapshot fetch from the backend. This is the recovery path after a subscription froze on an error; a failed refetch leaves the current feed untouched.
// @Tags feed
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 502 {object} map[string]string "Backend fetch failed; previous data kept"
// @Router /api/v1/feed/refetch [post]
func (h *FeedHandler) RefetchFeed(c *gin.Context) {
	if err := h.feedService.Refetch(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "refetch failed",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "refetched"})
}
