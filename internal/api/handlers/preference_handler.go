package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/amarupazila/app-local-info/internal/constants"
	"github.com/amarupazila/app-local-info/internal/models"
	"github.com/amarupazila/app-local-info/internal/preferences"
	"github.com/amarupazila/app-local-info/internal/services"
)

var validate = validator.New()

// PreferenceHandler serves the per-category preferences and the algorithm
// mix. Mutations trigger a feed re-rank so the new settings take effect on
// the next read.
type PreferenceHandler struct {
	prefs       *preferences.Store
	feedService *services.FeedService
}

// NewPreferenceHandler creates a preference handler.
func NewPreferenceHandler(prefs *preferences.Store, feedService *services.FeedService) *PreferenceHandler {
	return &PreferenceHandler{prefs: prefs, feedService: feedService}
}

// PreferencesResponse lists all entries plus the algorithm mix.
type PreferencesResponse struct {
	Preferences  []models.PreferenceEntry `json:"preferences"`
	AlgorithmMix int                      `json:"algorithm_mix"`
}

// PreferenceUpdateRequest is the body of a per-category preference write.
// An omitted priority means the default (50).
type PreferenceUpdateRequest struct {
	Enabled  bool `json:"enabled"`
	Priority *int `json:"priority" validate:"omitempty,min=0,max=100"`
}

// AlgorithmMixRequest is the body of an algorithm mix write.
type AlgorithmMixRequest struct {
	Value int `json:"value" validate:"min=0,max=100"`
}

// GetPreferences godoc
// @Summary Current preferences
// @Description Returns every per-category preference entry and the algorithm mix, sorted by category tag.
// @Tags preferences
// @Produce json
// @Success 200 {object} PreferencesResponse
// @Router /api/v1/preferences [get]
func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	current := h.prefs.Get()

	entries := make([]models.PreferenceEntry, 0, len(current.Entries))
	for _, entry := range current.Entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Category < entries[j].Category
	})

	c.JSON(http.StatusOK, PreferencesResponse{
		Preferences:  entries,
		AlgorithmMix: current.AlgorithmMix,
	})
}

// PutPreference godoc
// @Summary Set a category preference
// @Description Overwrites the enabled flag and priority (0-100) of one category. The change is persisted immediately and the feed is re-ranked.
// @Tags preferences
// @Accept json
// @Produce json
// @Param category path string true "Category tag"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Unknown category or priority out of range"
// @Failure 500 {object} map[string]string "Persisting failed"
// @Router /api/v1/preferences/{category} [put]
func (h *PreferenceHandler) PutPreference(c *gin.Context) {
	category := constants.Category(c.Param("category"))
	if !constants.IsKnown(category) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "unknown category",
			"details": "category must be one of the known category tags",
		})
		return
	}

	var req PreferenceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed body", "details": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "priority must be between 0 and 100", "details": err.Error()})
		return
	}

	priority := models.DefaultPriority
	if req.Priority != nil {
		priority = *req.Priority
	}

	if err := h.prefs.SetPreference(category, req.Enabled, priority); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "persisting preference", "details": err.Error()})
		return
	}

	h.feedService.Refresh()
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// PutAlgorithmMix godoc
// @Summary Set the algorithm mix
// @Description Sets the blend between preference-driven and randomized feed ordering: 100 is preference-only, 0 is pure shuffle. Persisted immediately; the feed is re-ranked.
// @Tags preferences
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Value out of range"
// @Failure 500 {object} map[string]string "Persisting failed"
// @Router /api/v1/preferences/algorithm-mix [put]
func (h *PreferenceHandler) PutAlgorithmMix(c *gin.Context) {
	var req AlgorithmMixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed body", "details": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value must be between 0 and 100", "details": err.Error()})
		return
	}

	if err := h.prefs.SetAlgorithmMix(req.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "persisting algorithm mix", "details": err.Error()})
		return
	}

	h.feedService.Refresh()
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
