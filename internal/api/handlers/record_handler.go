package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amarupazila/app-local-info/internal/constants"
	"github.com/amarupazila/app-local-info/internal/models"
	"github.com/amarupazila/app-local-info/internal/recordstore"
)

// RecordHandler serves record CRUD. Every write is a single remote attempt;
// the feed mirror catches up on the next subscription notification.
type RecordHandler struct {
	adapter    *recordstore.Adapter
	collection string
}

// NewRecordHandler creates a record handler for the given collection.
func NewRecordHandler(adapter *recordstore.Adapter, collection string) *RecordHandler {
	return &RecordHandler{adapter: adapter, collection: collection}
}

// CreateRecord godoc
// @Summary Create a record
// @Description Indexes a new record. The body is the record document with its category tag; the id is generated when omitted. Exactly one write attempt is made.
// @Tags records
// @Accept json
// @Produce json
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Malformed body or unknown category"
// @Failure 502 {object} map[string]string "Write failed"
// @Router /api/v1/records [post]
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reading request body", "details": err.Error()})
		return
	}

	rec, err := models.DecodeRecord(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed record", "details": err.Error()})
		return
	}
	if !constants.IsKnown(rec.CategoryTag()) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "unknown category",
			"details": "category must be one of the known category tags",
		})
		return
	}

	id, err := h.adapter.Create(c.Request.Context(), h.collection, rec)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "creating record", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetRecord godoc
// @Summary Retrieve a record
// @Description Fetches one record by id directly from the backend.
// @Tags records
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/records/{id} [get]
func (h *RecordHandler) GetRecord(c *gin.Context) {
	rec, err := h.adapter.Get(c.Request.Context(), h.collection, c.Param("id"))
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "retrieving record", "details": err.Error()})
		return
	}

	data, err := models.EncodeRecord(rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "encoding record", "details": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// UpdateRecord godoc
// @Summary Partially update a record
// @Description Applies the given fields to an existing record. The id and category tag are immutable and ignored if present. Exactly one write attempt is made.
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/records/{id} [patch]
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed patch", "details": err.Error()})
		return
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty patch"})
		return
	}

	err := h.adapter.Update(c.Request.Context(), h.collection, c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "updating record", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteRecord godoc
// @Summary Delete a record
// @Description Removes one record. Exactly one delete attempt is made.
// @Tags records
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/records/{id} [delete]
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	err := h.adapter.Delete(c.Request.Context(), h.collection, c.Param("id"))
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "deleting record", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
