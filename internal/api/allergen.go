package api

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/lvicens/blanca-med/backend/internal/service"
)

// AllergenHandler serves the public lookup endpoints over the curated
// dataset
type AllergenHandler struct {
	allergens      *service.AllergenService
	exports        *service.ExportService
	minQueryLength int
}

func NewAllergenHandler(allergens *service.AllergenService, exports *service.ExportService, minQueryLength int) *AllergenHandler {
	return &AllergenHandler{
		allergens:      allergens,
		exports:        exports,
		minQueryLength: minQueryLength,
	}
}

// Search handles free-text name lookups. The minimum-length threshold
// lives here, not in the engine: the engine treats any normalized query
// as valid, the HTTP layer just refuses to run searches on fragments too
// short to be meaningful.
func (h *AllergenHandler) Search(c *gin.Context) {
	raw := c.Query("q")

	if trimmed := strings.TrimSpace(raw); trimmed != "" && utf8.RuneCountInString(trimmed) < h.minQueryLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("query must be at least %d characters", h.minQueryLength),
		})
		return
	}

	d, result := h.allergens.Search(raw)
	c.JSON(http.StatusOK, newSearchResponse(d, result))
}

// Categories lists the distinct dataset categories
func (h *AllergenHandler) Categories(c *gin.Context) {
	categories, err := h.allergens.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Category returns the full must-avoid/safe partition of one category
func (h *AllergenHandler) Category(c *gin.Context) {
	d, result := h.allergens.Browse(c.Param("category"))
	c.JSON(http.StatusOK, newSearchResponse(d, result))
}

// Export dumps the complete dataset to CSV and returns a download link.
// The dump always covers every record, independent of any search state.
func (h *AllergenHandler) Export(c *gin.Context) {
	if h.exports == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "export storage not configured"})
		return
	}

	records := h.allergens.ExportAll()
	url, err := h.exports.ExportCSV(c.Request.Context(), records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export dataset"})
		return
	}

	c.JSON(http.StatusOK, ExportResponse{URL: url, Count: len(records)})
}
