package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lvicens/blanca-med/backend/internal/search"
	"github.com/lvicens/blanca-med/backend/internal/service"
	"github.com/lvicens/blanca-med/backend/internal/types"
)

// ProfileHandler serves the authenticated profile and personal allergen
// endpoints
type ProfileHandler struct {
	profiles *service.ProfileService
	personal *service.PersonalAllergenService
}

func NewProfileHandler(profiles *service.ProfileService, personal *service.PersonalAllergenService) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		personal: personal,
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.profiles.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) ListAllergens(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.personal.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list allergens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"allergens": entries})
}

func (h *ProfileHandler) CreateAllergen(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.PersonalAllergenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.personal.Create(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrAllergenExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "an allergen with that name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create allergen"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *ProfileHandler) UpdateAllergen(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid allergen id"})
		return
	}

	var req types.PersonalAllergenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.personal.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "allergen not found"})
			return
		}
		if errors.Is(err, service.ErrAllergenExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "an allergen with that name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update allergen"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *ProfileHandler) DeleteAllergen(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid allergen id"})
		return
	}

	if err := h.personal.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "allergen not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete allergen"})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// SearchAllergens runs the lookup engine over the user's own entries.
// Mode defaults to name search; passing category=1 switches to a category
// partition.
func (h *ProfileHandler) SearchAllergens(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	mode := search.ModeByName
	if c.Query("category") == "1" {
		mode = search.ModeByCategory
	}

	d, result, err := h.personal.Search(c.Request.Context(), userID, c.Query("q"), mode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search allergens"})
		return
	}

	c.JSON(http.StatusOK, newSearchResponse(d, result))
}
