package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lvicens/blanca-med/backend/internal/service"
)

// ProtocolHandler serves the emergency protocol sheets
type ProtocolHandler struct {
	protocols *service.ProtocolService
}

func NewProtocolHandler(protocols *service.ProtocolService) *ProtocolHandler {
	return &ProtocolHandler{protocols: protocols}
}

func (h *ProtocolHandler) List(c *gin.Context) {
	protocols, err := h.protocols.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list protocols"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"protocols": protocols})
}

func (h *ProtocolHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid protocol id"})
		return
	}

	protocol, err := h.protocols.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "protocol not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get protocol"})
		return
	}

	c.JSON(http.StatusOK, protocol)
}
