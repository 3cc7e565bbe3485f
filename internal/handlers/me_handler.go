package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mwangie/CareToCrown/internal/domain/directory"
	"github.com/mwangie/CareToCrown/internal/httpresp"
	"github.com/mwangie/CareToCrown/internal/middleware"
)

type MeHandler struct {
	providers directory.Repository
}

func NewMeHandler(providers directory.Repository) *MeHandler {
	return &MeHandler{providers: providers}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	idVal, exists := c.Get(middleware.ContextProviderID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "provider_not_in_context"})
		return
	}

	providerID, ok := idVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_provider_id_type"})
		return
	}

	role := c.MustGet(middleware.ContextRole).(string)

	provider, err := h.providers.FindByID(c.Request.Context(), role, providerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "provider_not_found"})
		return
	}

	httpresp.OK(c, gin.H{"user": providerView(provider)})
}
