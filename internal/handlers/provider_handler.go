package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mwangie/CareToCrown/internal/domain/directory"
	"github.com/mwangie/CareToCrown/internal/httperr"
	"github.com/mwangie/CareToCrown/internal/models"
)

type ProviderHandler struct {
	providers directory.Repository
}

func NewProviderHandler(providers directory.Repository) *ProviderHandler {
	return &ProviderHandler{providers: providers}
}

// List returns the full directory grouped by role, for the booking UI's
// dropdowns.
func (h *ProviderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	out := gin.H{}
	for role, key := range map[string]string{
		models.RoleDoctor:      "doctors",
		models.RolePharmacist:  "pharmacists",
		models.RolePatient:     "patients",
		models.RoleTransporter: "transporters",
	} {
		list, err := h.providers.ListByRole(ctx, role)
		if err != nil {
			httperr.Internal(c, "provider_list_failed", "Could not list providers.")
			return
		}
		if list == nil {
			list = []models.Provider{}
		}
		out[key] = list
	}

	c.JSON(http.StatusOK, out)
}
