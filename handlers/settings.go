package handlers

import (
	"net/http"

	settingsRepo "slotwise/database/repository/settings"
	"slotwise/models"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
)

// SettingsHandler manages the provider's weekly availability rule set.
type SettingsHandler struct {
	Repo settingsRepo.SettingsRepository
}

func NewSettingsHandler(repo settingsRepo.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{Repo: repo}
}

// GetAvailability returns the stored rule set, or the default schedule when
// none is stored.
func (h *SettingsHandler) GetAvailability(c *gin.Context) {
	rules, err := h.Repo.GetAvailabilityRules(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch availability settings", err.Error())
		return
	}
	if len(rules) == 0 {
		rules = models.DefaultSchedule
	}
	c.JSON(http.StatusOK, gin.H{"slots": rules})
}

// SetAvailability replaces the weekly rule set.
func (h *SettingsHandler) SetAvailability(c *gin.Context) {
	var input struct {
		Slots []models.AvailabilityRule `json:"slots" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Repo.SetAvailabilityRules(c.Request.Context(), input.Slots); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to save availability settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": input.Slots})
}
