package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArowuTest/bridgetunes-lottery/internal/services"
)

// SystemSettingsHandler exposes the lottery configuration
type SystemSettingsHandler struct {
	gameService services.GameService
}

// NewSystemSettingsHandler creates a new SystemSettingsHandler
func NewSystemSettingsHandler(gameService services.GameService) *SystemSettingsHandler {
	return &SystemSettingsHandler{
		gameService: gameService,
	}
}

// GetConfig handles GET /lottery/config
func (h *SystemSettingsHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.gameService.Config())
}
