package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ArowuTest/bridgetunes-lottery/internal/services"
)

// DrawHandler handles draw-related HTTP requests
type DrawHandler struct {
	gameService services.GameService
	formatter   *services.ResultFormatter
}

// NewDrawHandler creates a new DrawHandler
func NewDrawHandler(gameService services.GameService) *DrawHandler {
	return &DrawHandler{
		gameService: gameService,
		formatter:   services.NewResultFormatter(gameService.Config()),
	}
}

// SimulateRequest is the optional body of POST /lottery/simulate
type SimulateRequest struct {
	StartIndex int `json:"startIndex" binding:"omitempty,min=1"`
}

// GetSummary handles GET /lottery/summary
func (h *DrawHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.gameService.Summary(c.Request.Context()))
}

// SimulateCPUPlayers handles POST /lottery/simulate
func (h *DrawHandler) SimulateCPUPlayers(c *gin.Context) {
	var req SimulateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.StartIndex == 0 {
		req.StartIndex = h.gameService.Summary(c.Request.Context()).Players + 1
	}

	players, err := h.gameService.SimulateCPUPlayers(c.Request.Context(), req.StartIndex)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"players": players,
		"summary": h.gameService.Summary(c.Request.Context()),
	})
}

// Draw handles POST /lottery/draw
func (h *DrawHandler) Draw(c *gin.Context) {
	result, err := h.gameService.Draw(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draw executed successfully", "result": result})
}

// GetResult handles GET /lottery/result; ?format=text returns the printable summary
func (h *DrawHandler) GetResult(c *gin.Context) {
	result, err := h.gameService.Result(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if strings.EqualFold(c.Query("format"), "text") {
		var b strings.Builder
		if err := h.formatter.Format(&b, result); err != nil {
			respondError(c, err)
			return
		}
		c.String(http.StatusOK, b.String())
		return
	}
	c.JSON(http.StatusOK, result)
}
