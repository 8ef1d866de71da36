package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ArowuTest/bridgetunes-lottery/internal/services"
)

// PlayerHandler handles player-related HTTP requests
type PlayerHandler struct {
	gameService services.GameService
}

// NewPlayerHandler creates a new PlayerHandler
func NewPlayerHandler(gameService services.GameService) *PlayerHandler {
	return &PlayerHandler{
		gameService: gameService,
	}
}

// RegisterPlayerRequest is the body of POST /players
type RegisterPlayerRequest struct {
	Name    string          `json:"name" binding:"required"`
	Balance decimal.Decimal `json:"balance"`
}

// BuyTicketsRequest is the body of POST /players/:name/tickets
type BuyTicketsRequest struct {
	Count int `json:"count" binding:"required,min=1"`
}

// RegisterPlayer handles POST /players
func (h *PlayerHandler) RegisterPlayer(c *gin.Context) {
	var req RegisterPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.gameService.RegisterPlayer(c.Request.Context(), req.Name, req.Balance)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, player)
}

// ListPlayers handles GET /players
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	players, err := h.gameService.ListPlayers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": players, "count": len(players)})
}

// GetPlayer handles GET /players/:name
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	player, err := h.gameService.GetPlayer(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// BuyTickets handles POST /players/:name/tickets
func (h *PlayerHandler) BuyTickets(c *gin.Context) {
	var req BuyTicketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := c.Param("name")
	player, err := h.gameService.BuyTickets(c.Request.Context(), name, req.Count)
	if err != nil {
		respondError(c, err)
		return
	}
	tickets, err := h.gameService.GetTickets(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"player": player, "tickets": tickets})
}

// GetTickets handles GET /players/:name/tickets
func (h *PlayerHandler) GetTickets(c *gin.Context) {
	name := c.Param("name")
	tickets, err := h.gameService.GetTickets(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"player": name, "tickets": tickets})
}
