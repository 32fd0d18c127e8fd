package handlers

import (
	"draftroom/api/dto"
	"draftroom/api/filters"
	"draftroom/api/middleware"
	playerservice "draftroom/api/services/player"
	voteservice "draftroom/api/services/vote"
	"draftroom/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlayerHandler is the handler for the board and player endpoints.
type PlayerHandler struct {
	logger        logger.Logger
	playerService *playerservice.PlayerService
	voteService   *voteservice.VoteService
}

type PlayerHandlerDependencies struct {
	Logger        logger.Logger
	PlayerService *playerservice.PlayerService
	VoteService   *voteservice.VoteService
}

// NewPlayerHandler creates a new instance of the player handler.
func NewPlayerHandler(deps *PlayerHandlerDependencies) *PlayerHandler {
	return &PlayerHandler{
		logger:        loggerOrNop(deps.Logger),
		playerService: deps.PlayerService,
		voteService:   deps.VoteService,
	}
}

// ListPlayers returns the board with the community vote counts.
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	players, err := h.playerService.ListPlayers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// GetPlayer returns the page of a player by slug.
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	var qp filters.PlayerDetailParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := h.playerService.GetPlayerDetail(c.Request.Context(), c.Param("slug"), qp.ReportSort())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// TogglePlayerVote adds or removes the vote of the caller on a player.
func (h *PlayerHandler) TogglePlayerVote(c *gin.Context) {
	var req dto.PlayerVoteRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.voteService.TogglePlayerVote(c.Request.Context(), &req, middleware.Identity(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
