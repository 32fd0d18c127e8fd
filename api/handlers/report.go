package handlers

import (
	"draftroom/api/dto"
	"draftroom/api/middleware"
	reportservice "draftroom/api/services/report"
	voteservice "draftroom/api/services/vote"
	"draftroom/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles community report submissions and votes.
type ReportHandler struct {
	logger        logger.Logger
	reportService *reportservice.ReportService
	voteService   *voteservice.VoteService
}

type ReportHandlerDependencies struct {
	Logger        logger.Logger
	ReportService *reportservice.ReportService
	VoteService   *voteservice.VoteService
}

func NewReportHandler(deps *ReportHandlerDependencies) *ReportHandler {
	return &ReportHandler{
		logger:        loggerOrNop(deps.Logger),
		reportService: deps.ReportService,
		voteService:   deps.VoteService,
	}
}

// SubmitReport creates a community report.
func (h *ReportHandler) SubmitReport(c *gin.Context) {
	var req dto.SubmitReportRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.reportService.SubmitReport(c.Request.Context(), &req, middleware.Identity(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// VoteReport records the vote of the caller on a report.
func (h *ReportHandler) VoteReport(c *gin.Context) {
	var req dto.ReportVoteRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.voteService.CastReportVote(c.Request.Context(), &req, middleware.Identity(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResult{Success: true})
}
