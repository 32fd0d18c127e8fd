package handlers

import (
	"draftroom/api/dto"
	adminservice "draftroom/api/services/admin"
	"draftroom/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles the password protected editing endpoints.
type AdminHandler struct {
	logger       logger.Logger
	adminService *adminservice.AdminService
}

type AdminHandlerDependencies struct {
	Logger       logger.Logger
	AdminService *adminservice.AdminService
}

func NewAdminHandler(deps *AdminHandlerDependencies) *AdminHandler {
	return &AdminHandler{
		logger:       loggerOrNop(deps.Logger),
		adminService: deps.AdminService,
	}
}

// RequireAdmin rejects requests without the admin token.
func (h *AdminHandler) RequireAdmin(c *gin.Context) {
	if err := h.adminService.Authorize(c.GetHeader("Authorization")); err != nil {
		respondError(c, h.logger, err)
		c.Abort()
		return
	}

	c.Next()
}

// UpsertExpertReport creates or replaces the expert report of a player.
func (h *AdminHandler) UpsertExpertReport(c *gin.Context) {
	var req dto.ExpertReportRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.adminService.UpsertExpertReport(c.Request.Context(), &req); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResult{Success: true})
}
