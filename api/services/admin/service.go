package adminservice

import (
	"context"
	"crypto/subtle"
	"draftroom/api/dto"
	expertrepo "draftroom/api/repositories/expert"
	playerrepo "draftroom/api/repositories/player"
	"draftroom/pkg/apperrors"
	"draftroom/pkg/database/models"
	"draftroom/pkg/logger"
	"draftroom/pkg/messages"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	bearerPrefix = "Bearer "
	writeTimeout = 5 * time.Second
)

// AdminService edits the curated expert reports.
type AdminService struct {
	password string
	logger   logger.Logger

	PlayerRepository       playerrepo.PlayerRepository
	ExpertReportRepository expertrepo.ExpertReportRepository
}

// AdminServiceDeps is the dependency list for the admin service.
type AdminServiceDeps struct {
	DB       *gorm.DB
	Password string
	Logger   logger.Logger
}

// NewAdminService creates an admin service.
// An empty password disables every admin operation.
func NewAdminService(deps *AdminServiceDeps) *AdminService {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &AdminService{
		password:               deps.Password,
		logger:                 log,
		PlayerRepository:       playerrepo.NewPlayerRepository(deps.DB),
		ExpertReportRepository: expertrepo.NewExpertReportRepository(deps.DB),
	}
}

// Authorize checks the Authorization header against the configured password.
func (as *AdminService) Authorize(header string) error {
	if as.password == "" {
		return apperrors.Unauthorized(messages.Unauthorized)
	}

	token := strings.TrimPrefix(header, bearerPrefix)
	if subtle.ConstantTimeCompare([]byte(token), []byte(as.password)) != 1 {
		return apperrors.Unauthorized(messages.Unauthorized)
	}

	return nil
}

// UpsertExpertReport creates or replaces the expert report of a player.
func (as *AdminService) UpsertExpertReport(ctx context.Context, req *dto.ExpertReportRequest) error {
	if req.PlayerID == 0 {
		return apperrors.Validation(messages.PlayerIdRequired)
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	exists, err := as.PlayerRepository.Exists(ctx, req.PlayerID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound(messages.PlayerNotFound)
	}

	err = as.ExpertReportRepository.Upsert(ctx, &models.ExpertReport{
		PlayerID:   req.PlayerID,
		Summary:    req.Summary,
		Strengths:  req.Strengths,
		Weaknesses: req.Weaknesses,
		SchemeFit:  req.SchemeFit,
		NflComp:    req.NflComp,
		Floor:      req.Floor,
		Ceiling:    req.Ceiling,
		Risk:       req.Risk,
	})
	if err != nil {
		return err
	}

	as.logger.Info(ctx, "expert report saved", logger.Uint("player_id", req.PlayerID))
	return nil
}
