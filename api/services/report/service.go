package reportservice

import (
	"context"
	"draftroom/api/dto"
	playerrepo "draftroom/api/repositories/player"
	reportrepo "draftroom/api/repositories/report"
	"draftroom/pkg/apperrors"
	"draftroom/pkg/database/models"
	"draftroom/pkg/logger"
	"draftroom/pkg/messages"
	"draftroom/pkg/metrics"
	"draftroom/pkg/moderation"
	"time"

	"gorm.io/gorm"
)

const writeTimeout = 5 * time.Second

// ReportService accepts community reports and keeps their counters consistent.
type ReportService struct {
	gate    *moderation.Gate
	logger  logger.Logger
	metrics *metrics.Metrics

	PlayerRepository playerrepo.PlayerRepository
	ReportRepository reportrepo.ReportRepository
}

// ReportServiceDeps is the dependency list for the report service.
type ReportServiceDeps struct {
	DB      *gorm.DB
	Gate    *moderation.Gate
	Logger  logger.Logger
	Metrics *metrics.Metrics
}

// NewReportService creates a report service.
func NewReportService(deps *ReportServiceDeps) *ReportService {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	gate := deps.Gate
	if gate == nil {
		gate = moderation.NewGate(moderation.MustDefaultProfanityFilter())
	}

	return &ReportService{
		gate:             gate,
		logger:           log,
		metrics:          deps.Metrics,
		PlayerRepository: playerrepo.NewPlayerRepository(deps.DB),
		ReportRepository: reportrepo.NewReportRepository(deps.DB),
	}
}

// SubmitReport runs the gate on the submission and stores it for the identity.
func (rs *ReportService) SubmitReport(ctx context.Context, req *dto.SubmitReportRequest, ipHash string) (*dto.SubmitReportResult, error) {
	sanitized, rejection := rs.gate.Validate(&moderation.Submission{
		PlayerID:    req.PlayerID,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Content:     req.Content,
		Honeypot:    req.Honeypot,
		SubmitTime:  req.SubmitTime,
	})
	if rejection != nil {
		rs.metrics.GateRejected(rejection.Reason)
		rs.logger.Debug(ctx, "report rejected", logger.String("reason", rejection.Reason))
		return nil, apperrors.Validation(rejection.Message)
	}

	if sanitized.PlayerID == 0 {
		return nil, apperrors.Validation(messages.PlayerIdRequired)
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	exists, err := rs.PlayerRepository.Exists(ctx, sanitized.PlayerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound(messages.PlayerNotFound)
	}

	report := &models.CommunityReport{
		PlayerID:    sanitized.PlayerID,
		DisplayName: sanitized.DisplayName,
		Email:       sanitized.Email,
		Content:     sanitized.Content,
		IPHash:      ipHash,
	}
	if err := rs.ReportRepository.Create(ctx, report); err != nil {
		return nil, err
	}

	rs.logger.Info(ctx, "report created",
		logger.Uint("report_id", report.ID), logger.Uint("player_id", report.PlayerID))

	return &dto.SubmitReportResult{Success: true, ID: report.ID}, nil
}

// ReconcileScores repairs the reports whose counters drifted from the vote records.
// Returns the number of repaired reports.
func (rs *ReportService) ReconcileScores(ctx context.Context) (int, error) {
	repaired, err := rs.ReportRepository.ReconcileScores(ctx)
	if err != nil {
		return 0, err
	}

	for _, tally := range repaired {
		rs.logger.Warn(ctx, "report counters repaired",
			logger.Uint("report_id", tally.ID),
			logger.Int("upvotes", tally.Upvotes),
			logger.Int("downvotes", tally.Downvotes),
			logger.Int("score", tally.Score),
			logger.Int("recorded_up", tally.RecordedUp),
			logger.Int("recorded_down", tally.RecordedDown),
		)
	}

	return len(repaired), nil
}
