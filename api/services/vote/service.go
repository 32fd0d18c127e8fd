package voteservice

import (
	"context"
	"draftroom/api/dto"
	voterepo "draftroom/api/repositories/vote"
	"draftroom/pkg/apperrors"
	"draftroom/pkg/database/models"
	"draftroom/pkg/logger"
	"draftroom/pkg/messages"
	"draftroom/pkg/metrics"
	"errors"
	"time"

	"gorm.io/gorm"
)

const writeTimeout = 5 * time.Second

// Metric labels for the vote kinds.
const (
	kindPlayer = "player"
	kindReport = "report"
)

// VoteService applies player vote toggles and final report votes.
type VoteService struct {
	logger  logger.Logger
	metrics *metrics.Metrics

	VoteRepository voterepo.VoteRepository
}

// VoteServiceDeps is the dependency list for the vote service.
type VoteServiceDeps struct {
	DB      *gorm.DB
	Logger  logger.Logger
	Metrics *metrics.Metrics
}

// NewVoteService creates a vote service.
func NewVoteService(deps *VoteServiceDeps) *VoteService {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &VoteService{
		logger:         log,
		metrics:        deps.Metrics,
		VoteRepository: voterepo.NewVoteRepository(deps.DB),
	}
}

// TogglePlayerVote adds the vote of the identity on the player, or removes it if it already exists.
func (vs *VoteService) TogglePlayerVote(ctx context.Context, req *dto.PlayerVoteRequest, ipHash string) (*dto.PlayerVoteResult, error) {
	if req.PlayerID == 0 {
		return nil, apperrors.Validation(messages.PlayerIdRequired)
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	removed, err := vs.VoteRepository.TogglePlayerVote(ctx, req.PlayerID, ipHash)
	if err != nil {
		if errors.Is(err, voterepo.ErrPlayerNotFound) {
			return nil, apperrors.Wrap(apperrors.KindNotFound, messages.PlayerNotFound, err)
		}
		return nil, err
	}

	action := dto.VoteActionAdded
	if removed {
		action = dto.VoteActionRemoved
	}
	vs.metrics.VoteRecorded(kindPlayer, action)

	return &dto.PlayerVoteResult{Success: true, Action: action}, nil
}

// CastReportVote records the single vote of the identity on a report.
// A second vote from the same identity is rejected whatever its direction.
func (vs *VoteService) CastReportVote(ctx context.Context, req *dto.ReportVoteRequest, ipHash string) error {
	voteType := models.VoteType(req.VoteType)
	if !voteType.Valid() {
		return apperrors.Validation(messages.InvalidVoteType)
	}

	if req.ReportID == 0 {
		return apperrors.Validation(messages.ReportIdRequired)
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	err := vs.VoteRepository.CastReportVote(ctx, req.ReportID, ipHash, voteType)
	switch {
	case err == nil:
		vs.metrics.VoteRecorded(kindReport, string(voteType))
		return nil
	case errors.Is(err, voterepo.ErrAlreadyVoted):
		vs.metrics.VoteRecorded(kindReport, "duplicate")
		vs.logger.Debug(ctx, "duplicate report vote", logger.Uint("report_id", req.ReportID))
		return apperrors.Wrap(apperrors.KindConflict, messages.AlreadyVoted, err)
	case errors.Is(err, voterepo.ErrReportNotFound):
		return apperrors.Wrap(apperrors.KindNotFound, messages.ReportNotFound, err)
	}

	return err
}
