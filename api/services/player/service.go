package playerservice

import (
	"context"
	"draftroom/api/dto"
	"draftroom/api/filters"
	expertrepo "draftroom/api/repositories/expert"
	playerrepo "draftroom/api/repositories/player"
	reportrepo "draftroom/api/repositories/report"
	"draftroom/pkg/apperrors"
	"draftroom/pkg/messages"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const queryTimeout = 5 * time.Second

// PlayerService serves the board and the player pages.
type PlayerService struct {
	db *gorm.DB

	PlayerRepository       playerrepo.PlayerRepository
	ReportRepository       reportrepo.ReportRepository
	ExpertReportRepository expertrepo.ExpertReportRepository
}

type PlayerServiceDeps struct {
	DB *gorm.DB
}

// NewPlayerService creates a service for handling player reads.
func NewPlayerService(deps *PlayerServiceDeps) *PlayerService {
	return &PlayerService{
		db:                     deps.DB,
		PlayerRepository:       playerrepo.NewPlayerRepository(deps.DB),
		ReportRepository:       reportrepo.NewReportRepository(deps.DB),
		ExpertReportRepository: expertrepo.NewExpertReportRepository(deps.DB),
	}
}

// ListPlayers returns the board ordered by rank with the live vote counts.
func (ps *PlayerService) ListPlayers(ctx context.Context) ([]*dto.PlayerListEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	players, err := ps.PlayerRepository.ListWithCommunityScore(ctx)
	if err != nil {
		return nil, err
	}

	return players, nil
}

// GetPlayerDetail returns the player, its expert report and the community reports in the requested order.
func (ps *PlayerService) GetPlayerDetail(ctx context.Context, slug string, sort filters.ReportSort) (*dto.PlayerDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	player, err := ps.PlayerRepository.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, apperrors.NotFound(messages.PlayerNotFound)
	}

	expert, err := ps.ExpertReportRepository.GetByPlayer(ctx, player.ID)
	if err != nil {
		return nil, err
	}

	reports, err := ps.ReportRepository.ListByPlayer(ctx, player.ID, sort)
	if err != nil {
		return nil, fmt.Errorf("couldn't load the reports of %s: %w", slug, err)
	}

	return &dto.PlayerDetail{
		Player:           player,
		ExpertReport:     expert,
		CommunityReports: reports,
	}, nil
}
