package testutil

import (
	"context"
	"draftroom/api/filters"
	playerrepo "draftroom/api/repositories/player"
	reportrepo "draftroom/api/repositories/report"
	"draftroom/pkg/database/models"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Repository mocks.
// ============================================================================

// Player mock implementations.
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) ListWithCommunityScore(ctx context.Context) ([]*playerrepo.PlayerWithScore, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*playerrepo.PlayerWithScore), args.Error(1)
}

func (m *MockPlayerRepository) GetBySlug(ctx context.Context, slug string) (*models.Player, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockPlayerRepository) Exists(ctx context.Context, playerId uint) (bool, error) {
	args := m.Called(ctx, playerId)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlayerRepository) UpsertBySlug(ctx context.Context, players []*models.Player) error {
	args := m.Called(ctx, players)
	return args.Error(0)
}

func (m *MockPlayerRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Report mock implementations.
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *models.CommunityReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) ListByPlayer(ctx context.Context, playerId uint, sort filters.ReportSort) ([]*models.CommunityReport, error) {
	args := m.Called(ctx, playerId, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CommunityReport), args.Error(1)
}

func (m *MockReportRepository) ReconcileScores(ctx context.Context) ([]reportrepo.ReportTally, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reportrepo.ReportTally), args.Error(1)
}

// Vote mock implementations.
type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) TogglePlayerVote(ctx context.Context, playerId uint, ipHash string) (bool, error) {
	args := m.Called(ctx, playerId, ipHash)
	return args.Bool(0), args.Error(1)
}

func (m *MockVoteRepository) CastReportVote(ctx context.Context, reportId uint, ipHash string, voteType models.VoteType) error {
	args := m.Called(ctx, reportId, ipHash, voteType)
	return args.Error(0)
}

// Expert report mock implementations.
type MockExpertReportRepository struct {
	mock.Mock
}

func (m *MockExpertReportRepository) GetByPlayer(ctx context.Context, playerId uint) (*models.ExpertReport, error) {
	args := m.Called(ctx, playerId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExpertReport), args.Error(1)
}

func (m *MockExpertReportRepository) Upsert(ctx context.Context, report *models.ExpertReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

// ============================================================================
// Store mocks.
// ============================================================================

// Counter store mock implementation, same shape as the Redis client.
type MockCounterStore struct {
	mock.Mock
}

func (m *MockCounterStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCounterStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
