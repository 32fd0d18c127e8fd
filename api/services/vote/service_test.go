package voteservice

import (
	"context"
	"draftroom/api/dto"
	voterepo "draftroom/api/repositories/vote"
	"draftroom/api/services/testutil"
	internaltestutil "draftroom/internal/testutil"
	"draftroom/pkg/apperrors"
	"draftroom/pkg/database/models"
	"draftroom/pkg/messages"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const ipHash = "MjAzLjAuMTEzLjc="

var timerCtx = mock.AnythingOfType(internaltestutil.DefaultTimerCtx)

func TestNewVoteService(t *testing.T) {
	service := NewVoteService(&VoteServiceDeps{DB: new(gorm.DB)})

	assert.NotNil(t, service)
	assert.NotNil(t, service.logger)
	assert.NotNil(t, service.VoteRepository)
}

func TestTogglePlayerVote(t *testing.T) {
	tests := []struct {
		name           string
		playerId       uint
		removed        bool
		repoError      error
		expectedAction string
		expectedKind   apperrors.Kind
		expectedError  string
	}{
		{name: "added", playerId: 3, expectedAction: dto.VoteActionAdded},
		{name: "removed", playerId: 3, removed: true, expectedAction: dto.VoteActionRemoved},
		{name: "missing id", playerId: 0, expectedKind: apperrors.KindValidation, expectedError: messages.PlayerIdRequired},
		{name: "unknown player", playerId: 3, repoError: voterepo.ErrPlayerNotFound, expectedKind: apperrors.KindNotFound, expectedError: messages.PlayerNotFound},
		{name: "database error", playerId: 3, repoError: errors.New(internaltestutil.DatabaseError), expectedKind: apperrors.KindInternal, expectedError: internaltestutil.DatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockVoteRepo, _ := setupTestService()

			if tt.playerId != 0 {
				mockVoteRepo.On("TogglePlayerVote", timerCtx, tt.playerId, ipHash).Return(tt.removed, tt.repoError)
			}

			result, err := service.TogglePlayerVote(context.Background(), &dto.PlayerVoteRequest{PlayerID: tt.playerId}, ipHash)
			if tt.expectedError != "" {
				assert.Nil(t, result)
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, &dto.PlayerVoteResult{Success: true, Action: tt.expectedAction}, result)
			}

			testutil.VerifyAllMocks(t, mockVoteRepo)
		})
	}
}

func TestCastReportVote(t *testing.T) {
	tests := []struct {
		name          string
		request       *dto.ReportVoteRequest
		callsRepo     bool
		repoError     error
		expectedKind  apperrors.Kind
		expectedError string
	}{
		{name: "up", request: &dto.ReportVoteRequest{ReportID: 5, VoteType: "up"}, callsRepo: true},
		{name: "down", request: &dto.ReportVoteRequest{ReportID: 5, VoteType: "down"}, callsRepo: true},
		{name: "invalid type", request: &dto.ReportVoteRequest{ReportID: 5, VoteType: "sideways"}, expectedKind: apperrors.KindValidation, expectedError: messages.InvalidVoteType},
		{name: "uppercase type", request: &dto.ReportVoteRequest{ReportID: 5, VoteType: "UP"}, expectedKind: apperrors.KindValidation, expectedError: messages.InvalidVoteType},
		{name: "missing id", request: &dto.ReportVoteRequest{VoteType: "up"}, expectedKind: apperrors.KindValidation, expectedError: messages.ReportIdRequired},
		{name: "already voted", request: &dto.ReportVoteRequest{ReportID: 5, VoteType: "down"}, callsRepo: true, repoError: voterepo.ErrAlreadyVoted, expectedKind: apperrors.KindConflict, expectedError: messages.AlreadyVoted},
		{name: "unknown report", request: &dto.ReportVoteRequest{ReportID: 5, VoteType: "up"}, callsRepo: true, repoError: voterepo.ErrReportNotFound, expectedKind: apperrors.KindNotFound, expectedError: messages.ReportNotFound},
		{name: "database error", request: &dto.ReportVoteRequest{ReportID: 5, VoteType: "up"}, callsRepo: true, repoError: errors.New(internaltestutil.DatabaseError), expectedKind: apperrors.KindInternal, expectedError: internaltestutil.DatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockVoteRepo, _ := setupTestService()

			if tt.callsRepo {
				mockVoteRepo.On("CastReportVote", timerCtx, tt.request.ReportID, ipHash, models.VoteType(tt.request.VoteType)).Return(tt.repoError)
			}

			err := service.CastReportVote(context.Background(), tt.request, ipHash)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			testutil.VerifyAllMocks(t, mockVoteRepo)
			if !tt.callsRepo {
				mockVoteRepo.AssertNotCalled(t, "CastReportVote", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestVoteMetrics(t *testing.T) {
	service, mockVoteRepo, m := setupTestService()
	mockVoteRepo.On("TogglePlayerVote", timerCtx, uint(1), ipHash).Return(false, nil)
	mockVoteRepo.On("CastReportVote", timerCtx, uint(2), ipHash, models.VoteUp).Return(voterepo.ErrAlreadyVoted)

	_, err := service.TogglePlayerVote(context.Background(), &dto.PlayerVoteRequest{PlayerID: 1}, ipHash)
	require.NoError(t, err)
	_ = service.CastReportVote(context.Background(), &dto.ReportVoteRequest{ReportID: 2, VoteType: "up"}, ipHash)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	assert.Contains(t, body, `draftroom_votes_total{kind="player",outcome="added"} 1`)
	assert.Contains(t, body, `draftroom_votes_total{kind="report",outcome="duplicate"} 1`)
}
