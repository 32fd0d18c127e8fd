package voteservice

import (
	"draftroom/api/services/testutil"
	"draftroom/pkg/logger"
	"draftroom/pkg/metrics"
)

// Helper to initialize the mocks.
func setupTestService() (*VoteService, *testutil.MockVoteRepository, *metrics.Metrics) {
	mockVoteRepo := new(testutil.MockVoteRepository)
	m := metrics.New()

	service := &VoteService{
		logger:         logger.Nop(),
		metrics:        m,
		VoteRepository: mockVoteRepo,
	}

	return service, mockVoteRepo, m
}
