package adminservice

import (
	"draftroom/api/services/testutil"
	"draftroom/pkg/logger"
)

const testPassword = "s3cret"

// Helper to initialize the mocks.
func setupTestService(password string) (
	*AdminService,
	*testutil.MockPlayerRepository,
	*testutil.MockExpertReportRepository,
) {
	mockPlayerRepo := new(testutil.MockPlayerRepository)
	mockExpertRepo := new(testutil.MockExpertReportRepository)

	service := &AdminService{
		password:               password,
		logger:                 logger.Nop(),
		PlayerRepository:       mockPlayerRepo,
		ExpertReportRepository: mockExpertRepo,
	}

	return service, mockPlayerRepo, mockExpertRepo
}
