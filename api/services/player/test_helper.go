package playerservice

import (
	"draftroom/api/services/testutil"

	"gorm.io/gorm"
)

// Helper to initialize the mocks.
func setupTestService() (
	*PlayerService,
	*testutil.MockPlayerRepository,
	*testutil.MockReportRepository,
	*testutil.MockExpertReportRepository,
) {
	mockPlayerRepo := new(testutil.MockPlayerRepository)
	mockReportRepo := new(testutil.MockReportRepository)
	mockExpertRepo := new(testutil.MockExpertReportRepository)

	service := &PlayerService{
		db:                     new(gorm.DB),
		PlayerRepository:       mockPlayerRepo,
		ReportRepository:       mockReportRepo,
		ExpertReportRepository: mockExpertRepo,
	}

	return service, mockPlayerRepo, mockReportRepo, mockExpertRepo
}
