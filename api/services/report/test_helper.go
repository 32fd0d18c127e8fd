package reportservice

import (
	"draftroom/api/dto"
	"draftroom/api/services/testutil"
	internaltestutil "draftroom/internal/testutil"
	"draftroom/pkg/logger"
	"draftroom/pkg/metrics"
	"draftroom/pkg/moderation"
	"strings"
	"time"
)

var testNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

// Helper to initialize the mocks.
func setupTestService() (
	*ReportService,
	*testutil.MockPlayerRepository,
	*testutil.MockReportRepository,
	*metrics.Metrics,
) {
	mockPlayerRepo := new(testutil.MockPlayerRepository)
	mockReportRepo := new(testutil.MockReportRepository)
	clock := internaltestutil.NewFakeClock(testNow)
	m := metrics.New()

	service := &ReportService{
		gate:             moderation.NewGate(moderation.MustDefaultProfanityFilter(), moderation.WithClock(clock.Now)),
		logger:           logger.Nop(),
		metrics:          m,
		PlayerRepository: mockPlayerRepo,
		ReportRepository: mockReportRepo,
	}

	return service, mockPlayerRepo, mockReportRepo, m
}

// Valid submission loaded five seconds before the test clock.
func validRequest() *dto.SubmitReportRequest {
	return &dto.SubmitReportRequest{
		PlayerID:    7,
		DisplayName: "  Sam  ",
		Email:       "sam@example.com",
		Content:     strings.Repeat("Good burst. ", 5),
		SubmitTime:  testNow.Add(-5 * time.Second).UnixMilli(),
	}
}
