package testutil

import (
	"draftroom/pkg/database/models"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var FixedDate = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// SeedPlayers inserts three players with ranks 1..3 and returns them by slug.
func SeedPlayers(t *testing.T, db *gorm.DB) map[string]*models.Player {
	t.Helper()

	players := []*models.Player{
		{Name: "Travis Hunter Jr.", Slug: "travis-hunter-jr", Position: "CB", School: "Colorado", Height: strPtr("6-1"), Weight: intPtr(185), Rank: 2, CreatedAt: FixedDate},
		{Name: "Abdul Carter", Slug: "abdul-carter", Position: "EDGE", School: "Penn State", Height: strPtr("6-3"), Weight: intPtr(250), Rank: 1, CreatedAt: FixedDate},
		{Name: "Will Johnson", Slug: "will-johnson", Position: "CB", School: "Michigan", Rank: 3, CreatedAt: FixedDate},
	}

	if err := db.Omit(clause.Associations).Create(&players).Error; err != nil {
		t.Fatalf("Failed to seed players: %v", err)
	}

	bySlug := make(map[string]*models.Player, len(players))
	for _, p := range players {
		bySlug[p.Slug] = p
	}
	return bySlug
}

// SeedReport inserts a report with the given counters.
func SeedReport(t *testing.T, db *gorm.DB, playerId uint, up, down int, createdAt time.Time) *models.CommunityReport {
	t.Helper()

	report := &models.CommunityReport{
		PlayerID:    playerId,
		DisplayName: "Scout",
		Email:       "scout@example.com",
		Content:     "Long levers, fluid hips and plenty of recovery speed against vertical routes.",
		IPHash:      "c2VlZA==",
		Upvotes:     up,
		Downvotes:   down,
		Score:       up - down,
		CreatedAt:   createdAt,
	}

	if err := db.Omit(clause.Associations).Create(report).Error; err != nil {
		t.Fatalf("Failed to seed report: %v", err)
	}

	return report
}
