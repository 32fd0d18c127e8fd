package repositories

import (
	"context"
	"draftroom/api/filters"
	"draftroom/api/repositories/testutil"
	"draftroom/pkg/database/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewReportRepository(t *testing.T) {
	assert.NotNil(t, NewReportRepository(&gorm.DB{}))
}

func TestCreate(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewReportRepository(db)
	seeded := testutil.SeedPlayers(t, db)

	report := &models.CommunityReport{
		PlayerID:    seeded["will-johnson"].ID,
		DisplayName: "Sam",
		Email:       "sam@example.com",
		Content:     "Smooth pedal, patient at the line and physical at the catch point on vertical routes.",
		IPHash:      "MTAuMC4wLjE=",
	}

	require.NoError(t, repository.Create(context.Background(), report))
	assert.NotZero(t, report.ID)

	var stored models.CommunityReport
	require.NoError(t, db.First(&stored, report.ID).Error)
	assert.Equal(t, 0, stored.Score)
	assert.Equal(t, 0, stored.Upvotes)
	assert.Equal(t, 0, stored.Downvotes)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestCreateUnknownPlayer(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewReportRepository(db)

	err := repository.Create(context.Background(), &models.CommunityReport{
		PlayerID:    9999,
		DisplayName: "Sam",
		Email:       "sam@example.com",
		Content:     "content",
		IPHash:      "x",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "couldn't create the report")
}

func TestListByPlayer(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewReportRepository(db)
	seeded := testutil.SeedPlayers(t, db)
	playerId := seeded["abdul-carter"].ID

	// popular: score 5, 7 votes. disputed: score 0, 10 votes. recent: score 1, 1 vote.
	popular := testutil.SeedReport(t, db, playerId, 6, 1, testutil.FixedDate)
	disputed := testutil.SeedReport(t, db, playerId, 5, 5, testutil.FixedDate.Add(time.Hour))
	recent := testutil.SeedReport(t, db, playerId, 1, 0, testutil.FixedDate.Add(2*time.Hour))

	// Belongs to another player.
	testutil.SeedReport(t, db, seeded["will-johnson"].ID, 50, 0, testutil.FixedDate)

	tests := []struct {
		name     string
		sort     filters.ReportSort
		expected []uint
	}{
		{name: "top", sort: filters.ReportSortTop, expected: []uint{popular.ID, recent.ID, disputed.ID}},
		{name: "new", sort: filters.ReportSortNew, expected: []uint{recent.ID, disputed.ID, popular.ID}},
		{name: "controversial", sort: filters.ReportSortControversial, expected: []uint{disputed.ID, popular.ID, recent.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports, err := repository.ListByPlayer(context.Background(), playerId, tt.sort)
			require.NoError(t, err)

			ids := make([]uint, 0, len(reports))
			for _, r := range reports {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}

	empty, err := repository.ListByPlayer(context.Background(), seeded["travis-hunter-jr"].ID, filters.ReportSortTop)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestReconcileScores(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewReportRepository(db)
	seeded := testutil.SeedPlayers(t, db)
	playerId := seeded["abdul-carter"].ID

	consistent := testutil.SeedReport(t, db, playerId, 1, 1, testutil.FixedDate)
	drifted := testutil.SeedReport(t, db, playerId, 4, 0, testutil.FixedDate)

	votes := []*models.ReportVote{
		{ReportID: consistent.ID, IPHash: "a", VoteType: models.VoteUp},
		{ReportID: consistent.ID, IPHash: "b", VoteType: models.VoteDown},
		{ReportID: drifted.ID, IPHash: "a", VoteType: models.VoteUp},
		{ReportID: drifted.ID, IPHash: "b", VoteType: models.VoteDown},
		{ReportID: drifted.ID, IPHash: "c", VoteType: models.VoteDown},
	}
	require.NoError(t, db.Omit("Report").Create(&votes).Error)

	repaired, err := repository.ReconcileScores(context.Background())
	require.NoError(t, err)
	require.Len(t, repaired, 1)
	assert.Equal(t, drifted.ID, repaired[0].ID)
	assert.Equal(t, 1, repaired[0].RecordedUp)
	assert.Equal(t, 2, repaired[0].RecordedDown)

	var stored models.CommunityReport
	require.NoError(t, db.First(&stored, drifted.ID).Error)
	assert.Equal(t, 1, stored.Upvotes)
	assert.Equal(t, 2, stored.Downvotes)
	assert.Equal(t, -1, stored.Score)

	// A second run has nothing to repair.
	repaired, err = repository.ReconcileScores(context.Background())
	require.NoError(t, err)
	assert.Empty(t, repaired)
}

func TestReportTallyDrifted(t *testing.T) {
	tests := []struct {
		name     string
		tally    ReportTally
		expected bool
	}{
		{name: "consistent", tally: ReportTally{Upvotes: 2, Downvotes: 1, Score: 1, RecordedUp: 2, RecordedDown: 1}},
		{name: "upvotes", tally: ReportTally{Upvotes: 3, Downvotes: 1, Score: 2, RecordedUp: 2, RecordedDown: 1}, expected: true},
		{name: "score", tally: ReportTally{Upvotes: 2, Downvotes: 1, Score: 5, RecordedUp: 2, RecordedDown: 1}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tally.Drifted())
		})
	}
}
