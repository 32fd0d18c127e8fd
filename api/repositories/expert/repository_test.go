package repositories

import (
	"context"
	"draftroom/api/repositories/testutil"
	"draftroom/pkg/database/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func TestNewExpertReportRepository(t *testing.T) {
	assert.NotNil(t, NewExpertReportRepository(&gorm.DB{}))
}

func TestGetByPlayer(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewExpertReportRepository(db)
	seeded := testutil.SeedPlayers(t, db)
	ctx := context.Background()

	t.Run("missing", func(t *testing.T) {
		report, err := repository.GetByPlayer(ctx, seeded["will-johnson"].ID)
		assert.NoError(t, err)
		assert.Nil(t, report)
	})

	t.Run("found", func(t *testing.T) {
		require.NoError(t, repository.Upsert(ctx, &models.ExpertReport{
			PlayerID: seeded["abdul-carter"].ID,
			Summary:  strPtr("Explosive edge rusher."),
			Risk:     strPtr("Low"),
		}))

		report, err := repository.GetByPlayer(ctx, seeded["abdul-carter"].ID)
		require.NoError(t, err)
		require.NotNil(t, report)
		assert.Equal(t, "Explosive edge rusher.", *report.Summary)
		assert.Equal(t, "Low", *report.Risk)
		assert.Nil(t, report.NflComp)
	})
}

func TestUpsert(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewExpertReportRepository(db)
	seeded := testutil.SeedPlayers(t, db)
	playerId := seeded["travis-hunter-jr"].ID
	ctx := context.Background()

	require.NoError(t, repository.Upsert(ctx, &models.ExpertReport{
		PlayerID:  playerId,
		Summary:   strPtr("Two way star."),
		Strengths: strPtr("Ball skills"),
	}))

	// Replacing the content clears the omitted fields.
	require.NoError(t, repository.Upsert(ctx, &models.ExpertReport{
		PlayerID: playerId,
		Summary:  strPtr("Corner first."),
		NflComp:  strPtr("Champ Bailey"),
	}))

	var reports []models.ExpertReport
	require.NoError(t, db.Where("player_id = ?", playerId).Find(&reports).Error)
	require.Len(t, reports, 1)
	assert.Equal(t, "Corner first.", *reports[0].Summary)
	assert.Equal(t, "Champ Bailey", *reports[0].NflComp)
	assert.Nil(t, reports[0].Strengths)
}

func TestUpsertUnknownPlayer(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewExpertReportRepository(db)

	err := repository.Upsert(context.Background(), &models.ExpertReport{PlayerID: 9999, Summary: strPtr("x")})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "couldn't save the expert report")
}
