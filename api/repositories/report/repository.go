package repositories

import (
	"context"
	"draftroom/api/filters"
	"draftroom/pkg/database/models"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReportTally compares the stored counters of a report with its vote records.
type ReportTally struct {
	ID           uint `gorm:"column:id"`
	Upvotes      int  `gorm:"column:upvotes"`
	Downvotes    int  `gorm:"column:downvotes"`
	Score        int  `gorm:"column:score"`
	RecordedUp   int  `gorm:"column:recorded_up"`
	RecordedDown int  `gorm:"column:recorded_down"`
}

// Drifted reports if the counters disagree with the vote records.
func (t *ReportTally) Drifted() bool {
	return t.Upvotes != t.RecordedUp ||
		t.Downvotes != t.RecordedDown ||
		t.Score != t.RecordedUp-t.RecordedDown
}

// ReportRepository is the public interface for accessing the community reports.
type ReportRepository interface {
	Create(ctx context.Context, report *models.CommunityReport) error
	ListByPlayer(ctx context.Context, playerId uint, sort filters.ReportSort) ([]*models.CommunityReport, error)
	ReconcileScores(ctx context.Context) ([]ReportTally, error)
}

// reportRepository repository structure.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a report repository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create inserts the report, setting its ID.
func (rr *reportRepository) Create(ctx context.Context, report *models.CommunityReport) error {
	err := rr.db.WithContext(ctx).Omit(clause.Associations).Create(report).Error
	if err != nil {
		return fmt.Errorf("couldn't create the report: %w", err)
	}
	return nil
}

// ListByPlayer returns the reports of a player in the requested order.
func (rr *reportRepository) ListByPlayer(ctx context.Context, playerId uint, sort filters.ReportSort) ([]*models.CommunityReport, error) {
	reports := []*models.CommunityReport{}

	err := rr.db.WithContext(ctx).
		Where("player_id = ?", playerId).
		Order(sort.OrderClause()).
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("couldn't list the reports: %w", err)
	}

	return reports, nil
}

// ReconcileScores recomputes the counters from the vote records and fixes the rows that drifted.
// Returns the tallies of the repaired reports.
func (rr *reportRepository) ReconcileScores(ctx context.Context) ([]ReportTally, error) {
	repaired := []ReportTally{}

	err := rr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tallies []ReportTally

		err := tx.Raw(`
			SELECT
				r.id,
				r.upvotes,
				r.downvotes,
				r.score,
				COALESCE(SUM(CASE WHEN v.vote_type = 'up' THEN 1 ELSE 0 END), 0) AS recorded_up,
				COALESCE(SUM(CASE WHEN v.vote_type = 'down' THEN 1 ELSE 0 END), 0) AS recorded_down
			FROM community_reports r
			LEFT JOIN votes v ON v.report_id = r.id
			GROUP BY r.id, r.upvotes, r.downvotes, r.score
			ORDER BY r.id
		`).Scan(&tallies).Error
		if err != nil {
			return fmt.Errorf("couldn't tally the votes: %w", err)
		}

		for _, tally := range tallies {
			if !tally.Drifted() {
				continue
			}

			err := tx.Model(&models.CommunityReport{}).
				Where("id = ?", tally.ID).
				UpdateColumns(map[string]any{
					"upvotes":   tally.RecordedUp,
					"downvotes": tally.RecordedDown,
					"score":     tally.RecordedUp - tally.RecordedDown,
				}).Error
			if err != nil {
				return fmt.Errorf("couldn't repair report %d: %w", tally.ID, err)
			}

			repaired = append(repaired, tally)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return repaired, nil
}
