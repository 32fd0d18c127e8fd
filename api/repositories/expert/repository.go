package repositories

import (
	"context"
	"draftroom/pkg/database/models"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var editableColumns = []string{
	"summary", "strengths", "weaknesses", "scheme_fit",
	"nfl_comp", "floor", "ceiling", "risk", "updated_at",
}

// ExpertReportRepository is the public interface for the curated reports.
type ExpertReportRepository interface {
	GetByPlayer(ctx context.Context, playerId uint) (*models.ExpertReport, error)
	Upsert(ctx context.Context, report *models.ExpertReport) error
}

type expertReportRepository struct {
	db *gorm.DB
}

// NewExpertReportRepository creates an expert report repository.
func NewExpertReportRepository(db *gorm.DB) ExpertReportRepository {
	return &expertReportRepository{db: db}
}

// GetByPlayer returns the report of the player, nil if there is none.
func (er *expertReportRepository) GetByPlayer(ctx context.Context, playerId uint) (*models.ExpertReport, error) {
	var report models.ExpertReport

	err := er.db.WithContext(ctx).Where("player_id = ?", playerId).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("couldn't get the expert report: %w", err)
	}

	return &report, nil
}

// Upsert creates the report of the player or replaces its content.
func (er *expertReportRepository) Upsert(ctx context.Context, report *models.ExpertReport) error {
	err := er.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_id"}},
			DoUpdates: clause.AssignmentColumns(editableColumns),
		}).
		Create(report).Error
	if err != nil {
		return fmt.Errorf("couldn't save the expert report: %w", err)
	}

	return nil
}
