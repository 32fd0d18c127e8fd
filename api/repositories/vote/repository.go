package repositories

import (
	"context"
	"draftroom/pkg/database/models"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAlreadyVoted   = errors.New("already voted on this report")
	ErrPlayerNotFound = errors.New("player not found")
	ErrReportNotFound = errors.New("report not found")
)

// VoteRepository is the public interface for the vote ledger storage.
type VoteRepository interface {
	TogglePlayerVote(ctx context.Context, playerId uint, ipHash string) (removed bool, err error)
	CastReportVote(ctx context.Context, reportId uint, ipHash string, voteType models.VoteType) error
}

// voteRepository repository structure.
type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a vote repository.
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// TogglePlayerVote removes the vote of the identity if it exists, otherwise records it.
// Returns true when a vote was removed.
func (vr *voteRepository) TogglePlayerVote(ctx context.Context, playerId uint, ipHash string) (bool, error) {
	removed := false

	err := vr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("player_id = ? AND ip_hash = ?", playerId, ipHash).Delete(&models.PlayerVote{})
		if result.Error != nil {
			return fmt.Errorf("couldn't remove the player vote: %w", result.Error)
		}

		if result.RowsAffected > 0 {
			removed = true
			return nil
		}

		var count int64
		if err := tx.Model(&models.Player{}).Where("id = ?", playerId).Count(&count).Error; err != nil {
			return fmt.Errorf("couldn't check the player: %w", err)
		}
		if count == 0 {
			return ErrPlayerNotFound
		}

		// A concurrent toggle may have inserted the same pair, the unique index keeps one row.
		vote := &models.PlayerVote{PlayerID: playerId, IPHash: ipHash}
		err := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(vote).Error
		if err != nil {
			return fmt.Errorf("couldn't add the player vote: %w", err)
		}

		return nil
	})

	return removed, err
}

// CastReportVote records a final vote and updates the report counters in the same transaction.
func (vr *voteRepository) CastReportVote(ctx context.Context, reportId uint, ipHash string, voteType models.VoteType) error {
	return vr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.CommunityReport{}).Where("id = ?", reportId).Count(&count).Error; err != nil {
			return fmt.Errorf("couldn't check the report: %w", err)
		}
		if count == 0 {
			return ErrReportNotFound
		}

		vote := &models.ReportVote{ReportID: reportId, IPHash: ipHash, VoteType: voteType}
		result := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(vote)
		if result.Error != nil {
			return fmt.Errorf("couldn't record the vote: %w", result.Error)
		}

		// The unique index on (report_id, ip_hash) rejected the insert.
		if result.RowsAffected == 0 {
			return ErrAlreadyVoted
		}

		result = tx.Model(&models.CommunityReport{}).
			Where("id = ?", reportId).
			UpdateColumns(counterUpdate(voteType))
		if result.Error != nil {
			return fmt.Errorf("couldn't update the report score: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrReportNotFound
		}

		return nil
	})
}

// counterUpdate is the counter change for one vote.
func counterUpdate(voteType models.VoteType) map[string]any {
	if voteType == models.VoteUp {
		return map[string]any{
			"upvotes": gorm.Expr("upvotes + 1"),
			"score":   gorm.Expr("score + 1"),
		}
	}

	return map[string]any{
		"downvotes": gorm.Expr("downvotes + 1"),
		"score":     gorm.Expr("score - 1"),
	}
}
