package repositories

import (
	"context"
	"draftroom/pkg/database/models"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns refreshed when an imported player already exists.
var importedColumns = []string{"name", "position", "school", "height", "weight", "rank", "school_logo"}

// PlayerWithScore is a player with the live count of community votes.
type PlayerWithScore struct {
	models.Player
	CommunityScore int64 `gorm:"column:community_score" json:"community_score"`
}

// PlayerRepository is the public interface for accessing the player repository.
type PlayerRepository interface {
	ListWithCommunityScore(ctx context.Context) ([]*PlayerWithScore, error)
	GetBySlug(ctx context.Context, slug string) (*models.Player, error)
	Exists(ctx context.Context, playerId uint) (bool, error)
	UpsertBySlug(ctx context.Context, players []*models.Player) error
	DeleteAll(ctx context.Context) error
}

// playerRepository repository structure.
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a player repository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// ListWithCommunityScore returns every player ordered by rank, counting the votes on each read.
func (pr *playerRepository) ListWithCommunityScore(ctx context.Context) ([]*PlayerWithScore, error) {
	players := []*PlayerWithScore{}

	err := pr.db.WithContext(ctx).Raw(`
		SELECT
			p.*,
			COUNT(pv.id) AS community_score
		FROM players p
		LEFT JOIN player_votes pv ON pv.player_id = p.id
		GROUP BY p.id
		ORDER BY p.rank ASC, p.id ASC
	`).Scan(&players).Error
	if err != nil {
		return nil, fmt.Errorf("couldn't list the players: %w", err)
	}

	return players, nil
}

// GetBySlug returns the player or nil when no player has the slug.
func (pr *playerRepository) GetBySlug(ctx context.Context, slug string) (*models.Player, error) {
	var player models.Player

	err := pr.db.WithContext(ctx).Where("slug = ?", slug).First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("couldn't get the player by the slug: %w", err)
	}

	return &player, nil
}

// Exists checks if a player with the ID exists.
func (pr *playerRepository) Exists(ctx context.Context, playerId uint) (bool, error) {
	var count int64

	err := pr.db.WithContext(ctx).Model(&models.Player{}).Where("id = ?", playerId).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("couldn't check the player: %w", err)
	}

	return count > 0, nil
}

// UpsertBySlug inserts the players, updating the catalog fields of existing slugs.
func (pr *playerRepository) UpsertBySlug(ctx context.Context, players []*models.Player) error {
	if len(players) == 0 {
		return nil
	}

	err := pr.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns(importedColumns),
		}).
		CreateInBatches(players, 100).Error
	if err != nil {
		return fmt.Errorf("couldn't upsert the players: %w", err)
	}

	return nil
}

// DeleteAll removes the catalog and everything attached to it.
func (pr *playerRepository) DeleteAll(ctx context.Context) error {
	return pr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Children first, sqlite may run without cascades.
		for _, model := range []any{
			&models.ReportVote{},
			&models.PlayerVote{},
			&models.CommunityReport{},
			&models.ExpertReport{},
			&models.Player{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("couldn't clear the catalog: %w", err)
			}
		}
		return nil
	})
}
