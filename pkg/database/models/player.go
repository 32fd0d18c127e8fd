package models

import "time"

// Player is a ranked prospect on the board.
type Player struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Name       string   `gorm:"type:varchar(150);not null" json:"name"`
	Slug       string   `gorm:"type:varchar(160);not null;uniqueIndex:idx_players_slug" json:"slug"`
	Position   string   `gorm:"type:varchar(10)" json:"position"`
	School     string   `gorm:"type:varchar(100)" json:"school"`
	Height     *string  `gorm:"type:varchar(10)" json:"height"`
	Weight     *int     `json:"weight"`
	Rank       int      `gorm:"not null;default:0;index:idx_players_rank" json:"rank"`
	PffGrade   *float64 `json:"pff_grade"`
	ScoutGrade *float64 `json:"scout_grade"`
	SchoolLogo *string  `gorm:"type:varchar(255)" json:"school_logo"`

	CreatedAt time.Time `json:"created_at"`
}

func (Player) TableName() string {
	return "players"
}

// PlayerVote is the toggle vote of one identity on one player.
type PlayerVote struct {
	ID       uint   `gorm:"primaryKey"`
	PlayerID uint   `gorm:"not null;uniqueIndex:idx_player_votes_player_ip"`
	IPHash   string `gorm:"column:ip_hash;type:varchar(64);not null;uniqueIndex:idx_player_votes_player_ip"`

	CreatedAt time.Time

	Player Player `gorm:"constraint:OnDelete:CASCADE"`
}

func (PlayerVote) TableName() string {
	return "player_votes"
}
