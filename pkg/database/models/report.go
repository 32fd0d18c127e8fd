package models

import "time"

// Direction of a vote on a community report.
type VoteType string

const (
	VoteUp   VoteType = "up"
	VoteDown VoteType = "down"
)

// Valid reports if the vote type is one of the accepted directions.
func (v VoteType) Valid() bool {
	return v == VoteUp || v == VoteDown
}

// CommunityReport is a free text evaluation submitted by a visitor.
// Score always equals Upvotes - Downvotes.
type CommunityReport struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	PlayerID    uint   `gorm:"not null;index:idx_community_reports_player" json:"player_id"`
	DisplayName string `gorm:"type:varchar(100);not null" json:"display_name"`
	Email       string `gorm:"type:varchar(254);not null" json:"-"`
	Content     string `gorm:"type:text;not null" json:"content"`
	IPHash      string `gorm:"column:ip_hash;type:varchar(64);not null" json:"-"`
	Score       int    `gorm:"not null;default:0" json:"score"`
	Upvotes     int    `gorm:"not null;default:0" json:"upvotes"`
	Downvotes   int    `gorm:"not null;default:0" json:"downvotes"`

	CreatedAt time.Time `json:"created_at"`

	Player Player `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (CommunityReport) TableName() string {
	return "community_reports"
}

// ReportVote is the single, final vote of one identity on one report.
type ReportVote struct {
	ID       uint     `gorm:"primaryKey"`
	ReportID uint     `gorm:"not null;uniqueIndex:idx_votes_report_ip"`
	IPHash   string   `gorm:"column:ip_hash;type:varchar(64);not null;uniqueIndex:idx_votes_report_ip"`
	VoteType VoteType `gorm:"type:varchar(4);not null"`

	CreatedAt time.Time

	Report CommunityReport `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}

func (ReportVote) TableName() string {
	return "votes"
}
