package models

import "time"

// ExpertReport is the curated evaluation of a player, one per player.
type ExpertReport struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	PlayerID   uint    `gorm:"not null;uniqueIndex:idx_expert_reports_player" json:"player_id"`
	Summary    *string `gorm:"type:text" json:"summary"`
	Strengths  *string `gorm:"type:text" json:"strengths"`
	Weaknesses *string `gorm:"type:text" json:"weaknesses"`
	SchemeFit  *string `gorm:"type:text" json:"scheme_fit"`
	NflComp    *string `gorm:"type:varchar(150)" json:"nfl_comp"`
	Floor      *string `gorm:"type:varchar(150)" json:"floor"`
	Ceiling    *string `gorm:"type:varchar(150)" json:"ceiling"`
	Risk       *string `gorm:"type:varchar(50)" json:"risk"`

	UpdatedAt time.Time `json:"updated_at"`

	Player Player `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (ExpertReport) TableName() string {
	return "expert_reports"
}
