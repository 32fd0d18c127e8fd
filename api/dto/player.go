package dto

import (
	playerrepo "draftroom/api/repositories/player"
	"draftroom/pkg/database/models"
)

// PlayerListEntry is a player on the board with its community vote count.
type PlayerListEntry = playerrepo.PlayerWithScore

// PlayerDetail is the full page of a player.
type PlayerDetail struct {
	Player           *models.Player            `json:"player"`
	ExpertReport     *models.ExpertReport      `json:"expertReport"`
	CommunityReports []*models.CommunityReport `json:"communityReports"`
}

// PlayerVoteRequest is the body of a player vote toggle.
type PlayerVoteRequest struct {
	PlayerID uint `json:"player_id"`
}

// Actions returned by the player vote toggle.
const (
	VoteActionAdded   = "added"
	VoteActionRemoved = "removed"
)

// PlayerVoteResult is the state after a player vote toggle.
type PlayerVoteResult struct {
	Success bool   `json:"success"`
	Action  string `json:"action"`
}
