package moderation

import (
	"draftroom/pkg/config"
	"fmt"
)

// NewGateFromConfig builds the gate with the configured blocklist and fill time.
// Without a blocklist file the default word list is used.
func NewGateFromConfig(cfg config.ModerationConfiguration) (*Gate, error) {
	words := DefaultBlocklist
	if cfg.BlocklistFile != "" {
		loaded, err := LoadBlocklist(cfg.BlocklistFile)
		if err != nil {
			return nil, err
		}
		words = loaded
	}

	filter, err := NewProfanityFilter(words)
	if err != nil {
		return nil, fmt.Errorf("couldn't build the profanity filter: %w", err)
	}

	return NewGate(filter, WithMinFillTime(cfg.MinFillTime)), nil
}
