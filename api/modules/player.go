package modules

import (
	"draftroom/api/handlers"
	playerservice "draftroom/api/services/player"
	voteservice "draftroom/api/services/vote"
)

// Services shared by more than one handler.
type sharedServices struct {
	vote *voteservice.VoteService
}

func initializeServices(deps *ModuleDependencies) *sharedServices {
	voteDeps := &voteservice.VoteServiceDeps{
		DB:      deps.DB,
		Logger:  deps.Logger.Named("vote"),
		Metrics: deps.Metrics,
	}

	return &sharedServices{
		vote: voteservice.NewVoteService(voteDeps),
	}
}

func initializePlayerHandler(deps *ModuleDependencies, services *sharedServices) *handlers.PlayerHandler {
	playerDeps := &playerservice.PlayerServiceDeps{
		DB: deps.DB,
	}

	playerService := playerservice.NewPlayerService(playerDeps)

	playerHandlerDeps := &handlers.PlayerHandlerDependencies{
		Logger:        deps.Logger.Named("player"),
		PlayerService: playerService,
		VoteService:   services.vote,
	}

	return handlers.NewPlayerHandler(playerHandlerDeps)
}
