package modules

import (
	"draftroom/api/handlers"
	reportservice "draftroom/api/services/report"
)

func initializeReportHandler(deps *ModuleDependencies, services *sharedServices) *handlers.ReportHandler {
	reportDeps := &reportservice.ReportServiceDeps{
		DB:      deps.DB,
		Gate:    deps.Gate,
		Logger:  deps.Logger.Named("report"),
		Metrics: deps.Metrics,
	}

	reportService := reportservice.NewReportService(reportDeps)

	reportHandlerDeps := &handlers.ReportHandlerDependencies{
		Logger:        deps.Logger.Named("report"),
		ReportService: reportService,
		VoteService:   services.vote,
	}

	return handlers.NewReportHandler(reportHandlerDeps)
}
