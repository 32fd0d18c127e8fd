package main

import (
	reportservice "draftroom/api/services/report"
	"draftroom/pkg/database"
	"draftroom/scheduler/jobs"

	"github.com/spf13/cobra"
)

func reconcileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Recompute the report counters from the stored votes",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := commonRun()
			if err != nil {
				return err
			}
			defer database.Close(rt.db)

			service := reportservice.NewReportService(&reportservice.ReportServiceDeps{
				DB:     rt.db,
				Logger: rt.log,
			})

			return jobs.ReconcileScores(service, rt.log)
		},
	}
}
