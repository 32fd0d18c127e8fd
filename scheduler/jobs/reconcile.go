package jobs

import (
	"context"
	"draftroom/pkg/logger"
	"fmt"
	"time"
)

const reconcileTimeout = 5 * time.Minute

// ScoreReconciler repairs report counters that drifted from the vote records.
type ScoreReconciler interface {
	ReconcileScores(ctx context.Context) (int, error)
}

// ReconcileScores runs one reconciliation pass.
func ReconcileScores(reconciler ScoreReconciler, log logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
	defer cancel()

	log.Info(ctx, "starting score reconciliation")

	repaired, err := reconciler.ReconcileScores(ctx)
	if err != nil {
		log.Error(ctx, "score reconciliation failed", logger.Err(err))
		return fmt.Errorf("score reconciliation failed: %w", err)
	}

	log.Info(ctx, "finished score reconciliation", logger.Int("repaired", repaired))
	return nil
}
