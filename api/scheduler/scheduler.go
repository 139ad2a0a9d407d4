package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/brigadapm/ocorrencias-api/databases"
)

// Scheduler runs the nightly retention sweep. The same sweep runs on
// every list read, the cron job only guarantees expired reports leave
// the database even when nobody opens the list for a day.
type Scheduler struct {
	cron *cron.Cron
	RDB  databases.ReportDatabase
}

// NewScheduler creates a new scheduler instance
func NewScheduler(rDB databases.ReportDatabase) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		RDB:  rDB,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Purge expired occurrences daily at 03:30 UTC
	_, err := s.cron.AddFunc("30 3 * * *", s.runRetentionSweep)
	if err != nil {
		zap.S().Errorw("failed to register retention sweep job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Retention scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Retention scheduler stopped")
}

func (s *Scheduler) runRetentionSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	zap.S().Info("Running nightly retention sweep")
	deleted, err := s.RDB.PurgeExpired(ctx, time.Now())
	if err != nil {
		zap.S().Errorw("nightly retention sweep failed", "error", err)
		return
	}
	zap.S().Infow("nightly retention sweep finished", "deleted", deleted)
}
