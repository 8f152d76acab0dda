package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ErrNoSchedule is returned when the pruner is started without a schedule
var ErrNoSchedule = errors.New("no cleanup schedule configured")

// Cleaner deletes records older than a given age
type Cleaner interface {
	CleanupOld(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Pruner periodically removes conversion records past their retention
type Pruner struct {
	cleaner   Cleaner
	retention time.Duration
	schedule  string
	cron      *cron.Cron
	log       logrus.FieldLogger
}

// NewPruner creates a pruner that runs on a five field cron schedule
func NewPruner(cleaner Cleaner, retention time.Duration, schedule string, log logrus.FieldLogger) *Pruner {
	// Create a new cron scheduler with seconds disabled
	c := cron.New(cron.WithParser(cron.NewParser(
		cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
	)))

	return &Pruner{
		cleaner:   cleaner,
		retention: retention,
		schedule:  schedule,
		cron:      c,
		log:       log,
	}
}

// RunOnce deletes everything older than the retention period
func (p *Pruner) RunOnce(ctx context.Context) (int64, error) {
	deleted, err := p.cleaner.CleanupOld(ctx, p.retention)
	if err != nil {
		return 0, fmt.Errorf("failed to prune conversion history: %w", err)
	}
	return deleted, nil
}

// Start schedules pruning and blocks until ctx is cancelled
func (p *Pruner) Start(ctx context.Context) error {
	if p.schedule == "" {
		return ErrNoSchedule
	}

	_, err := p.cron.AddFunc(p.schedule, func() {
		deleted, err := p.RunOnce(ctx)
		if err != nil {
			p.log.WithError(err).Error("Scheduled history cleanup failed")
			return
		}
		p.log.WithField("deleted", deleted).Info("Pruned conversion history")
	})
	if err != nil {
		return fmt.Errorf("failed to schedule history cleanup %q: %w", p.schedule, err)
	}

	p.cron.Start()
	p.log.WithFields(logrus.Fields{
		"schedule":  p.schedule,
		"retention": p.retention,
	}).Info("History pruner started")

	<-ctx.Done()
	p.log.Info("Stopping history pruner...")
	<-p.cron.Stop().Done()

	return nil
}
