package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/logger"
)

// Scheduler runs the periodic master report export.
type Scheduler struct {
	cron       *cron.Cron
	spec       string
	ctx        context.Context
	cancel     context.CancelFunc
	reportFunc func(ctx context.Context) error
}

// New creates a scheduler for a standard five-field cron spec evaluated in UTC.
func New(spec string) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		spec:   spec,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Scheduler) SetReportFunction(f func(ctx context.Context) error) {
	s.reportFunc = f
}

// Start registers the report job. Job failures are logged and the schedule
// keeps running.
func (s *Scheduler) Start() error {
	if s.reportFunc == nil {
		logger.Warn().Msg("report function not set, scheduler idle")
		return nil
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		logger.Info().Str("cron", s.spec).Msg("scheduled report export triggered")
		if err := s.reportFunc(s.ctx); err != nil {
			logger.Error().Err(err).Msg("scheduled report export failed")
		}
	})
	if err != nil {
		return fmt.Errorf("add report job %q: %w", s.spec, err)
	}

	s.cron.Start()
	logger.Info().Str("cron", s.spec).Msg("scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	logger.Info().Msg("scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
