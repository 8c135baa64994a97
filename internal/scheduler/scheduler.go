package scheduler

import (
	"fmt"

	"quotepal/internal/config"

	"github.com/robfig/cron/v3"
)

// Scheduler handles periodic execution of named recurring tasks
type Scheduler struct {
	cron   *cron.Cron
	config *config.Config
}

// NewScheduler creates a new scheduler instance
func NewScheduler(cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		config: cfg,
	}
}

// RegisterFunc registers a named function to run on the given cron spec.
// Errors from the function are logged, not propagated.
func (s *Scheduler) RegisterFunc(spec, name string, fn func() error) error {
	_, err := s.cron.AddFunc(spec, func() {
		if err := fn(); err != nil {
			s.config.Logger.Errorf("Scheduled task %s failed: %v", name, err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to register scheduled task %s: %w", name, err)
	}

	s.config.Logger.Infof("Registered scheduled task: %s (%s)", name, spec)
	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	s.config.Logger.Info("Scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.config.Logger.Info("Scheduler stopped")
}
