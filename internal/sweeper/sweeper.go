package sweeper

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type sweepable interface {
	Sweep(idle time.Duration) int
}

// Sweeper periodically drops sessions idle for longer than ttl.
type Sweeper struct {
	store  sweepable
	ttl    time.Duration
	spec   string
	cron   *cron.Cron
	logger *zap.Logger
}

func New(store sweepable, ttl time.Duration, spec string, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		store:  store,
		ttl:    ttl,
		spec:   spec,
		cron:   cron.New(),
		logger: logger.With(zap.String("component", "Sweeper")),
	}
}

// Start schedules the sweep job.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.RunOnce); err != nil {
		s.logger.Error("failed to schedule session sweep", zap.String("spec", s.spec), zap.Error(err))
		return err
	}
	s.cron.Start()
	s.logger.Info("session sweeper started", zap.String("spec", s.spec), zap.Duration("ttl", s.ttl))
	return nil
}

// Stop waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("session sweeper stopped")
}

func (s *Sweeper) RunOnce() {
	removed := s.store.Sweep(s.ttl)
	if removed > 0 {
		s.logger.Info("idle sessions removed", zap.Int("count", removed))
	}
}
