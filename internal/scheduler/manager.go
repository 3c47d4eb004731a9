// Package scheduler runs periodic housekeeping jobs on a cron schedule.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// TempCleaner removes abandoned temporary artifacts.
type TempCleaner interface {
	CleanupTemp(maxAge time.Duration) (int, error)
}

// CleanupManager periodically clears temporary files left by interrupted
// artifact writes.
type CleanupManager struct {
	cron    *cron.Cron
	entry   cron.EntryID
	cleaner TempCleaner
	maxAge  time.Duration
	logger  *zap.Logger
	mu      sync.Mutex
	running bool
}

// NewCleanupManager validates schedule (standard five-field cron syntax) and
// registers the cleanup job.
func NewCleanupManager(cleaner TempCleaner, schedule string, maxAge time.Duration, logger *zap.Logger) (*CleanupManager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := ValidateCronExpression(schedule); err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", schedule, err)
	}

	m := &CleanupManager{
		cron:    cron.New(),
		cleaner: cleaner,
		maxAge:  maxAge,
		logger:  logger,
	}
	entry, err := m.cron.AddFunc(schedule, func() { m.RunOnce() })
	if err != nil {
		return nil, fmt.Errorf("failed to add cron job: %w", err)
	}
	m.entry = entry
	return m, nil
}

// Start starts the cron scheduler
func (m *CleanupManager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return fmt.Errorf("cleanup manager already running")
	}
	m.running = true
	m.logger.Info("Starting cleanup manager", zap.Duration("max_age", m.maxAge))
	m.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (m *CleanupManager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return
	}
	m.logger.Info("Stopping cleanup manager")
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.running = false
}

// RunOnce performs a single cleanup pass.
func (m *CleanupManager) RunOnce() int {
	removed, err := m.cleaner.CleanupTemp(m.maxAge)
	if err != nil {
		m.logger.Error("Temp cleanup failed", zap.Error(err))
		return removed
	}
	if removed > 0 {
		m.logger.Info("Removed stale temp files", zap.Int("count", removed))
	}
	return removed
}

// NextRun reports when the job fires next. It is zero until Start.
func (m *CleanupManager) NextRun() time.Time {
	return m.cron.Entry(m.entry).Next
}

// ValidateCronExpression validates a cron expression
func ValidateCronExpression(expr string) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	_, err := parser.Parse(expr)
	return err
}
