// Package scheduler provides background maintenance for the medical report
// API. It runs the export retention cleanup on a daily cron schedule and
// monitors that the export directory stays writable, using dependency
// injection so jobs can be tested without real timers.
package scheduler

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clinalyze/medreport-api/interfaces"
	"github.com/clinalyze/medreport-api/logging"
	"github.com/go-co-op/gocron"
)

// Compile-time check to ensure Scheduler implements the Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

// Scheduler handles export retention and health monitoring using dependency
// injection
type Scheduler struct {
	exporter  interfaces.Exporter
	scheduler *gocron.Scheduler
	stopCh    chan struct{}
}

// NewScheduler creates a new scheduler instance with injected dependencies
func NewScheduler(exporter interfaces.Exporter) *Scheduler {
	return &Scheduler{
		exporter:  exporter,
		scheduler: gocron.NewScheduler(time.Local),
		stopCh:    make(chan struct{}),
	}
}

// Start runs an initial cleanup, schedules the daily retention job and
// starts health monitoring
func (s *Scheduler) Start() error {
	// Initial cleanup so a long-stopped instance catches up immediately
	if _, err := s.exporter.Cleanup(time.Now()); err != nil {
		logging.Error("Failed to perform initial export cleanup", "error", err)
		return fmt.Errorf("initial export cleanup failed: %w", err)
	}

	// Schedule cleanup at 06:00 daily
	_, err := s.scheduler.Every(1).Days().At("06:00").Do(func() {
		if _, err := s.exporter.Cleanup(time.Now()); err != nil {
			logging.Error("Failed to clean up export artifacts", "error", err)
		}
	})

	if err != nil {
		logging.Error("Failed to schedule export cleanup", "error", err)
		return fmt.Errorf("failed to schedule export cleanup: %w", err)
	}

	s.scheduler.StartAsync()

	s.startHealthMonitoring()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	close(s.stopCh)
	s.scheduler.Stop()
}

// startHealthMonitoring periodically verifies the export directory is still
// writable so export failures surface before a user hits them
func (s *Scheduler) startHealthMonitoring() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := checkWritable(s.exporter.Dir()); err != nil {
					logging.Warn("Export directory is not writable", "dir", s.exporter.Dir(), "error", err)
				}
			case <-s.stopCh:
				return
			}
		}
	}()
}

// checkWritable probes a directory by creating and removing a marker file.
func checkWritable(dir string) error {
	probe := filepath.Join(dir, ".writecheck")
	if err := os.WriteFile(probe, nil, 0640); err != nil {
		return err
	}
	return os.Remove(probe)
}
