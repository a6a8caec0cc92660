package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron    *cron.Cron
	monitor *FreshnessMonitor
	logger  *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(monitor *FreshnessMonitor, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:    cron.New(),
		monitor: monitor,
		logger:  logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs(spec string, staleAfter time.Duration) error {
	cm.logger.Println("Setting up cron jobs...")

	_, err := cm.cron.AddFunc(spec, func() {
		cm.logger.Println("🕐 Running price freshness check...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := cm.monitor.RefreshCoverageStats(ctx, staleAfter); err != nil {
			cm.logger.Printf("❌ Freshness check failed: %v", err)
			return
		}

		cm.logger.Println("✅ Price freshness check completed")
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Printf("  - %s: price freshness check (stale after %v)", spec, staleAfter)

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}

// GetMonitor returns the freshness monitor (for manual triggers)
func (cm *CronManager) GetMonitor() *FreshnessMonitor {
	return cm.monitor
}
