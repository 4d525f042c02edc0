// File: internal/jobs/connection_monitor.go
package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"page_insights_backend/internal/config"
	"page_insights_backend/internal/platform/database"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultPingTimeout = 5 * time.Second

// ConnectionMonitor periodically pings the document store and logs when the
// connection is lost or comes back.
type ConnectionMonitor struct {
	pinger        database.Pinger
	logger        *zap.Logger
	cfg           *config.Config
	cronScheduler *cron.Cron

	mu      sync.Mutex
	healthy bool
}

// NewConnectionMonitor creates a new ConnectionMonitor. The store is assumed
// reachable at construction since startup already pinged it.
func NewConnectionMonitor(pinger database.Pinger, logger *zap.Logger, cfg *config.Config) *ConnectionMonitor {
	scheduler := cron.New(
		cron.WithLogger(NewCronLogger(logger.Named("cron"))),
		cron.WithChain(cron.SkipIfStillRunning(NewCronLogger(logger.Named("cron")))),
	)

	return &ConnectionMonitor{
		pinger:        pinger,
		logger:        logger.Named("ConnectionMonitor"),
		cfg:           cfg,
		cronScheduler: scheduler,
		healthy:       true,
	}
}

// SetupAndStart schedules and starts the monitor.
func (m *ConnectionMonitor) SetupAndStart() error {
	spec := m.cfg.DBMonitorSchedule // e.g. "@every 30s"
	if spec == "" {
		m.logger.Warn("Connection monitor schedule not defined (DB_MONITOR_SCHEDULE). Monitor will not run.")
		return nil
	}

	jobID, err := m.cronScheduler.AddFunc(spec, m.check)
	if err != nil {
		m.logger.Error("Failed to schedule connection monitor", zap.String("spec", spec), zap.Error(err))
		return err
	}

	m.logger.Info("Connection monitor scheduled", zap.String("spec", spec), zap.Any("jobID", jobID))
	m.cronScheduler.Start()
	return nil
}

func (m *ConnectionMonitor) check() {
	timeout := m.cfg.MongoServerSelectionTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := m.pinger.Ping(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case err != nil && m.healthy:
		m.healthy = false
		m.logger.Error("MongoDB connection lost", zap.Error(err))
	case err != nil:
		m.logger.Debug("MongoDB still unreachable", zap.Error(err))
	case !m.healthy:
		m.healthy = true
		m.logger.Info("MongoDB reconnected")
	}
}

// Stop gracefully stops the cron scheduler.
func (m *ConnectionMonitor) Stop() {
	if m.cronScheduler == nil {
		return
	}
	m.logger.Info("Stopping connection monitor...")
	stopCtx := m.cronScheduler.Stop()
	select {
	case <-stopCtx.Done():
		m.logger.Info("Connection monitor stopped.")
	case <-time.After(10 * time.Second):
		m.logger.Warn("Connection monitor stop timed out.")
	}
}

// cronLogger adapts zap.Logger to the cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

// NewCronLogger creates a new cronLogger.
func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

// Info logs routine scheduler messages at debug level; cron emits one per tick.
func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	cl.zl.Debug(msg, cl.parseKeysAndValues(keysAndValues...)...)
}

func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	fields = append(fields, zap.Error(err))
	cl.zl.Error(msg, fields...)
}

func (cl *cronLogger) parseKeysAndValues(keysAndValues ...interface{}) []zap.Field {
	fields := make([]zap.Field, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprintf("%v", keysAndValues[i])
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(key, keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(key, "MISSING_VALUE"))
		}
	}
	return fields
}
