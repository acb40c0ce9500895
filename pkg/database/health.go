package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus is the database portion of the /healthz payload: a ping
// round-trip plus connection pool pressure indicators.
type HealthStatus struct {
	Status          string `json:"status"`
	ResponseTime    int64  `json:"response_time_ms"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    int64  `json:"wait_duration_ms"`
	MaxOpenConns    int    `json:"max_open_conns"`
	PoolSaturated   bool   `json:"pool_saturated"`
}

// Health pings the database and snapshots pool statistics. The error is
// returned alongside the status so callers can pick the HTTP code while
// still emitting the partial payload.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()

	return &HealthStatus{
		Status:          "healthy",
		ResponseTime:    time.Since(start).Milliseconds(),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration.Milliseconds(),
		MaxOpenConns:    stats.MaxOpenConnections,
		PoolSaturated:   stats.MaxOpenConnections > 0 && stats.InUse >= stats.MaxOpenConnections,
	}, nil
}
