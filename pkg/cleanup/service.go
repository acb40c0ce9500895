// Package cleanup provides data retention services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/praxisworks/supervisor/ent"
	"github.com/praxisworks/supervisor/ent/activespawn"
	"github.com/praxisworks/supervisor/ent/commandlogentry"
	"github.com/praxisworks/supervisor/pkg/config"
)

// Service periodically enforces retention policies:
//   - Deletes terminal spawn rows past their retention window
//   - Deletes command audit rows past theirs
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	client *ent.Client
	cfg    *config.RetentionConfig
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a retention service.
func NewService(client *ent.Client, cfg *config.RetentionConfig) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
		logger: slog.With("component", "cleanup"),
	}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Retention service started",
		"spawn_retention", s.cfg.SpawnRetention,
		"command_log_retention", s.cfg.CommandLogRetention,
		"interval", s.cfg.CleanupInterval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes one retention pass. Each step is independent; a
// failing step is logged and does not block the others.
func (s *Service) RunAll(ctx context.Context) {
	if count, err := s.pruneFinishedSpawns(ctx); err != nil {
		s.logger.Error("Retention: spawn prune failed", "error", err)
	} else if count > 0 {
		s.logger.Info("Retention: pruned finished spawns", "count", count)
	}

	if count, err := s.pruneCommandLog(ctx); err != nil {
		s.logger.Error("Retention: command log prune failed", "error", err)
	} else if count > 0 {
		s.logger.Info("Retention: pruned command log entries", "count", count)
	}
}

// pruneFinishedSpawns deletes terminal spawn rows whose ended_at is past
// the retention window. Running and stalled spawns are never touched;
// stalled is not terminal and the row still backs live lookups.
func (s *Service) pruneFinishedSpawns(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.cfg.SpawnRetention)
	return s.client.ActiveSpawn.Delete().
		Where(
			activespawn.StatusIn(
				activespawn.StatusCompleted,
				activespawn.StatusFailed,
				activespawn.StatusAbandoned,
			),
			activespawn.EndedAtNotNil(),
			activespawn.EndedAtLT(cutoff),
		).
		Exec(ctx)
}

func (s *Service) pruneCommandLog(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.cfg.CommandLogRetention)
	return s.client.CommandLogEntry.Delete().
		Where(commandlogentry.CreatedAtLT(cutoff)).
		Exec(ctx)
}
