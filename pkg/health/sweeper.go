// Package health runs the background sweeper: stale-instance marking,
// stalled-spawn detection, and startup orphan recovery.
package health

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/praxisworks/supervisor/ent"
	"github.com/praxisworks/supervisor/ent/activespawn"
	"github.com/praxisworks/supervisor/pkg/config"
)

// staleMarker is the slice of the registry service the sweeper calls.
type staleMarker interface {
	MarkStale(ctx context.Context) ([]string, error)
}

// Sweeper periodically marks silent instances stale and flags running
// spawns past their deadline. All operations are idempotent conditional
// updates, so multiple replicas can sweep concurrently.
type Sweeper struct {
	client   *ent.Client
	registry staleMarker
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	logger   *slog.Logger
}

// NewSweeper creates a sweeper from the health configuration.
func NewSweeper(client *ent.Client, registry staleMarker, cfg *config.HealthConfig) *Sweeper {
	return &Sweeper{
		client:   client,
		registry: registry,
		interval: cfg.SweepInterval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		logger:   slog.With("component", "health"),
	}
}

// Start launches the sweep loop. It returns immediately; Stop blocks
// until the loop exits.
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		defer close(s.doneCh)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

// Stop terminates the loop and waits for the in-flight sweep to finish.
func (s *Sweeper) Stop() {
	close(s.stopCh)
	<-s.doneCh
}

// Sweep runs one pass. Each sub-step is independent; a failing step is
// logged and does not block the others.
func (s *Sweeper) Sweep(ctx context.Context) {
	if staled, err := s.registry.MarkStale(ctx); err != nil {
		s.logger.Error("Stale-instance sweep failed", "error", err)
	} else if len(staled) > 0 {
		s.logger.Warn("Marked instances stale", "count", len(staled), "instance_ids", staled)
	}

	if stalled, err := s.sweepStalledSpawns(ctx); err != nil {
		s.logger.Error("Stalled-spawn sweep failed", "error", err)
	} else if stalled > 0 {
		s.logger.Warn("Marked spawns stalled", "count", stalled)
	}
}

// sweepStalledSpawns flags running spawns whose deadline has passed.
// Stalled is not terminal: the process may still exit and the engine
// records the real outcome; the flag exists so operators can see stuck
// work without waiting for it.
func (s *Sweeper) sweepStalledSpawns(ctx context.Context) (int, error) {
	now := time.Now()
	n, err := s.client.ActiveSpawn.Update().
		Where(
			activespawn.StatusEQ(activespawn.StatusRunning),
			activespawn.DeadlineAtNotNil(),
			activespawn.DeadlineAtLT(now),
		).
		SetStatus(activespawn.StatusStalled).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("marking stalled spawns: %w", err)
	}
	return n, nil
}

// RecoverStartupOrphans marks running spawns owned by this host as
// abandoned. Called once at boot, before any new spawn starts: a spawn
// that claims to be running on a host that just booted cannot be.
func RecoverStartupOrphans(ctx context.Context, client *ent.Client, hostname string) (int, error) {
	now := time.Now()
	n, err := client.ActiveSpawn.Update().
		Where(
			activespawn.StatusEQ(activespawn.StatusRunning),
			activespawn.HostMachineEQ(hostname),
		).
		SetStatus(activespawn.StatusAbandoned).
		SetEndedAt(now).
		SetErrorMessage(fmt.Sprintf("abandoned: host %s restarted while the spawn was running", hostname)).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("recovering startup orphans: %w", err)
	}
	if n > 0 {
		slog.Warn("Recovered startup orphan spawns", "host", hostname, "count", n)
	}
	return n, nil
}
