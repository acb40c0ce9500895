package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"time"

	"github.com/praxisworks/supervisor/ent"
	"github.com/praxisworks/supervisor/ent/event"
	"github.com/praxisworks/supervisor/ent/instance"
	"github.com/praxisworks/supervisor/pkg/models"
)

// registerRetries bounds id regeneration on the (unlikely) 6-hex collision.
const registerRetries = 5

var projectSlugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// RegistryService manages the instance registry: session registration,
// heartbeats, listing with derived staleness, prefix lookup and closing.
type RegistryService struct {
	client     *ent.Client
	staleAfter time.Duration
	logger     *slog.Logger
}

// NewRegistryService creates a new registry service. staleAfter is the
// heartbeat age past which a session is considered stale.
func NewRegistryService(client *ent.Client, staleAfter time.Duration) *RegistryService {
	return &RegistryService{
		client:     client,
		staleAfter: staleAfter,
		logger:     slog.With("component", "registry_service"),
	}
}

// Register creates a new instance with a generated id
// {project}-{PS|MS}-{6 lowercase hex} and seeds its event stream with
// instance_registered at sequence 1.
func (s *RegistryService) Register(ctx context.Context, req models.RegisterInstanceRequest) (*ent.Instance, error) {
	if !projectSlugPattern.MatchString(req.Project) {
		return nil, NewValidationError("project", "must be a lowercase slug ([a-z0-9][a-z0-9-]*)")
	}
	typ := instance.Type(req.Type)
	if err := instance.TypeValidator(typ); err != nil {
		return nil, NewValidationError("type", "must be 'PS' or 'MS'")
	}

	registeredData := map[string]any{
		"project": req.Project,
		"type":    req.Type,
	}
	if req.HostMachine != "" {
		registeredData["host_machine"] = req.HostMachine
	}
	if len(req.InitialContext) > 0 {
		registeredData["initial_context"] = req.InitialContext
	}

	for attempt := 0; attempt < registerRetries; attempt++ {
		id := fmt.Sprintf("%s-%s-%s", req.Project, req.Type, randomHex(3))

		tx, err := s.client.Tx(ctx)
		if err != nil {
			return nil, fmt.Errorf("starting transaction: %w", err)
		}
		inst, err := s.registerTx(ctx, tx, id, typ, req, registeredData)
		if err != nil {
			_ = tx.Rollback()
			if ent.IsConstraintError(err) {
				s.logger.Warn("Instance id collision, regenerating", "instance_id", id)
				continue
			}
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("committing registration: %w", err)
		}
		s.logger.Info("Instance registered",
			"instance_id", inst.ID,
			"project", inst.Project,
			"type", inst.Type)
		return inst, nil
	}
	return nil, models.NewKindError(models.KindInternal, "could not allocate a unique instance id")
}

func (s *RegistryService) registerTx(ctx context.Context, tx *ent.Tx, id string, typ instance.Type, req models.RegisterInstanceRequest, eventData map[string]any) (*ent.Instance, error) {
	create := tx.Instance.Create().
		SetID(id).
		SetProject(req.Project).
		SetType(typ)
	if req.HostMachine != "" {
		create.SetHostMachine(req.HostMachine)
	}
	inst, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("creating instance: %w", err)
	}
	if _, err := appendEvent(ctx, tx, id, event.EventTypeInstanceRegistered, eventData, nil); err != nil {
		return nil, err
	}
	return inst, nil
}

// Heartbeat refreshes an instance's liveness and context window fill.
// A heartbeat revives a stale session; a closed session rejects it.
func (s *RegistryService) Heartbeat(ctx context.Context, req models.HeartbeatRequest) (*ent.Instance, error) {
	if req.InstanceID == "" {
		return nil, NewValidationError("instance_id", "must not be empty")
	}
	if req.ContextPercent < 0 || req.ContextPercent > 100 {
		return nil, NewValidationError("context_percent", "must be between 0 and 100")
	}

	inst, err := s.client.Instance.Query().Where(instance.ID(req.InstanceID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrInstanceNotFound, req.InstanceID)
		}
		return nil, fmt.Errorf("loading instance: %w", err)
	}
	if inst.Status == instance.StatusClosed {
		return nil, fmt.Errorf("%w: %s", ErrInstanceClosed, req.InstanceID)
	}

	revived := inst.Status == instance.StatusStale
	contextChanged := inst.ContextPercent != req.ContextPercent

	update := inst.Update().
		SetStatus(instance.StatusActive).
		SetLastHeartbeat(time.Now()).
		SetContextPercent(req.ContextPercent)
	if req.CurrentEpic != "" {
		update.SetCurrentEpic(req.CurrentEpic)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating instance: %w", err)
	}

	data := map[string]any{"context_percent": req.ContextPercent}
	if revived {
		data["revived"] = true
	}
	if req.CurrentEpic != "" {
		data["current_epic"] = req.CurrentEpic
	}
	s.recordEvent(updated.ID, event.EventTypeInstanceHeartbeat, data)
	if contextChanged {
		s.recordEvent(updated.ID, event.EventTypeContextWindowUpdated, map[string]any{
			"context_percent": req.ContextPercent,
		})
	}
	return updated, nil
}

// List returns instances ordered by project ascending then last_heartbeat
// descending, with derived age_seconds and stale flags. active_only
// excludes closed sessions but keeps stale ones.
func (s *RegistryService) List(ctx context.Context, filters models.InstanceFilters) ([]models.InstanceListItem, error) {
	q := s.client.Instance.Query()
	if filters.Project != "" {
		q = q.Where(instance.Project(filters.Project))
	}
	if filters.ActiveOnly {
		q = q.Where(instance.StatusNEQ(instance.StatusClosed))
	}
	instances, err := q.
		Order(ent.Asc(instance.FieldProject), ent.Desc(instance.FieldLastHeartbeat)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying instances: %w", err)
	}

	now := time.Now()
	items := make([]models.InstanceListItem, 0, len(instances))
	for _, inst := range instances {
		age := now.Sub(inst.LastHeartbeat)
		stale := inst.Status == instance.StatusStale ||
			(inst.Status == instance.StatusActive && age > s.staleAfter)
		items = append(items, models.InstanceListItem{
			Instance:   inst,
			AgeSeconds: age.Seconds(),
			Stale:      stale,
		})
	}
	return items, nil
}

// GetDetails resolves an exact instance id or a prefix of its 6-hex suffix.
// Ambiguous prefixes return all candidates; they are never silently resolved.
func (s *RegistryService) GetDetails(ctx context.Context, idOrPrefix string) (*models.InstanceLookup, error) {
	if idOrPrefix == "" {
		return nil, NewValidationError("instance_id", "must not be empty")
	}

	inst, err := s.client.Instance.Query().Where(instance.ID(idOrPrefix)).Only(ctx)
	if err == nil {
		return &models.InstanceLookup{Outcome: models.LookupExact, Instance: inst}, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("loading instance: %w", err)
	}

	// ids are lowercase throughout, so the fold variant matches exactly
	candidates, err := s.client.Instance.Query().
		Where(instance.Or(
			instance.IDContainsFold("-PS-"+idOrPrefix),
			instance.IDContainsFold("-MS-"+idOrPrefix),
		)).
		Order(ent.Desc(instance.FieldLastHeartbeat)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying instances: %w", err)
	}

	switch len(candidates) {
	case 0:
		return &models.InstanceLookup{Outcome: models.LookupNotFound}, nil
	case 1:
		return &models.InstanceLookup{Outcome: models.LookupExact, Instance: candidates[0]}, nil
	default:
		return &models.InstanceLookup{Outcome: models.LookupMultiple, Candidates: candidates}, nil
	}
}

// Close marks an instance closed and seals its event stream with
// instance_closed as the final event. Closing an already-closed instance
// is a no-op.
func (s *RegistryService) Close(ctx context.Context, instanceID, reason string) (*ent.Instance, error) {
	if instanceID == "" {
		return nil, NewValidationError("instance_id", "must not be empty")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	inst, err := tx.Instance.Query().Where(instance.ID(instanceID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrInstanceNotFound, instanceID)
		}
		return nil, fmt.Errorf("loading instance: %w", err)
	}
	if inst.Status == instance.StatusClosed {
		return inst, nil
	}

	data := map[string]any{}
	if reason != "" {
		data["reason"] = reason
	}
	// The stream must end with instance_closed, so append before flipping
	// status: appends are rejected once the row reads closed.
	if _, err := appendEvent(ctx, tx, instanceID, event.EventTypeInstanceClosed, data, nil); err != nil {
		if errors.Is(err, ErrInstanceClosed) {
			// lost a close race after the status check above; still a no-op
			closed, qErr := s.client.Instance.Query().Where(instance.ID(instanceID)).Only(ctx)
			if qErr == nil {
				return closed, nil
			}
		}
		return nil, err
	}

	closed, err := tx.Instance.UpdateOne(inst).
		SetStatus(instance.StatusClosed).
		SetClosedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("closing instance: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing close: %w", err)
	}

	s.logger.Info("Instance closed", "instance_id", instanceID, "reason", reason)
	return closed, nil
}

// MarkStale transitions active instances whose heartbeat is older than the
// stale threshold, recording an instance_stale event per transition.
// Returns the ids that were transitioned.
func (s *RegistryService) MarkStale(ctx context.Context) ([]string, error) {
	cutoff := time.Now().Add(-s.staleAfter)
	candidates, err := s.client.Instance.Query().
		Where(
			instance.StatusEQ(instance.StatusActive),
			instance.LastHeartbeatLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying stale candidates: %w", err)
	}

	var transitioned []string
	for _, inst := range candidates {
		// guard against a heartbeat racing the sweep
		n, err := s.client.Instance.Update().
			Where(
				instance.ID(inst.ID),
				instance.StatusEQ(instance.StatusActive),
				instance.LastHeartbeatLT(cutoff),
			).
			SetStatus(instance.StatusStale).
			Save(ctx)
		if err != nil {
			return transitioned, fmt.Errorf("marking instance %s stale: %w", inst.ID, err)
		}
		if n == 0 {
			continue
		}
		transitioned = append(transitioned, inst.ID)
		s.recordEvent(inst.ID, event.EventTypeInstanceStale, map[string]any{
			"last_heartbeat": inst.LastHeartbeat.UTC().Format(time.RFC3339),
		})
	}
	sort.Strings(transitioned)
	if len(transitioned) > 0 {
		s.logger.Info("Marked instances stale", "count", len(transitioned))
	}
	return transitioned, nil
}

// recordEvent appends a lifecycle event on a background context so event
// log hiccups never fail the registry operation that triggered them.
func (s *RegistryService) recordEvent(instanceID string, et event.EventType, data map[string]any) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for attempt := 0; attempt < sequenceRetries; attempt++ {
		tx, err := s.client.Tx(ctx)
		if err != nil {
			s.logger.Error("Failed to record lifecycle event", "instance_id", instanceID, "event_type", et, "error", err)
			return
		}
		if _, err := appendEvent(ctx, tx, instanceID, et, data, nil); err != nil {
			_ = tx.Rollback()
			if ent.IsConstraintError(err) {
				continue
			}
			s.logger.Error("Failed to record lifecycle event", "instance_id", instanceID, "event_type", et, "error", err)
			return
		}
		if err := tx.Commit(); err != nil {
			s.logger.Error("Failed to record lifecycle event", "instance_id", instanceID, "event_type", et, "error", err)
		}
		return
	}
	s.logger.Error("Failed to record lifecycle event after retries", "instance_id", instanceID, "event_type", et)
}

// randomHex returns n random bytes hex-encoded (2n lowercase characters).
func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
