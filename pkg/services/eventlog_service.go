package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/praxisworks/supervisor/ent"
	"github.com/praxisworks/supervisor/ent/checkpoint"
	"github.com/praxisworks/supervisor/ent/event"
	"github.com/praxisworks/supervisor/ent/instance"
	"github.com/praxisworks/supervisor/pkg/models"
)

// sequenceRetries bounds retries when two writers race for the same
// per-instance sequence number. The unique (instance_id, sequence_num)
// index arbitrates; the loser recomputes and tries again.
const sequenceRetries = 3

// EventLogService manages the append-only per-instance event stream,
// the command audit log, and advisory checkpoints.
type EventLogService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewEventLogService creates a new event log service.
func NewEventLogService(client *ent.Client) *EventLogService {
	return &EventLogService{
		client: client,
		logger: slog.With("component", "eventlog_service"),
	}
}

// LogEvent appends an event to an instance's stream, assigning the next
// dense sequence number. Appends to a closed instance are rejected.
func (s *EventLogService) LogEvent(ctx context.Context, req models.LogEventRequest) (*ent.Event, error) {
	if req.InstanceID == "" {
		return nil, NewValidationError("instance_id", "must not be empty")
	}
	et := event.EventType(req.EventType)
	if err := event.EventTypeValidator(et); err != nil {
		return nil, NewValidationError("event_type", fmt.Sprintf("unknown event type %q", req.EventType))
	}
	if req.EventData == nil {
		req.EventData = map[string]any{}
	}

	for attempt := 0; attempt < sequenceRetries; attempt++ {
		tx, err := s.client.Tx(ctx)
		if err != nil {
			return nil, fmt.Errorf("starting transaction: %w", err)
		}
		created, err := appendEvent(ctx, tx, req.InstanceID, et, req.EventData, req.Metadata)
		if err != nil {
			_ = tx.Rollback()
			if ent.IsConstraintError(err) {
				continue // lost a sequence race, recompute
			}
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("committing event: %w", err)
		}
		return created, nil
	}
	return nil, models.NewKindError(models.KindConflict, "could not allocate event sequence number")
}

// ReplayEvents returns events for an instance ordered by sequence number,
// starting at fromSeq (inclusive). Pass the returned NextSeq to resume a
// replay that was cut short. limit <= 0 means no limit.
func (s *EventLogService) ReplayEvents(ctx context.Context, instanceID string, fromSeq, limit int) (*models.EventsResponse, error) {
	if instanceID == "" {
		return nil, NewValidationError("instance_id", "must not be empty")
	}
	if fromSeq < 1 {
		fromSeq = 1
	}

	exists, err := s.client.Instance.Query().Where(instance.ID(instanceID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking instance: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrInstanceNotFound, instanceID)
	}

	q := s.client.Event.Query().
		Where(event.InstanceID(instanceID), event.SequenceNumGTE(fromSeq)).
		Order(ent.Asc(event.FieldSequenceNum))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}

	next := fromSeq
	if n := len(events); n > 0 {
		next = events[n-1].SequenceNum + 1
	}
	return &models.EventsResponse{Events: events, NextSeq: next}, nil
}

// LogCommand appends a command audit row. An empty instanceID lands in the
// anonymous sink; an unknown instanceID is recorded anonymously and tagged
// rather than rejected, so audit writes never fail a request.
func (s *EventLogService) LogCommand(ctx context.Context, instanceID string, entry models.CommandEntry) (*ent.CommandLogEntry, error) {
	if entry.CommandType == "" {
		return nil, NewValidationError("command_type", "must not be empty")
	}
	if entry.Action == "" {
		return nil, NewValidationError("action", "must not be empty")
	}

	create := s.client.CommandLogEntry.Create().
		SetCommandType(entry.CommandType).
		SetAction(entry.Action).
		SetSuccess(entry.Success)

	tags := entry.Tags
	if instanceID != "" {
		exists, err := s.client.Instance.Query().Where(instance.ID(instanceID)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("checking instance: %w", err)
		}
		if exists {
			create.SetInstanceID(instanceID)
		} else {
			tags = append(tags, "unknown_instance")
		}
	}

	if entry.ToolName != "" {
		create.SetToolName(entry.ToolName)
	}
	if entry.Parameters != nil {
		create.SetParameters(entry.Parameters)
	}
	if entry.Result != nil {
		create.SetResult(entry.Result)
	}
	if entry.ErrorMessage != "" {
		create.SetErrorMessage(entry.ErrorMessage)
	}
	if entry.ExecutionTimeMs > 0 {
		create.SetExecutionTimeMs(entry.ExecutionTimeMs)
	}
	if len(tags) > 0 {
		create.SetTags(tags)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("saving command log entry: %w", err)
	}
	return row, nil
}

// CreateCheckpoint stores an advisory work-state snapshot pinned to the
// instance's current sequence number, then records a checkpoint_created
// event in the stream itself.
func (s *EventLogService) CreateCheckpoint(ctx context.Context, req models.CreateCheckpointRequest) (*ent.Checkpoint, error) {
	if req.InstanceID == "" {
		return nil, NewValidationError("instance_id", "must not be empty")
	}
	ct := checkpoint.CheckpointType(req.CheckpointType)
	if err := checkpoint.CheckpointTypeValidator(ct); err != nil {
		return nil, NewValidationError("checkpoint_type", "must be 'manual' or 'automatic'")
	}
	if req.ContextWindowPercent < 0 || req.ContextWindowPercent > 100 {
		return nil, NewValidationError("context_window_percent", "must be between 0 and 100")
	}
	if req.WorkState == nil {
		req.WorkState = map[string]any{}
	}

	var cp *ent.Checkpoint
	for attempt := 0; attempt < sequenceRetries; attempt++ {
		tx, err := s.client.Tx(ctx)
		if err != nil {
			return nil, fmt.Errorf("starting transaction: %w", err)
		}
		cp, err = s.createCheckpointTx(ctx, tx, req)
		if err != nil {
			_ = tx.Rollback()
			if ent.IsConstraintError(err) {
				continue
			}
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("committing checkpoint: %w", err)
		}
		s.logger.Info("Checkpoint created",
			"instance_id", req.InstanceID,
			"checkpoint_id", cp.ID,
			"sequence_num", cp.SequenceNum)
		return cp, nil
	}
	return nil, models.NewKindError(models.KindConflict, "could not allocate event sequence number")
}

func (s *EventLogService) createCheckpointTx(ctx context.Context, tx *ent.Tx, req models.CreateCheckpointRequest) (*ent.Checkpoint, error) {
	seq, err := currentSequence(ctx, tx, req.InstanceID)
	if err != nil {
		return nil, err
	}
	cp, err := tx.Checkpoint.Create().
		SetID(uuid.NewString()).
		SetInstanceID(req.InstanceID).
		SetSequenceNum(seq).
		SetCheckpointType(checkpoint.CheckpointType(req.CheckpointType)).
		SetContextWindowPercent(req.ContextWindowPercent).
		SetWorkState(req.WorkState).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// a missing instance surfaces as an FK violation here
			exists, exErr := tx.Instance.Query().Where(instance.ID(req.InstanceID)).Exist(ctx)
			if exErr == nil && !exists {
				return nil, fmt.Errorf("%w: %s", ErrInstanceNotFound, req.InstanceID)
			}
		}
		return nil, fmt.Errorf("saving checkpoint: %w", err)
	}
	if _, err := appendEvent(ctx, tx, req.InstanceID, event.EventTypeCheckpointCreated, map[string]any{
		"checkpoint_id":   cp.ID,
		"checkpoint_type": req.CheckpointType,
		"sequence_num":    cp.SequenceNum,
	}, nil); err != nil {
		return nil, err
	}
	return cp, nil
}

// LatestCheckpoint returns the most recent checkpoint for an instance and
// records a checkpoint_loaded event. Returns a NotFound kind when the
// instance has no checkpoints.
func (s *EventLogService) LatestCheckpoint(ctx context.Context, instanceID string) (*ent.Checkpoint, error) {
	if instanceID == "" {
		return nil, NewValidationError("instance_id", "must not be empty")
	}
	cp, err := s.client.Checkpoint.Query().
		Where(checkpoint.InstanceID(instanceID)).
		Order(ent.Desc(checkpoint.FieldSequenceNum), ent.Desc(checkpoint.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.NewKindError(models.KindNotFound, fmt.Sprintf("no checkpoint for instance %s", instanceID))
		}
		return nil, fmt.Errorf("querying checkpoints: %w", err)
	}

	if _, err := s.LogEvent(ctx, models.LogEventRequest{
		InstanceID: instanceID,
		EventType:  string(event.EventTypeCheckpointLoaded),
		EventData:  map[string]any{"checkpoint_id": cp.ID, "sequence_num": cp.SequenceNum},
	}); err != nil {
		// loading still succeeds if the instance closed between query and log
		s.logger.Warn("Failed to record checkpoint_loaded event",
			"instance_id", instanceID, "error", err)
	}
	return cp, nil
}

// appendEvent inserts the next event for an instance inside tx. The caller
// owns commit/rollback. The instance row is locked for the remainder of
// the tx: a writer that waited on the lock re-reads the flipped status,
// so nothing can land after instance_closed even under READ COMMITTED.
// The unique sequence index stays as a backstop and turns any remaining
// race into a retryable constraint error.
func appendEvent(ctx context.Context, tx *ent.Tx, instanceID string, et event.EventType, data, meta map[string]any) (*ent.Event, error) {
	inst, err := tx.Instance.Query().
		Where(instance.ID(instanceID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrInstanceNotFound, instanceID)
		}
		return nil, fmt.Errorf("loading instance: %w", err)
	}
	if inst.Status == instance.StatusClosed {
		return nil, fmt.Errorf("%w: %s", ErrInstanceClosed, instanceID)
	}

	seq, err := currentSequence(ctx, tx, instanceID)
	if err != nil {
		return nil, err
	}

	create := tx.Event.Create().
		SetID(uuid.NewString()).
		SetInstanceID(instanceID).
		SetSequenceNum(seq + 1).
		SetEventType(et).
		SetEventData(data)
	if meta != nil {
		create.SetMetadata(meta)
	}
	evt, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("saving event: %w", err)
	}
	return evt, nil
}

// currentSequence returns the highest sequence number in an instance's
// stream, 0 when the stream is empty.
func currentSequence(ctx context.Context, tx *ent.Tx, instanceID string) (int, error) {
	last, err := tx.Event.Query().
		Where(event.InstanceID(instanceID)).
		Order(ent.Desc(event.FieldSequenceNum)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("querying last event: %w", err)
	}
	return last.SequenceNum, nil
}
