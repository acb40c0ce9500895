package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisworks/supervisor/ent"
	"github.com/praxisworks/supervisor/ent/commandlogentry"
	"github.com/praxisworks/supervisor/ent/event"
	"github.com/praxisworks/supervisor/pkg/models"
	"github.com/praxisworks/supervisor/test/util"
)

func setupEventLog(t *testing.T) (*EventLogService, *RegistryService, *ent.Client) {
	client, _ := util.SetupTestDatabase(t)
	return NewEventLogService(client), NewRegistryService(client, testStaleAfter), client
}

func TestEventLogService_LogEvent(t *testing.T) {
	events, registry, _ := setupEventLog(t)
	ctx := context.Background()

	inst, err := registry.Register(ctx, models.RegisterInstanceRequest{Project: "billing", Type: "PS"})
	require.NoError(t, err)

	t.Run("assigns dense sequence numbers", func(t *testing.T) {
		// registration already wrote sequence 1
		for i, et := range []string{"epic_started", "test_started", "test_passed"} {
			evt, err := events.LogEvent(ctx, models.LogEventRequest{
				InstanceID: inst.ID,
				EventType:  et,
				EventData:  map[string]any{"step": i},
			})
			require.NoError(t, err)
			assert.Equal(t, i+2, evt.SequenceNum)
		}
	})

	t.Run("rejects unknown event type", func(t *testing.T) {
		_, err := events.LogEvent(ctx, models.LogEventRequest{
			InstanceID: inst.ID,
			EventType:  "made_up",
		})
		require.Error(t, err)
		assert.True(t, models.IsKind(err, models.KindValidation))
	})

	t.Run("rejects unknown instance", func(t *testing.T) {
		_, err := events.LogEvent(ctx, models.LogEventRequest{
			InstanceID: "nope-PS-aaaaaa",
			EventType:  "epic_started",
		})
		require.ErrorIs(t, err, ErrInstanceNotFound)
	})

	t.Run("rejects appends after close", func(t *testing.T) {
		_, err := registry.Close(ctx, inst.ID, "")
		require.NoError(t, err)

		_, err = events.LogEvent(ctx, models.LogEventRequest{
			InstanceID: inst.ID,
			EventType:  "epic_started",
		})
		require.ErrorIs(t, err, ErrInstanceClosed)
	})
}

func TestEventLogService_CloseSealsStream(t *testing.T) {
	events, registry, client := setupEventLog(t)
	ctx := context.Background()

	inst, err := registry.Register(ctx, models.RegisterInstanceRequest{Project: "billing", Type: "PS"})
	require.NoError(t, err)

	// writers race the close; whatever they manage to append must land
	// before instance_closed, never after
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < 5; j++ {
				_, _ = events.LogEvent(ctx, models.LogEventRequest{
					InstanceID: inst.ID,
					EventType:  "epic_started",
				})
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-start
		_, err := registry.Close(ctx, inst.ID, "done")
		assert.NoError(t, err)
	}()
	close(start)
	wg.Wait()

	all, err := client.Event.Query().
		Where(event.InstanceID(inst.ID)).
		Order(ent.Asc(event.FieldSequenceNum)).
		All(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, all)
	assert.Equal(t, event.EventTypeInstanceClosed, all[len(all)-1].EventType)
	for i, evt := range all {
		assert.Equal(t, i+1, evt.SequenceNum)
	}
}

func TestEventLogService_ReplayEvents(t *testing.T) {
	events, registry, _ := setupEventLog(t)
	ctx := context.Background()

	inst, err := registry.Register(ctx, models.RegisterInstanceRequest{Project: "billing", Type: "PS"})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := events.LogEvent(ctx, models.LogEventRequest{
			InstanceID: inst.ID,
			EventType:  "epic_started",
			EventData:  map[string]any{"n": i},
		})
		require.NoError(t, err)
	}

	t.Run("full replay", func(t *testing.T) {
		res, err := events.ReplayEvents(ctx, inst.ID, 1, 0)
		require.NoError(t, err)
		require.Len(t, res.Events, 6) // registration + 5
		assert.Equal(t, 7, res.NextSeq)
		for i, evt := range res.Events {
			assert.Equal(t, i+1, evt.SequenceNum)
		}
	})

	t.Run("resumable with limit", func(t *testing.T) {
		first, err := events.ReplayEvents(ctx, inst.ID, 1, 4)
		require.NoError(t, err)
		require.Len(t, first.Events, 4)

		rest, err := events.ReplayEvents(ctx, inst.ID, first.NextSeq, 0)
		require.NoError(t, err)
		require.Len(t, rest.Events, 2)
		assert.Equal(t, 5, rest.Events[0].SequenceNum)
	})

	t.Run("unknown instance", func(t *testing.T) {
		_, err := events.ReplayEvents(ctx, "nope-PS-aaaaaa", 1, 0)
		require.ErrorIs(t, err, ErrInstanceNotFound)
	})
}

func TestEventLogService_LogCommand(t *testing.T) {
	events, registry, client := setupEventLog(t)
	ctx := context.Background()

	inst, err := registry.Register(ctx, models.RegisterInstanceRequest{Project: "billing", Type: "PS"})
	require.NoError(t, err)

	t.Run("attributed to instance", func(t *testing.T) {
		row, err := events.LogCommand(ctx, inst.ID, models.CommandEntry{
			CommandType:     "mcp_request",
			Action:          "tools/call",
			ToolName:        "register_instance",
			Success:         true,
			ExecutionTimeMs: 12,
		})
		require.NoError(t, err)
		require.NotNil(t, row.InstanceID)
		assert.Equal(t, inst.ID, *row.InstanceID)
	})

	t.Run("anonymous sink", func(t *testing.T) {
		row, err := events.LogCommand(ctx, "", models.CommandEntry{
			CommandType: "mcp_request",
			Action:      "initialize",
			Success:     true,
		})
		require.NoError(t, err)
		assert.Nil(t, row.InstanceID)
	})

	t.Run("unknown instance recorded anonymously with tag", func(t *testing.T) {
		row, err := events.LogCommand(ctx, "ghost-PS-aaaaaa", models.CommandEntry{
			CommandType: "mcp_request",
			Action:      "tools/call",
			Success:     false,
		})
		require.NoError(t, err)
		assert.Nil(t, row.InstanceID)
		assert.Contains(t, row.Tags, "unknown_instance")
	})

	t.Run("requires command_type and action", func(t *testing.T) {
		_, err := events.LogCommand(ctx, "", models.CommandEntry{Action: "x"})
		require.Error(t, err)
		_, err = events.LogCommand(ctx, "", models.CommandEntry{CommandType: "x"})
		require.Error(t, err)
	})

	count, err := client.CommandLogEntry.Query().Where(commandlogentry.CommandType("mcp_request")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestEventLogService_Checkpoints(t *testing.T) {
	events, registry, _ := setupEventLog(t)
	ctx := context.Background()

	inst, err := registry.Register(ctx, models.RegisterInstanceRequest{Project: "billing", Type: "PS"})
	require.NoError(t, err)
	_, err = events.LogEvent(ctx, models.LogEventRequest{InstanceID: inst.ID, EventType: "epic_started"})
	require.NoError(t, err)

	t.Run("pins current sequence and records event", func(t *testing.T) {
		cp, err := events.CreateCheckpoint(ctx, models.CreateCheckpointRequest{
			InstanceID:           inst.ID,
			CheckpointType:       "manual",
			ContextWindowPercent: 60,
			WorkState:            map[string]any{"phase": "execute"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, cp.SequenceNum)

		res, err := events.ReplayEvents(ctx, inst.ID, 1, 0)
		require.NoError(t, err)
		last := res.Events[len(res.Events)-1]
		assert.Equal(t, event.EventTypeCheckpointCreated, last.EventType)
		assert.Equal(t, cp.ID, last.EventData["checkpoint_id"])
	})

	t.Run("latest wins", func(t *testing.T) {
		second, err := events.CreateCheckpoint(ctx, models.CreateCheckpointRequest{
			InstanceID:           inst.ID,
			CheckpointType:       "automatic",
			ContextWindowPercent: 80,
			WorkState:            map[string]any{"phase": "validate"},
		})
		require.NoError(t, err)

		got, err := events.LatestCheckpoint(ctx, inst.ID)
		require.NoError(t, err)
		assert.Equal(t, second.ID, got.ID)

		// loading is itself an event
		res, err := events.ReplayEvents(ctx, inst.ID, 1, 0)
		require.NoError(t, err)
		last := res.Events[len(res.Events)-1]
		assert.Equal(t, event.EventTypeCheckpointLoaded, last.EventType)
	})

	t.Run("validates type and percent", func(t *testing.T) {
		_, err := events.CreateCheckpoint(ctx, models.CreateCheckpointRequest{
			InstanceID:     inst.ID,
			CheckpointType: "hourly",
		})
		require.Error(t, err)
		assert.True(t, models.IsKind(err, models.KindValidation))

		_, err = events.CreateCheckpoint(ctx, models.CreateCheckpointRequest{
			InstanceID:           inst.ID,
			CheckpointType:       "manual",
			ContextWindowPercent: 150,
		})
		require.Error(t, err)
	})

	t.Run("no checkpoint yet", func(t *testing.T) {
		other, err := registry.Register(ctx, models.RegisterInstanceRequest{Project: "billing", Type: "MS"})
		require.NoError(t, err)
		_, err = events.LatestCheckpoint(ctx, other.ID)
		require.Error(t, err)
		assert.True(t, models.IsKind(err, models.KindNotFound))
	})
}
