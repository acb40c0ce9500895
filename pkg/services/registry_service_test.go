package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisworks/supervisor/ent"
	"github.com/praxisworks/supervisor/ent/event"
	"github.com/praxisworks/supervisor/ent/instance"
	"github.com/praxisworks/supervisor/pkg/models"
	"github.com/praxisworks/supervisor/test/util"
)

const testStaleAfter = 120 * time.Second

func setupRegistry(t *testing.T) (*RegistryService, *ent.Client) {
	client, _ := util.SetupTestDatabase(t)
	return NewRegistryService(client, testStaleAfter), client
}

func TestRegistryService_Register(t *testing.T) {
	svc, client := setupRegistry(t)
	ctx := context.Background()

	t.Run("creates instance with generated id", func(t *testing.T) {
		inst, err := svc.Register(ctx, models.RegisterInstanceRequest{
			Project:     "billing",
			Type:        "PS",
			HostMachine: "host-1",
		})
		require.NoError(t, err)

		assert.Regexp(t, regexp.MustCompile(`^billing-PS-[0-9a-f]{6}$`), inst.ID)
		assert.Equal(t, instance.StatusActive, inst.Status)
		assert.Equal(t, 0, inst.ContextPercent)
		require.NotNil(t, inst.HostMachine)
		assert.Equal(t, "host-1", *inst.HostMachine)

		// stream starts with instance_registered at sequence 1
		events, err := client.Event.Query().
			Where(event.InstanceID(inst.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, 1, events[0].SequenceNum)
		assert.Equal(t, event.EventTypeInstanceRegistered, events[0].EventType)
		assert.Equal(t, "billing", events[0].EventData["project"])
	})

	t.Run("rejects bad project slug", func(t *testing.T) {
		_, err := svc.Register(ctx, models.RegisterInstanceRequest{Project: "Billing!", Type: "PS"})
		require.Error(t, err)
		assert.True(t, models.IsKind(err, models.KindValidation))
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := svc.Register(ctx, models.RegisterInstanceRequest{Project: "billing", Type: "XX"})
		require.Error(t, err)
		assert.True(t, models.IsKind(err, models.KindValidation))
	})
}

func TestRegistryService_Heartbeat(t *testing.T) {
	svc, client := setupRegistry(t)
	ctx := context.Background()

	inst, err := svc.Register(ctx, models.RegisterInstanceRequest{Project: "billing", Type: "PS"})
	require.NoError(t, err)

	t.Run("updates context and heartbeat", func(t *testing.T) {
		updated, err := svc.Heartbeat(ctx, models.HeartbeatRequest{
			InstanceID:     inst.ID,
			ContextPercent: 42,
			CurrentEpic:    "payments-v2",
		})
		require.NoError(t, err)
		assert.Equal(t, 42, updated.ContextPercent)
		require.NotNil(t, updated.CurrentEpic)
		assert.Equal(t, "payments-v2", *updated.CurrentEpic)
		assert.Equal(t, instance.StatusActive, updated.Status)
	})

	t.Run("revives a stale instance", func(t *testing.T) {
		err := client.Instance.UpdateOneID(inst.ID).
			SetStatus(instance.StatusStale).
			Exec(ctx)
		require.NoError(t, err)

		updated, err := svc.Heartbeat(ctx, models.HeartbeatRequest{InstanceID: inst.ID, ContextPercent: 50})
		require.NoError(t, err)
		assert.Equal(t, instance.StatusActive, updated.Status)
	})

	t.Run("rejects out-of-range context percent", func(t *testing.T) {
		_, err := svc.Heartbeat(ctx, models.HeartbeatRequest{InstanceID: inst.ID, ContextPercent: 101})
		require.Error(t, err)
		assert.True(t, models.IsKind(err, models.KindValidation))
	})

	t.Run("unknown instance", func(t *testing.T) {
		_, err := svc.Heartbeat(ctx, models.HeartbeatRequest{InstanceID: "nope-PS-aaaaaa", ContextPercent: 1})
		require.ErrorIs(t, err, ErrInstanceNotFound)
	})

	t.Run("closed instance rejects heartbeat", func(t *testing.T) {
		closed, err := svc.Register(ctx, models.RegisterInstanceRequest{Project: "billing", Type: "MS"})
		require.NoError(t, err)
		_, err = svc.Close(ctx, closed.ID, "done")
		require.NoError(t, err)

		_, err = svc.Heartbeat(ctx, models.HeartbeatRequest{InstanceID: closed.ID, ContextPercent: 1})
		require.ErrorIs(t, err, ErrInstanceClosed)
	})
}

func TestRegistryService_List(t *testing.T) {
	svc, _ := setupRegistry(t)
	ctx := context.Background()

	a, err := svc.Register(ctx, models.RegisterInstanceRequest{Project: "alpha", Type: "PS"})
	require.NoError(t, err)
	b, err := svc.Register(ctx, models.RegisterInstanceRequest{Project: "beta", Type: "PS"})
	require.NoError(t, err)
	b2, err := svc.Register(ctx, models.RegisterInstanceRequest{Project: "beta", Type: "MS"})
	require.NoError(t, err)

	// newest heartbeat first within a project
	_, err = svc.Heartbeat(ctx, models.HeartbeatRequest{InstanceID: b2.ID, ContextPercent: 5})
	require.NoError(t, err)

	t.Run("orders by project then recency", func(t *testing.T) {
		items, err := svc.List(ctx, models.InstanceFilters{})
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, a.ID, items[0].Instance.ID)
		assert.Equal(t, b2.ID, items[1].Instance.ID)
		assert.Equal(t, b.ID, items[2].Instance.ID)
		for _, item := range items {
			assert.False(t, item.Stale)
			assert.GreaterOrEqual(t, item.AgeSeconds, 0.0)
		}
	})

	t.Run("filters by project", func(t *testing.T) {
		items, err := svc.List(ctx, models.InstanceFilters{Project: "beta"})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("active_only keeps stale, drops closed", func(t *testing.T) {
		_, err := svc.Close(ctx, b.ID, "")
		require.NoError(t, err)

		items, err := svc.List(ctx, models.InstanceFilters{ActiveOnly: true})
		require.NoError(t, err)
		require.Len(t, items, 2)
		for _, item := range items {
			assert.NotEqual(t, instance.StatusClosed, item.Instance.Status)
		}
	})
}

func TestRegistryService_GetDetails(t *testing.T) {
	svc, client := setupRegistry(t)
	ctx := context.Background()

	mk := func(id string) {
		err := client.Instance.Create().
			SetID(id).
			SetProject("proj").
			SetType(instance.TypePS).
			Exec(ctx)
		require.NoError(t, err)
	}
	mk("proj-PS-abc123")
	mk("proj-PS-abd456")
	mk("proj-PS-xyz789")

	t.Run("exact id", func(t *testing.T) {
		res, err := svc.GetDetails(ctx, "proj-PS-abc123")
		require.NoError(t, err)
		assert.Equal(t, models.LookupExact, res.Outcome)
		assert.Equal(t, "proj-PS-abc123", res.Instance.ID)
	})

	t.Run("unique suffix prefix", func(t *testing.T) {
		res, err := svc.GetDetails(ctx, "xyz")
		require.NoError(t, err)
		assert.Equal(t, models.LookupExact, res.Outcome)
		assert.Equal(t, "proj-PS-xyz789", res.Instance.ID)
	})

	t.Run("ambiguous prefix returns candidates", func(t *testing.T) {
		res, err := svc.GetDetails(ctx, "ab")
		require.NoError(t, err)
		assert.Equal(t, models.LookupMultiple, res.Outcome)
		assert.Len(t, res.Candidates, 2)
		assert.Nil(t, res.Instance)
	})

	t.Run("no match", func(t *testing.T) {
		res, err := svc.GetDetails(ctx, "ffffff")
		require.NoError(t, err)
		assert.Equal(t, models.LookupNotFound, res.Outcome)
	})
}

func TestRegistryService_Close(t *testing.T) {
	svc, client := setupRegistry(t)
	ctx := context.Background()

	inst, err := svc.Register(ctx, models.RegisterInstanceRequest{Project: "billing", Type: "PS"})
	require.NoError(t, err)

	closed, err := svc.Close(ctx, inst.ID, "work finished")
	require.NoError(t, err)
	assert.Equal(t, instance.StatusClosed, closed.Status)
	require.NotNil(t, closed.ClosedAt)

	t.Run("stream ends with instance_closed", func(t *testing.T) {
		events, err := client.Event.Query().
			Where(event.InstanceID(inst.ID)).
			Order(ent.Asc(event.FieldSequenceNum)).
			All(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, events)
		last := events[len(events)-1]
		assert.Equal(t, event.EventTypeInstanceClosed, last.EventType)
		assert.Equal(t, "work finished", last.EventData["reason"])
	})

	t.Run("idempotent", func(t *testing.T) {
		before, err := client.Event.Query().Where(event.InstanceID(inst.ID)).Count(ctx)
		require.NoError(t, err)

		again, err := svc.Close(ctx, inst.ID, "again")
		require.NoError(t, err)
		assert.Equal(t, instance.StatusClosed, again.Status)

		after, err := client.Event.Query().Where(event.InstanceID(inst.ID)).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after, "second close must not append events")
	})
}

func TestRegistryService_MarkStale(t *testing.T) {
	svc, client := setupRegistry(t)
	ctx := context.Background()

	fresh, err := svc.Register(ctx, models.RegisterInstanceRequest{Project: "billing", Type: "PS"})
	require.NoError(t, err)
	old, err := svc.Register(ctx, models.RegisterInstanceRequest{Project: "billing", Type: "MS"})
	require.NoError(t, err)

	err = client.Instance.UpdateOneID(old.ID).
		SetLastHeartbeat(time.Now().Add(-testStaleAfter - time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	transitioned, err := svc.MarkStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{old.ID}, transitioned)

	got, err := client.Instance.Get(ctx, old.ID)
	require.NoError(t, err)
	assert.Equal(t, instance.StatusStale, got.Status)

	gotFresh, err := client.Instance.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, instance.StatusActive, gotFresh.Status)

	t.Run("idempotent across sweeps", func(t *testing.T) {
		again, err := svc.MarkStale(ctx)
		require.NoError(t, err)
		assert.Empty(t, again)
	})
}
