package health

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisworks/supervisor/ent"
	"github.com/praxisworks/supervisor/ent/activespawn"
	"github.com/praxisworks/supervisor/ent/instance"
	"github.com/praxisworks/supervisor/pkg/config"
	"github.com/praxisworks/supervisor/pkg/models"
	"github.com/praxisworks/supervisor/pkg/services"
	"github.com/praxisworks/supervisor/test/util"
)

func testHealthConfig() *config.HealthConfig {
	return &config.HealthConfig{
		SweepInterval: 25 * time.Millisecond,
		StaleAfter:    120 * time.Second,
	}
}

func createSpawn(t *testing.T, client *ent.Client, id string, opts func(*ent.ActiveSpawnCreate)) *ent.ActiveSpawn {
	t.Helper()
	c := client.ActiveSpawn.Create().
		SetID(id).
		SetProjectPath("/srv/billing").
		SetProjectName("billing").
		SetTaskType("implementation").
		SetDescription("test spawn").
		SetService("codex").
		SetModel("gpt-5-codex").
		SetInstructionsPath("/tmp/in.md").
		SetOutputPath("/tmp/out.log")
	if opts != nil {
		opts(c)
	}
	row, err := c.Save(context.Background())
	require.NoError(t, err)
	return row
}

func spawnStatus(t *testing.T, client *ent.Client, id string) activespawn.Status {
	t.Helper()
	row, err := client.ActiveSpawn.Get(context.Background(), id)
	require.NoError(t, err)
	return row.Status
}

func TestSweep_StalledSpawns(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	registry := services.NewRegistryService(client, testHealthConfig().StaleAfter)
	sweeper := NewSweeper(client, registry, testHealthConfig())

	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)

	createSpawn(t, client, "100-aaaaaa", func(c *ent.ActiveSpawnCreate) { c.SetDeadlineAt(past) })
	createSpawn(t, client, "100-bbbbbb", func(c *ent.ActiveSpawnCreate) { c.SetDeadlineAt(future) })
	createSpawn(t, client, "100-cccccc", nil) // no deadline, never stalled
	createSpawn(t, client, "100-dddddd", func(c *ent.ActiveSpawnCreate) {
		c.SetDeadlineAt(past).SetStatus(activespawn.StatusCompleted)
	})

	sweeper.Sweep(ctx)

	assert.Equal(t, activespawn.StatusStalled, spawnStatus(t, client, "100-aaaaaa"))
	assert.Equal(t, activespawn.StatusRunning, spawnStatus(t, client, "100-bbbbbb"))
	assert.Equal(t, activespawn.StatusRunning, spawnStatus(t, client, "100-cccccc"))
	assert.Equal(t, activespawn.StatusCompleted, spawnStatus(t, client, "100-dddddd"),
		"finished spawns are left alone")

	// idempotent on the second pass
	sweeper.Sweep(ctx)
	assert.Equal(t, activespawn.StatusStalled, spawnStatus(t, client, "100-aaaaaa"))
}

func TestSweep_StaleInstances(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	registry := services.NewRegistryService(client, testHealthConfig().StaleAfter)
	sweeper := NewSweeper(client, registry, testHealthConfig())

	silent, err := registry.Register(ctx, models.RegisterInstanceRequest{Project: "billing", Type: "PS"})
	require.NoError(t, err)
	lively, err := registry.Register(ctx, models.RegisterInstanceRequest{Project: "billing", Type: "MS"})
	require.NoError(t, err)

	// age one heartbeat past the threshold
	require.NoError(t, client.Instance.UpdateOneID(silent.ID).
		SetLastHeartbeat(time.Now().Add(-3*time.Minute)).
		Exec(ctx))

	sweeper.Sweep(ctx)

	got, err := client.Instance.Get(ctx, silent.ID)
	require.NoError(t, err)
	assert.Equal(t, instance.StatusStale, got.Status)

	got, err = client.Instance.Get(ctx, lively.ID)
	require.NoError(t, err)
	assert.Equal(t, instance.StatusActive, got.Status)

	// stale is revivable: a heartbeat brings the instance back
	_, err = registry.Heartbeat(ctx, models.HeartbeatRequest{InstanceID: silent.ID, ContextPercent: 10})
	require.NoError(t, err)
	got, err = client.Instance.Get(ctx, silent.ID)
	require.NoError(t, err)
	assert.Equal(t, instance.StatusActive, got.Status)
}

func TestSweeper_Loop(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	registry := services.NewRegistryService(client, testHealthConfig().StaleAfter)
	sweeper := NewSweeper(client, registry, testHealthConfig())

	createSpawn(t, client, "100-eeeeee", func(c *ent.ActiveSpawnCreate) {
		c.SetDeadlineAt(time.Now().Add(-time.Second))
	})

	sweeper.Start(context.Background())
	defer sweeper.Stop()

	require.Eventually(t, func() bool {
		return spawnStatus(t, client, "100-eeeeee") == activespawn.StatusStalled
	}, 2*time.Second, 20*time.Millisecond)
}

func TestRecoverStartupOrphans(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	createSpawn(t, client, "100-ffffff", func(c *ent.ActiveSpawnCreate) { c.SetHostMachine("host-a") })
	createSpawn(t, client, "100-gggggg", func(c *ent.ActiveSpawnCreate) { c.SetHostMachine("host-b") })
	createSpawn(t, client, "100-hhhhhh", func(c *ent.ActiveSpawnCreate) {
		c.SetHostMachine("host-a").SetStatus(activespawn.StatusCompleted)
	})

	n, err := RecoverStartupOrphans(ctx, client, "host-a")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	row, err := client.ActiveSpawn.Get(ctx, "100-ffffff")
	require.NoError(t, err)
	assert.Equal(t, activespawn.StatusAbandoned, row.Status)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "host-a")
	assert.NotNil(t, row.EndedAt)

	assert.Equal(t, activespawn.StatusRunning, spawnStatus(t, client, "100-gggggg"),
		"other hosts' spawns are untouched")
	assert.Equal(t, activespawn.StatusCompleted, spawnStatus(t, client, "100-hhhhhh"))

	// second boot finds nothing
	n, err = RecoverStartupOrphans(ctx, client, "host-a")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
