package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisworks/supervisor/ent"
	"github.com/praxisworks/supervisor/ent/activespawn"
	"github.com/praxisworks/supervisor/pkg/config"
	"github.com/praxisworks/supervisor/test/util"
)

func testRetentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		SpawnRetention:      24 * time.Hour,
		CommandLogRetention: 24 * time.Hour,
		CleanupInterval:     25 * time.Millisecond,
	}
}

func createSpawn(t *testing.T, client *ent.Client, id string, opts func(*ent.ActiveSpawnCreate)) {
	t.Helper()
	c := client.ActiveSpawn.Create().
		SetID(id).
		SetProjectPath("/srv/billing").
		SetProjectName("billing").
		SetTaskType("implementation").
		SetDescription("retention test spawn").
		SetService("codex").
		SetModel("gpt-5-codex").
		SetInstructionsPath("/tmp/in.md").
		SetOutputPath("/tmp/out.log")
	if opts != nil {
		opts(c)
	}
	require.NoError(t, c.Exec(context.Background()))
}

func createCommandRow(t *testing.T, client *ent.Client, age time.Duration) {
	t.Helper()
	require.NoError(t, client.CommandLogEntry.Create().
		SetCommandType("mcp").
		SetAction("tools/call").
		SetSuccess(true).
		SetCreatedAt(time.Now().Add(-age)).
		Exec(context.Background()))
}

func TestRunAll_PrunesExpiredRows(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(client, testRetentionConfig())

	old := time.Now().Add(-48 * time.Hour)
	fresh := time.Now().Add(-time.Hour)

	createSpawn(t, client, "200-aaaaaa", func(c *ent.ActiveSpawnCreate) {
		c.SetStatus(activespawn.StatusCompleted).SetEndedAt(old)
	})
	createSpawn(t, client, "200-bbbbbb", func(c *ent.ActiveSpawnCreate) {
		c.SetStatus(activespawn.StatusFailed).SetEndedAt(old)
	})
	createSpawn(t, client, "200-cccccc", func(c *ent.ActiveSpawnCreate) {
		c.SetStatus(activespawn.StatusCompleted).SetEndedAt(fresh)
	})
	// stalled has no ended_at and must survive any retention window
	createSpawn(t, client, "200-dddddd", func(c *ent.ActiveSpawnCreate) {
		c.SetStatus(activespawn.StatusStalled)
	})
	createSpawn(t, client, "200-eeeeee", nil) // running

	createCommandRow(t, client, 48*time.Hour)
	createCommandRow(t, client, time.Hour)

	svc.RunAll(ctx)

	remaining, err := client.ActiveSpawn.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"200-cccccc", "200-dddddd", "200-eeeeee"}, remaining)

	commands, err := client.CommandLogEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, commands)

	// second pass is a no-op
	svc.RunAll(ctx)
	commands, err = client.CommandLogEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, commands)
}

func TestStartStop(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client, testRetentionConfig())

	createSpawn(t, client, "200-ffffff", func(c *ent.ActiveSpawnCreate) {
		c.SetStatus(activespawn.StatusCompleted).SetEndedAt(time.Now().Add(-48 * time.Hour))
	})

	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		n, err := client.ActiveSpawn.Query().Count(context.Background())
		return err == nil && n == 0
	}, 2*time.Second, 20*time.Millisecond)
}
