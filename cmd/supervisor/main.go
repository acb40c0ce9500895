// Supervisor server: hosts per-project MCP endpoints, routes subagent
// work across backend AI CLIs, and keeps the instance/event registry.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/praxisworks/supervisor/pkg/cleanup"
	"github.com/praxisworks/supervisor/pkg/cliadapter"
	"github.com/praxisworks/supervisor/pkg/config"
	"github.com/praxisworks/supervisor/pkg/database"
	"github.com/praxisworks/supervisor/pkg/health"
	"github.com/praxisworks/supervisor/pkg/masking"
	"github.com/praxisworks/supervisor/pkg/mcp"
	"github.com/praxisworks/supervisor/pkg/orchestrator"
	"github.com/praxisworks/supervisor/pkg/router"
	"github.com/praxisworks/supervisor/pkg/services"
	"github.com/praxisworks/supervisor/pkg/spawn"
	"github.com/praxisworks/supervisor/pkg/template"
	"github.com/praxisworks/supervisor/pkg/tools"
	"github.com/praxisworks/supervisor/pkg/version"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:     "supervisor",
	Short:   "Multi-project supervisor for AI coding agents",
	Long:    "Hosts per-project MCP endpoints, spawns backend CLI subagents, and tracks instances, events, and secrets in PostgreSQL.",
	Version: version.Full(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the supervisor server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd.Context())
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run one health sweep pass and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSweep(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"), "Path to configuration directory")
	rootCmd.AddCommand(serveCmd, migrateCmd, sweepCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolveHostID determines the host identifier recorded on spawns.
// Priority: HOST_ID env > HOSTNAME env > os.Hostname > "local"
func resolveHostID() string {
	if id := os.Getenv("HOST_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		return hostname
	}
	return "local"
}

// loadEnvFile loads .env from the config directory. Missing files are
// fine; the process environment stays authoritative either way.
func loadEnvFile() {
	envPath := filepath.Join(configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
		return
	}
	slog.Info("Loaded environment", "path", envPath)
}

func openDatabase(ctx context.Context) (*database.Client, database.Config, error) {
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, database.Config{}, fmt.Errorf("loading database config: %w", err)
	}
	client, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		return nil, database.Config{}, fmt.Errorf("connecting to database: %w", err)
	}
	return client, dbConfig, nil
}

// applyProjectScopes installs each project's tool restriction. Projects
// without an explicit list see everything.
func applyProjectScopes(registry *tools.Registry, snapshot *config.ProjectSnapshot) {
	for _, name := range snapshot.Names() {
		p, _ := snapshot.Get(name)
		registry.SetProjectTools(name, p.Tools)
	}
}

func runServe(ctx context.Context) error {
	loadEnvFile()

	httpPort := getEnv("HTTP_PORT", "8420")
	hostID := resolveHostID()

	slog.Info("Starting supervisor",
		"version", version.Full(),
		"http_port", httpPort,
		"host_id", hostID,
		"config_dir", configDir)

	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		return fmt.Errorf("initializing configuration: %w", err)
	}

	dbClient, _, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// One-time startup orphan recovery, before any new spawn starts.
	if _, err := health.RecoverStartupOrphans(ctx, dbClient.Client, hostID); err != nil {
		slog.Error("Startup orphan recovery failed", "error", err)
		// non-fatal, recovery reruns on the next boot
	}

	registrySvc := services.NewRegistryService(dbClient.Client, cfg.Health.StaleAfter)
	eventLog := services.NewEventLogService(dbClient.Client)

	masterKey, err := services.ParseMasterKey(os.Getenv("SUPERVISOR_SECRET_KEY"))
	if err != nil {
		return fmt.Errorf("SUPERVISOR_SECRET_KEY: %w", err)
	}
	secretSvc, err := services.NewSecretService(dbClient.Client, masterKey, getEnv("SUPERVISOR_KEY_ID", "primary"))
	if err != nil {
		return fmt.Errorf("initializing secret service: %w", err)
	}
	slog.Info("Services initialized")

	adapters := cliadapter.NewRegistry(cfg.Adapters)
	rtr := router.NewRouter(cfg.Router, adapters)

	templates, err := template.NewLibrary(cfg.TemplatesDir)
	if err != nil {
		return fmt.Errorf("loading template library: %w", err)
	}

	engine := spawn.NewEngine(dbClient.Client, rtr, adapters, templates, eventLog, cfg.Spawn)
	orch := orchestrator.New(engine, eventLog, cfg.Orchestrator, createPullRequest)

	collaborators := tools.Collaborators{
		AllocatePort: allocatePort,
		CreatePR:     createPullRequest,
		Redact:       masking.NewRedactor().Redact,
	}
	if domain := os.Getenv("SUPERVISOR_DNS_DOMAIN"); domain != "" {
		collaborators.SyncDNS = newDNSSync(domain, os.Getenv("SUPERVISOR_DNS_SYNC_CMD"))
	}

	toolRegistry := tools.NewRegistry()
	if err := tools.RegisterBuiltins(toolRegistry, tools.Deps{
		Registry:      registrySvc,
		Events:        eventLog,
		Secrets:       secretSvc,
		Spawner:       engine,
		Orchestrator:  orch,
		Collaborators: collaborators,
	}); err != nil {
		return fmt.Errorf("registering builtin tools: %w", err)
	}
	applyProjectScopes(toolRegistry, cfg.Projects)

	server := mcp.NewServer(cfg.Projects, toolRegistry, eventLog, dbClient.DB())

	sweeper := health.NewSweeper(dbClient.Client, registrySvc, cfg.Health)
	sweeper.Start(ctx)

	retention := cleanup.NewService(dbClient.Client, cfg.Retention)
	retention.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	stats := cfg.Stats()
	slog.Info("Supervisor started successfully",
		"host_id", hostID,
		"projects", stats.Projects,
		"models", stats.Models,
		"adapters", stats.Adapters)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	hupCh := make(chan os.Signal, 1)
	signal.Notify(hupCh, syscall.SIGHUP)

loop:
	for {
		select {
		case <-hupCh:
			snapshot, err := config.Reload(ctx, configDir)
			if err != nil {
				slog.Error("Configuration reload failed, keeping current snapshot", "error", err)
				continue
			}
			server.Reload(snapshot)
			applyProjectScopes(toolRegistry, snapshot)
			slog.Info("Configuration reloaded", "projects", snapshot.Len())
		case sig := <-sigCh:
			slog.Info("Shutdown signal received", "signal", sig)
			break loop
		case err := <-errCh:
			slog.Error("Server error triggered shutdown", "error", err)
			break loop
		}
	}

	// Background loops first so nothing races the connection teardown,
	// then drain HTTP on its own timeout budget.
	sweeper.Stop()
	retention.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 10*time.Second)
	defer httpCancel()
	if err := server.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
	return nil
}

func runMigrate(ctx context.Context) error {
	loadEnvFile()

	dbClient, dbConfig, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = dbClient.Close() }()

	// NewClient already applied pending migrations; re-running is a
	// no-op and confirms the schema is current.
	if err := database.RunMigrations(ctx, dbClient.DB(), dbConfig); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	slog.Info("Database schema is up to date", "database", dbConfig.Database)
	return nil
}

func runSweep(ctx context.Context) error {
	loadEnvFile()

	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		return fmt.Errorf("initializing configuration: %w", err)
	}

	dbClient, _, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = dbClient.Close() }()

	registrySvc := services.NewRegistryService(dbClient.Client, cfg.Health.StaleAfter)
	health.NewSweeper(dbClient.Client, registrySvc, cfg.Health).Sweep(ctx)
	slog.Info("Sweep complete")
	return nil
}
