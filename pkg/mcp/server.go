package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/praxisworks/supervisor/ent"
	"github.com/praxisworks/supervisor/pkg/config"
	"github.com/praxisworks/supervisor/pkg/database"
	"github.com/praxisworks/supervisor/pkg/models"
	"github.com/praxisworks/supervisor/pkg/tools"
	"github.com/praxisworks/supervisor/pkg/version"
)

const commandLogTimeout = 5 * time.Second

// toolExecutor is the slice of the tool registry the server dispatches to.
type toolExecutor interface {
	ListTools(project string) []tools.Definition
	Execute(ctx context.Context, project, name string, args map[string]any, caller models.CallerContext) (any, error)
}

// commandSink persists one command row per request. Nil disables logging.
type commandSink interface {
	LogCommand(ctx context.Context, instanceID string, entry models.CommandEntry) (*ent.CommandLogEntry, error)
}

// Server multiplexes JSON-RPC endpoints over enabled projects. The
// project snapshot is swapped atomically on reload; each request reads
// it once and keeps that view for its whole lifetime.
type Server struct {
	echo     *echo.Echo
	http     *http.Server
	snapshot atomic.Pointer[config.ProjectSnapshot]
	tools    toolExecutor
	commands commandSink
	db       *sql.DB

	mu    sync.Mutex
	stats map[string]*EndpointStats

	logger *slog.Logger
}

// NewServer builds the multiplexer. db may be nil; /healthz then only
// reports process liveness.
func NewServer(snapshot *config.ProjectSnapshot, registry toolExecutor, commands commandSink, db *sql.DB) *Server {
	s := &Server{
		tools:    registry,
		commands: commands,
		db:       db,
		stats:    map[string]*EndpointStats{},
		logger:   slog.With("component", "mcp"),
	}
	s.snapshot.Store(snapshot)

	e := echo.New()
	e.Use(securityHeaders())
	e.POST("/mcp/:project", s.rpcHandler)
	e.GET("/healthz", s.healthHandler)
	s.echo = e
	return s
}

// Reload swaps in a new project snapshot. In-flight requests keep the
// snapshot they started with.
func (s *Server) Reload(snapshot *config.ProjectSnapshot) {
	s.snapshot.Store(snapshot)
	s.logger.Info("Project snapshot reloaded", "projects", snapshot.Len())
}

// Start serves until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{Addr: addr, Handler: s.echo}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Handler exposes the routing tree for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Statistics returns a copy of the per-endpoint counters.
func (s *Server) Statistics() map[string]EndpointStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]EndpointStats, len(s.stats))
	for name, st := range s.stats {
		out[name] = *st
	}
	return out
}

func (s *Server) rpcHandler(c *echo.Context) error {
	project := c.Param("project")
	snapshot := s.snapshot.Load()

	var projectCtx *models.ProjectContext
	if project != models.MetaProject {
		projectCtx = snapshot.Context(project)
		if projectCtx == nil {
			return echo.NewHTTPError(http.StatusNotFound, "unknown project endpoint")
		}
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "reading request body")
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		s.count(project, false)
		return c.JSON(http.StatusOK, errorResponse(nil, CodeParseError, "invalid JSON", nil))
	}
	if req.JSONRPC != "2.0" || req.Method == "" {
		s.count(project, false)
		return c.JSON(http.StatusOK, errorResponse(req.ID, CodeInvalidRequest, "not a JSON-RPC 2.0 request", nil))
	}

	start := time.Now()
	result, detail := s.dispatch(c.Request().Context(), project, projectCtx, &req)
	s.count(project, detail == nil)
	s.logCommand(project, &req, detail, time.Since(start))

	if detail != nil {
		return c.JSON(http.StatusOK, &ErrorResponse{JSONRPC: "2.0", ID: req.ID, Error: detail})
	}
	return c.JSON(http.StatusOK, &Response{JSONRPC: "2.0", ID: req.ID, Result: result})
}

func (s *Server) dispatch(ctx context.Context, project string, projectCtx *models.ProjectContext, req *Request) (any, *ErrorDetail) {
	switch req.Method {
	case "initialize":
		return s.initializeResult(project, projectCtx), nil

	case "ping":
		return map[string]any{"ok": true}, nil

	case "tools/list":
		return map[string]any{"tools": s.tools.ListTools(project)}, nil

	case "tools/call":
		var params CallParams
		if len(req.Params) > 0 {
			if err := json.Unmarshal(req.Params, &params); err != nil {
				return nil, &ErrorDetail{Code: CodeInvalidParams, Message: "invalid tools/call params"}
			}
		}
		if params.Name == "" {
			return nil, &ErrorDetail{Code: CodeInvalidParams, Message: "tool name is required"}
		}
		caller := models.CallerContext{Project: projectCtx}
		if id, ok := params.Arguments["instance_id"].(string); ok {
			caller.InstanceID = id
		}
		result, err := s.tools.Execute(ctx, project, params.Name, params.Arguments, caller)
		if err != nil {
			return nil, toErrorDetail(err)
		}
		return result, nil

	case "statistics":
		// exposed on the meta endpoint only
		if project != models.MetaProject {
			return nil, &ErrorDetail{Code: CodeMethodNotFound, Message: "method not available on project endpoints"}
		}
		return map[string]any{"endpoints": s.Statistics()}, nil

	default:
		return nil, &ErrorDetail{Code: CodeMethodNotFound, Message: "unknown method: " + req.Method}
	}
}

func (s *Server) initializeResult(project string, projectCtx *models.ProjectContext) *InitializeResult {
	result := &InitializeResult{
		ProtocolVersion: ProtocolVersion,
		ServerInfo: ServerInfo{
			Name:    version.AppName + "-" + project,
			Version: version.GitCommit,
		},
	}
	if projectCtx != nil {
		result.Project = &ProjectInfo{
			Name:        projectCtx.Name,
			DisplayName: projectCtx.DisplayName,
			Description: projectCtx.Description,
		}
	}
	return result
}

// healthHandler reports DB health when a pool is wired. Unauthenticated,
// so the payload stays minimal.
func (s *Server) healthHandler(c *echo.Context) error {
	if s.db == nil {
		return c.JSON(http.StatusOK, map[string]any{"status": "healthy"})
	}

	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(reqCtx, s.db)
	status := http.StatusOK
	if err != nil {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":   dbHealth.Status,
		"database": dbHealth,
	})
}

func (s *Server) count(project string, success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stats[project]
	if !ok {
		st = &EndpointStats{}
		s.stats[project] = st
	}
	st.Total++
	if success {
		st.Success++
	} else {
		st.Error++
	}
}

// logCommand persists the request as a command row. Failures are logged,
// never surfaced: auditing must not fail requests.
func (s *Server) logCommand(project string, req *Request, detail *ErrorDetail, took time.Duration) {
	if s.commands == nil {
		return
	}

	entry := models.CommandEntry{
		CommandType:     "mcp",
		Action:          req.Method,
		Success:         detail == nil,
		ExecutionTimeMs: took.Milliseconds(),
		Tags:            []string{project},
	}
	instanceID := ""
	if req.Method == "tools/call" && len(req.Params) > 0 {
		var params CallParams
		if err := json.Unmarshal(req.Params, &params); err == nil {
			entry.ToolName = params.Name
			if id, ok := params.Arguments["instance_id"].(string); ok {
				instanceID = id
			}
		}
	}
	if detail != nil {
		entry.ErrorMessage = detail.Message
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandLogTimeout)
	defer cancel()
	if _, err := s.commands.LogCommand(ctx, instanceID, entry); err != nil {
		s.logger.Warn("Failed to log command", "method", req.Method, "error", err)
	}
}

func errorResponse(id json.RawMessage, code int, message string, data map[string]any) *ErrorResponse {
	return &ErrorResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &ErrorDetail{Code: code, Message: message, Data: data},
	}
}

// toErrorDetail maps tool and service errors to JSON-RPC codes. A tool
// hidden by scope is indistinguishable from a missing one.
func toErrorDetail(err error) *ErrorDetail {
	if errors.Is(err, tools.ErrUnknownTool) || errors.Is(err, tools.ErrOutOfScope) {
		return &ErrorDetail{Code: CodeMethodNotFound, Message: err.Error()}
	}
	kind := models.KindOf(err)
	if kind == models.KindValidation {
		return &ErrorDetail{Code: CodeInvalidParams, Message: err.Error()}
	}
	return &ErrorDetail{
		Code:    CodeAppError,
		Message: err.Error(),
		Data:    map[string]any{"kind": string(kind)},
	}
}

// securityHeaders sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}
