package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisworks/supervisor/ent"
	"github.com/praxisworks/supervisor/pkg/config"
	"github.com/praxisworks/supervisor/pkg/models"
	"github.com/praxisworks/supervisor/pkg/tools"
)

type loggedCommand struct {
	instanceID string
	entry      models.CommandEntry
}

type fakeSink struct {
	commands []loggedCommand
}

func (f *fakeSink) LogCommand(_ context.Context, instanceID string, entry models.CommandEntry) (*ent.CommandLogEntry, error) {
	f.commands = append(f.commands, loggedCommand{instanceID, entry})
	return &ent.CommandLogEntry{}, nil
}

func testSnapshot() *config.ProjectSnapshot {
	disabled := false
	return config.NewProjectSnapshot([]*config.ProjectConfig{
		{Name: "billing", DisplayName: "Billing", Path: "/srv/billing"},
		{Name: "website", Path: "/srv/website"},
		{Name: "legacy", Path: "/srv/legacy", Enabled: &disabled},
	})
}

func newTestServer(t *testing.T) (*Server, *fakeSink) {
	registry := tools.NewRegistry()
	require.NoError(t, registry.Register(tools.Definition{
		Name:        "echo_args",
		Description: "returns its arguments",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{"text": map[string]any{"type": "string"}},
			"required":   []string{"text"},
		},
	}, func(_ context.Context, caller models.CallerContext, args map[string]any) (any, error) {
		out := map[string]any{"text": args["text"]}
		if caller.Project != nil {
			out["project"] = caller.Project.Name
		}
		out["instance_id"] = caller.InstanceID
		return out, nil
	}))
	require.NoError(t, registry.Register(tools.Definition{
		Name:        "always_fails",
		Description: "returns a quota error",
	}, func(context.Context, models.CallerContext, map[string]any) (any, error) {
		return nil, models.NewKindError(models.KindQuotaExhausted, "no service has quota")
	}))
	registry.SetProjectTools("website", []string{"echo_args"})

	sink := &fakeSink{}
	return NewServer(testSnapshot(), registry, sink, nil), sink
}

func rpc(t *testing.T, s *Server, project, body string) (int, map[string]any) {
	req := httptest.NewRequest(http.MethodPost, "/mcp/"+project, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}
	return rec.Code, payload
}

func TestInitialize(t *testing.T) {
	s, _ := newTestServer(t)

	code, payload := rpc(t, s, "billing", `{"jsonrpc":"2.0","id":"1","method":"initialize"}`)
	require.Equal(t, http.StatusOK, code)
	result := payload["result"].(map[string]any)
	assert.Equal(t, ProtocolVersion, result["protocolVersion"])
	assert.Equal(t, "supervisor-billing", result["serverInfo"].(map[string]any)["name"])
	project := result["project"].(map[string]any)
	assert.Equal(t, "billing", project["name"])
	assert.Equal(t, "Billing", project["displayName"])

	// meta handshake has no project block
	_, payload = rpc(t, s, "meta", `{"jsonrpc":"2.0","id":"2","method":"initialize"}`)
	result = payload["result"].(map[string]any)
	assert.NotContains(t, result, "project")
}

func TestUnknownAndDisabledEndpoints(t *testing.T) {
	s, _ := newTestServer(t)

	code, _ := rpc(t, s, "nope", `{"jsonrpc":"2.0","id":"1","method":"ping"}`)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = rpc(t, s, "legacy", `{"jsonrpc":"2.0","id":"1","method":"ping"}`)
	assert.Equal(t, http.StatusNotFound, code, "disabled projects are not hosted")
}

func TestPingAndEnvelopeErrors(t *testing.T) {
	s, _ := newTestServer(t)

	_, payload := rpc(t, s, "billing", `{"jsonrpc":"2.0","id":7,"method":"ping"}`)
	assert.Equal(t, true, payload["result"].(map[string]any)["ok"])
	assert.Equal(t, float64(7), payload["id"], "numeric ids round-trip")

	_, payload = rpc(t, s, "billing", `{not json`)
	errObj := payload["error"].(map[string]any)
	assert.Equal(t, float64(CodeParseError), errObj["code"])

	_, payload = rpc(t, s, "billing", `{"jsonrpc":"1.0","id":"1","method":"ping"}`)
	errObj = payload["error"].(map[string]any)
	assert.Equal(t, float64(CodeInvalidRequest), errObj["code"])

	_, payload = rpc(t, s, "billing", `{"jsonrpc":"2.0","id":"1","method":"bogus"}`)
	errObj = payload["error"].(map[string]any)
	assert.Equal(t, float64(CodeMethodNotFound), errObj["code"])
}

func TestToolsListScoping(t *testing.T) {
	s, _ := newTestServer(t)

	names := func(payload map[string]any) []string {
		raw := payload["result"].(map[string]any)["tools"].([]any)
		var out []string
		for _, item := range raw {
			out = append(out, item.(map[string]any)["name"].(string))
		}
		return out
	}

	_, payload := rpc(t, s, "billing", `{"jsonrpc":"2.0","id":"1","method":"tools/list"}`)
	assert.Equal(t, []string{"always_fails", "echo_args"}, names(payload))

	_, payload = rpc(t, s, "website", `{"jsonrpc":"2.0","id":"1","method":"tools/list"}`)
	assert.Equal(t, []string{"echo_args"}, names(payload))

	_, payload = rpc(t, s, "meta", `{"jsonrpc":"2.0","id":"1","method":"tools/list"}`)
	assert.Equal(t, []string{"always_fails", "echo_args"}, names(payload))
}

func TestToolsCall(t *testing.T) {
	s, sink := newTestServer(t)

	_, payload := rpc(t, s, "billing",
		`{"jsonrpc":"2.0","id":"1","method":"tools/call","params":{"name":"echo_args","arguments":{"text":"hi","instance_id":"billing-PS-abc123"}}}`)
	result := payload["result"].(map[string]any)
	assert.Equal(t, "hi", result["text"])
	assert.Equal(t, "billing", result["project"], "handler sees the endpoint project")
	assert.Equal(t, "billing-PS-abc123", result["instance_id"])

	// schema violation maps to -32602
	_, payload = rpc(t, s, "billing",
		`{"jsonrpc":"2.0","id":"2","method":"tools/call","params":{"name":"echo_args","arguments":{}}}`)
	errObj := payload["error"].(map[string]any)
	assert.Equal(t, float64(CodeInvalidParams), errObj["code"])

	// out-of-scope tool maps to -32601 on the restricted endpoint
	_, payload = rpc(t, s, "website",
		`{"jsonrpc":"2.0","id":"3","method":"tools/call","params":{"name":"always_fails","arguments":{}}}`)
	errObj = payload["error"].(map[string]any)
	assert.Equal(t, float64(CodeMethodNotFound), errObj["code"])

	// app errors carry the kind in data
	_, payload = rpc(t, s, "billing",
		`{"jsonrpc":"2.0","id":"4","method":"tools/call","params":{"name":"always_fails","arguments":{}}}`)
	errObj = payload["error"].(map[string]any)
	assert.Equal(t, float64(CodeAppError), errObj["code"])
	assert.Equal(t, "QuotaExhausted", errObj["data"].(map[string]any)["kind"])

	// every request produced a command row; the first carries attribution
	require.Len(t, sink.commands, 4)
	assert.Equal(t, "billing-PS-abc123", sink.commands[0].instanceID)
	assert.Equal(t, "echo_args", sink.commands[0].entry.ToolName)
	assert.True(t, sink.commands[0].entry.Success)
	assert.Equal(t, "", sink.commands[1].instanceID)
	assert.False(t, sink.commands[1].entry.Success)
	assert.Equal(t, []string{"billing"}, sink.commands[0].entry.Tags)
}

func TestStatistics(t *testing.T) {
	s, _ := newTestServer(t)

	rpc(t, s, "billing", `{"jsonrpc":"2.0","id":"1","method":"ping"}`)
	rpc(t, s, "billing", `{"jsonrpc":"2.0","id":"2","method":"bogus"}`)
	rpc(t, s, "website", `{"jsonrpc":"2.0","id":"3","method":"ping"}`)

	// statistics is meta-only
	_, payload := rpc(t, s, "billing", `{"jsonrpc":"2.0","id":"4","method":"statistics"}`)
	assert.Equal(t, float64(CodeMethodNotFound), payload["error"].(map[string]any)["code"])

	_, payload = rpc(t, s, "meta", `{"jsonrpc":"2.0","id":"5","method":"statistics"}`)
	endpoints := payload["result"].(map[string]any)["endpoints"].(map[string]any)
	billing := endpoints["billing"].(map[string]any)
	assert.Equal(t, float64(3), billing["total"])
	assert.Equal(t, float64(1), billing["success"])
	assert.Equal(t, float64(2), billing["error"])
}

func TestReloadSwapsSnapshot(t *testing.T) {
	s, _ := newTestServer(t)

	code, _ := rpc(t, s, "newproj", `{"jsonrpc":"2.0","id":"1","method":"ping"}`)
	assert.Equal(t, http.StatusNotFound, code)

	s.Reload(config.NewProjectSnapshot([]*config.ProjectConfig{
		{Name: "newproj", Path: "/srv/newproj"},
	}))

	code, _ = rpc(t, s, "newproj", `{"jsonrpc":"2.0","id":"2","method":"ping"}`)
	assert.Equal(t, http.StatusOK, code)

	code, _ = rpc(t, s, "billing", `{"jsonrpc":"2.0","id":"3","method":"ping"}`)
	assert.Equal(t, http.StatusNotFound, code, "old projects drop out after reload")
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
