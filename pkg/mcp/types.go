// Package mcp hosts the per-project MCP multiplexer: one JSON-RPC 2.0
// endpoint per enabled project plus a meta endpoint, all dispatching
// through the tool registry.
package mcp

import "encoding/json"

// ProtocolVersion is the MCP protocol revision advertised by initialize.
const ProtocolVersion = "2024-11-05"

// Request is a JSON-RPC 2.0 request. The ID is kept raw and echoed back
// verbatim, so string and numeric ids both round-trip.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a successful JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  any             `json:"result"`
}

// ErrorResponse is an error JSON-RPC 2.0 response.
type ErrorResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Error   *ErrorDetail    `json:"error"`
}

// ErrorDetail carries the JSON-RPC error code plus debugging context.
// Data holds at least the error kind for application errors.
type ErrorDetail struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// JSON-RPC 2.0 standard error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// CodeAppError is the application error code; the kind travels in
// ErrorDetail.Data["kind"].
const CodeAppError = -32000

// InitializeResult is the initialize handshake payload.
type InitializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	ServerInfo      ServerInfo   `json:"serverInfo"`
	Project         *ProjectInfo `json:"project,omitempty"`
}

// ServerInfo names the endpoint.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ProjectInfo mirrors the endpoint's project in handshake responses.
type ProjectInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
}

// CallParams are the tools/call parameters.
type CallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// EndpointStats are the per-endpoint request counters reported by the
// meta statistics method.
type EndpointStats struct {
	Total   int64 `json:"total"`
	Success int64 `json:"success"`
	Error   int64 `json:"error"`
}
