package models

// MetaProject is the implicit always-enabled project backing the meta
// endpoint. It has no working directory; tools that need one must receive
// it explicitly.
const MetaProject = "meta"

// ProjectContext identifies the project an MCP request was routed to.
// Attached by the multiplexer from the endpoint path; handlers must use it
// instead of process-global state. Treated as copy-on-read.
type ProjectContext struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
	Path        string `json:"path"`
}

// CallerContext carries per-request identity into tool handlers.
type CallerContext struct {
	// InstanceID is the supervisor session on whose behalf the request runs.
	// Empty for anonymous callers.
	InstanceID string

	// Project is the endpoint's project snapshot. Nil only on the meta
	// endpoint.
	Project *ProjectContext
}
