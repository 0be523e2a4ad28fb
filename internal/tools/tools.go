// Package tools defines the MCP tools the server exposes and their handlers.
package tools

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"blogsmith-mcp/internal/appconfig"
)

const (
	// AddName is the canonical name for the addition tool.
	AddName = "add"
	// CalculateName is the canonical name for the four-operation calculator tool.
	CalculateName = "calculate"
	// LangchainRequestName is the canonical name for the generic HTTP proxy tool.
	LangchainRequestName = "langchain_request"
	// GenerateBlogName is the canonical name for the blog-generation tool.
	GenerateBlogName = "generate_blog"
)

// Registry owns the tool definitions and the shared collaborators their
// handlers need: the resolved configuration and one outbound HTTP client.
type Registry struct {
	cfg  appconfig.Config
	http *http.Client
}

// NewRegistry builds a registry around the given configuration. If httpClient
// is nil a default client with the configured timeout is used.
func NewRegistry(cfg appconfig.Config, httpClient *http.Client) *Registry {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout()}
	}
	return &Registry{cfg: cfg, http: httpClient}
}

// Entry pairs a tool definition with its handler.
type Entry struct {
	Tool    mcp.Tool
	Handler mcpserver.ToolHandlerFunc
}

// Entries returns every tool the registry exposes. Tool names are unique.
func (r *Registry) Entries() []Entry {
	return []Entry{
		{AddDefinition(), r.Add},
		{CalculateDefinition(), r.Calculate},
		{LangchainRequestDefinition(), r.LangchainRequest},
		{GenerateBlogDefinition(), r.GenerateBlog},
	}
}

// Register attaches every tool to the MCP server.
func (r *Registry) Register(s *mcpserver.MCPServer) {
	for _, e := range r.Entries() {
		s.AddTool(e.Tool, e.Handler)
	}
}

// formatNumber renders a float without a trailing fractional part when the
// value is integral, so add(2,3) reads "5" rather than "5.000000".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// errorMessage extracts a usable message from err, falling back to a generic
// string when the error carries none.
func errorMessage(err error) string {
	if err == nil || strings.TrimSpace(err.Error()) == "" {
		return "unknown error"
	}
	return err.Error()
}
