// Package server provides the HTTP surface and MCP wiring for blogsmith-mcp.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"blogsmith-mcp/internal/appconfig"
	"blogsmith-mcp/internal/tools"
)

const (
	// Name identifies this server to MCP clients during initialize.
	Name = "blogsmith-mcp"
	// Version is reported alongside Name.
	Version = "0.1.0"

	// SSEPath is the streaming (event-based) endpoint.
	SSEPath = "/sse"
	// MessagePath receives client messages for SSE sessions.
	MessagePath = "/message"
	// MCPPath is the single-shot streamable HTTP endpoint.
	MCPPath = "/mcp"
)

// Server wires the tool registry to both MCP transports behind one router.
type Server struct {
	cfg    appconfig.Config
	router *chi.Mux
	mcp    *mcpserver.MCPServer
}

// New constructs a Server with middleware, transports, and routes configured.
func New(cfg appconfig.Config) *Server {
	registry := tools.NewRegistry(cfg, nil)

	m := mcpserver.NewMCPServer(Name, Version,
		mcpserver.WithRecovery(),
		mcpserver.WithToolHandlerMiddleware(logToolCalls()),
		mcpserver.WithToolHandlerMiddleware(validateArguments(registry.Entries())),
	)
	registry.Register(m)

	s := &Server{cfg: cfg, router: chi.NewRouter(), mcp: m}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	// No request timeout here: SSE connections are long-lived by design.

	s.router.Get("/health", s.handleHealth)

	sse := mcpserver.NewSSEServer(m,
		mcpserver.WithSSEEndpoint(SSEPath),
		mcpserver.WithMessageEndpoint(MessagePath),
	)
	streamable := mcpserver.NewStreamableHTTPServer(m,
		mcpserver.WithEndpointPath(MCPPath),
	)

	s.router.Group(func(r chi.Router) {
		if cfg.AuthToken != "" {
			r.Use(s.auth)
		}
		r.Handle(SSEPath, sse.SSEHandler())
		r.Handle(MessagePath, sse.MessageHandler())
		r.Handle(MCPPath, streamable)
	})

	return s
}

// Router exposes the root HTTP handler for the server.
func (s *Server) Router() http.Handler { return s.router }

// auth guards the MCP endpoints with a static bearer token.
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+s.cfg.AuthToken {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
