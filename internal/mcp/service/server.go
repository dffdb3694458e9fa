// Package service hosts the MCP server: it wires the domain tool handlers
// to the draft, theme, variant, and publishing dependencies and serves
// them over stdio or HTTP.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/postforge/internal/compose/theme"
	"github.com/louisbranch/postforge/internal/compose/variant"
	"github.com/louisbranch/postforge/internal/draft"
	"github.com/louisbranch/postforge/internal/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "PostForge MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP serves MCP over the streamable HTTP transport.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	HTTPAddr  string // HTTP server address (e.g., "localhost:8081"). Defaults to localhost:8081 for HTTP transport.
}

// Deps carries the services the MCP tools operate on.
type Deps struct {
	Drafts    *draft.Service
	Themes    *theme.Manager
	Publisher domain.Publisher
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
	themes    *theme.Manager
}

// New creates a configured MCP server with every tool and resource
// registered against the provided dependencies.
func New(deps Deps) (*Server, error) {
	if deps.Drafts == nil {
		return nil, fmt.Errorf("draft service is required")
	}
	if deps.Themes == nil {
		return nil, fmt.Errorf("theme manager is required")
	}
	if deps.Publisher == nil {
		return nil, fmt.Errorf("publisher is required")
	}

	server := &Server{themes: deps.Themes}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		CompletionHandler: server.completionHandler,
	})
	server.mcpServer = mcpServer

	registerDraftTools(mcpServer, deps.Drafts)
	registerComponentTools(mcpServer, deps.Drafts)
	registerComposeTools(mcpServer, deps.Drafts)
	registerThemeTools(mcpServer, deps.Themes)
	registerVariantTools(mcpServer, deps.Themes)
	registerPublishTools(mcpServer, deps.Drafts, deps.Publisher)
	registerDraftResources(mcpServer, deps.Drafts)
	registerThemeResources(mcpServer, deps.Themes)
	registerVariantResources(mcpServer)

	return server, nil
}

// completionHandler completes theme and post type arguments from the live
// registries; every other argument completes empty.
func (s *Server) completionHandler(ctx context.Context, req *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	values := []string{}
	if req != nil && req.Params != nil {
		switch req.Params.Argument.Name {
		case "theme", "name":
			values = prefixFilter(s.themes.List(), req.Params.Argument.Value)
		case "post_type":
			values = prefixFilter(variant.PostTypes(), req.Params.Argument.Value)
		}
	}
	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values: values,
		},
	}, nil
}

func prefixFilter(options []string, prefix string) []string {
	values := []string{}
	for _, option := range options {
		if strings.HasPrefix(option, prefix) {
			values = append(values, option)
		}
	}
	return values
}

// Run creates and serves the MCP server until the context ends.
func Run(ctx context.Context, deps Deps, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	server, err := New(deps)
	if err != nil {
		return err
	}

	switch cfg.Transport {
	case TransportStdio:
		return server.serveWithTransport(ctx, &mcp.StdioTransport{})
	case TransportHTTP:
		return server.serveHTTP(ctx, cfg.HTTPAddr)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
