// Package mcp implements the Model Context Protocol server, exposing
// eglob pattern matching to LLMs. This enables AI assistants to test
// glob patterns and enumerate matching files through a standardised
// protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other
// MCP clients. maxExpansion is the alternation expansion ceiling applied
// to every pattern compiled on behalf of a client.
func Serve(maxExpansion int) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{maxExpansion: maxExpansion}

	s := server.NewMCPServer(
		"eglob",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, h)

	slog.Info("eglob MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers.
type handlers struct {
	maxExpansion int
}

// registerTools exposes eglob operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	// Match candidate paths against a pattern
	s.AddTool(
		mcp.NewTool("eglob_match",
			mcp.WithDescription("Match candidate paths against an extended glob pattern (*, ?, **, {a,b}, [0-9], [!0-9])"),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Glob pattern, e.g. '**/*.{ts,js}'")),
			mcp.WithArray("paths", mcp.Required(), mcp.Description("Candidate paths to test")),
		),
		h.matchPaths,
	)

	// Validate a pattern
	s.AddTool(
		mcp.NewTool("eglob_compile",
			mcp.WithDescription("Validate an extended glob pattern and report its structure"),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Glob pattern to validate")),
		),
		h.compilePattern,
	)

	// Enumerate matching files on disk
	s.AddTool(
		mcp.NewTool("eglob_find",
			mcp.WithDescription("Find files under a directory matching an extended glob pattern"),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Glob pattern, e.g. 'src/**/*.go'")),
			mcp.WithString("root", mcp.Description("Directory to search (default: current directory)")),
		),
		h.findFiles,
	)
}
