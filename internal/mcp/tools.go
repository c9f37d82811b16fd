// tools.go implements the MCP tool handlers.
//
// Separated from server.go to keep tool registration (the surface an MCP
// client sees) apart from the handler bodies. Each handler compiles the
// requested pattern with the server's expansion ceiling, performs the
// operation, and writes an audit log entry exactly the way the CLI
// commands do.

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/afero"

	"github.com/jpl-au/eglob/internal/glob"
	"github.com/jpl-au/eglob/internal/log"
	"github.com/jpl-au/eglob/internal/walker"
)

// matchPaths handles eglob_match tool calls.
func (h *handlers) matchPaths(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}
	paths := getStrings(req, "paths")
	if len(paths) == 0 {
		return mcp.NewToolResultError("paths is required"), nil
	}

	p, err := glob.CompileLimit(pattern, h.maxExpansion)

	l := log.Event("mcp:eglob_match", "match").Pattern(pattern).Detail("candidates", len(paths))

	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	matched := make([]string, 0, len(paths))
	for _, candidate := range paths {
		if p.Match(candidate) {
			matched = append(matched, candidate)
		}
	}

	l.Detail("count", len(matched)).Write(nil)

	return jsonResult(matched)
}

// compilePattern handles eglob_compile tool calls.
func (h *handlers) compilePattern(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}

	p, err := glob.CompileLimit(pattern, h.maxExpansion)

	log.Event("mcp:eglob_compile", "compile").Pattern(pattern).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	fixed, _ := p.SplitFixedPrefix()
	return jsonResult(map[string]any{
		"pattern":      p.String(),
		"recursive":    p.Recursive(),
		"fixed_prefix": fixed,
	})
}

// findFiles handles eglob_find tool calls.
func (h *handlers) findFiles(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}
	root := getString(req, "root", ".")

	p, err := glob.CompileLimit(pattern, h.maxExpansion)

	l := log.Event("mcp:eglob_find", "find").Pattern(pattern).Detail("root", root)

	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	paths, err := walker.GlobPattern(afero.NewOsFs(), root, p)

	l.Detail("count", len(paths)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(paths)
}
