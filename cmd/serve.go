/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// serve.go implements the "eglob serve" command for MCP server
// operation. Unlike other commands that run and exit, serve blocks
// indefinitely handling MCP requests over stdio.

package cmd

import (
	"github.com/jpl-au/eglob/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM
integration. Exposes pattern matching, compilation and file finding
as tools.`,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	return mcp.Serve(MaxExpansion())
}

func init() {
	rootCmd.AddCommand(newServeCmd())
}
