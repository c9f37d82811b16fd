/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// find.go implements the "eglob find" command for matching files on
// disk. The walker prunes directories that cannot lead to a match, so
// patterns with a fixed prefix never touch unrelated parts of the tree.

package cmd

import (
	"fmt"

	"github.com/jpl-au/eglob/internal/glob"
	"github.com/jpl-au/eglob/internal/log"
	"github.com/jpl-au/eglob/internal/walker"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find PATTERN [DIR]",
		Short: "Find files matching a pattern",
		Long: `Find files under a directory whose relative paths match an extended
glob pattern. DIR defaults to the current directory. Only files are
returned, never directories.

Examples:
  eglob find "**/*.go"
  eglob find "src/**/*_test.go" ~/project
  eglob find "docs/{api,guides}/*.md" -o json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runFind,
	}
}

func runFind(_ *cobra.Command, args []string) error {
	pattern := args[0]
	root := "."
	if len(args) > 1 {
		root = args[1]
	}

	l := log.Event("cli:find", "walk").Pattern(pattern).Detail("root", root)

	p, err := glob.CompileLimit(pattern, MaxExpansion())
	if err != nil {
		l.Write(err)
		return PrintJSONError(fmt.Errorf("compile %q: %w", pattern, err))
	}

	paths, err := walker.GlobPattern(afero.NewOsFs(), root, p)
	if err != nil {
		l.Write(err)
		return PrintJSONError(fmt.Errorf("find %q: %w", pattern, err))
	}

	l.Detail("count", len(paths)).Write(nil)

	if JSON() {
		if paths == nil {
			paths = []string{}
		}
		return PrintJSON(paths)
	}
	for _, path := range paths {
		fmt.Fprintln(Out(), path)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newFindCmd())
}
