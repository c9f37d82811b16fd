/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// match.go implements the "eglob match" command for testing paths
// against a pattern.
//
// Paths come from arguments or, when none are given, one per line on
// stdin. This makes match composable with find, ls and similar tools:
//   find . -type f | eglob match "**/*.go"

package cmd

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/jpl-au/eglob/internal/glob"
	"github.com/jpl-au/eglob/internal/log"
	"github.com/spf13/cobra"
)

// errNoMatch signals a quiet-mode run where nothing matched. It carries
// no message because quiet mode suppresses all output.
var errNoMatch = errors.New("no match")

func newMatchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "match PATTERN [PATH...]",
		Short: "Test paths against a pattern",
		Long: `Test paths against an extended glob pattern and print the ones that match.

Paths are taken from arguments, or from stdin (one per line) when no
path arguments are given.

Examples:
  eglob match "src/**/*.go" src/main.go src/util_test.py
  find . -type f | eglob match "**/*.md"
  eglob match -q "docs/*" docs/readme && echo matched`,
		Args: cobra.MinimumNArgs(1),
		RunE: runMatch,
	}
	c.Flags().BoolP("quiet", "q", false, "Suppress output; exit 0 if any path matched")
	return c
}

func runMatch(c *cobra.Command, args []string) error {
	quiet, _ := c.Flags().GetBool("quiet")
	pattern := args[0]

	l := log.Event("cli:match", "match").Pattern(pattern)

	p, err := glob.CompileLimit(pattern, MaxExpansion())
	if err != nil {
		l.Write(err)
		return PrintJSONError(fmt.Errorf("compile %q: %w", pattern, err))
	}

	paths := args[1:]
	if len(paths) == 0 {
		sc := bufio.NewScanner(c.InOrStdin())
		for sc.Scan() {
			if line := sc.Text(); line != "" {
				paths = append(paths, line)
			}
		}
		if err := sc.Err(); err != nil {
			l.Write(err)
			return PrintJSONError(fmt.Errorf("read stdin: %w", err))
		}
	}

	matched := []string{}
	for _, path := range paths {
		if p.Match(path) {
			matched = append(matched, path)
		}
	}

	l.Detail("paths", len(paths)).Detail("matched", len(matched)).Write(nil)

	if quiet {
		if len(matched) == 0 {
			c.SilenceErrors = true
			c.SilenceUsage = true
			return errNoMatch
		}
		return nil
	}

	if JSON() {
		return PrintJSON(matched)
	}
	for _, path := range matched {
		fmt.Fprintln(Out(), path)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newMatchCmd())
}
