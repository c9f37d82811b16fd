/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// explain.go implements the "eglob explain" command for pattern
// introspection. Shows what a pattern compiled to: the normalised
// source, the fixed literal prefix a walker would descend directly,
// and the kind of each segment.

package cmd

import (
	"fmt"
	"strings"

	"github.com/jpl-au/eglob/internal/glob"
	"github.com/jpl-au/eglob/internal/log"
	"github.com/spf13/cobra"
)

type explainResult struct {
	Pattern     string             `json:"pattern"`
	Recursive   bool               `json:"recursive"`
	FixedPrefix string             `json:"fixed_prefix"`
	Segments    []glob.SegmentInfo `json:"segments"`
}

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain PATTERN",
		Short: "Show the compiled structure of a pattern",
		Long: `Compile a pattern and show its structure: the normalised form,
whether it recurses into subdirectories, the fixed literal prefix, and
each segment's kind.

Compilation errors are reported exactly as match and find would report
them, so explain doubles as a pattern validator.

Examples:
  eglob explain "src/**/*.{go,md}"
  eglob explain "docs/[a-z]*" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runExplain,
	}
}

func runExplain(_ *cobra.Command, args []string) error {
	pattern := args[0]

	l := log.Event("cli:explain", "compile").Pattern(pattern)

	p, err := glob.CompileLimit(pattern, MaxExpansion())
	if err != nil {
		l.Write(err)
		return PrintJSONError(fmt.Errorf("compile %q: %w", pattern, err))
	}

	fixed, _ := p.SplitFixedPrefix()
	res := explainResult{
		Pattern:     p.String(),
		Recursive:   p.Recursive(),
		FixedPrefix: strings.Join(fixed, "/"),
		Segments:    p.Segments(),
	}

	l.Detail("segments", len(res.Segments)).Write(nil)

	if JSON() {
		return PrintJSON(res)
	}

	fmt.Fprintf(Out(), "pattern:      %s\n", res.Pattern)
	fmt.Fprintf(Out(), "recursive:    %v\n", res.Recursive)
	fmt.Fprintf(Out(), "fixed prefix: %s\n", res.FixedPrefix)
	for i, s := range res.Segments {
		if s.Alternatives > 1 {
			fmt.Fprintf(Out(), "segment %d:    %-12s %s (%d alternatives)\n", i, s.Kind, s.Source, s.Alternatives)
		} else {
			fmt.Fprintf(Out(), "segment %d:    %-12s %s\n", i, s.Kind, s.Source)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newExplainCmd())
}
