// Package walker enumerates filesystem paths matching an extended glob
// pattern. It is the traversal layer on top of the pure matching core:
// the core decides whether a path matches, the walker decides which
// paths to visit.
//
// Traversal goes through afero so callers can glob real directories or
// in-memory filesystems (tests) with the same code. Two optimisations
// keep large trees cheap: the pattern's fixed literal prefix is descended
// directly without matching, and subtrees whose path can never extend
// into a match are pruned via MatchPrefix.
package walker

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/jpl-au/eglob/internal/glob"
)

// Glob compiles pattern and returns the files under root that match,
// as sorted slash-separated paths relative to root. Backslashes in the
// pattern are normalised to forward slashes before compilation.
func Glob(fsys afero.Fs, root, pattern string) ([]string, error) {
	p, err := glob.Compile(filepath.ToSlash(pattern))
	if err != nil {
		return nil, err
	}
	return GlobPattern(fsys, root, p)
}

// GlobPattern is Glob with a pre-compiled pattern.
func GlobPattern(fsys afero.Fs, root string, p *glob.Pattern) ([]string, error) {
	fixed, rest := p.SplitFixedPrefix()

	base := root
	prefix := ""
	if len(fixed) > 0 {
		prefix = strings.Join(fixed, "/")
		base = filepath.Join(root, filepath.FromSlash(prefix))
	}

	info, err := fsys.Stat(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	// Entirely literal pattern: the fixed path itself is the only
	// candidate, and only if it is a file.
	if rest.String() == "" {
		if prefix != "" && !info.IsDir() {
			return []string{prefix}, nil
		}
		return nil, nil
	}
	if !info.IsDir() {
		return nil, nil
	}

	var out []string
	err = afero.Walk(fsys, base, func(name string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(base, name)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		segs := strings.Split(rel, "/")
		if info.IsDir() {
			if !rest.MatchPrefix(segs) {
				return filepath.SkipDir
			}
			return nil
		}
		if rest.MatchSegments(segs) {
			if prefix != "" {
				out = append(out, prefix+"/"+rel)
			} else {
				out = append(out, rel)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}
