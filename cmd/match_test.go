package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchCommand(t *testing.T) {
	env := newTestEnv(t)

	t.Run("matches from args", func(t *testing.T) {
		out := env.run("match", "src/**/*.go", "src/main.go", "src/util/io.go", "docs/readme.md")
		env.contains(out, "src/main.go")
		env.contains(out, "src/util/io.go")
		assert.NotContains(t, out, "docs/readme.md")
	})

	t.Run("matches from stdin", func(t *testing.T) {
		input := "docs/api.md\ndocs/sub/deep.md\nsrc/main.go\n"
		out := env.runStdin(input, "match", "docs/*")
		env.equals(out, "docs/api.md")
	})

	t.Run("star requires at least one character", func(t *testing.T) {
		out := env.run("match", "*.go", "main.go", ".go")
		env.equals(out, "main.go")
	})

	t.Run("alternation", func(t *testing.T) {
		out := env.run("match", "*.{ts,js}", "app.ts", "app.js", "app.go")
		env.contains(out, "app.ts")
		env.contains(out, "app.js")
		assert.NotContains(t, out, "app.go")
	})

	t.Run("json output", func(t *testing.T) {
		out := env.run("match", "-o", "json", "*.md", "a.md", "b.go")
		env.equals(out, `["a.md"]`)
	})

	t.Run("json output empty", func(t *testing.T) {
		out := env.run("match", "-o", "json", "*.md", "b.go")
		env.equals(out, `[]`)
	})

	t.Run("quiet exit status", func(t *testing.T) {
		out := env.run("match", "-q", "*.go", "main.go")
		env.equals(out, "")

		out, err := env.runErr("match", "-q", "*.go", "readme.md")
		assert.Error(t, err)
		assert.Empty(t, strings.TrimSpace(out))
	})

	t.Run("invalid pattern fails", func(t *testing.T) {
		out, err := env.runErr("match", "docs/[", "docs/a")
		assert.Error(t, err)
		env.contains(out, "syntax")
	})

	t.Run("invalid pattern json error", func(t *testing.T) {
		out, err := env.runErr("match", "-o", "json", "docs/[]", "docs/a")
		assert.Error(t, err)
		env.contains(out, `"error"`)
	})

	t.Run("expansion ceiling flag", func(t *testing.T) {
		_, err := env.runErr("match", "--max-expansion", "2", "{a,b,c}", "a")
		assert.Error(t, err)

		out := env.run("match", "--max-expansion", "3", "{a,b,c}", "a")
		env.equals(out, "a")
	})
}
