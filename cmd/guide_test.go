package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuideCommand(t *testing.T) {
	env := newTestEnv(t)

	t.Run("main guide", func(t *testing.T) {
		// Output is piped, so we get raw markdown, not glamour rendering.
		out := env.run("guide")
		env.contains(out, "# eglob")
	})

	t.Run("syntax guide", func(t *testing.T) {
		out := env.run("guide", "syntax")
		env.contains(out, "# Pattern syntax")
		env.contains(out, "Alternation")
	})

	t.Run("unknown guide lists available", func(t *testing.T) {
		out, err := env.runErr("guide", "nope")
		assert.Error(t, err)
		env.contains(out, "not found")
		env.contains(out, "syntax")
	})
}

func TestVersionCommand(t *testing.T) {
	env := newTestEnv(t)

	t.Run("text output", func(t *testing.T) {
		out := env.run("version")
		env.contains(out, "Build Tag:")
		env.contains(out, "Go Version:")
	})

	t.Run("json output", func(t *testing.T) {
		out := env.run("version", "-o", "json")
		env.contains(out, `"build_tag"`)
		env.contains(out, `"go_version"`)
	})
}
