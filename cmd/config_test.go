package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigCommand(t *testing.T) {
	env := newTestEnv(t)

	t.Run("defaults", func(t *testing.T) {
		out := env.run("config")
		env.contains(out, "limits.max_expansion: 10000")
		env.contains(out, "output.color: true")
	})

	t.Run("set and get", func(t *testing.T) {
		out := env.run("config", "limits.max_expansion", "50000")
		env.contains(out, "limits.max_expansion = 50000 (global)")

		out = env.run("config", "limits.max_expansion")
		env.equals(out, "50000")
	})

	t.Run("local overrides global", func(t *testing.T) {
		env.run("config", "--local", "limits.max_expansion", "123")

		out := env.run("config", "limits.max_expansion")
		env.equals(out, "123")
	})

	t.Run("configured ceiling applies to match", func(t *testing.T) {
		// local ceiling is 123; 5x5x5 = 125 variants exceeds it
		_, err := env.runErr("match", "{a,b,c,d,e}{a,b,c,d,e}{a,b,c,d,e}", "aaa")
		assert.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		out, err := env.runErr("config", "limits.nope")
		assert.Error(t, err)
		env.contains(out, "unknown config key")
	})

	t.Run("invalid value", func(t *testing.T) {
		out, err := env.runErr("config", "limits.max_expansion", "-5")
		assert.Error(t, err)
		env.contains(out, "invalid config value")

		out, err = env.runErr("config", "output.color", "maybe")
		assert.Error(t, err)
		env.contains(out, "invalid config value")
	})
}
