package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindCommand(t *testing.T) {
	env := newTestEnv(t)
	env.writeFile("main.go", "package main\n")
	env.writeFile("src/app.go", "package src\n")
	env.writeFile("src/app_test.go", "package src\n")
	env.writeFile("src/util/io.go", "package util\n")
	env.writeFile("docs/readme.md", "# readme\n")
	env.writeFile("docs/api/auth.md", "# auth\n")

	t.Run("single level", func(t *testing.T) {
		out := env.run("find", "src/*.go")
		env.contains(out, "src/app.go")
		env.contains(out, "src/app_test.go")
		assert.NotContains(t, out, "src/util/io.go")
	})

	t.Run("recursive", func(t *testing.T) {
		out := env.run("find", "**/*.go")
		env.contains(out, "main.go")
		env.contains(out, "src/app.go")
		env.contains(out, "src/util/io.go")
		assert.NotContains(t, out, "readme.md")
	})

	t.Run("fixed prefix prunes", func(t *testing.T) {
		out := env.run("find", "docs/**/*.md")
		env.contains(out, "docs/readme.md")
		env.contains(out, "docs/api/auth.md")
		assert.NotContains(t, out, "main.go")
	})

	t.Run("explicit directory argument", func(t *testing.T) {
		out := env.run("find", "*.go", env.dir+"/src")
		env.contains(out, "app.go")
		assert.NotContains(t, out, "main.go")
	})

	t.Run("no matches", func(t *testing.T) {
		out := env.run("find", "*.rs")
		env.equals(out, "")
	})

	t.Run("json output", func(t *testing.T) {
		out := env.run("find", "-o", "json", "docs/*.md")
		env.equals(out, `["docs/readme.md"]`)
	})

	t.Run("invalid pattern fails", func(t *testing.T) {
		_, err := env.runErr("find", "docs/[a-")
		assert.Error(t, err)
	})
}
