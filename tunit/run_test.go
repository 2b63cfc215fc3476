package main_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/testunit/cmd/model"
	main "github.com/testunit/cmd/tunit"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tests.conf")
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

// test the run command end to end against a real manifest.
func TestRunCommand(t *testing.T) {
	manifest := writeManifest(t, `
[dev]
suite.bad.boom = false
suite.good.marker = true
`)

	t.Run("AllSuites", func(t *testing.T) {
		a := assert.New(t)
		c := &model.CommandConfig{}
		a.True(main.Commands[model.RUN].UpdateConfig(c, []string{manifest}))
		a.Equal(model.RUN, c.Index)
		a.NotNil(main.Commands[model.RUN].RunWith(c), "The bad suite should fail the command")

		resultPath := filepath.Join(filepath.Dir(manifest), "test-results")
		_, err := os.Stat(filepath.Join(resultPath, "result.failed"))
		a.Nil(err, "Expected the failed marker file")
	})
	t.Run("SelectedSuite", func(t *testing.T) {
		a := assert.New(t)
		c := &model.CommandConfig{}
		a.True(main.Commands[model.RUN].UpdateConfig(c, []string{manifest, "dev", "good"}))
		a.Equal("good", c.Run.Function)
		a.Nil(main.Commands[model.RUN].RunWith(c), "Only the good suite was selected")
	})
	t.Run("MissingManifest", func(t *testing.T) {
		a := assert.New(t)
		c := &model.CommandConfig{BasePath: t.TempDir()}
		a.True(main.Commands[model.RUN].UpdateConfig(c, nil))
		a.NotNil(main.Commands[model.RUN].RunWith(c))
	})
}

func TestListCommand(t *testing.T) {
	a := assert.New(t)
	manifest := writeManifest(t, `
[dev]
suite.smoke.version = go version
`)
	c := &model.CommandConfig{}
	a.True(main.Commands[model.LIST].UpdateConfig(c, []string{manifest}))
	a.Nil(main.Commands[model.LIST].RunWith(c))
}

func TestVersionCommand(t *testing.T) {
	t.Run("NoManifest", func(t *testing.T) {
		a := assert.New(t)
		c := &model.CommandConfig{}
		a.True(main.Commands[model.VERSION].UpdateConfig(c, nil))
		a.Nil(main.Commands[model.VERSION].RunWith(c))
	})
	t.Run("RequireTooNew", func(t *testing.T) {
		a := assert.New(t)
		manifest := writeManifest(t, `
require.version = 99.0.0

[dev]
suite.smoke.version = go version
`)
		c := &model.CommandConfig{}
		a.True(main.Commands[model.VERSION].UpdateConfig(c, []string{manifest}))
		a.NotNil(main.Commands[model.VERSION].RunWith(c), "A manifest requiring a newer tool should fail")
	})
}
