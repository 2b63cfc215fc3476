package utils_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/testunit/cmd/utils"
)

func TestFileHelpers(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "sample.txt")
	a.Nil(os.WriteFile(target, []byte("one\ntwo"), 0666))

	a.True(utils.Exists(target))
	a.False(utils.Exists(filepath.Join(dir, "missing.txt")))
	a.True(utils.DirExists(dir))
	a.False(utils.DirExists(target))
}

func TestGenerateTemplate(t *testing.T) {
	a := assert.New(t)
	out := filepath.Join(t.TempDir(), "nested", "out.html")
	err := utils.GenerateTemplate(out, "<b>{{.Name}}</b>", map[string]string{"Name": "smoke"})
	a.Nil(err)
	data, err := os.ReadFile(out)
	a.Nil(err)
	a.Equal("<b>smoke</b>", string(data))
}

func TestRunError(t *testing.T) {
	a := assert.New(t)
	err := utils.NewRunIfError(os.ErrNotExist, "Failed to open manifest", "file", "tests.conf")
	a.NotNil(err)
	a.Contains(err.Error(), "Failed to open manifest")

	// Wrapping an existing RunError appends args instead of nesting.
	again := utils.NewRunIfError(err, "outer", "extra", "arg")
	a.Same(err, again)

	a.Nil(utils.NewRunIfError(nil, "no error"))
}

func TestCmdInit(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	c := exec.Command("true")
	utils.CmdInit(c, dir, []string{"TUNIT_MODE=dev"})

	a.Equal(dir, c.Dir)
	a.Contains(c.Env, "TUNIT_MODE=dev")
	for _, e := range c.Env[1:] {
		a.False(strings.HasPrefix(e, "TUNIT_MODE="), "Override should shadow inherited value")
	}
}
