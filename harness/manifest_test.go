package harness_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/testunit/cmd/harness"
)

const sampleManifest = `
[dev]
suite.calc.add = true
suite.smoke.a-version = go version
suite.smoke.b-marker = true
test.env = TUNIT_MODE=dev
watch.paths = scripts, extra.conf

[quick]
suite.smoke.b-marker = true
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), harness.DefaultManifest)
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	a := assert.New(t)
	m, err := harness.LoadManifest(writeManifest(t, sampleManifest), "")
	a.Nil(err)
	a.Equal(harness.DefaultRunMode, m.RunMode)

	// Suites and cases are sorted by key for deterministic order.
	a.Equal(2, len(m.Suites))
	a.Equal("calc", m.Suites[0].Name)
	a.Equal("smoke", m.Suites[1].Name)
	a.Equal([]harness.CaseDesc{
		{Name: "a-version", Command: "go version"},
		{Name: "b-marker", Command: "true"},
	}, m.Suites[1].Cases)

	a.Equal([]string{"TUNIT_MODE=dev"}, m.Env())
	a.Equal(m.BasePath, m.WorkDir())
	a.Equal(filepath.Join(m.BasePath, "test-results"), m.ResultPath())

	paths := m.WatchPaths()
	a.Equal(3, len(paths))
	a.Equal(m.Path, paths[0])
	a.Equal(filepath.Join(m.BasePath, "scripts"), paths[1])
}

func TestLoadManifestRunMode(t *testing.T) {
	a := assert.New(t)
	path := writeManifest(t, sampleManifest)

	m, err := harness.LoadManifest(path, "quick")
	a.Nil(err)
	a.Equal(1, len(m.Suites), "The quick mode only defines the smoke suite")
	a.Equal("smoke", m.Suites[0].Name)

	_, err = harness.LoadManifest(path, "missing")
	a.NotNil(err, "Unknown run mode should be rejected")
}

func TestLoadManifestMalformed(t *testing.T) {
	a := assert.New(t)
	_, err := harness.LoadManifest(writeManifest(t, "[dev]\nsuite.broken = true\n"), "")
	a.NotNil(err, "A suite option without a case segment should be rejected")
}

func TestLoadManifestMissing(t *testing.T) {
	a := assert.New(t)
	_, err := harness.LoadManifest(filepath.Join(t.TempDir(), "tests.conf"), "")
	a.NotNil(err)
	a.Contains(err.Error(), "does not exist")
}

func TestFilter(t *testing.T) {
	a := assert.New(t)
	suites := []harness.SuiteDesc{
		{Name: "calc", Cases: []harness.CaseDesc{{Name: "add", Command: "true"}}},
		{Name: "smoke", Cases: []harness.CaseDesc{
			{Name: "version", Command: "go version"},
			{Name: "marker", Command: "true"},
		}},
	}

	a.Equal(suites, harness.Filter(suites, ""), "Empty selection keeps everything")

	picked := harness.Filter(suites, "smoke")
	a.Equal(1, len(picked))
	a.Equal(2, len(picked[0].Cases))

	picked = harness.Filter(suites, "smoke.marker")
	a.Equal(1, len(picked))
	a.Equal([]harness.CaseDesc{{Name: "marker", Command: "true"}}, picked[0].Cases)

	a.Nil(harness.Filter(suites, "smoke.nope"))
	a.Nil(harness.Filter(suites, "nope"))
}
