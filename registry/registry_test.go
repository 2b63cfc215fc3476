package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/testunit/cmd/registry"
	"github.com/testunit/cmd/suite"
)

func TestRegisterAndRunAll(t *testing.T) {
	a := assert.New(t)
	registry.Reset()
	defer registry.Reset()

	first := suite.New("first")
	first.Add("ok", func() {})
	second := suite.New("second")
	second.Add("bad", func() { suite.Fail("boom") })
	registry.Register(first)
	registry.Register(second)

	a.Equal(2, len(registry.Suites()))
	a.Equal(first, registry.Find("first"))
	a.Nil(registry.Find("missing"))

	summaries := registry.RunAll()
	a.Equal(2, len(summaries))
	a.Equal("first", summaries[0].Name)
	a.True(summaries[0].Ok())
	a.False(summaries[1].Ok())
}
