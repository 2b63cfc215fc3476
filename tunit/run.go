// Copyright (c) The Test Unit Authors, All rights reserved.
// Test Unit source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/testunit/cmd/harness"
	"github.com/testunit/cmd/model"
	"github.com/testunit/cmd/utils"
)

var cmdRun = &Command{
	UsageLine: "run [manifest] [run mode] [suite.case]",
	Short:     "run the suites of a manifest",
	Long: `
Run the suites described by the given manifest file.

For example, to run every suite of the manifest next to you:

    tunit run

The run mode selects which manifest section applies and defaults to "dev".

You can run a specific suite (and case) by specifying a third parameter.
For example, to run all of the smoke suite:

    tunit run tests.conf dev smoke

or one of its cases:

    tunit run tests.conf dev smoke.version
`,
}

func init() {
	cmdRun.RunWith = runApp
	cmdRun.UpdateConfig = updateRunConfig
}

// Called to update the config command with from the older style.
func updateRunConfig(c *model.CommandConfig, args []string) bool {
	c.Index = model.RUN

	// tunit run [manifest] [run mode] [suite(.case)]
	if len(args) > 0 {
		c.Run.ManifestPath = args[0]
	}
	if len(args) > 1 {
		c.Run.Mode = args[1]
	}
	if len(args) > 2 {
		c.Run.Function = args[2]
	}
	if c.Run.ManifestPath == "" {
		c.Run.ManifestPath = filepath.Join(c.BasePath, harness.DefaultManifest)
	}
	return true
}

// Called to run the manifest suites.
func runApp(c *model.CommandConfig) error {
	m, err := harness.LoadManifest(c.Run.ManifestPath, c.Run.Mode)
	if err != nil {
		return utils.NewRunIfError(err, "Failed to load manifest", "path", c.Run.ManifestPath)
	}

	selected := harness.Filter(m.Suites, c.Run.Function)
	suiteCount := len(selected)
	fmt.Printf("\n%d test suite%s to run.\n", suiteCount, pluralize(suiteCount, "", "s"))
	fmt.Println()

	runner := harness.NewRunner(m)
	runner.Selection = c.Run.Function
	_, ok, err := runner.Run()
	if err != nil {
		return err
	}

	fmt.Println()
	if ok {
		fmt.Println("All Tests Passed.")
		return nil
	}
	utils.Logger.Errorf("Some tests failed.  See file://%s for results.", m.ResultPath())
	return utils.NewRunError("Some tests failed", "results", m.ResultPath())
}

// Determines if response should be plural.
func pluralize(num int, singular, plural string) string {
	if num == 1 {
		return singular
	}
	return plural
}
