// Copyright (c) The Test Unit Authors, All rights reserved.
// Test Unit source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"runtime"

	"github.com/testunit/cmd"
	"github.com/testunit/cmd/harness"
	"github.com/testunit/cmd/model"
	"github.com/testunit/cmd/utils"
)

var cmdVersion = &Command{
	UsageLine: "version [manifest]",
	Short:     "displays the Test Unit and Go version",
	Long: `
Displays the Test Unit and Go version.

When a manifest is given, its require.version option is checked against
this tool.

For example:

    tunit version
`,
}

func init() {
	cmdVersion.RunWith = versionApp
	cmdVersion.UpdateConfig = updateVersionConfig
}

func updateVersionConfig(c *model.CommandConfig, args []string) bool {
	c.Index = model.VERSION
	if len(args) > 0 {
		c.Version.ManifestPath = args[0]
	}
	return true
}

// Displays the version of go and Test Unit.
func versionApp(c *model.CommandConfig) error {
	v, err := model.ParseVersion(cmd.Version)
	if err != nil {
		return utils.NewRunIfError(err, "Failed to parse tool version", "version", cmd.Version)
	}
	v.BuildDate = cmd.BuildDate
	v.MinGoVersion = cmd.MinimumGoVersion

	fmt.Println(v.BuildString())
	fmt.Printf("\n   %s %s/%s\n\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	if c.Version.ManifestPath == "" {
		return nil
	}
	m, err := harness.LoadManifest(c.Version.ManifestPath, "")
	if err != nil {
		return utils.NewRunIfError(err, "Failed to load manifest", "path", c.Version.ManifestPath)
	}
	required := m.Config.StringDefault("require.version", "")
	if err := v.CompatibleManifest(required); err != nil {
		return utils.NewRunIfError(err, "Manifest requires a newer tool", "required", required)
	}
	if required != "" {
		fmt.Printf("Manifest requires %s: ok\n", required)
	}
	return nil
}
