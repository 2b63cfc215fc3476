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

var cmdList = &Command{
	UsageLine: "list [manifest] [run mode]",
	Short:     "list the suites and cases of a manifest",
	Long: `
List the suites and cases the given manifest defines for a run mode,
without running anything.

For example:

    tunit list tests.conf prod
`,
}

func init() {
	cmdList.RunWith = listApp
	cmdList.UpdateConfig = updateListConfig
}

func updateListConfig(c *model.CommandConfig, args []string) bool {
	c.Index = model.LIST
	if len(args) > 0 {
		c.List.ManifestPath = args[0]
	}
	if len(args) > 1 {
		c.List.Mode = args[1]
	}
	if c.List.ManifestPath == "" {
		c.List.ManifestPath = filepath.Join(c.BasePath, harness.DefaultManifest)
	}
	return true
}

// Prints the suites of the manifest, one indented line per case.
func listApp(c *model.CommandConfig) error {
	m, err := harness.LoadManifest(c.List.ManifestPath, c.List.Mode)
	if err != nil {
		return utils.NewRunIfError(err, "Failed to load manifest", "path", c.List.ManifestPath)
	}

	for _, desc := range m.Suites {
		fmt.Println(desc.Name)
		for _, caseDesc := range desc.Cases {
			fmt.Printf("    %s.%s\n", desc.Name, caseDesc.Name)
		}
	}
	return nil
}
