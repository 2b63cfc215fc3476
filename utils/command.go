package utils

import (
	"os"
	"os/exec"
	"strings"
)

// Initialize the command for a manifest case: run from basePath with the
// current environment plus any KEY=VALUE overrides from the manifest.
// Overridden keys shadow the inherited ones.
func CmdInit(c *exec.Cmd, basePath string, env []string) {
	c.Dir = basePath
	c.Env = append([]string{}, env...)

	overridden := map[string]bool{}
	for _, e := range env {
		pair := strings.SplitN(e, "=", 2)
		overridden[pair[0]] = true
	}

	// Fetch the rest of the env variables
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if overridden[pair[0]] {
			continue
		}
		c.Env = append(c.Env, e)
	}
}
