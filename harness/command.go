// Copyright (c) The Test Unit Authors, All rights reserved.
// Test Unit source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package harness

import (
	"os/exec"
	"strings"

	"github.com/testunit/cmd/suite"
	"github.com/testunit/cmd/utils"
)

// outputTail caps how much command output lands in a failure message.
const outputTail = 2048

// commandProc wraps a case command into a suite proc. The command line
// is split on whitespace, no shell is involved. A start error or
// non-zero exit fails the case with the tail of the combined output.
func (m *Manifest) commandProc(c CaseDesc) suite.Proc {
	workDir := m.WorkDir()
	env := m.Env()
	return func() {
		argv := strings.Fields(c.Command)
		cmd := exec.Command(argv[0], argv[1:]...)
		utils.CmdInit(cmd, workDir, env)

		output, err := cmd.CombinedOutput()
		if err != nil {
			suite.Failf("%s: %v\n%s", c.Command, err, tail(output))
		}
	}
}

func tail(output []byte) string {
	s := strings.TrimRight(string(output), "\n")
	if len(s) > outputTail {
		s = "..." + s[len(s)-outputTail:]
	}
	return s
}
