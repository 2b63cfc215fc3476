// Copyright (c) The Test Unit Authors, All rights reserved.
// Test Unit source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

// Package report renders run summaries for the console and for the
// result files written under test-results.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/agtorre/gocolorize"
	"github.com/mattn/go-colorable"

	"github.com/testunit/cmd/suite"
)

// Console prints suite progress in the fixed-column layout the tool has
// always used: the suite name, one indented line per case, then the
// verdict and elapsed seconds.
type Console struct {
	Out   io.Writer
	Plain bool

	pass gocolorize.Colorize
	fail gocolorize.Colorize
}

// NewConsole returns a Console writing to a color-capable stdout.
func NewConsole() *Console {
	return &Console{
		Out:  colorable.NewColorableStdout(),
		pass: gocolorize.NewColor("green"),
		fail: gocolorize.NewColor("red"),
	}
}

// StartSuite prints the suite name column. Names longer than the column
// are truncated with an ellipsis.
func (c *Console) StartSuite(name string) {
	if len(name) > 22 {
		name = name[:19] + "..."
	}
	fmt.Fprintf(c.Out, "%-22s\n", name)
}

// Case prints the per-case verdict line.
func (c *Console) Case(suiteName string, r suite.Result) {
	if r.Passed {
		fmt.Fprintf(c.Out, "   %s.%s : %s\n", suiteName, r.Name, c.paint(c.pass, "PASSED"))
	} else {
		fmt.Fprintf(c.Out, "   %s.%s : %s\n", suiteName, r.Name, c.paint(c.fail, "FAILED"))
	}
}

// EndSuite prints the suite verdict and the time taken.
func (c *Console) EndSuite(summary *suite.Summary, elapsed time.Duration) {
	verdict, alert, color := "PASSED", "", c.pass
	if !summary.Ok() {
		verdict, alert, color = "FAILED", "!", c.fail
	}
	// Pad before painting so the escape codes do not skew the column.
	fmt.Fprintf(c.Out, "%s%3s%6ds\n", c.paint(color, fmt.Sprintf("%8s", verdict)), alert, int(elapsed.Seconds()))
}

// Failures prints the failed cases of each summary with their messages,
// for the recap after all suites ran.
func (c *Console) Failures(summaries []*suite.Summary) {
	for _, summary := range summaries {
		if summary.Ok() {
			continue
		}
		fmt.Fprintf(c.Out, "Failures:\n")
		for _, r := range summary.Results {
			if r.Passed {
				continue
			}
			fmt.Fprintf(c.Out, "%s.%s\n", summary.Name, r.Name)
			fmt.Fprintf(c.Out, "%s\n\n", r.Message)
		}
	}
}

func (c *Console) paint(color gocolorize.Colorize, s string) string {
	if c.Plain {
		return s
	}
	return color.Paint(s)
}
