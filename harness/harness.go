// Copyright (c) The Test Unit Authors, All rights reserved.
// Test Unit source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package harness

import (
	"os"
	"time"

	"github.com/revel/config"

	"github.com/testunit/cmd/logger"
	"github.com/testunit/cmd/report"
	"github.com/testunit/cmd/suite"
	"github.com/testunit/cmd/utils"
)

// Runner drives one full manifest run: build the suites, execute them,
// report to the console and write the result directory.
type Runner struct {
	Manifest *Manifest
	Console  *report.Console

	// Selection is an optional "suite" or "suite.case" filter.
	Selection string

	log logger.MultiLogger
}

// NewRunner returns a runner with a console reporter attached.
func NewRunner(m *Manifest) *Runner {
	return &Runner{
		Manifest: m,
		Console:  report.NewConsole(),
	}
}

// Run executes the selected suites and returns their summaries plus the
// overall verdict. Tool-level failures (unwritable result directory,
// unknown selection) come back as an error; failing cases do not.
func (r *Runner) Run() (summaries []*suite.Summary, ok bool, err error) {
	selected := Filter(r.Manifest.Suites, r.Selection)
	if r.Selection != "" && len(selected) == 0 {
		return nil, false, utils.NewRunError("No suite matches the selection", "selection", r.Selection)
	}

	resultPath := r.Manifest.ResultPath()
	if err = r.prepareResultDir(resultPath); err != nil {
		return nil, false, err
	}
	r.initRunLog(resultPath)

	r.log.Info("Running suites", "manifest", r.Manifest.Path, "mode", r.Manifest.RunMode, "suites", len(selected))

	ok = true
	for _, desc := range selected {
		summary := r.runSuite(desc, resultPath)
		summaries = append(summaries, summary)
		ok = ok && summary.Ok()
	}

	r.Console.Failures(summaries)
	marker := "result.passed"
	if !ok {
		marker = "result.failed"
	}
	if werr := utils.WriteResultFile(resultPath, marker, verdictWord(ok)); werr != nil {
		r.log.Error("Failed to write result marker", "error", werr)
	}
	r.log.Info("Run complete", "passed", ok)
	return summaries, ok, nil
}

// runSuite executes one suite with console progress and writes its
// result files.
func (r *Runner) runSuite(desc SuiteDesc, resultPath string) *suite.Summary {
	r.Console.StartSuite(desc.Name)
	start := time.Now()

	summary := r.Manifest.Build(desc).Run()
	for _, result := range summary.Results {
		r.Console.Case(desc.Name, result)
		if result.Passed {
			r.log.Debug("Case passed", "suite", desc.Name, "case", result.Name)
		} else {
			r.log.Error("Case failed", "suite", desc.Name, "case", result.Name, "message", result.Message)
		}
	}
	r.Console.EndSuite(summary, time.Since(start))

	if err := report.WriteSuiteFiles(resultPath, summary); err != nil {
		r.log.Error("Failed to write suite result files", "suite", desc.Name, "error", err)
	}
	return summary
}

// prepareResultDir recreates the result directory from scratch.
func (r *Runner) prepareResultDir(resultPath string) error {
	if err := os.RemoveAll(resultPath); err != nil {
		return utils.NewRunIfError(err, "Failed to remove test result directory", "path", resultPath)
	}
	if err := os.MkdirAll(resultPath, 0777); err != nil {
		return utils.NewRunIfError(err, "Failed to create test result directory", "path", resultPath)
	}
	return nil
}

// initRunLog points the runner's logger at a rotating tunit.log inside
// the result directory, honoring any log.*.output overrides from the
// manifest.
func (r *Runner) initRunLog(resultPath string) {
	ctx := config.NewContext()
	ctx.SetOption("log.debug.output", r.Manifest.Config.StringDefault("log.debug.output", "tunit.log"))
	ctx.SetOption("log.info.output", r.Manifest.Config.StringDefault("log.info.output", "tunit.log"))
	ctx.SetOption("log.warn.output", r.Manifest.Config.StringDefault("log.warn.output", "tunit.log"))
	ctx.SetOption("log.error.output", r.Manifest.Config.StringDefault("log.error.output", "tunit.log"))
	ctx.SetOption("log.crit.output", r.Manifest.Config.StringDefault("log.crit.output", "stderr"))

	r.log = logger.New("runmode", r.Manifest.RunMode)
	r.log.SetHandler(logger.InitializeFromConfig(resultPath, ctx))
}

func verdictWord(ok bool) string {
	if ok {
		return "passed"
	}
	return "failed"
}
