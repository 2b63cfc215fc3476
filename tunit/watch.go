// Copyright (c) The Test Unit Authors, All rights reserved.
// Test Unit source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/testunit/cmd/harness"
	"github.com/testunit/cmd/model"
	"github.com/testunit/cmd/utils"
	"github.com/testunit/cmd/watcher"
)

var cmdWatch = &Command{
	UsageLine: "watch [manifest] [run mode] [suite.case]",
	Short:     "run the suites and re-run them on changes",
	Long: `
Run the suites of the manifest, then keep watching the manifest and its
watch.paths and re-run on every change.

For example:

    tunit watch tests.conf dev

The debounce delay between a change and the re-run defaults to 1000ms
and can be set with -d.
`,
}

func init() {
	cmdWatch.RunWith = watchApp
	cmdWatch.UpdateConfig = updateWatchConfig
}

func updateWatchConfig(c *model.CommandConfig, args []string) bool {
	c.Index = model.WATCH
	if len(args) > 0 {
		c.Watch.ManifestPath = args[0]
	}
	if len(args) > 1 {
		c.Watch.Mode = args[1]
	}
	if len(args) > 2 {
		c.Watch.Function = args[2]
	}
	if c.Watch.ManifestPath == "" {
		c.Watch.ManifestPath = filepath.Join(c.BasePath, harness.DefaultManifest)
	}
	return true
}

// rerunListener reloads the manifest and runs it on every refresh, so
// edits to the manifest itself are picked up between runs. It tracks
// the manifest's resolved result directory and masks it from the watch,
// otherwise every run's own result files would schedule the next run.
type rerunListener struct {
	manifestPath string
	mode         string
	selection    string
	resultPath   string
}

func (l *rerunListener) Refresh() error {
	m, err := harness.LoadManifest(l.manifestPath, l.mode)
	if err != nil {
		return utils.NewRunIfError(err, "Failed to reload manifest", "path", l.manifestPath)
	}
	l.trackResults(m.ResultPath())
	runner := harness.NewRunner(m)
	runner.Selection = l.selection
	_, _, err = runner.Run()
	return err
}

// trackResults remembers where the runner writes, as an absolute path
// so it matches event paths regardless of how the manifest spelled it.
func (l *rerunListener) trackResults(resultPath string) {
	if abs, err := filepath.Abs(resultPath); err == nil {
		resultPath = abs
	}
	l.resultPath = resultPath
}

// insideResults reports whether path is the result directory or below
// it.
func (l *rerunListener) insideResults(path string) bool {
	if l.resultPath == "" {
		return false
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	rel, err := filepath.Rel(l.resultPath, path)
	if err != nil {
		return false
	}
	return rel == "." || !strings.HasPrefix(rel, "..")
}

// WatchDir keeps the watcher out of the result directory.
func (l *rerunListener) WatchDir(path string, info os.FileInfo) bool {
	return !l.insideResults(path)
}

// WatchFile ignores the files the run itself writes.
func (l *rerunListener) WatchFile(path string) bool {
	return !strings.HasSuffix(path, ".log") && !l.insideResults(path)
}

// Runs the suites, then blocks re-running them on filesystem changes.
func watchApp(c *model.CommandConfig) error {
	m, err := harness.LoadManifest(c.Watch.ManifestPath, c.Watch.Mode)
	if err != nil {
		return utils.NewRunIfError(err, "Failed to load manifest", "path", c.Watch.ManifestPath)
	}

	listener := &rerunListener{
		manifestPath: c.Watch.ManifestPath,
		mode:         c.Watch.Mode,
		selection:    c.Watch.Function,
	}
	listener.trackResults(m.ResultPath())

	// First run happens before the watch starts so a broken manifest
	// fails fast.
	if err := listener.Refresh(); err != nil {
		return err
	}

	delay := time.Duration(c.Watch.Delay) * time.Millisecond
	if c.Watch.Delay == 0 {
		delay = time.Duration(m.Config.IntDefault("watch.delay", 1000)) * time.Millisecond
	}

	w := watcher.NewWatcher(delay)
	defer w.Close()
	if err := w.Listen(listener, m.WatchPaths()...); err != nil {
		return err
	}

	utils.Logger.Info("Watching for changes", "paths", strings.Join(m.WatchPaths(), ", "))
	select {}
}
