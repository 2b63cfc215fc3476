// Copyright (c) The Test Unit Authors, All rights reserved.
// Test Unit source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

// Package harness builds and runs suites described by a manifest file.
// The manifest is an ini config whose sections are run modes; suite
// cases are shell-free commands executed with the manifest's directory
// as working directory.
package harness

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/revel/config"

	"github.com/testunit/cmd/suite"
	"github.com/testunit/cmd/utils"
)

const (
	// DefaultManifest is the manifest file name looked up when none is
	// given on the command line.
	DefaultManifest = "tests.conf"

	// DefaultRunMode is the manifest section applied when no run mode
	// is given.
	DefaultRunMode = "dev"
)

type (
	// Manifest is a parsed suite manifest.
	Manifest struct {
		Path     string // The manifest file
		BasePath string // The directory holding the manifest
		RunMode  string
		Config   *config.Context
		Suites   []SuiteDesc
	}

	// SuiteDesc describes one suite from the manifest.
	SuiteDesc struct {
		Name  string
		Cases []CaseDesc
	}

	// CaseDesc is a single command-backed case.
	CaseDesc struct {
		Name    string
		Command string
	}
)

// LoadManifest reads and parses the manifest at path, applying the
// given run mode section (DefaultRunMode when empty). Suite options
// take the form suite.<suite>.<case> = <command>; keys are ordered by
// name so runs are deterministic.
func LoadManifest(path, mode string) (*Manifest, error) {
	if !utils.Exists(path) {
		return nil, errors.Errorf("manifest %s does not exist", path)
	}
	basePath := filepath.Dir(path)
	ctx, err := config.LoadContext(filepath.Base(path), []string{basePath})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load manifest %s", path)
	}
	if mode == "" {
		mode = DefaultRunMode
	}
	if !ctx.HasSection(mode) {
		return nil, errors.Errorf("manifest %s has no run mode %q", path, mode)
	}
	ctx.SetSection(mode)

	m := &Manifest{
		Path:     path,
		BasePath: basePath,
		RunMode:  mode,
		Config:   ctx,
	}
	if err := m.parseSuites(); err != nil {
		return nil, err
	}
	return m, nil
}

// parseSuites collects the suite.* options into ordered descriptors.
func (m *Manifest) parseSuites() error {
	keys := m.Config.Options("suite.")
	sort.Strings(keys)

	index := map[string]int{}
	for _, key := range keys {
		rest := key[len("suite."):]
		dot := strings.Index(rest, ".")
		if dot <= 0 || dot == len(rest)-1 {
			return errors.Errorf("manifest %s: malformed suite option %q, want suite.<suite>.<case>", m.Path, key)
		}
		suiteName, caseName := rest[:dot], rest[dot+1:]
		command := m.Config.StringDefault(key, "")
		if command == "" {
			return errors.Errorf("manifest %s: suite option %q has no command", m.Path, key)
		}

		i, ok := index[suiteName]
		if !ok {
			i = len(m.Suites)
			index[suiteName] = i
			m.Suites = append(m.Suites, SuiteDesc{Name: suiteName})
		}
		m.Suites[i].Cases = append(m.Suites[i].Cases, CaseDesc{Name: caseName, Command: command})
	}
	return nil
}

// Env returns the test.env overrides as KEY=VALUE pairs for the case
// commands. The option holds a comma separated list; config option
// keys are lowercased on load, so the pairs live in the value where
// their case survives.
func (m *Manifest) Env() []string {
	var env []string
	for _, kv := range strings.Split(m.Config.StringDefault("test.env", ""), ",") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		env = append(env, kv)
	}
	return env
}

// WorkDir returns the directory case commands run from: the test.dir
// option resolved against the manifest location, or the manifest's own
// directory.
func (m *Manifest) WorkDir() string {
	dir := m.Config.StringDefault("test.dir", "")
	if dir == "" {
		return m.BasePath
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(m.BasePath, dir)
	}
	return dir
}

// ResultPath returns where the result files go, test.results or
// "test-results" next to the manifest.
func (m *Manifest) ResultPath() string {
	dir := m.Config.StringDefault("test.results", "test-results")
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(m.BasePath, dir)
	}
	return dir
}

// WatchPaths returns the comma separated watch.paths entries resolved
// against the manifest location. The manifest itself is always watched.
func (m *Manifest) WatchPaths() []string {
	paths := []string{m.Path}
	for _, p := range strings.Split(m.Config.StringDefault("watch.paths", ""), ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(m.BasePath, p)
		}
		paths = append(paths, p)
	}
	return paths
}

// Filter narrows the manifest suites to the given "suite" or
// "suite.case" selection. An empty selection keeps everything; an
// unknown suite or case comes back empty.
func Filter(suites []SuiteDesc, selection string) []SuiteDesc {
	if selection == "" {
		return suites
	}
	suiteName, caseName := selection, ""
	if dot := strings.Index(selection, "."); dot >= 0 {
		suiteName, caseName = selection[:dot], selection[dot+1:]
	}
	if suiteName == "" {
		return suites
	}
	for _, desc := range suites {
		if desc.Name != suiteName {
			continue
		}
		if caseName == "" {
			return []SuiteDesc{desc}
		}
		// Only run a particular case in a suite
		for _, c := range desc.Cases {
			if c.Name != caseName {
				continue
			}
			return []SuiteDesc{{Name: desc.Name, Cases: []CaseDesc{c}}}
		}
		return nil
	}
	return nil
}

// Build turns a descriptor into a runnable suite whose cases execute
// their commands.
func (m *Manifest) Build(desc SuiteDesc) *suite.Suite {
	s := suite.New(desc.Name)
	for _, c := range desc.Cases {
		s.Add(c.Name, m.commandProc(c))
	}
	return s
}
