// Copyright (c) The Test Unit Authors, All rights reserved.
// Test Unit source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

// Package registry keeps a process-wide list of suites for harnesses
// that register them from init functions. The suite package itself has
// no global state; this is the host side of the contract.
package registry

import (
	"sync"

	"github.com/testunit/cmd/suite"
)

var (
	mu     sync.Mutex
	suites []*suite.Suite
)

// Register appends a suite to the global list. Normally called from an
// init function in the embedding harness.
func Register(s *suite.Suite) {
	mu.Lock()
	defer mu.Unlock()
	suites = append(suites, s)
}

// Suites returns the registered suites in registration order.
func Suites() []*suite.Suite {
	mu.Lock()
	defer mu.Unlock()
	out := make([]*suite.Suite, len(suites))
	copy(out, suites)
	return out
}

// Reset clears the registry. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	suites = nil
}

// Find returns the first registered suite with the given name, or nil.
// Duplicate registrations under one name keep their order; only the
// first is found.
func Find(name string) *suite.Suite {
	for _, s := range Suites() {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// RunAll runs every registered suite in order and returns the
// summaries.
func RunAll() []*suite.Summary {
	all := Suites()
	summaries := make([]*suite.Summary, 0, len(all))
	for _, s := range all {
		summaries = append(summaries, s.Run())
	}
	return summaries
}
