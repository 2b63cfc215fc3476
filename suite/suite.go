// Copyright (c) The Test Unit Authors, All rights reserved.
// Test Unit source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

// Package suite implements the minimal named test-suite contract used by
// the tunit command and by embedding harnesses: register named cases on a
// suite, run them in order, collect pass/fail outcomes.
package suite

import "fmt"

// programmingError marks misuse of the suite itself, as opposed to a
// test failure. It is re-raised past the per-case recover boundary so
// broken harness code never masquerades as a failed test.
type programmingError string

func (e programmingError) Error() string {
	return string(e)
}

// Proc is a single unit of test logic. A Proc signals failure by
// panicking, normally through Fail or Failf; returning is a pass
// regardless of any other effect the Proc had.
type Proc func()

// Case is a named Proc owned by exactly one Suite.
type Case struct {
	Name string
	Proc Proc
}

// Suite holds a display name and an ordered collection of cases.
// Registration order is significant: Run executes and reports cases in
// the order they were added. Suites are not safe for concurrent use.
type Suite struct {
	name    string
	cases   []Case
	running bool
}

// New returns an empty suite. An empty name is permitted and treated as
// an unnamed suite.
func New(name string) *Suite {
	return &Suite{name: name}
}

// Name returns the display name given to New.
func (s *Suite) Name() string {
	return s.name
}

// Len returns the number of registered cases.
func (s *Suite) Len() int {
	return len(s.cases)
}

// Cases returns a copy of the registered cases in registration order.
func (s *Suite) Cases() []Case {
	out := make([]Case, len(s.cases))
	copy(out, s.cases)
	return out
}

// Add appends a case. Names need not be unique; duplicates are distinct
// cases and simply repeat their label in the summary. A nil proc is a
// programming error and panics immediately, as does calling Add from
// inside a running case.
func (s *Suite) Add(name string, proc Proc) *Suite {
	if proc == nil {
		panic(programmingError(fmt.Sprintf("suite %q: Add(%q) with nil proc", s.name, name)))
	}
	if s.running {
		panic(programmingError(fmt.Sprintf("suite %q: Add(%q) during Run", s.name, name)))
	}
	s.cases = append(s.cases, Case{Name: name, Proc: proc})
	return s
}

// Run executes every registered case in registration order, one at a
// time. Each case runs inside a recover boundary so a failing case never
// prevents the remaining cases from executing. Run never returns an
// error for a test failure; failures come back inside the summary.
// Running twice simply executes everything again.
func (s *Suite) Run() *Summary {
	s.running = true
	defer func() { s.running = false }()

	summary := &Summary{
		Name:    s.name,
		Results: make([]Result, 0, len(s.cases)),
	}
	for _, c := range s.cases {
		result := runCase(c)
		if result.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
		summary.Results = append(summary.Results, result)
	}
	return summary
}

// runCase invokes one case proc behind a recover boundary and converts
// any panic into a failed result carrying the panic message. Completion
// is tracked separately from the recovered value: recover() yields nil
// for a nil panic, so only a proc that actually returned counts as a
// pass.
func runCase(c Case) (result Result) {
	result = Result{Name: c.Name}
	completed := false
	defer func() {
		r := recover()
		if pe, ok := r.(programmingError); ok {
			panic(pe)
		}
		if completed {
			result.Passed = true
			return
		}
		result.Message = failureMessage(r)
	}()
	c.Proc()
	completed = true
	return
}

// failureMessage renders a recovered value. Fail and Failf panic with a
// *Failure; anything else (runtime errors included) is formatted as-is.
func failureMessage(recovered interface{}) string {
	switch v := recovered.(type) {
	case nil:
		return "panic with nil value"
	case *Failure:
		return v.Message
	case error:
		return v.Error()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
