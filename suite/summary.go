// Copyright (c) The Test Unit Authors, All rights reserved.
// Test Unit source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package suite

import (
	"fmt"
	"io"
	"strings"
)

// Result captures the outcome of one executed case. Message is only set
// for failed cases.
type Result struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message,omitempty"`
}

// Summary is the aggregate outcome of one Run. Results preserves
// registration order and Passed+Failed always equals len(Results).
// Summaries are not retained by the suite; every Run produces a fresh
// one.
type Summary struct {
	Name    string   `json:"name"`
	Results []Result `json:"results"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
}

// Ok reports whether every case passed. An empty run is Ok.
func (s *Summary) Ok() bool {
	return s.Failed == 0
}

// WriteTo renders the summary in its line-oriented text form, one
// "PASS: name" or "FAIL: name: message" line per case followed by the
// trailing tally line. External harnesses match on this output verbatim.
func (s *Summary) WriteTo(w io.Writer) (n int64, err error) {
	var written int
	for _, r := range s.Results {
		if r.Passed {
			written, err = fmt.Fprintf(w, "PASS: %s\n", r.Name)
		} else {
			written, err = fmt.Fprintf(w, "FAIL: %s: %s\n", r.Name, r.Message)
		}
		n += int64(written)
		if err != nil {
			return
		}
	}
	written, err = fmt.Fprintf(w, "Passed: %d, Failed: %d\n", s.Passed, s.Failed)
	n += int64(written)
	return
}

// String returns the WriteTo rendering.
func (s *Summary) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}
