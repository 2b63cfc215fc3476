// Copyright (c) The Test Unit Authors, All rights reserved.
// Test Unit source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package suite

import "fmt"

// Failure is the expected failure signal raised inside a case proc.
// Run always catches it, records the message against the case and moves
// on; it never reaches the caller of Run.
type Failure struct {
	Message string
}

// Error implements error so recovered failures format cleanly.
func (f *Failure) Error() string {
	return f.Message
}

// Fail aborts the current case with the given message.
func Fail(message string) {
	panic(&Failure{Message: message})
}

// Failf aborts the current case with a formatted message.
func Failf(format string, args ...interface{}) {
	panic(&Failure{Message: fmt.Sprintf(format, args...)})
}

// Check fails the case with the message unless ok holds.
func Check(ok bool, message string) {
	if !ok {
		Fail(message)
	}
}
