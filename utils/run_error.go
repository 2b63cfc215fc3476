package utils

import (
	"errors"
	"fmt"

	"github.com/testunit/cmd/logger"
)

type (
	// RunError is a tool-level failure (bad manifest, unwritable result
	// directory), as opposed to a test case failing. It carries the
	// call stack of the point of creation.
	RunError struct {
		Stack   interface{}
		Message string
		Args    []interface{}
	}
)

// Returns a new run error.
func NewRunError(message string, args ...interface{}) (b *RunError) {
	b = &RunError{}
	b.Message = message
	b.Args = args
	b.Stack = logger.NewCallStack()
	Logger.Debug("Stack", "stack", b.Stack)
	return b
}

// Returns a new RunError if err is not nil.
func NewRunIfError(err error, message string, args ...interface{}) (b error) {
	if err != nil {
		var rerr *RunError
		if errors.As(err, &rerr) {
			// This is already a run error so just append the args
			rerr.Args = append(rerr.Args, args...)
			return rerr
		}

		args = append(args, "error", err.Error())
		b = NewRunError(message, args...)
	}

	return
}

// RunError implements Error() string.
func (b *RunError) Error() string {
	return fmt.Sprint(b.Message, b.Args)
}
