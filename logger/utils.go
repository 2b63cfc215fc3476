package logger

import "github.com/go-stack/stack"

// NewCallStack returns the call stack of the caller for attaching to
// logged errors.
func NewCallStack() interface{} {
	return stack.Trace()
}
