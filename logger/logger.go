// Package logger provides the structured logger used across the tunit
// tool. It is a thin shell over log15 with formatted convenience
// methods and config-driven per-level output routing.
package logger

import (
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	log15 "github.com/revel/log15"
)

// LogLevel type for filtering the handlers.
type LogLevel int

// The log levels, most severe first.
const (
	LvlCrit LogLevel = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
)

// MultiLogger is the logger interface handed around the tool. It is
// log15's key-value surface plus the formatted and terminating helpers
// the commands use.
type MultiLogger interface {
	New(ctx ...interface{}) MultiLogger
	SetHandler(h log15.Handler)

	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Critf(format string, args ...interface{})

	// Fatal and Fatalf log at crit and exit the process.
	Fatal(msg string, ctx ...interface{})
	Fatalf(format string, args ...interface{})
	// Panic and Panicf log at crit and panic.
	Panic(msg string, ctx ...interface{})
	Panicf(format string, args ...interface{})
}

type compositeLogger struct {
	log15.Logger
}

// New returns a MultiLogger with a discard handler installed; callers
// are expected to SetHandler (normally via InitializeFromConfig).
func New(ctx ...interface{}) MultiLogger {
	l := &compositeLogger{Logger: log15.New(ctx...)}
	l.SetHandler(log15.DiscardHandler())
	return l
}

func (c *compositeLogger) New(ctx ...interface{}) MultiLogger {
	return &compositeLogger{Logger: c.Logger.New(ctx...)}
}

func (c *compositeLogger) SetHandler(h log15.Handler) {
	c.Logger.SetHandler(h)
}

func (c *compositeLogger) Debugf(format string, args ...interface{}) {
	c.Debug(fmt.Sprintf(format, args...))
}

func (c *compositeLogger) Infof(format string, args ...interface{}) {
	c.Info(fmt.Sprintf(format, args...))
}

func (c *compositeLogger) Warnf(format string, args ...interface{}) {
	c.Warn(fmt.Sprintf(format, args...))
}

func (c *compositeLogger) Errorf(format string, args ...interface{}) {
	c.Error(fmt.Sprintf(format, args...))
}

func (c *compositeLogger) Critf(format string, args ...interface{}) {
	c.Crit(fmt.Sprintf(format, args...))
}

func (c *compositeLogger) Fatal(msg string, ctx ...interface{}) {
	c.Crit(msg, ctx...)
	os.Exit(1)
}

func (c *compositeLogger) Fatalf(format string, args ...interface{}) {
	c.Critf(format, args...)
	os.Exit(1)
}

func (c *compositeLogger) Panic(msg string, ctx ...interface{}) {
	c.Crit(msg, ctx...)
	panic(msg)
}

func (c *compositeLogger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.Crit(msg)
	panic(msg)
}

// lvl15 maps our level to the log15 one.
func lvl15(l LogLevel) log15.Lvl {
	switch l {
	case LvlCrit:
		return log15.LvlCrit
	case LvlError:
		return log15.LvlError
	case LvlWarn:
		return log15.LvlWarn
	case LvlInfo:
		return log15.LvlInfo
	default:
		return log15.LvlDebug
	}
}

// stdoutHandler and stderrHandler give the terminal format a
// windows-safe writer.
func stdoutHandler() log15.Handler {
	return log15.StreamHandler(colorable.NewColorableStdout(), log15.TerminalFormat())
}

func stderrHandler() log15.Handler {
	return log15.StreamHandler(colorable.NewColorableStderr(), log15.TerminalFormat())
}
