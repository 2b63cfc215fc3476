package logger

import (
	"path/filepath"
	"strings"

	"github.com/revel/config"
	log15 "github.com/revel/log15"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// The config keys consulted by InitializeFromConfig, one output target
// per level.
var levelOptions = []struct {
	key string
	lvl LogLevel
}{
	{"log.debug.output", LvlDebug},
	{"log.info.output", LvlInfo},
	{"log.warn.output", LvlWarn},
	{"log.error.output", LvlError},
	{"log.crit.output", LvlCrit},
}

// InitializeFromConfig builds a handler from the log.*.output options in
// the context. Each level routes to "off", "stdout", "stderr" or a file
// name; file targets are rotated with lumberjack and resolved relative
// to basePath.
func InitializeFromConfig(basePath string, cfg *config.Context) log15.Handler {
	if cfg == nil {
		cfg = config.NewContext()
	}

	dispatch := levelDispatchHandler{}
	for _, opt := range levelOptions {
		target := cfg.StringDefault(opt.key, "stderr")
		dispatch[lvl15(opt.lvl)] = targetHandler(basePath, target)
	}
	return dispatch
}

// targetHandler resolves a single output target string.
func targetHandler(basePath, target string) log15.Handler {
	switch strings.ToLower(target) {
	case "off", "":
		return log15.DiscardHandler()
	case "stdout":
		return stdoutHandler()
	case "stderr":
		return stderrHandler()
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(basePath, target)
	}
	writer := &lumberjack.Logger{
		Filename:   target,
		MaxSize:    10, // megabytes
		MaxBackups: 7,
		MaxAge:     28, // days
	}
	return log15.StreamHandler(writer, log15.LogfmtFormat())
}

// levelDispatchHandler routes each record to the handler registered for
// its level. Levels without an entry are dropped.
type levelDispatchHandler map[log15.Lvl]log15.Handler

func (h levelDispatchHandler) Log(r *log15.Record) error {
	if target, ok := h[r.Lvl]; ok {
		return target.Log(r)
	}
	return nil
}
