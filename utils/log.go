package utils

import (
	"github.com/revel/config"

	"github.com/testunit/cmd/logger"
)

var Logger = logger.New()

func InitLogger(basePath string, logLevel logger.LogLevel) {
	newContext := config.NewContext()
	if logLevel == logger.LvlDebug {
		newContext.SetOption("log.debug.output", "stdout")
	} else {
		newContext.SetOption("log.debug.output", "off")
	}
	if logLevel >= logger.LvlInfo {
		newContext.SetOption("log.info.output", "stdout")
	} else {
		newContext.SetOption("log.info.output", "off")
	}

	newContext.SetOption("log.warn.output", "stderr")
	newContext.SetOption("log.error.output", "stderr")
	newContext.SetOption("log.crit.output", "stderr")
	Logger.SetHandler(logger.InitializeFromConfig(basePath, newContext))
}
