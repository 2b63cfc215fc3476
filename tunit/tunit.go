// Copyright (c) The Test Unit Authors, All rights reserved.
// Test Unit source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

// The command line tool for running Test Unit suite manifests.
package main

import (
	"flag"
	"io"
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/agtorre/gocolorize"
	"github.com/jessevdk/go-flags"

	"github.com/testunit/cmd/logger"
	"github.com/testunit/cmd/model"
	"github.com/testunit/cmd/utils"
)

// Command structure cribbed from the genius organization of the "go" command.
type Command struct {
	UpdateConfig           func(c *model.CommandConfig, args []string) bool
	RunWith                func(c *model.CommandConfig) error
	UsageLine, Short, Long string
}

// Name returns command name from usage line
func (cmd *Command) Name() string {
	name := cmd.UsageLine
	i := strings.Index(name, " ")
	if i >= 0 {
		name = name[:i]
	}
	return name
}

// Commands is the dispatch table, indexed by model.COMMAND.
var Commands = []*Command{
	nil, // Safety net, prevent missing index from running
	cmdRun,
	cmdList,
	cmdWatch,
	cmdVersion,
}

func main() {
	if runtime.GOOS == "windows" {
		gocolorize.SetPlain(true)
	}
	c := &model.CommandConfig{}
	c.BasePath, _ = os.Getwd()

	utils.InitLogger(c.BasePath, logger.LvlError)

	parser := flags.NewParser(c, flags.HelpFlag|flags.PassDoubleDash)
	extra, err := parser.Parse()
	if err != nil {
		if perr, ok := err.(*flags.Error); ok && perr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		// Try the old way
		if !mainParseOld(c) {
			println("Command line error:", err.Error())
			parser.WriteHelp(os.Stdout)
			os.Exit(1)
		}
	} else {
		switch parser.Active.Name {
		case "run":
			c.Index = model.RUN
		case "list":
			c.Index = model.LIST
		case "watch":
			c.Index = model.WATCH
		case "version":
			c.Index = model.VERSION
		default:
			usage(2)
		}
		if !Commands[c.Index].UpdateConfig(c, extra) {
			usage(2)
		}
	}

	// Switch based on the verbose flag
	if c.Verbose {
		utils.InitLogger(c.BasePath, logger.LvlDebug)
	} else {
		utils.InitLogger(c.BasePath, logger.LvlWarn)
	}

	command := Commands[c.Index]
	if err := command.RunWith(c); err != nil {
		utils.Logger.Error("Command failed", "command", command.Name(), "error", err)
		os.Exit(1)
	}
}

// Try to populate the CommandConfig using the old positional format.
func mainParseOld(c *model.CommandConfig) bool {
	flag.Usage = func() { usage(1) }
	flag.Parse()
	args := flag.Args()

	if len(args) < 1 || args[0] == "help" {
		if len(args) == 1 {
			usage(0)
		}
		if len(args) > 1 {
			for _, cmd := range Commands {
				if cmd != nil && cmd.Name() == args[1] {
					tmpl(os.Stdout, helpTemplate, cmd)
					return false
				}
			}
		}
		usage(2)
	}

	for _, cmd := range Commands {
		if cmd != nil && cmd.Name() == args[0] {
			return cmd.UpdateConfig(c, args[1:])
		}
	}

	utils.Logger.Errorf("unknown command %q\nRun 'tunit help' for usage.\n", args[0])
	usage(2)
	return false
}

const usageTemplate = `usage: tunit command [arguments]

The commands are:
{{range .}}{{if .}}
    {{.Name | printf "%-11s"}} {{.Short}}{{end}}{{end}}

Use "tunit help [command]" for more information.
`

var helpTemplate = `usage: tunit {{.UsageLine}}
{{.Long}}
`

func usage(exitCode int) {
	tmpl(os.Stderr, usageTemplate, Commands)
	os.Exit(exitCode)
}

func tmpl(w io.Writer, text string, data interface{}) {
	t := template.New("top")
	template.Must(t.Parse(text))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
}
