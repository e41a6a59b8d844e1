package main

import (
	"github.com/alecthomas/kong"

	"github.com/grafana/errlog/pkg/util/log"
)

type globalOptions struct {
	ConfigFile      string `name:"config.file" type:"path" help:"Configuration file to load."`
	ConfigExpandEnv bool   `name:"config.expand-env" help:"Expand environment variable references in the configuration file."`
	LogLevel        string `name:"log.level" env:"ERRLOG_LEVEL" help:"Only log messages with the given severity or above (trace, debug, info, warn, error)."`
	LogFormat       string `name:"log.format" help:"Output log messages in the given format (logfmt, json)."`
}

type CLI struct {
	globalOptions

	Cat    catCmd    `cmd:"" help:"Print a file, logging every failed step on the way."`
	Emit   emitCmd   `cmd:"" help:"Emit a single log record."`
	Config configCmd `cmd:"" help:"Print the effective configuration."`
}

var cli CLI

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("errlog-cli"),
		kong.Description("Tool for trying out call-site annotated errors and leveled logging"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	config, err := loadConfig(&cli.globalOptions)
	ctx.FatalIfErrorf(err)

	log.InitLogger(&config.Log)

	err = ctx.Run(config)
	ctx.FatalIfErrorf(err)
}
