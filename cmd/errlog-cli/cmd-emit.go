package main

import (
	"strings"

	"github.com/grafana/errlog/pkg/errlog"
	"github.com/grafana/errlog/pkg/util/log"
)

type emitCmd struct {
	Level   string   `arg:"" enum:"trace,debug,info,warn,error" help:"Severity of the record (trace | debug | info | warn | error)."`
	Message []string `arg:"" help:"The message, words are joined with a space."`
}

func (cmd *emitCmd) Run(_ *Config) error {
	lvl, err := log.ParseLevel(cmd.Level)
	if err != nil {
		return err
	}

	errlog.Log(lvl, strings.Join(cmd.Message, " "))
	return nil
}
