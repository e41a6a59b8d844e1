package main

import (
	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v2"
)

type configCmd struct{}

func (cmd *configCmd) Run(ctx *kong.Context, config *Config) error {
	out, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	_, err = ctx.Stdout.Write(out)
	return err
}
