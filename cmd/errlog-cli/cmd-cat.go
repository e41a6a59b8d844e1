package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/grafana/errlog/pkg/errlog"
)

type catCmd struct {
	Path string `arg:"" help:"The file to print."`
}

func (cmd *catCmd) Run(ctx *kong.Context, _ *Config) error {
	content, err := errlog.Wrap(readFile(cmd.Path)).At(errlog.Debug).Msg("cat failed")
	if err != nil {
		for _, cause := range errlog.Causes(err) {
			errlog.Log(errlog.Error, cause)
		}
		return err
	}

	_, err = ctx.Stdout.Write(content)
	return err
}

func readFile(path string) ([]byte, error) {
	f, err := errlog.Wrap(os.Open(path)).Msgf("failed to open file %s", path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return errlog.Wrap(io.ReadAll(f)).Msgf("failed to read content from %s", path)
}
