package main

import (
	"flag"
	"io"
	"os"

	"github.com/drone/envsubst"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/grafana/errlog/pkg/util/log"
)

// Config is the root config for errlog-cli.
type Config struct {
	Log log.Config `yaml:"log"`
}

// RegisterFlagsAndApplyDefaults registers the flags.
func (c *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	c.Log.RegisterFlagsAndApplyDefaults(prefix, f)
}

// CheckConfig returns an error for settings the collector cannot honour.
func (c *Config) CheckConfig() error {
	if !c.Log.Level.Valid() {
		return errors.Errorf("invalid log level %d", int(c.Log.Level))
	}
	switch c.Log.Format {
	case "logfmt", "json":
	default:
		return errors.Errorf("invalid log format %q, expected logfmt or json", c.Log.Format)
	}
	return nil
}

// loadConfig applies defaults, overlays the config file if any and finally the
// command line options.
func loadConfig(opts *globalOptions) (*Config, error) {
	config := &Config{}

	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	config.RegisterFlagsAndApplyDefaults("", fs)

	if opts.ConfigFile != "" {
		buff, err := os.ReadFile(opts.ConfigFile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read configFile %s", opts.ConfigFile)
		}

		if opts.ConfigExpandEnv {
			s, err := envsubst.EvalEnv(string(buff))
			if err != nil {
				return nil, errors.Wrapf(err, "failed to expand env vars from configFile %s", opts.ConfigFile)
			}
			buff = []byte(s)
		}

		if err := yaml.UnmarshalStrict(buff, config); err != nil {
			return nil, errors.Wrapf(err, "failed to parse configFile %s", opts.ConfigFile)
		}
	}

	if opts.LogLevel != "" {
		if err := config.Log.Level.Set(opts.LogLevel); err != nil {
			return nil, errors.Wrap(err, "invalid --log.level")
		}
	}
	if opts.LogFormat != "" {
		config.Log.Format = opts.LogFormat
	}

	if err := config.CheckConfig(); err != nil {
		return nil, err
	}
	return config, nil
}
