package log

import (
	"flag"
	"io"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	dslog "github.com/grafana/dskit/log"
)

// Logger is the process-wide go-kit logger every record is sent to. It
// discards everything until a collector is installed with InitLogger or by
// assigning it directly.
var Logger = kitlog.NewNopLogger()

// Config selects the format and minimum level of the installed collector.
type Config struct {
	Level  Level  `yaml:"level"`
	Format string `yaml:"format"`
}

// RegisterFlagsAndApplyDefaults registers the flags.
func (cfg *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	cfg.Level = LevelInfo
	f.Var(&cfg.Level, prefix+"log.level", "Only log messages with the given severity or above. Valid levels: [trace, debug, info, warn, error]")
	f.StringVar(&cfg.Format, prefix+"log.format", "logfmt", "Output log messages in the given format. Valid formats: [logfmt, json]")
}

// traceValue is the value of the level key on trace records. go-kit only knows
// debug through error, so trace records carry a plain string instead.
const traceValue = "trace"

// Trace returns a logger that tags its records with level=trace.
func Trace(logger kitlog.Logger) kitlog.Logger {
	return kitlog.WithPrefix(logger, level.Key(), traceValue)
}

// InitLogger initialises the global gokit logger and returns that logger.
func InitLogger(cfg *Config) kitlog.Logger {
	logger := NewLogger(cfg, os.Stderr)
	Logger = logger
	return logger
}

// NewLogger builds a collector writing to w in the configured format. Records
// below the configured level are dropped, trace records included.
func NewLogger(cfg *Config, w io.Writer) kitlog.Logger {
	logger := dslog.NewGoKitWithWriter(cfg.Format, kitlog.NewSyncWriter(w))

	// use UTC timestamps
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	// Must put the level filter last for efficiency.
	logger = level.NewFilter(logger, filterOption(cfg.Level))
	if cfg.Level != LevelTrace {
		logger = dropTrace{next: logger}
	}
	return logger
}

func filterOption(l Level) level.Option {
	switch l {
	case LevelTrace, LevelDebug:
		return level.AllowDebug()
	case LevelWarn:
		return level.AllowWarn()
	case LevelError:
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// dropTrace discards records whose level key is the trace value.
type dropTrace struct {
	next kitlog.Logger
}

func (d dropTrace) Log(keyvals ...interface{}) error {
	for i := 0; i+1 < len(keyvals); i += 2 {
		if keyvals[i] == level.Key() && keyvals[i+1] == traceValue {
			return nil
		}
	}
	return d.next.Log(keyvals...)
}
