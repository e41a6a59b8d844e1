package errlog

import (
	"fmt"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/grafana/errlog/pkg/util/log"
)

type Level = log.Level

const (
	Trace = log.LevelTrace
	Debug = log.LevelDebug
	Info  = log.LevelInfo
	Warn  = log.LevelWarn
	Error = log.LevelError
)

// Log emits msg as a single record at lvl.
func Log(lvl Level, msg string) {
	emit(log.Logger, lvl, "msg", msg)
}

// Logf emits a single record at lvl with the formatted message.
func Logf(lvl Level, format string, args ...interface{}) {
	emit(log.Logger, lvl, "msg", fmt.Sprintf(format, args...))
}

// emit is a no-op for levels outside the five known ones.
func emit(logger kitlog.Logger, lvl Level, keyvals ...interface{}) {
	switch lvl {
	case Trace:
		_ = log.Trace(logger).Log(keyvals...)
	case Debug:
		_ = level.Debug(logger).Log(keyvals...)
	case Info:
		_ = level.Info(logger).Log(keyvals...)
	case Warn:
		_ = level.Warn(logger).Log(keyvals...)
	case Error:
		_ = level.Error(logger).Log(keyvals...)
	}
}
