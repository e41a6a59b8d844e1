package errlog

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/grafana/errlog/pkg/util/log"
)

// callerDepth skips FileLocation, annotate and the exported terminal method.
const callerDepth = 3

// Result holds the outcome of a fallible call until it is finished with Get,
// Msg or Msgf.
type Result[T any] struct {
	value T
	err   error
	level Level
}

// Wrap captures the outcome of a fallible call, e.g. Wrap(os.Open(path)).
func Wrap[T any](value T, err error) Result[T] {
	return Result[T]{value: value, err: err}
}

// At sets the level the failure is logged at. Without it errors are logged at
// Error.
func (r Result[T]) At(lvl Level) Result[T] {
	r.level = lvl
	return r
}

func (r Result[T]) Value() T        { return r.value }
func (r Result[T]) Err() error      { return r.err }
func (r Result[T]) IsSuccess() bool { return r.err == nil }

// Backtrace returns the causes of the wrapped error. See Causes.
func (r Result[T]) Backtrace() []string {
	return Causes(r.err)
}

// Get returns the wrapped outcome, annotating a failure with the call site only.
func (r Result[T]) Get() (T, error) {
	if r.err == nil {
		return r.value, nil
	}
	return r.value, annotate(r.level, r.err, nil)
}

// Msg returns the wrapped outcome, annotating a failure with the call site and msg.
func (r Result[T]) Msg(msg string) (T, error) {
	if r.err == nil {
		return r.value, nil
	}
	return r.value, annotate(r.level, r.err, func() string { return msg })
}

// Msgf is like Msg but the message is formatted, only when the call failed.
func (r Result[T]) Msgf(format string, args ...interface{}) (T, error) {
	if r.err == nil {
		return r.value, nil
	}
	return r.value, annotate(r.level, r.err, func() string { return fmt.Sprintf(format, args...) })
}

// ErrResult is Result for operations that only return an error.
type ErrResult struct {
	err   error
	level Level
}

// WrapErr captures the outcome of an operation that only returns an error,
// e.g. WrapErr(f.Close()).
func WrapErr(err error) ErrResult {
	return ErrResult{err: err}
}

// At sets the level the failure is logged at. Without it errors are logged at
// Error.
func (r ErrResult) At(lvl Level) ErrResult {
	r.level = lvl
	return r
}

func (r ErrResult) Err() error { return r.err }

func (r ErrResult) Get() error {
	if r.err == nil {
		return nil
	}
	return annotate(r.level, r.err, nil)
}

func (r ErrResult) Msg(msg string) error {
	if r.err == nil {
		return nil
	}
	return annotate(r.level, r.err, func() string { return msg })
}

func (r ErrResult) Msgf(format string, args ...interface{}) error {
	if r.err == nil {
		return nil
	}
	return annotate(r.level, r.err, func() string { return fmt.Sprintf(format, args...) })
}

// annotate must be called directly by the exported terminal methods so that
// callerDepth points at their caller.
func annotate(lvl Level, err error, msg func() string) error {
	note := FileLocation(callerDepth, 2)
	if msg != nil {
		note += " => " + msg()
	}
	if lvl == 0 {
		lvl = Error
	}

	emit(log.Logger, lvl, "msg", note, "err", err)
	metricAnnotatedErrorsTotal.WithLabelValues(lvl.String()).Inc()

	return errors.WithMessage(err, note)
}
