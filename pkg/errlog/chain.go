package errlog

import (
	"strings"

	"github.com/pkg/errors"
)

// Chain returns the message of every layer of err, outermost first. A
// layer's message is its own text without the text of the error it wraps, so
// errors.WithMessage(io.EOF, "reading header") yields
// ["reading header", "EOF"]. Wrappers that add no text of their own, like
// the stack recorded by errors.WithStack, are not layers. Joined errors end
// the chain.
func Chain(err error) []string {
	var chain []string
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			chain = append(chain, err.Error())
			break
		}

		msg, inner := err.Error(), next.Error()
		switch {
		case msg == inner:
		case strings.HasSuffix(msg, ": "+inner):
			chain = append(chain, strings.TrimSuffix(msg, ": "+inner))
		default:
			chain = append(chain, msg)
		}
		err = next
	}
	return chain
}

// Causes returns the non-empty layer messages of err after the first one. The
// first layer is the message the caller already has from err.Error().
func Causes(err error) []string {
	causes := []string{}
	for i, msg := range Chain(err) {
		if i == 0 || msg == "" {
			continue
		}
		causes = append(causes, msg)
	}
	return causes
}

// Backtrace takes the outcome of a fallible call and returns the causes of
// its error, or an empty slice when it succeeded:
//
//	for _, cause := range errlog.Backtrace(run()) {
//		errlog.Log(errlog.Error, cause)
//	}
func Backtrace[T any](_ T, err error) []string {
	return Causes(err)
}
