package errlog

import (
	"bytes"
	"runtime"
	"testing"

	kitlog "github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/errlog/pkg/util/log"
	"github.com/grafana/errlog/pkg/util/test"
)

// installCapture replaces the process-wide collector for the duration of the test.
func installCapture(t *testing.T) *test.CapturingLogger {
	t.Helper()

	prev := log.Logger
	logger := test.NewCapturingLogger(t)
	log.Logger = logger
	t.Cleanup(func() {
		log.Logger = prev
	})
	return logger
}

// currentLine returns the line it is called from.
func currentLine() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}

func TestLog(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{level: Trace, expected: "trace"},
		{level: Debug, expected: "debug"},
		{level: Info, expected: "info"},
		{level: Warn, expected: "warn"},
		{level: Error, expected: "error"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			logger := installCapture(t)

			Log(tc.level, "some msg")

			records := logger.Records()
			require.Len(t, records, 1)
			assert.Equal(t, tc.expected, records[0]["level"])
			assert.Equal(t, "some msg", records[0]["msg"])
		})
	}
}

func TestLogf(t *testing.T) {
	logger := installCapture(t)

	Logf(Info, "some %s with %d args", "msg", 2)

	records := logger.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "info", records[0]["level"])
	assert.Equal(t, "some msg with 2 args", records[0]["msg"])
}

func TestLogUnknownLevelIsNoop(t *testing.T) {
	logger := installCapture(t)

	Log(0, "unspecified")
	Log(Level(42), "out of range")
	Logf(Level(-1), "negative %d", -1)

	assert.Empty(t, logger.Lines())
}

func TestLogWithoutCollector(t *testing.T) {
	prev := log.Logger
	defer func() { log.Logger = prev }()
	log.Logger = kitlog.NewNopLogger()

	assert.NotPanics(t, func() {
		Log(Error, "nobody listens")
		Logf(Trace, "nobody %s", "listens")
	})
}

func TestLogIgnoresCollectorFilter(t *testing.T) {
	// the emitter hands the record over; whether it is written is up to the collector
	logger := installCapture(t)

	Log(Warn, "disk almost full")

	records := logger.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "warn", records[0]["level"])
	assert.Equal(t, "disk almost full", records[0]["msg"])

	buf := &bytes.Buffer{}
	log.Logger = log.NewLogger(&log.Config{Level: log.LevelError, Format: "logfmt"}, buf)
	Log(Warn, "disk almost full")
	Log(Error, "disk full")

	lines := test.DecodeLogfmt(t, buf.String())
	require.Len(t, lines, 1)
	assert.Equal(t, "disk full", lines[0]["msg"])
}
