package test

import (
	"bytes"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-kit/log"
	"github.com/go-logfmt/logfmt"
)

var _ log.Logger = (*CapturingLogger)(nil)

// CapturingLogger keeps every record it receives as a logfmt line and echoes
// it to the test log until the test finishes.
type CapturingLogger struct {
	t    testing.TB
	mtx  sync.Mutex
	buf  bytes.Buffer
	enc  log.Logger
	done atomic.Bool
}

func NewCapturingLogger(t testing.TB) *CapturingLogger {
	l := &CapturingLogger{t: t}
	l.enc = log.NewLogfmtLogger(&l.buf)
	t.Cleanup(func() {
		l.done.Store(true)
	})
	return l
}

func (l *CapturingLogger) Log(keyvals ...interface{}) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	start := l.buf.Len()
	if err := l.enc.Log(keyvals...); err != nil {
		return err
	}
	if !l.done.Load() {
		l.t.Log(strings.TrimSuffix(l.buf.String()[start:], "\n"))
	}
	return nil
}

// Lines returns the raw logfmt lines received so far.
func (l *CapturingLogger) Lines() []string {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	s := strings.TrimSuffix(l.buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Records decodes the received lines into key/value maps.
func (l *CapturingLogger) Records() []map[string]string {
	return DecodeLogfmt(l.t, strings.Join(l.Lines(), "\n"))
}

// DecodeLogfmt decodes one map per logfmt line of s.
func DecodeLogfmt(t testing.TB, s string) []map[string]string {
	var records []map[string]string

	dec := logfmt.NewDecoder(strings.NewReader(s))
	for dec.ScanRecord() {
		rec := map[string]string{}
		for dec.ScanKeyval() {
			rec[string(dec.Key())] = string(dec.Value())
		}
		records = append(records, rec)
	}
	if err := dec.Err(); err != nil {
		t.Fatalf("decoding logfmt: %v", err)
	}
	return records
}
