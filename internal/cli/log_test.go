package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	if logger == nil {
		t.Fatal("newLogger() returned nil")
	}

	logger.Info("selected variant")
	if buf.Len() == 0 {
		t.Error("expected log output, buffer is empty")
	}
}

func TestNewLoggerLevelFiltering(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"info passes at info level", log.InfoLevel, func(l *log.Logger) { l.Info("x") }, true},
		{"debug dropped at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("x") }, false},
		{"debug passes at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("x") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("wrote output = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	if prog == nil {
		t.Fatal("newProgress() returned nil")
	}

	time.Sleep(10 * time.Millisecond)
	prog.done("layout complete")

	if !strings.Contains(buf.String(), "layout complete") {
		t.Errorf("progress output %q missing completion message", buf.String())
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), logger)
	got := loggerFromContext(ctx)
	if got != logger {
		t.Fatal("loggerFromContext returned a different logger than was stashed")
	}

	got.Info("from context")
	if buf.Len() == 0 {
		t.Error("logger pulled from context should write to its buffer")
	}
}

func TestLoggerFromContextFallback(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext must fall back to a usable logger")
	}
}
