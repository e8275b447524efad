package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON, FormatTint} {
		var buf bytes.Buffer
		if err := Init(WithFormat(format), WithOutput(&buf)); err != nil {
			t.Fatalf("failed to initialize %s logger: %v", format, err)
		}
		if Get() == nil {
			t.Fatalf("logger is nil after %s initialization", format)
		}
		Get().Info(context.Background(), "hello", String("k", "v"))
		if !strings.Contains(buf.String(), "hello") {
			t.Errorf("%s output missing message: %q", format, buf.String())
		}
	}
}

func TestLoggerUnknownFormat(t *testing.T) {
	if err := Init(WithFormat("xml")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestLoggerSource(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithFormat(FormatJSON), WithOutput(&buf)); err != nil {
		t.Fatalf("init: %v", err)
	}
	Get().Warn(context.Background(), "with source", Error(errors.New("boom")))
	out := buf.String()
	if !strings.Contains(out, "logger_test.go") {
		t.Errorf("expected caller source in output, got %q", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("expected error text in output, got %q", out)
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithOutput(&buf), WithLevel(slog.LevelWarn)); err != nil {
		t.Fatalf("init: %v", err)
	}
	ctx := context.Background()
	Get().Info(ctx, "hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}

	if err := SetLevelString("debug"); err != nil {
		t.Fatalf("set level: %v", err)
	}
	Get().Debug(ctx, "visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug should pass after SetLevelString(debug)")
	}

	if err := SetLevelString("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLoggerNamedAndWith(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithOutput(&buf)); err != nil {
		t.Fatalf("init: %v", err)
	}
	Named("compare").With(String("session", "s1")).Info(context.Background(), "added")
	out := buf.String()
	if !strings.Contains(out, "session=s1") {
		t.Errorf("expected bound field, got %q", out)
	}
	if !strings.Contains(out, "compare.") {
		t.Errorf("expected group prefix, got %q", out)
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info(context.Background(), "dropped")
	l.Named("x").With(Int("n", 1)).Error(context.Background(), "dropped")
}
