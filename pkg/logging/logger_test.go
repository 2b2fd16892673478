package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger()
	if logger == nil {
		t.Fatal("NewLogger() returned nil")
	}
	if logger.Logger == nil {
		t.Fatal("Logger.Logger is nil")
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected slog.Level
	}{
		{"debug level", "DEBUG", slog.LevelDebug},
		{"info level", "INFO", slog.LevelInfo},
		{"warn level", "WARN", slog.LevelWarn},
		{"warning level", "WARNING", slog.LevelWarn},
		{"error level", "ERROR", slog.LevelError},
		{"lowercase debug", "debug", slog.LevelDebug},
		{"invalid level", "INVALID", slog.LevelInfo},
		{"empty value", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(LevelEnvVar, tt.envValue)
			if level := getLogLevelFromEnv(); level != tt.expected {
				t.Errorf("getLogLevelFromEnv() = %v, want %v", level, tt.expected)
			}
		})
	}
}

func TestCorrelationID(t *testing.T) {
	t.Run("generate correlation ID", func(t *testing.T) {
		id1 := GenerateCorrelationID()
		id2 := GenerateCorrelationID()
		if id1 == id2 {
			t.Error("GenerateCorrelationID() returned duplicate IDs")
		}
		if len(id1) != 16 {
			t.Errorf("GenerateCorrelationID() returned wrong length: %d", len(id1))
		}
	})

	t.Run("context round trip", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "run-1")
		if got := GetCorrelationID(ctx); got != "run-1" {
			t.Errorf("GetCorrelationID() = %q, want %q", got, "run-1")
		}
	})

	t.Run("empty ID is generated", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "")
		if GetCorrelationID(ctx) == "" {
			t.Error("expected generated correlation ID")
		}
	})

	t.Run("missing ID", func(t *testing.T) {
		if got := GetCorrelationID(context.Background()); got != "" {
			t.Errorf("GetCorrelationID() = %q, want empty", got)
		}
	})
}

func TestLoggerOutput(t *testing.T) {
	t.Setenv(LevelEnvVar, "DEBUG")
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf)
	ctx := WithCorrelationID(context.Background(), "abc")

	logger.Error(ctx, "texture load failed", errors.New("no such file"), "body", "mars")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "texture load failed" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["error"] != "no such file" {
		t.Errorf("error = %v", entry["error"])
	}
	if entry["body"] != "mars" {
		t.Errorf("body = %v", entry["body"])
	}
	if entry["correlation_id"] != "abc" {
		t.Errorf("correlation_id = %v", entry["correlation_id"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	t.Setenv(LevelEnvVar, "WARN")
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf)

	logger.Debug(context.Background(), "frame rendered")
	logger.Info(context.Background(), "tick")
	if buf.Len() != 0 {
		t.Errorf("expected no output below WARN, got %s", buf.String())
	}

	logger.Warn(context.Background(), "fallback")
	if !strings.Contains(buf.String(), "fallback") {
		t.Errorf("expected warning in output, got %s", buf.String())
	}
}

func TestWith(t *testing.T) {
	t.Setenv(LevelEnvVar, "")
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf).With("component", "renderer")
	logger.Info(context.Background(), "ready")
	if !strings.Contains(buf.String(), `"component":"renderer"`) {
		t.Errorf("expected component attribute, got %s", buf.String())
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("boom")

	if WrapError(nil, "ctx") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	wrapped := WrapError(base, "loading %s", "config.json")
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to base")
	}
	if wrapped.Error() != "loading config.json: boom" {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
}
