package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/wcw/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		minLevel   slog.Level
		level      slog.Level
		msg        string
		goldenName string
	}{
		{"info level", slog.LevelInfo, slog.LevelInfo, "information message", "handler_info"},
		{"warn level", slog.LevelInfo, slog.LevelWarn, "warning message", "handler_warn"},
		{"error level", slog.LevelInfo, slog.LevelError, "error message", "handler_error"},
		{"debug level filtered", slog.LevelInfo, slog.LevelDebug, "debug message", "handler_debug_filtered"},
		{"debug level enabled", slog.LevelDebug, slog.LevelDebug, "debug message", "handler_debug_enabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: tt.minLevel})
			slog.New(handler).Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	tests := []struct {
		name       string
		build      func(slog.Handler) *slog.Logger
		msg        string
		args       []any
		goldenName string
	}{
		{
			name: "handler attribute",
			build: func(h slog.Handler) *slog.Logger {
				return slog.New(h.WithAttrs([]slog.Attr{slog.String("folder", "paper-button")}))
			},
			msg:        "cloning paper-button",
			goldenName: "handler_attrs_single",
		},
		{
			name: "group attribute",
			build: func(h slog.Handler) *slog.Logger {
				return slog.New(h.WithAttrs([]slog.Attr{slog.Group("g", slog.String("k", "v"))}))
			},
			msg:        "group attr message",
			goldenName: "handler_attrs_group",
		},
		{
			name: "nested groups",
			build: func(h slog.Handler) *slog.Logger {
				return slog.New(h.WithGroup("a").WithGroup("b"))
			},
			msg:        "nested group message",
			args:       []any{"key", "val"},
			goldenName: "handler_group_nested",
		},
		{
			name: "empty group name",
			build: func(h slog.Handler) *slog.Logger {
				return slog.New(h.WithGroup(""))
			},
			msg:        "empty group test",
			args:       []any{"key", "val"},
			goldenName: "handler_group_empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
			tt.build(handler).Info(tt.msg, tt.args...)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	handler := logger.NewPrettyHandler(nil, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, handler.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelError))
}
