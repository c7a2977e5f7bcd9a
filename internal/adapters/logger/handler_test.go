package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/addon/internal/adapters/logger"
)

func newPretty(t *testing.T, level slog.Level) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level})), buf
}

func TestPrettyHandler_LevelIcons(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{name: "debug", level: slog.LevelDebug, want: "● yield after 8 steps\n"},
		{name: "info", level: slog.LevelInfo, want: "yield after 8 steps\n"},
		{name: "between info and warn", level: slog.LevelInfo + 2, want: "yield after 8 steps\n"},
		{name: "warn", level: slog.LevelWarn, want: "! yield after 8 steps\n"},
		{name: "error", level: slog.LevelError, want: "✗ yield after 8 steps\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, buf := newPretty(t, slog.LevelDebug)
			log.Log(context.Background(), tt.level, "yield after 8 steps")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Attributes(t *testing.T) {
	log, buf := newPretty(t, slog.LevelInfo)

	log.With("addon", "Foo").WithGroup("mount").Info("mounted",
		"resources", 3,
		"path", "Addons/Foo/ui icon",
		slog.Group("layer", "name", "elocal"),
		slog.Attr{},
		slog.Group("empty"),
	)

	assert.Equal(t, `mounted addon=Foo mount.resources=3 mount.path="Addons/Foo/ui icon" mount.layer.name=elocal`+"\n", buf.String())
}

func TestPrettyHandler_GroupsNest(t *testing.T) {
	log, buf := newPretty(t, slog.LevelInfo)

	log.WithGroup("pipeline").With("state", "LoadingPackages").WithGroup("package").Info("loading", "index", 2)

	assert.Equal(t, "loading pipeline.state=LoadingPackages pipeline.package.index=2\n", buf.String())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := logger.NewPrettyHandler(&bytes.Buffer{}, nil)

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}
