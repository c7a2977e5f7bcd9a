// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/addon/internal/ui/output"
	"go.trai.ch/addon/internal/ui/style"
)

// levelMark is the icon and color a record level is rendered with.
type levelMark struct {
	icon  string
	color lipgloss.Color
}

var levelMarks = map[slog.Level]levelMark{
	slog.LevelDebug: {icon: style.Dot, color: style.Iris},
	slog.LevelInfo:  {color: style.Slate},
	slog.LevelWarn:  {icon: style.Warning, color: style.Yellow},
	slog.LevelError: {icon: style.Cross, color: style.Red},
}

// PrettyHandler is a slog.Handler producing one colored line per record:
// the level icon, the message and key=value attributes. Grouped keys are
// joined with dots.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  string
	groups []string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record. Levels between the standard ones
// render like Info.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	mark, ok := levelMarks[r.Level]
	if !ok {
		mark = levelMarks[slog.LevelInfo]
	}

	var b strings.Builder
	if mark.icon != "" {
		b.WriteString(mark.icon)
		b.WriteByte(' ')
	}
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.groups, a)
		return true
	})

	styled := h.out.String(b.String()).Foreground(h.out.Color(string(mark.color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a Handler that renders attrs after every message.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.groups, a)
	}

	clone := *h
	clone.attrs = b.String()
	return &clone
}

// WithGroup returns a Handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.groups = append(slices.Clip(h.groups), name)
	return &clone
}

// appendAttr writes " key=value" for a, flattening groups into dotted keys.
// Empty attributes and empty groups are dropped; values with spaces or quotes
// are quoted.
func appendAttr(b *strings.Builder, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			groups = append(slices.Clip(groups), a.Key)
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, groups, ga)
		}
		return
	}

	val := a.Value.String()
	if strings.ContainsAny(val, " \t\n\"=") {
		val = strconv.Quote(val)
	}

	b.WriteByte(' ')
	b.WriteString(strings.Join(append(slices.Clip(groups), a.Key), "."))
	b.WriteByte('=')
	b.WriteString(val)
}
