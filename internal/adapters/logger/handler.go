package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/snodelist/internal/ui/output"
	"go.trai.ch/snodelist/internal/ui/style"
)

// levelStyle is the icon and color of one log level.
type levelStyle struct {
	icon  string
	color lipgloss.Color
}

var levelStyles = map[slog.Level]levelStyle{
	slog.LevelWarn:  {icon: style.Warning, color: style.Yellow},
	slog.LevelError: {icon: style.Cross, color: style.Red},
}

func styleFor(level slog.Level) levelStyle {
	if s, ok := levelStyles[level]; ok {
		return s
	}
	return levelStyle{color: style.Slate}
}

// PrettyHandler is a slog.Handler writing one colored line per record.
type PrettyHandler struct {
	mu     *sync.Mutex
	out    *termenv.Output
	level  slog.Leveler
	prefix string // group path, dot-terminated
	attrs  []string
}

// NewPrettyHandler creates a PrettyHandler writing to w, os.Stderr when nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		mu:    &sync.Mutex{},
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record as "<icon> message key=value ...".
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	ls := styleFor(r.Level)

	var b strings.Builder
	if ls.icon != "" {
		b.WriteString(ls.icon)
		b.WriteByte(' ')
	}
	b.WriteString(r.Message)

	parts := slices.Clip(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		parts = appendAttr(parts, h.prefix, a)
		return true
	})
	for _, p := range parts {
		b.WriteByte(' ')
		b.WriteString(p)
	}

	line := h.out.String(b.String()).Foreground(termenv.RGBColor(string(ls.color))).String()

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.WriteString(line + "\n")
	return err
}

// WithAttrs returns a handler that renders attrs on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = slices.Clip(h.attrs)
	for _, a := range attrs {
		clone.attrs = appendAttr(clone.attrs, h.prefix, a)
	}
	return &clone
}

// WithGroup returns a handler that qualifies later keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// appendAttr renders a as key=value, flattening groups into dotted keys.
func appendAttr(parts []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return parts
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			parts = appendAttr(parts, prefix, ga)
		}
		return parts
	}
	return append(parts, prefix+a.Key+"="+a.Value.String())
}
