package gutil

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Handler returns a log/slog handler that writes through l in the same
// bracketed-timestamp style as LogFmt:
//
//	[2024-03-09 14:05:07] INFO frame sealed bytes=128 codec=S2
//
// Records below level are dropped; a nil level means slog.LevelInfo.
// Records at slog.LevelError and above go to the error stream but never
// exit the process.
func (l *Logger) Handler(level slog.Leveler) slog.Handler {
	if level == nil {
		level = slog.LevelInfo
	}

	return &lineHandler{logger: l, level: level}
}

type lineHandler struct {
	logger *Logger
	level  slog.Leveler
	attrs  string // pre-rendered WithAttrs output
	prefix string // group path for keys, "a.b."
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = h.logger.now()
	}

	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(h.logger.timestamp(ts))
	sb.WriteString("] ")
	sb.WriteString(r.Level.String())
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.prefix, a)
		return true
	})
	sb.WriteByte('\n')

	w := h.logger.out
	if r.Level >= slog.LevelError {
		w = h.logger.errOut
	}
	h.logger.write(w, sb.String())

	return nil
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var sb strings.Builder
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&sb, h.prefix, a)
	}

	clone := *h
	clone.attrs = sb.String()

	return &clone
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."

	return &clone
}

func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		inner := prefix
		if a.Key != "" {
			inner = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(sb, inner, ga)
		}

		return
	}

	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(attrValue(a.Value))
}

func attrValue(v slog.Value) string {
	if v.Kind() == slog.KindTime {
		return v.Time().Format(time.RFC3339Nano)
	}

	s := v.String()
	if s == "" || strings.ContainsAny(s, " =\"\t\n") {
		return strconv.Quote(s)
	}

	return s
}
