package gutil

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Line(t *testing.T) {
	l, out, errOut, rec := newTestLogger()
	log := slog.New(l.Handler(nil))

	log.Info("frame sealed", "bytes", 128, "codec", "S2")

	// slog stamps records with time.Now; only the tail is fixed.
	line := out.String()
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] INFO frame sealed bytes=128 codec=S2\n$`, line)
	assert.Empty(t, errOut.String())
	assert.Empty(t, rec.codes)
}

func TestHandler_FixedRecordTime(t *testing.T) {
	l, out, _, _ := newTestLogger()
	h := l.Handler(slog.LevelDebug)

	r := slog.NewRecord(fixedTime, slog.LevelDebug, "tick", 0)
	r.AddAttrs(slog.Int("n", 3))
	require.NoError(t, h.Handle(context.Background(), r))

	assert.Equal(t, "[2024-03-09 14:05:07] DEBUG tick n=3\n", out.String())
}

func TestHandler_ZeroRecordTimeUsesClock(t *testing.T) {
	l, out, _, _ := newTestLogger()
	h := l.Handler(nil)

	require.NoError(t, h.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "up", 0)))
	assert.Equal(t, "[2024-03-09 14:05:07] INFO up\n", out.String())
}

func TestHandler_Levels(t *testing.T) {
	l, out, errOut, rec := newTestLogger()
	h := l.Handler(slog.LevelWarn)
	ctx := context.Background()

	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))

	log := slog.New(h)
	log.Info("dropped")
	log.Warn("careful")
	log.Error("broken", "err", "eof")

	assert.Contains(t, out.String(), "WARN careful")
	assert.NotContains(t, out.String(), "dropped")
	assert.NotContains(t, out.String(), "broken")
	assert.Contains(t, errOut.String(), "ERROR broken err=eof")
	assert.Empty(t, rec.codes, "error records never exit")
}

func TestHandler_AttrsAndGroups(t *testing.T) {
	l, out, _, _ := newTestLogger()
	h := l.Handler(nil).
		WithAttrs([]slog.Attr{slog.String("node", "arm")}).
		WithGroup("joint").
		WithAttrs([]slog.Attr{slog.Int("id", 2)})

	r := slog.NewRecord(fixedTime, slog.LevelInfo, "moved", 0)
	r.AddAttrs(
		slog.Float64("angle", 1.5),
		slog.Group("limits", slog.Int("lo", -1), slog.Int("hi", 1)),
	)
	require.NoError(t, h.Handle(context.Background(), r))

	assert.Equal(t,
		"[2024-03-09 14:05:07] INFO moved node=arm joint.id=2 joint.angle=1.5 joint.limits.lo=-1 joint.limits.hi=1\n",
		out.String())
}

func TestHandler_EmptyGroupAndAttrsReturnSameHandler(t *testing.T) {
	l, _, _, _ := newTestLogger()
	h := l.Handler(nil)

	assert.Same(t, h, h.WithGroup(""))
	assert.Same(t, h, h.WithAttrs(nil))
}

func TestAttrValue(t *testing.T) {
	tests := []struct {
		name string
		v    slog.Value
		want string
	}{
		{"plain", slog.StringValue("ok"), "ok"},
		{"empty", slog.StringValue(""), `""`},
		{"space", slog.StringValue("two words"), `"two words"`},
		{"equals", slog.StringValue("a=b"), `"a=b"`},
		{"quote", slog.StringValue(`say "hi"`), `"say \"hi\""`},
		{"int", slog.IntValue(-4), "-4"},
		{"bool", slog.BoolValue(true), "true"},
		{"duration", slog.DurationValue(1500 * time.Millisecond), "1.5s"},
		{"time", slog.TimeValue(fixedTime), "2024-03-09T14:05:07Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, attrValue(tt.v))
		})
	}
}
