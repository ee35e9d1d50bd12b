// Package gutil is a collection of small, independent helpers that keep
// turning up in robotics and telemetry projects: fixed-width binary
// encoding, timestamps, printf-style logging, generic container helpers,
// loop pacing and angle math.
//
// Nothing here holds state between calls. The few functions that touch the
// outside world (clock, sleep, stdout/stderr, process exit) have a
// configurable type behind them: Logger and Scheduler.
//
// # Binary fields
//
// Fields are big-endian and fixed width. Float values travel as fixed-point
// integers, stored = int(value*scale), truncated toward zero:
//
//	buf := make([]byte, 6)
//	cur := gutil.AppendInt32(buf, 0, 0x12345678)
//	cur = gutil.AppendFloat16(buf, cur, 1.2345, 1000) // stores 1234
//
// The cursor is passed in and the advanced cursor is returned. Buffers are
// never grown; running off the end panics with errs.ErrBufferOverflow.
// Writer and Reader bundle a buffer with its cursor, and Frame grows on
// demand and seals the payload with optional compression and an xxHash64
// checksum:
//
//	f, _ := gutil.NewFrame(gutil.WithFrameCompression(format.CompressionZstd))
//	f.Int32(seq)
//	f.Float32(lat, 1e7)
//	data, _ := f.Finish()
//
//	r, err := gutil.OpenFrame(data)
//	seq = r.Int32()
//
// # Formatting and logging
//
// StrFmt is fmt.Sprintf that returns StrFmtError when the format and its
// operands do not match. PrintFmt, PrintLnFmt and LogFmt write to standard
// output; LogFmt prefixes "[<CurrentDateTimeStr>] ". ErrFmt writes the same
// line to standard error and exits with status 1. Logger.Handler exposes the
// same line format to log/slog.
//
// # Containers
//
// MapGetOrDefault, Clamp, VecContains and VecIndexOf are generic. Clamp
// takes the upper bound before the lower bound.
//
// # Pacing
//
// ScheduleRate sleeps off the rest of a loop period and reports the elapsed
// time, which exceeds the period when the loop ran late.
//
// # Angles
//
// NormalizeAnglePositive maps into [0, 2π), NormalizeAngle into (-π, π], and
// ShortestAngularDistance gives the signed short-way rotation between two
// headings.
package gutil
