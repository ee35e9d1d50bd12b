package gutil

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/jlanguell/gutil/internal/options"
)

// Logger writes formatted lines to an output stream and fatal lines to an
// error stream.
//
// Lines written by one Logger never interleave: every write holds the
// Logger's mutex. The zero value is not usable; use NewLogger.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	layout string
	now    func() time.Time
	exit   func(code int)
}

// LoggerOption configures a Logger. Nil arguments keep the default.
type LoggerOption = options.Option[*Logger]

// WithOutput sets the stream used by PrintFmt, PrintLnFmt and LogFmt.
// Defaults to os.Stdout.
func WithOutput(w io.Writer) LoggerOption {
	return options.NoError(func(l *Logger) {
		if w != nil {
			l.out = w
		}
	})
}

// WithErrorOutput sets the stream used by ErrFmt. Defaults to os.Stderr.
func WithErrorOutput(w io.Writer) LoggerOption {
	return options.NoError(func(l *Logger) {
		if w != nil {
			l.errOut = w
		}
	})
}

// WithTimeLayout sets the strftime layout of the timestamp prefix.
// Defaults to DefaultDateTimeLayout.
func WithTimeLayout(layout string) LoggerOption {
	return options.NoError(func(l *Logger) {
		if layout != "" {
			l.layout = layout
		}
	})
}

// WithLogClock sets the time source for timestamp prefixes. Defaults to time.Now.
func WithLogClock(now func() time.Time) LoggerOption {
	return options.NoError(func(l *Logger) {
		if now != nil {
			l.now = now
		}
	})
}

// WithExit sets the function ErrFmt calls after writing. Defaults to os.Exit.
func WithExit(exit func(code int)) LoggerOption {
	return options.NoError(func(l *Logger) {
		if exit != nil {
			l.exit = exit
		}
	})
}

// NewLogger creates a Logger writing to os.Stdout and os.Stderr.
func NewLogger(opts ...LoggerOption) *Logger {
	l := &Logger{
		out:    os.Stdout,
		errOut: os.Stderr,
		layout: DefaultDateTimeLayout,
		now:    time.Now,
		exit:   os.Exit,
	}
	// Logger options cannot fail.
	_ = options.Apply(l, opts...)

	return l
}

// PrintFmt writes StrFmt(format, args...) with no trailing newline.
func (l *Logger) PrintFmt(format string, args ...any) {
	l.write(l.out, StrFmt(format, args...))
}

// PrintLnFmt writes StrFmt(format, args...) followed by a newline.
func (l *Logger) PrintLnFmt(format string, args ...any) {
	l.write(l.out, StrFmt(format, args...)+"\n")
}

// LogFmt writes "[<timestamp>] <message>\n".
func (l *Logger) LogFmt(format string, args ...any) {
	l.write(l.out, l.line(format, args))
}

// ErrFmt writes "[<timestamp>] <message>\n" to the error stream and then
// exits with status 1. With the default exit function it does not return
// and no deferred calls run.
func (l *Logger) ErrFmt(format string, args ...any) {
	l.write(l.errOut, l.line(format, args))
	l.exit(1)
}

func (l *Logger) line(format string, args []any) string {
	return "[" + l.timestamp(l.now()) + "] " + StrFmt(format, args...) + "\n"
}

func (l *Logger) timestamp(t time.Time) string {
	return FormatDateTime(l.layout, t)
}

// write ignores stream errors; a logger has nowhere to report them.
func (l *Logger) write(w io.Writer, s string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = io.WriteString(w, s)
}

var std = NewLogger()

// DefaultLogger returns the Logger behind the package-level print functions.
func DefaultLogger() *Logger {
	return std
}

// PrintFmt writes StrFmt(format, args...) to standard output.
func PrintFmt(format string, args ...any) {
	std.PrintFmt(format, args...)
}

// PrintLnFmt writes StrFmt(format, args...) and a newline to standard output.
func PrintLnFmt(format string, args ...any) {
	std.PrintLnFmt(format, args...)
}

// LogFmt writes a timestamped line to standard output:
//
//	[2024-03-09 14:05:07] connected to 10.0.0.4
func LogFmt(format string, args ...any) {
	std.LogFmt(format, args...)
}

// ErrFmt writes a timestamped line to standard error and terminates the
// process with exit status 1.
//
// ErrFmt never returns. It is the only function in gutil that ends the
// process; deferred functions in the caller do not run. Reserve it for
// errors the program cannot recover from.
func ErrFmt(format string, args ...any) {
	std.ErrFmt(format, args...)
}
