package gutil

import (
	"time"

	"github.com/ncruces/go-strftime"
)

// DefaultDateTimeLayout renders as e.g. "2024-03-09 14:05:07".
const DefaultDateTimeLayout = "%Y-%m-%d %H:%M:%S"

// CurrentDateTimeStr returns the local wall-clock time rendered with the
// strftime layout. An empty layout selects DefaultDateTimeLayout.
func CurrentDateTimeStr(layout string) string {
	return FormatDateTime(layout, time.Now())
}

// FormatDateTime renders t, in its own location, with the strftime layout.
// An empty layout selects DefaultDateTimeLayout. The output has no length
// limit.
func FormatDateTime(layout string, t time.Time) string {
	if layout == "" {
		layout = DefaultDateTimeLayout
	}

	return strftime.Format(layout, t)
}
