// Package util holds small formatting helpers shared by logs and error details.
package util

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatBytes renders a size in binary units, e.g. "20 MiB".
func FormatBytes(n int64) string {
	if n < 0 {
		return "-" + humanize.IBytes(uint64(-n))
	}

	return humanize.IBytes(uint64(n))
}

// FormatDuration renders a lifetime to the second, or to the minute once it
// passes an hour. Negative durations are "expired".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < 0 {
		return "expired"
	}
	if d >= time.Hour {
		return strings.TrimSuffix(d.Truncate(time.Minute).String(), "0s")
	}

	return d.String()
}
