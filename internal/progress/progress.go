// Package progress renders the terminal indicator for long generation runs
// and formats byte counts for the completion log line.
package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// NewBar returns a bar over total units writing to stderr. Repaints are
// throttled to once per second so rendering cost stays flat regardless of
// write speed. quiet hides the bar entirely for non-interactive runs.
func NewBar(total int64, quiet bool) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetDescription("generating"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(80),
		progressbar.OptionThrottle(time.Second),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetVisibility(!quiet),
	)
}

var bytePrefixes = [...]string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}

// HumanBytes formats n with binary prefixes and two decimals: 0 -> "0.00 B",
// 1536 -> "1.50 KiB". Values past YiB stay in YiB.
func HumanBytes(n int64) string {
	v := float64(n)
	i := 0
	for v >= 1024 && i < len(bytePrefixes)-1 {
		v /= 1024
		i++
	}
	return fmt.Sprintf("%.2f %s", v, bytePrefixes[i])
}
