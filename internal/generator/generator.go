// Package generator produces the measurements file: one "<id>;<temp>" line
// per requested row, written in fixed-size chunks so peak memory stays flat
// no matter how many rows are asked for.
package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"measuregen/internal/progress"
	"measuregen/internal/stations"
)

// Temperatures are integers in hundredths of a degree Celsius, drawn
// uniformly from [MinTemp, MaxTemp).
const (
	MinTemp = -999 // -99.9C
	MaxTemp = 999  // 99.9C
)

// ChunkSize is how many lines are buffered in memory before each file write.
const ChunkSize = 10_000

// ErrNoStations reports an attempt to generate from an empty station set.
var ErrNoStations = errors.New("no stations")

type Options struct {
	Rows       uint64
	OutputPath string
	Seed       int64 // 0 picks a seed from the clock
	Quiet      bool  // suppress the progress bar
}

// Run writes exactly opts.Rows measurement lines to opts.OutputPath, creating
// or truncating the file. Each line pairs a uniformly chosen station with a
// uniformly drawn temperature. On a write failure the partial file is left on
// disk as-is. Returns the final size of the output file in bytes.
func Run(opts Options, set []stations.Station) (int64, error) {
	if len(set) == 0 {
		return 0, ErrNoStations
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	fullChunks := opts.Rows / ChunkSize
	bar := progress.NewBar(int64(fullChunks)+1, opts.Quiet)

	f, err := os.Create(opts.OutputPath)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", opts.OutputPath, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("close output file", "error", closeErr)
		}
	}()

	var buf strings.Builder
	for i := uint64(0); i < fullChunks; i++ {
		buf.Reset()
		for j := 0; j < ChunkSize; j++ {
			appendMeasurement(&buf, set[rng.Intn(len(set))].ID, MinTemp+rng.Intn(MaxTemp-MinTemp))
		}
		if _, err := f.WriteString(buf.String()); err != nil {
			return 0, fmt.Errorf("write %s: %w", opts.OutputPath, err)
		}
		_ = bar.Add(1)
	}

	// Remainder chunk; always flushed, even when empty, so the bar completes.
	buf.Reset()
	for j := uint64(0); j < opts.Rows%ChunkSize; j++ {
		appendMeasurement(&buf, set[rng.Intn(len(set))].ID, MinTemp+rng.Intn(MaxTemp-MinTemp))
	}
	if _, err := f.WriteString(buf.String()); err != nil {
		return 0, fmt.Errorf("write %s: %w", opts.OutputPath, err)
	}
	_ = bar.Add(1)
	_ = bar.Finish()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", opts.OutputPath, err)
	}
	return info.Size(), nil
}

// appendMeasurement writes one "<id>;<whole>.<frac>\n" line for a temperature
// v in hundredths of a degree. The whole part is truncating division and the
// fraction is the absolute value mod 10, so values in (-10, 0) render without
// a sign ("0.5" for -0.05C). That matches the files downstream consumers were
// built against; do not normalize it.
func appendMeasurement(buf *strings.Builder, id string, v int) {
	frac := v % 10
	if frac < 0 {
		frac = -frac
	}
	buf.WriteString(id)
	buf.WriteByte(';')
	buf.WriteString(strconv.Itoa(v / 10))
	buf.WriteByte('.')
	buf.WriteString(strconv.Itoa(frac))
	buf.WriteByte('\n')
}
