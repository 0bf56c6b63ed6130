// Package summary computes per-station temperature statistics over a
// measurements file in a single sequential pass.
package summary

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dolthub/swiss"
)

// Aggregate accumulates one station's measurements. Values are kept in tenths
// of a degree so the whole pass stays in integers.
type Aggregate struct {
	Min   int
	Max   int
	Sum   int
	Count int
}

// Mean returns the mean temperature in degrees.
func (a *Aggregate) Mean() float64 {
	return float64(a.Sum) / float64(a.Count) / 10
}

// Scan streams the measurements file at path and aggregates per station id.
// A malformed line aborts with an error naming the offending line.
func Scan(path string) (*swiss.Map[string, *Aggregate], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("close measurements file", "error", closeErr)
		}
	}()

	m := swiss.NewMap[string, *Aggregate](11_000)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		id, val, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		agg, ok := m.Get(id)
		if !ok {
			m.Put(id, &Aggregate{Min: val, Max: val, Sum: val, Count: 1})
			continue
		}
		agg.Sum += val
		agg.Count++
		if val < agg.Min {
			agg.Min = val
		}
		if val > agg.Max {
			agg.Max = val
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return m, nil
}

// parseLine splits "<id>;<whole>.<digit>" into the id and the value in tenths.
func parseLine(line string) (string, int, error) {
	id, rest, ok := strings.Cut(line, ";")
	if !ok {
		return "", 0, fmt.Errorf("missing ';' separator in %q", line)
	}
	whole, frac, ok := strings.Cut(rest, ".")
	if !ok || len(frac) != 1 || frac[0] < '0' || frac[0] > '9' {
		return "", 0, fmt.Errorf("malformed temperature %q", rest)
	}
	w, err := strconv.Atoi(whole)
	if err != nil {
		return "", 0, fmt.Errorf("malformed temperature %q", rest)
	}
	v := w*10 + int(frac[0]-'0')
	if strings.HasPrefix(whole, "-") {
		v = w*10 - int(frac[0]-'0')
	}
	return id, v, nil
}

// Print writes "station=min/mean/max" lines to w, stations sorted by id.
func Print(w io.Writer, m *swiss.Map[string, *Aggregate]) error {
	keys := make([]string, 0, m.Count())
	m.Iter(func(k string, _ *Aggregate) bool {
		keys = append(keys, k)
		return false
	})
	sort.Strings(keys)

	for _, k := range keys {
		agg, _ := m.Get(k)
		_, err := fmt.Fprintf(w, "%s=%.1f/%.1f/%.1f\n",
			k, float64(agg.Min)/10, agg.Mean(), float64(agg.Max)/10)
		if err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return nil
}
