// Package stations loads the weather-station reference file that seeds the
// generator. The file is UTF-8 text, one station per line, with the id as the
// first `;`-separated field; lines starting with `#` are comments.
package stations

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Station is one candidate weather-reporting location from the reference file.
type Station struct {
	ID string
}

// ErrNoID reports a reference line with no characters to take an id from.
var ErrNoID = errors.New("no id")

// Load reads the reference file at path and returns its stations in file
// order. Fields after the first `;` are ignored; a line without `;` is taken
// whole as the id. A zero-length line fails with ErrNoID.
func Load(path string) ([]Station, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("close stations file", "error", closeErr)
		}
	}()

	var out []Station
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		st, err := parse(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		out = append(out, st)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

func parse(line string) (Station, error) {
	if len(line) == 0 {
		return Station{}, ErrNoID
	}
	id, _, _ := strings.Cut(line, ";")
	return Station{ID: id}, nil
}
