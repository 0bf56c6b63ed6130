// Command measurestat prints per-station min/mean/max over a measurements
// file produced by measuregen. One sequential pass, stations sorted by id.
package main

import (
	"fmt"
	"os"

	"measuregen/internal/summary"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <measurements-file>\n", os.Args[0])
		os.Exit(1)
	}

	m, err := summary.Scan(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := summary.Print(os.Stdout, m); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
