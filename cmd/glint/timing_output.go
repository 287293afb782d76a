package main

import (
	"fmt"
	"io"

	"glint/internal/driver"
)

func printFileTimings(out io.Writer, results []driver.FileResult) {
	if out == nil {
		return
	}
	for _, res := range results {
		if res.Timing == nil {
			continue
		}
		fmt.Fprintf(out, "%s %.2f ms", res.Path, res.Timing.TotalMS)
		for _, p := range res.Timing.Phases {
			fmt.Fprintf(out, " %s=%.2f", p.Name, p.DurationMS)
		}
		fmt.Fprintln(out)
	}
}
