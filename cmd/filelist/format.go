package main

import (
	"fmt"
	"time"
)

// formatDuration scales d to the largest of s, ms, us and ns that keeps
// the value at or above one.
func formatDuration(d time.Duration) string {
	secs := d.Seconds()
	switch {
	case secs >= 1:
		return fmt.Sprintf("%.2f s", secs)
	case secs*1e3 >= 1:
		return fmt.Sprintf("%.2f ms", secs*1e3)
	case secs*1e6 >= 1:
		return fmt.Sprintf("%.2f us", secs*1e6)
	default:
		return fmt.Sprintf("%.2f ns", secs*1e9)
	}
}

func report(name string, took time.Duration, items int) string {
	return fmt.Sprintf("%s version took %s and found %d items", name, formatDuration(took), items)
}
