package main

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{2500 * time.Millisecond, "2.50 s"},
		{time.Second, "1.00 s"},
		{999 * time.Millisecond, "999.00 ms"},
		{1500 * time.Microsecond, "1.50 ms"},
		{42 * time.Microsecond, "42.00 us"},
		{750 * time.Nanosecond, "750.00 ns"},
		{0, "0.00 ns"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestReport(t *testing.T) {
	got := report("Arena", 3*time.Millisecond, 17)
	want := "Arena version took 3.00 ms and found 17 items"
	if got != want {
		t.Errorf("report() = %q, want %q", got, want)
	}
}
