package vmarena

import (
	"testing"
)

func TestArenaMetrics(t *testing.T) {
	a, _ := newTestArena(t, 1<<20)

	// Test initial state
	m := a.Metrics()
	if m != (Metrics{Reserved: 1 << 20, CommitChunk: DefaultCommitPages * testPageSize}) {
		t.Errorf("initial Metrics = %+v", m)
	}
	if a.Utilization() != 0 {
		t.Errorf("initial Utilization = %f, want 0", a.Utilization())
	}
	if a.PageSize() != testPageSize {
		t.Errorf("PageSize = %d, want %d", a.PageSize(), testPageSize)
	}

	for _, n := range []int{100, 200} {
		if _, err := a.AllocBytes(n); err != nil {
			t.Fatal(err)
		}
	}

	m = a.Metrics()
	if m.Used != 112+208 {
		t.Errorf("Metrics.Used = %d, want %d", m.Used, 112+208)
	}
	if m.Allocations != 2 {
		t.Errorf("Metrics.Allocations = %d, want 2", m.Allocations)
	}
	if m.Commits != 1 {
		t.Errorf("Metrics.Commits = %d, want 1", m.Commits)
	}
	if m.Waste != m.Committed-m.Used {
		t.Errorf("Metrics.Waste = %d, want %d", m.Waste, m.Committed-m.Used)
	}
	if m.Utilization <= 0 || m.Utilization > 1 {
		t.Errorf("Metrics.Utilization = %f, want 0 < x <= 1", m.Utilization)
	}
	if a.Available() != a.Reserved()-a.Used() {
		t.Errorf("Available = %d, want %d", a.Available(), a.Reserved()-a.Used())
	}
}

func TestArenaMetricsFull(t *testing.T) {
	a, _ := newTestArena(t, testPageSize)

	if _, err := a.AllocBytes(testPageSize); err != nil {
		t.Fatal(err)
	}

	m := a.Metrics()
	if m.Utilization != 1 {
		t.Errorf("Utilization of a full arena = %f, want 1", m.Utilization)
	}
	if m.Waste != 0 {
		t.Errorf("Waste of a full arena = %d, want 0", m.Waste)
	}
	if a.Available() != 0 {
		t.Errorf("Available of a full arena = %d, want 0", a.Available())
	}
}

func TestArenaMetricsAfterRelease(t *testing.T) {
	a, _ := newTestArena(t, testPageSize)
	if _, err := a.AllocBytes(64); err != nil {
		t.Fatal(err)
	}
	if err := a.Release(); err != nil {
		t.Fatal(err)
	}

	m := a.Metrics()
	if m.Used != 0 || m.Committed != 0 || m.Utilization != 0 {
		t.Errorf("Metrics after Release = %+v, want zero usage", m)
	}
	if m.Allocations != 1 {
		t.Errorf("Allocations after Release = %d, want 1", m.Allocations)
	}
}
