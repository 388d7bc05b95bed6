package ecs

import "time"

// SystemStats reports execution counters for a single system. Executions
// counts Process calls, Invocations those where the filter passed and logic
// ran, Skipped those where it did not. Durations cover the logic hook only.
type SystemStats struct {
	Executions  int64
	Invocations int64
	Skipped     int64

	MinLogic   time.Duration
	MaxLogic   time.Duration
	AvgLogic   time.Duration
	LastLogic  time.Duration
	TotalLogic time.Duration
}

type systemStats struct {
	executions  int64
	invocations int64
	skipped     int64

	minLogic   time.Duration
	maxLogic   time.Duration
	lastLogic  time.Duration
	totalLogic time.Duration
}

func newSystemStats() systemStats {
	return systemStats{minLogic: time.Duration(1<<63 - 1)}
}

func (st *systemStats) observe(d time.Duration) {
	st.lastLogic = d
	st.totalLogic += d
	if d < st.minLogic {
		st.minLogic = d
	}
	if d > st.maxLogic {
		st.maxLogic = d
	}
}

// Stats returns a snapshot of the system's execution counters. Like
// everything else here it assumes single-threaded use.
func (s *System[R]) Stats() SystemStats {
	out := SystemStats{
		Executions:  s.stats.executions,
		Invocations: s.stats.invocations,
		Skipped:     s.stats.skipped,
		MaxLogic:    s.stats.maxLogic,
		LastLogic:   s.stats.lastLogic,
		TotalLogic:  s.stats.totalLogic,
	}
	if s.stats.invocations > 0 {
		out.MinLogic = s.stats.minLogic
		out.AvgLogic = s.stats.totalLogic / time.Duration(s.stats.invocations)
	}
	return out
}
