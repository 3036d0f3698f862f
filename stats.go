package ereport

import "sync/atomic"

type stats struct {
	emitted atomic.Uint64
	failed  atomic.Uint64
}

// StatsSnapshot is a point-in-time view of a Reporter's counters.
// Emitted counts reports that passed the threshold; Failed counts those
// stopped by an outlet error. Filtered calls are not counted.
type StatsSnapshot struct {
	Emitted uint64
	Failed  uint64
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Emitted: s.emitted.Load(),
		Failed:  s.failed.Load(),
	}
}

// Stats returns the reporter's counters.
func (r *Reporter) Stats() StatsSnapshot { return r.st.snapshot() }
