// Tracks run-wide hit/miss/eviction accounting for final reporting.

package sim

import (
	"fmt"
	"sort"
)

// PatternStats accumulates access outcomes for one named workload pattern.
type PatternStats struct {
	Accesses  int // Total accesses observed
	Hits      int // Accesses that found the block resident
	Inserts   int // Misses absorbed by free capacity
	Evictions int // Misses that displaced a victim
}

// HitRate returns the fraction of accesses that hit, or 0 with no accesses.
func (ps *PatternStats) HitRate() float64 {
	if ps.Accesses == 0 {
		return 0
	}
	return float64(ps.Hits) / float64(ps.Accesses)
}

// Metrics aggregates statistics about the simulation for final reporting.
// Useful for comparing the hybrid policy's behavior across workload patterns.
type Metrics struct {
	Accesses             int // Total access events
	Hits                 int // Hit outcomes
	Inserts              int // MissInsert outcomes
	Evictions            int // MissEvict outcomes
	MLGuidedEvictions    int // Evictions decided by the score gate
	LRUFallbackEvictions int // Evictions decided by the LRU fallback

	BaselineHits int  // Hits observed by the plain-LRU baseline over the same trace
	BaselineRun  bool // Whether a baseline comparison ran

	PerPattern map[string]*PatternStats // pattern name -> outcome breakdown
}

// NewMetrics creates an empty Metrics ready for recording.
func NewMetrics() *Metrics {
	return &Metrics{PerPattern: make(map[string]*PatternStats)}
}

// Observe records one access outcome under the given pattern name.
func (m *Metrics) Observe(pattern string, outcome AccessOutcome) {
	ps, ok := m.PerPattern[pattern]
	if !ok {
		ps = &PatternStats{}
		m.PerPattern[pattern] = ps
	}

	m.Accesses++
	ps.Accesses++
	switch outcome.Kind {
	case OutcomeHit:
		m.Hits++
		ps.Hits++
	case OutcomeMissInsert:
		m.Inserts++
		ps.Inserts++
	case OutcomeMissEvict:
		m.Evictions++
		ps.Evictions++
		if outcome.Eviction != nil && outcome.Eviction.Method == MethodMLGuided {
			m.MLGuidedEvictions++
		} else {
			m.LRUFallbackEvictions++
		}
	}
}

// ObserveBaseline records the plain-LRU baseline's hit count for the run.
func (m *Metrics) ObserveBaseline(hits int) {
	m.BaselineHits += hits
	m.BaselineRun = true
}

// HitRate returns the overall fraction of accesses that hit.
func (m *Metrics) HitRate() float64 {
	if m.Accesses == 0 {
		return 0
	}
	return float64(m.Hits) / float64(m.Accesses)
}

// Print displays aggregated metrics at the end of the simulation.
// Includes overall and per-pattern hit rates and the eviction-method split.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Accesses             : %d\n", m.Accesses)
	fmt.Printf("Hits                 : %d (%.2f%%)\n", m.Hits, 100*m.HitRate())
	fmt.Printf("Inserts              : %d\n", m.Inserts)
	fmt.Printf("Evictions            : %d (ml-guided=%d, lru-fallback=%d)\n",
		m.Evictions, m.MLGuidedEvictions, m.LRUFallbackEvictions)
	if m.BaselineRun && m.Accesses > 0 {
		fmt.Printf("LRU baseline hits    : %d (%.2f%%)\n",
			m.BaselineHits, 100*float64(m.BaselineHits)/float64(m.Accesses))
	}

	if len(m.PerPattern) > 1 {
		names := make([]string, 0, len(m.PerPattern))
		for name := range m.PerPattern {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Println("--- Per-pattern ---")
		for _, name := range names {
			ps := m.PerPattern[name]
			fmt.Printf("%-20s : accesses=%d hits=%d (%.2f%%) evictions=%d\n",
				name, ps.Accesses, ps.Hits, 100*ps.HitRate(), ps.Evictions)
		}
	}
}
