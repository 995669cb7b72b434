package cmd

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	sim "github.com/hybrid-cache/cachesim/sim"
	"github.com/hybrid-cache/cachesim/sim/trace"
)

// runEntry drives one workload entry end to end: generates its access trace,
// feeds it through a fresh cache, and records outcomes into the shared
// metrics and decision trace.
func runEntry(entry WorkloadEntry, metrics *sim.Metrics, st *trace.SimulationTrace, rng *rand.Rand) error {
	cache, err := sim.NewCache(entry.Capacity, sim.WorkloadMode(entry.Mode))
	if err != nil {
		return fmt.Errorf("create cache: %w", err)
	}

	ids, err := sim.GenerateAccesses(entry.Pattern, entry.Capacity, entry.Accesses, rng)
	if err != nil {
		return fmt.Errorf("generate accesses: %w", err)
	}

	logrus.Infof("Workload %q: pattern=%s mode=%s capacity=%d accesses=%d",
		entry.Name, entry.Pattern, entry.Mode, entry.Capacity, len(ids))

	flipAt := -1
	if modeFlips {
		flipAt = len(ids) / 2
	}

	for i, id := range ids {
		if i == flipAt {
			cache.SetWorkloadMode(flipMode(cache.Mode()))
			logrus.Debugf("Workload %q: mode flipped to %s at access %d", entry.Name, cache.Mode(), i)
		}

		outcome := cache.Access(id)
		metrics.Observe(entry.Name, outcome)

		if st.Enabled() {
			st.RecordAccess(trace.AccessRecord{
				Seq:     i,
				Pattern: entry.Name,
				BlockID: id,
				Outcome: string(outcome.Kind),
			})
			if outcome.Eviction != nil {
				st.RecordEviction(trace.EvictionRecord{
					Seq:        i,
					InsertedID: id,
					VictimID:   outcome.Eviction.VictimID,
					Method:     string(outcome.Eviction.Method),
					Confidence: outcome.Eviction.Confidence,
				})
			}
		}

		if outcome.Eviction != nil {
			logrus.Debugf("access %d (%s): evicted %s via %s (confidence=%.2f)",
				i, id, outcome.Eviction.VictimID, outcome.Eviction.Method, outcome.Eviction.Confidence)
		}
	}

	if baseline {
		hits, err := sim.ReplayLRUBaseline(entry.Capacity, ids)
		if err != nil {
			return fmt.Errorf("lru baseline: %w", err)
		}
		metrics.ObserveBaseline(hits)
	}
	return nil
}

// flipMode returns the other workload mode.
func flipMode(mode sim.WorkloadMode) sim.WorkloadMode {
	if mode == sim.ModeFriendly {
		return sim.ModeHostile
	}
	return sim.ModeFriendly
}
