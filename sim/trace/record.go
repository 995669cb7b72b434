// Package trace provides decision-trace recording for replacement-policy
// analysis. This package has no dependencies on sim/ — it stores pure data
// types collected by the driver, never by the cache core.
package trace

// AccessRecord captures the outcome of a single access event.
type AccessRecord struct {
	Seq     int    `json:"seq"`      // 0-based position in the access sequence
	Pattern string `json:"pattern"`  // workload pattern that generated the access
	BlockID string `json:"block_id"` // accessed block
	Outcome string `json:"outcome"`  // hit, miss-insert, or miss-evict
}

// EvictionRecord captures a single confidence-gated eviction decision.
type EvictionRecord struct {
	Seq        int     `json:"seq"`         // position of the access that triggered the eviction
	InsertedID string  `json:"inserted_id"` // block that took the victim's place
	VictimID   string  `json:"victim_id"`   // evicted block
	Method     string  `json:"method"`      // ml-guided or lru-fallback
	Confidence float64 `json:"confidence"`  // max resident score at decision time
}
