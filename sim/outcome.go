// sim/outcome.go
package sim

// EvictionMethod identifies which decision rule chose the victim.
type EvictionMethod string

const (
	// MethodMLGuided means the victim was the minimum-score block, chosen
	// because the confidence gate trusted the predictor.
	MethodMLGuided EvictionMethod = "ml-guided"
	// MethodLRUFallback means the victim was the maximum-recency block,
	// chosen because no score cleared the confidence threshold.
	MethodLRUFallback EvictionMethod = "lru-fallback"
)

// OutcomeKind classifies the result of a single access.
type OutcomeKind string

const (
	OutcomeHit        OutcomeKind = "hit"
	OutcomeMissInsert OutcomeKind = "miss-insert"
	OutcomeMissEvict  OutcomeKind = "miss-evict"
)

// DecisionRecord captures a single eviction decision. It is produced per
// MissEvict outcome for the caller to report or trace; the cache does not
// retain it.
type DecisionRecord struct {
	VictimID   string         // ID of the evicted block
	Method     EvictionMethod // decision rule that selected the victim
	Confidence float64        // max resident score at decision time
}

// AccessOutcome reports what a single Access call did.
// Eviction is non-nil only when Kind is OutcomeMissEvict.
type AccessOutcome struct {
	Kind     OutcomeKind
	Eviction *DecisionRecord
}
