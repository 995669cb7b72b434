// sim/predictor.go
package sim

import "fmt"

// WorkloadMode selects which scoring regime governs reuse prediction.
type WorkloadMode string

const (
	// ModeFriendly models a workload where the predictor is structurally
	// capped below the confidence threshold, so eviction always falls back
	// to LRU.
	ModeFriendly WorkloadMode = "friendly"
	// ModeHostile models a workload where repeated access produces a
	// high-confidence keep signal that enables score-guided eviction.
	ModeHostile WorkloadMode = "hostile"
)

// validWorkloadModes maps accepted workload mode strings.
var validWorkloadModes = map[WorkloadMode]bool{
	ModeFriendly: true,
	ModeHostile:  true,
}

// IsValidWorkloadMode returns true if the given mode string is a recognized workload mode.
func IsValidWorkloadMode(mode string) bool {
	return validWorkloadModes[WorkloadMode(mode)]
}

// ReusePredictor estimates the probability that a block will be accessed
// again, from its recency and frequency features. Implementations must be
// pure: identical (frequency, recency) inputs return the identical score.
//
// The two built-in predictors are deterministic stand-ins; a trained model
// can be substituted here without touching the eviction state machine.
type ReusePredictor interface {
	PredictReuse(frequency, recency int) float64
}

// FriendlyPredictor scores blocks by recency alone, capped at 0.85 so the
// result can never clear the confidence threshold.
type FriendlyPredictor struct{}

func (FriendlyPredictor) PredictReuse(_, recency int) float64 {
	score := 0.4 + 0.3/float64(recency+1)
	if score > 0.85 {
		score = 0.85
	}
	return score
}

// HostilePredictor scores blocks by frequency tier: repeated access yields a
// high-confidence keep signal, a single access is uncertain.
type HostilePredictor struct{}

func (HostilePredictor) PredictReuse(frequency, _ int) float64 {
	switch {
	case frequency >= 2:
		return 0.95
	case frequency == 1:
		return 0.4
	default:
		return 0.1
	}
}

// NewReusePredictor creates a predictor for the given workload mode.
// Valid modes: "friendly", "hostile".
func NewReusePredictor(mode WorkloadMode) ReusePredictor {
	switch mode {
	case ModeFriendly:
		return FriendlyPredictor{}
	case ModeHostile:
		return HostilePredictor{}
	default:
		panic(fmt.Sprintf("unknown workload mode %q; valid modes: [friendly, hostile]", mode))
	}
}
