// sim/cache.go
package sim

import "fmt"

// ConfidenceThreshold is the fixed cutoff above which the policy trusts the
// predictor's scores for victim selection. The comparison is strictly
// greater-than: a max score exactly at the threshold falls back to LRU, so
// an uncertain predictor never drives eviction.
const ConfidenceThreshold = 0.88

// Cache is a single-level set of resident blocks governed by the hybrid
// replacement policy: score-guided eviction when the predictor is confident,
// LRU eviction otherwise.
//
// A Cache is the sole owner of its blocks; Snapshot returns copies. It holds
// no internal locking: accesses against one instance must be issued from a
// single goroutine (replacement semantics require a total order of accesses),
// while independent instances share no state and may run concurrently.
type Cache struct {
	capacity  int
	mode      WorkloadMode
	predictor ReusePredictor
	blocks    []CacheBlock // residents in insertion order; victims replaced in place

	lastConfidence float64 // max score at the most recent eviction decision
}

// NewCache creates an empty cache with the given capacity and workload mode.
// Returns an error if capacity is not positive.
func NewCache(capacity int, mode WorkloadMode) (*Cache, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("invalid cache configuration: capacity must be positive, got %d", capacity)
	}
	return &Cache{
		capacity:  capacity,
		mode:      mode,
		predictor: NewReusePredictor(mode),
		blocks:    make([]CacheBlock, 0, capacity),
	}, nil
}

// Capacity returns the maximum number of resident blocks.
func (c *Cache) Capacity() int { return c.capacity }

// Size returns the current number of resident blocks.
func (c *Cache) Size() int { return len(c.blocks) }

// Mode returns the active workload mode.
func (c *Cache) Mode() WorkloadMode { return c.mode }

// SetWorkloadMode switches the scoring regime. Resident scores are not
// recomputed here; every access rescores all residents before any decision,
// so no eviction can read a score computed under the previous mode.
func (c *Cache) SetWorkloadMode(mode WorkloadMode) {
	c.mode = mode
	c.predictor = NewReusePredictor(mode)
}

// Confidence returns the max resident score observed at the most recent
// eviction decision, or 0.0 if no eviction has occurred yet.
func (c *Cache) Confidence() float64 { return c.lastConfidence }

// Snapshot returns a copy of the resident blocks in iteration order.
// Mutating the returned slice has no effect on cache state.
func (c *Cache) Snapshot() []CacheBlock {
	out := make([]CacheBlock, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// Access processes one access event for the given block ID and returns the
// outcome. Every access is a global tick: all residents age (or the hit
// block resets) and all scores are recomputed before any eviction decision,
// so the confidence gate never sees a stale score.
//
// Any ID is valid, including the empty string; an absent ID simply drives
// the miss path.
func (c *Cache) Access(blockID string) AccessOutcome {
	if idx := c.indexOf(blockID); idx >= 0 {
		c.touch(idx)
		return AccessOutcome{Kind: OutcomeHit}
	}

	if len(c.blocks) < c.capacity {
		// Insertion counts as an access event for everyone else's recency.
		c.ageResidents()
		c.blocks = append(c.blocks, c.newBlock(blockID))
		c.rescoreAll()
		return AccessOutcome{Kind: OutcomeMissInsert}
	}

	// Capacity miss: age and rescore first, then gate on confidence.
	c.ageResidents()
	c.rescoreAll()

	maxScore := c.blocks[0].Score
	for _, blk := range c.blocks[1:] {
		if blk.Score > maxScore {
			maxScore = blk.Score
		}
	}
	c.lastConfidence = maxScore

	var victim int
	var method EvictionMethod
	if maxScore > ConfidenceThreshold {
		victim = c.minScoreIndex()
		method = MethodMLGuided
	} else {
		victim = c.maxRecencyIndex()
		method = MethodLRUFallback
	}

	record := &DecisionRecord{
		VictimID:   c.blocks[victim].ID,
		Method:     method,
		Confidence: maxScore,
	}
	c.blocks[victim] = c.newBlock(blockID)
	return AccessOutcome{Kind: OutcomeMissEvict, Eviction: record}
}

// indexOf returns the resident index of blockID, or -1 if absent.
func (c *Cache) indexOf(blockID string) int {
	for i := range c.blocks {
		if c.blocks[i].ID == blockID {
			return i
		}
	}
	return -1
}

// minScoreIndex returns the index of the lowest-scored resident.
// Ties break to the first occurrence in iteration order, so repeated runs
// over identical inputs pick identical victims.
func (c *Cache) minScoreIndex() int {
	best := 0
	for i := 1; i < len(c.blocks); i++ {
		if c.blocks[i].Score < c.blocks[best].Score {
			best = i
		}
	}
	return best
}

// maxRecencyIndex returns the index of the least-recently-used resident,
// with the same first-occurrence tie-break as minScoreIndex.
func (c *Cache) maxRecencyIndex() int {
	best := 0
	for i := 1; i < len(c.blocks); i++ {
		if c.blocks[i].Recency > c.blocks[best].Recency {
			best = i
		}
	}
	return best
}
