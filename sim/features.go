// sim/features.go
//
// Feature maintenance for resident blocks: recency/frequency updates and
// score recomputation. These are the only mutators of block state; Access
// sequences them so scores are always consistent with the counters before
// any decision is read.

package sim

// touch registers a hit on the resident at idx: its frequency increments and
// recency resets, every other resident ages by one, and all scores are
// recomputed.
func (c *Cache) touch(idx int) {
	for i := range c.blocks {
		if i == idx {
			c.blocks[i].Frequency++
			c.blocks[i].Recency = 0
		} else {
			c.blocks[i].Recency++
		}
	}
	c.rescoreAll()
}

// ageResidents increments recency for every resident. Called on the miss
// paths before the new block joins, so an insertion ages the existing
// residents exactly like a hit would.
func (c *Cache) ageResidents() {
	for i := range c.blocks {
		c.blocks[i].Recency++
	}
}

// rescoreAll recomputes every resident's score from its current features
// under the active predictor. No-op on an empty cache.
func (c *Cache) rescoreAll() {
	for i := range c.blocks {
		c.blocks[i].Score = c.predictor.PredictReuse(c.blocks[i].Frequency, c.blocks[i].Recency)
	}
}

// newBlock constructs a freshly inserted block with initial features and a
// score computed under the active predictor.
func (c *Cache) newBlock(blockID string) CacheBlock {
	return CacheBlock{
		ID:        blockID,
		Frequency: 1,
		Recency:   0,
		Score:     c.predictor.PredictReuse(1, 0),
	}
}
