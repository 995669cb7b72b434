package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayLRUBaseline_LoopingWorkingSetAllHitsAfterWarmup(t *testing.T) {
	ids, err := GenerateAccesses(PatternLooping, 4, 12, patternRNG(1))
	require.NoError(t, err)

	hits, err := ReplayLRUBaseline(4, ids)
	require.NoError(t, err)
	// 4 cold misses to warm up, then every access hits.
	assert.Equal(t, 8, hits)
}

func TestReplayLRUBaseline_AdversarialLoopNeverHits(t *testing.T) {
	ids, err := GenerateAccesses(PatternAdversarial, 2, 30, patternRNG(1))
	require.NoError(t, err)

	hits, err := ReplayLRUBaseline(2, ids)
	require.NoError(t, err)
	// Cycling over capacity+1 blocks is the LRU worst case.
	assert.Zero(t, hits)
}

func TestReplayLRUBaseline_InvalidCapacity(t *testing.T) {
	_, err := ReplayLRUBaseline(0, []string{"A"})
	assert.Error(t, err)
}
