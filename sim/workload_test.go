package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patternRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func distinct(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func TestGenerateAccesses_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		capacity int
		length   int
	}{
		{"unknown pattern", "random-walk", 4, 10},
		{"empty pattern", "", 4, 10},
		{"zero capacity", PatternLooping, 0, 10},
		{"negative capacity", PatternLooping, -1, 10},
		{"zero length", PatternLooping, 4, 0},
		{"negative length", PatternLooping, 4, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateAccesses(tt.pattern, tt.capacity, tt.length, patternRNG(1))
			assert.Error(t, err)
		})
	}
}

func TestGenerateAccesses_Sequential_NoReuse(t *testing.T) {
	ids, err := GenerateAccesses(PatternSequential, 4, 50, patternRNG(1))
	require.NoError(t, err)
	assert.Len(t, ids, 50)
	assert.Len(t, distinct(ids), 50, "sequential pattern must never repeat a block")
}

func TestGenerateAccesses_Looping_WorkingSetFitsCache(t *testing.T) {
	capacity := 4
	ids, err := GenerateAccesses(PatternLooping, capacity, 20, patternRNG(1))
	require.NoError(t, err)
	assert.Len(t, distinct(ids), capacity, "looping working set must equal capacity")
	// The cycle repeats exactly.
	for i, id := range ids {
		assert.Equal(t, ids[i%capacity], id)
	}
}

func TestGenerateAccesses_Adversarial_WorkingSetExceedsCacheByOne(t *testing.T) {
	capacity := 3
	ids, err := GenerateAccesses(PatternAdversarial, capacity, 40, patternRNG(1))
	require.NoError(t, err)
	assert.Len(t, distinct(ids), capacity+1, "adversarial working set must be capacity+1")
}

func TestGenerateAccesses_Zipfian_DeterministicPerSeed(t *testing.T) {
	first, err := GenerateAccesses(PatternZipfian, 8, 200, patternRNG(7))
	require.NoError(t, err)
	second, err := GenerateAccesses(PatternZipfian, 8, 200, patternRNG(7))
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed must reproduce the same trace")

	other, err := GenerateAccesses(PatternZipfian, 8, 200, patternRNG(8))
	require.NoError(t, err)
	assert.NotEqual(t, first, other, "different seeds should diverge")
}

func TestGenerateAccesses_Zipfian_SkewsTowardFewBlocks(t *testing.T) {
	capacity := 8
	ids, err := GenerateAccesses(PatternZipfian, capacity, 1000, patternRNG(42))
	require.NoError(t, err)
	// A zipfian draw over 10x capacity should reuse far fewer distinct blocks
	// than the trace length.
	assert.Less(t, len(distinct(ids)), 200)
}

func TestValidPatternNames_SortedAndComplete(t *testing.T) {
	names := ValidPatternNames()
	assert.Equal(t, []string{"adversarial", "looping", "sequential", "zipfian"}, names)
	for _, name := range names {
		assert.True(t, IsValidPattern(name))
	}
	assert.False(t, IsValidPattern("lru"))
}
