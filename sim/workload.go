// sim/workload.go
package sim

import (
	"fmt"
	"math/rand"
	"sort"
)

// Named access patterns. Each produces a deterministic block-ID sequence
// given the same (pattern, capacity, length, rng state), so hit-rate
// comparisons across policies replay identical traces.
const (
	// PatternSequential streams distinct blocks with no reuse; every access
	// past warmup is a capacity miss under any policy.
	PatternSequential = "sequential"
	// PatternLooping cycles over a working set that exactly fits the cache;
	// after warmup every access hits.
	PatternLooping = "looping"
	// PatternZipfian draws blocks from a skewed popularity distribution over
	// a universe much larger than the cache.
	PatternZipfian = "zipfian"
	// PatternAdversarial cycles over a working set one block larger than the
	// cache, the classic worst case for LRU.
	PatternAdversarial = "adversarial"
)

// validPatternNames maps pattern names to validity. Unexported to prevent mutation.
var validPatternNames = map[string]bool{
	PatternSequential:  true,
	PatternLooping:     true,
	PatternZipfian:     true,
	PatternAdversarial: true,
}

// IsValidPattern returns true if name is a recognized access pattern.
func IsValidPattern(name string) bool { return validPatternNames[name] }

// ValidPatternNames returns the recognized pattern names, sorted.
func ValidPatternNames() []string {
	names := make([]string, 0, len(validPatternNames))
	for name := range validPatternNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// zipfExponent and zipfUniverseFactor shape the zipfian pattern: a mildly
// skewed distribution over a universe of zipfUniverseFactor*capacity blocks.
const (
	zipfExponent       = 1.2
	zipfUniverseFactor = 10
)

// GenerateAccesses produces a block-ID sequence of the given length for a
// named pattern, sized against the given cache capacity. Deterministic for
// identical inputs and RNG state. Returns an error for unknown patterns or
// non-positive length/capacity.
func GenerateAccesses(pattern string, capacity, length int, rng *rand.Rand) ([]string, error) {
	if !IsValidPattern(pattern) {
		return nil, fmt.Errorf("unknown access pattern %q; valid patterns: %v", pattern, ValidPatternNames())
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("invalid workload: capacity must be positive, got %d", capacity)
	}
	if length <= 0 {
		return nil, fmt.Errorf("invalid workload: length must be positive, got %d", length)
	}

	ids := make([]string, length)
	switch pattern {
	case PatternSequential:
		for i := range ids {
			ids[i] = blockID(i)
		}
	case PatternLooping:
		for i := range ids {
			ids[i] = blockID(i % capacity)
		}
	case PatternAdversarial:
		for i := range ids {
			ids[i] = blockID(i % (capacity + 1))
		}
	case PatternZipfian:
		universe := uint64(capacity * zipfUniverseFactor)
		zipf := rand.NewZipf(rng, zipfExponent, 1.0, universe-1)
		for i := range ids {
			ids[i] = blockID(int(zipf.Uint64()))
		}
	}
	return ids, nil
}

// blockID formats the canonical ID for the nth block of a generated pattern.
func blockID(n int) string {
	return fmt.Sprintf("B%d", n)
}
