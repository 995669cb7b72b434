// sim/baseline.go
package sim

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ReplayLRUBaseline replays an access trace through a plain LRU cache of the
// same capacity and returns its hit count. The baseline gives the hybrid
// policy's hit rate a reference point: the fallback policy run alone.
func ReplayLRUBaseline(capacity int, trace []string) (int, error) {
	baseline, err := lru.New[string, struct{}](capacity)
	if err != nil {
		return 0, fmt.Errorf("lru baseline: %w", err)
	}

	hits := 0
	for _, id := range trace {
		if _, ok := baseline.Get(id); ok {
			hits++
			continue
		}
		baseline.Add(id, struct{}{})
	}
	return hits, nil
}
