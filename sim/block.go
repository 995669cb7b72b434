// sim/block.go
package sim

// CacheBlock represents one resident cache line tracked by the policy engine.
// Recency and frequency are the predictor's input features; Score is the
// predicted reuse probability derived from them under the active workload mode.
type CacheBlock struct {
	ID        string  // Opaque block identifier; unique among residents
	Recency   int     // Accesses since this block was last touched; 0 = most recently used
	Frequency int     // Accesses to this block since it entered the cache
	Score     float64 // Predicted probability of reuse, in [0, 1]
}
