package port

// Cache keeps recently used values in memory. Implementations bound their
// size and are safe for concurrent use; a miss never means "absent" in the
// backing store, only "not cached".
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	// Set inserts or refreshes key, evicting the least recently used entry when full.
	Set(key K, value V)
	// AddIfAbsent stores value only when key is not cached. Otherwise it
	// returns the cached value and found=true, leaving it untouched.
	AddIfAbsent(key K, value V) (existing V, found bool)
	Remove(key K)
	Len() int
}
