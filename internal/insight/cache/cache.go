// Package cache provides the key-value store behind AI insight caching.
//
// The Store contract deliberately has no error returns: a storage failure
// is indistinguishable from a cache miss, so backends degrade instead of
// propagating failures into the insight path. Any implementation (memory,
// file, remote) satisfies the interface as long as it honors that rule.
package cache

// Store is a never-fail key-value cache. Get reports a miss for unknown,
// expired, or unreadable entries. Set is best-effort.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Disabled is a Store that caches nothing. Used when caching is turned off
// in config.
type Disabled struct{}

// Get always misses.
func (Disabled) Get(string) (string, bool) { return "", false }

// Set discards the value.
func (Disabled) Set(string, string) {}
