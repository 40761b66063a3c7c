// Package cache provides a generic, thread-safe LRU cache with optional
// time-to-live, used to memoise the outcome of remote rule checks.
//
// The cache evicts the least recently used entry once it holds more than its
// configured capacity. With WithTTL, entries also expire a fixed time after
// they were stored; expired entries are purged lazily on Get.
//
// # Usage
//
//	c := cache.NewLRUCache[string, bool](1024, cache.WithTTL(30*time.Second))
//	c.Put("users:alice", true)
//	taken, ok := c.Get("users:alice")
//
// All operations are O(1) and safe for concurrent use.
package cache
