// Package cache provides the classification result cache.
//
// Classification results are expensive (an AI call per document) and
// stable, so they are cached for 30 days keyed by document ID. Two
// implementations are provided: Memory, a bounded in-process TTL map with
// lazy expiry, and Redis, for deployments where multiple processes share
// the cache. Both are safe for concurrent use.
//
// Expired entries are treated as misses on lookup; no background sweeper
// runs. Invalidate removes an entry immediately, forcing a fresh
// classification on the next request.
package cache
