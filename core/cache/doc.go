// Package cache provides a Redis cache for remote team rosters.
//
// CachedFetcher wraps any reconcile.RosterFetcher. Repeated sync runs within the
// configured TTL reuse the stored rosters instead of hitting the stats API.
// Caching is optional: with an empty URL the commands use the fetcher directly.
package cache
