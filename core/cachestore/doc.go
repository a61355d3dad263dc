// Package cachestore persists raw catalog bytes and CDN validation tokens
// (ETags) between application runs.
//
// Storage is a durable key-value mapping keyed by descriptor identity:
// catalog payloads by {language, namespace, app version, source endpoint},
// ETags by {language, namespace, source endpoint}. Everything is namespaced
// beneath the source endpoint, so catalogs from different sources never
// collide. A per-language version marker records which app build wrote the
// cache; the orchestrator clears the cache when the marker changes.
//
// Three backends ship with the package:
//
//   - FileStore: one directory per endpoint under a base directory, one file
//     per (table, language, app version) plus one small token file per
//     (table, language). Writes go through a temp file and rename, so a crash
//     between write and rename never produces a torn read.
//   - RedisStore: the same contract over a Redis-compatible server, for
//     server-side deployments where the cache is shared across instances.
//   - MemoryStore: in-process maps with no durability, for tests and for
//     setups that treat the catalog as a pure runtime cache.
//
// A miss is reported as ErrNotFound; callers treat it as "nothing cached",
// never as a failure.
package cachestore
