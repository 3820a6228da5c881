// Package memo provides bounded, argument-indexed memo tables for pure
// functions.
//
// Where lazy.Memoize caches one computation per producer instance, memo
// caches one result per distinct argument tuple. Wrapping a function in
// Func1..Func3 assumes purity, not just determinism but referential
// transparency: a pure function can be treated as a lazy table of its
// results.
//
// The table is bounded. Entries live in one of two generations; when the
// live generation reaches capacity the table rotates, the previous
// generation becomes the fallback for lookups, and the oldest entries are
// dropped wholesale. This keeps memory bounded without per-entry eviction
// bookkeeping.
//
// Keys must be comparable values or fmt.Stringer implementations; a
// Stringer is keyed by its String form.
//
// The Err variants never cache a failed call, so a retry re-runs the
// function, the same no-negative-caching rule lazy.Memoize follows.
package memo
