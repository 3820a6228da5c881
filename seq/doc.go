// Package seq provides an immutable, persistent, possibly infinite
// sequence built from three variants: Empty, Cell, and Proxy.
//
// # Data model
//
// A sequence is one of exactly three things:
//
//   - Empty: the terminal sentinel. Obtained from Empty[T](); carries no
//     element-typed state.
//   - Cell: a non-empty node holding a head producer (eager or lazy) and a
//     tail sequence (eager or deferred). Built by the four Cons
//     constructors.
//   - Proxy: a sequence whose identity is still unresolved, deferred
//     behind a supplier. Built by Lazy.
//
// The variant set is closed: Seq has an unexported method, so nothing
// outside this package can add a fourth case.
//
// # Deferred structure
//
// Lazy lets a sequence be defined in terms of the not-yet-evaluated result
// of an operation on another not-yet-evaluated sequence. Nothing runs
// until a caller deconstructs the result. Deconstruction walks through any
// number of nested proxies until a genuine Cell or Empty appears; each
// proxy invokes its supplier at most once (the resolution is memoized
// through the lazy package) and caches the final structure, so repeated
// deconstruction of the same proxy skips re-resolution. A supplier that
// always returns a fresh proxy referring back to itself never terminates
// on first deconstruction; that is a caller bug, not a framework fault.
//
// # Deconstruction
//
// Two API styles are provided. Match and MatchLazy dispatch to exactly one
// of two continuations; Uncons and UnconsLazy expose the same information
// as plain return values. The lazy variants hand the head over still
// deferred, and must be used by any algorithm that might discard the head
// without needing its value; that is what makes Take, Drop and friends
// work over infinite input.
//
// # Stack safety
//
// Traversals that may run arbitrarily deep (Length, EqualBy, Reverse,
// Fold, ...) are expressed as trampolined step functions driven by the
// trampoline package, so a chain of a million cells deconstructs without
// growing the goroutine stack.
//
// # Persistence and sharing
//
// Every operation returns a new sequence and never mutates an existing
// one. Sequences are immutable and freely shared across goroutines; the
// only cross-goroutine machinery is the memoizer lock inside producers and
// proxies.
package seq
