// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCapacity is the initial per-row capacity requested by New when no
	// WithCapacity option is given. The effective capacity is never below cols.
	DefaultCapacity = 0

	// DefaultMinCapacity is the capacity floor used by AppendCols when it has
	// to reallocate, so that a list built from an empty 4×0 matrix does not
	// reallocate on every append.
	DefaultMinCapacity = 4

	// MaxCells bounds rows*capacity for a single matrix (2 GiB of float64).
	// Requests above it fail with ErrAllocation instead of crashing the runtime.
	MaxCells = 1 << 28
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityInvalid = "matrix: WithCapacity: capacity must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	capacity int // initial per-row capacity; DefaultCapacity
}

// WithCapacity pre-allocates n columns per row.
// Implementation:
//   - Stage 1: validate n >= 0 (panic otherwise, programmer error).
//   - Stage 2: return a setter writing n into Options.
//
// Notes:
//   - Capacity below the requested cols is ignored (cols wins).
//   - Useful for edge lists whose final size is known up front.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{capacity: DefaultCapacity}
}

// gatherOptions applies user-provided setters on top of defaults.
// Setters are applied in order (last-writer-wins); nil setters are skipped.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
