// Package ir provides the canonical intermediate representation for
// crossbind: declarations, type expressions, conditional-compilation
// predicates, and source locations.
//
// This package contains type definitions and their Rust surface rendering
// only. All other internal packages import ir; ir imports nothing internal.
// This keeps the IR the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Type shapes and predicates are closed tagged unions discriminated by a
//     Kind field; consumers switch exhaustively over the Kind
//   - Declarations are immutable once read; every transformation produces a
//     new value, never mutates shared state
//   - Canonical JSON (RFC 8785) is the only serialization used for
//     content-addressed record identity
package ir
