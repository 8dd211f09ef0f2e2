// Package render turns converted declarations back into Rust source text,
// one compilation unit per run, ready for inclusion by a binding crate.
package render
