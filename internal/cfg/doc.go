// Package cfg is the predicate engine: it parses conditional-compilation
// expressions from cfg attributes and resolves them against a feature and
// target configuration.
//
// Parsing is total. Anything the grammar does not model becomes an opaque
// atom preserved verbatim, so predicates the engine does not understand pass
// through unresolved instead of breaking the run.
//
// Resolution has two forms:
//   - Apply rewrites a predicate into its simplified residual: nil means
//     unconditionally true (delete the guard), an explicit false means the
//     guarded declaration must be dropped, anything else is a reduced guard
//     the caller keeps.
//   - Eval is a read-only tri-state query used by the legacy feature filter
//     to decide keep/drop in bulk without touching attributes.
package cfg
