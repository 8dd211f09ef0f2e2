// Package rewrite normalizes type expressions into their FFI-stable form.
//
// The rewriter peels reference, pointer, and array layers down to a core
// type, strips configured transparent wrappers and re-export prefixes from
// the core, validates the result against the allowed-prefix list and the
// exported-type index, and restores peeled reference layers as raw pointers.
// Whenever the local form diverges from the origin form (the type as the
// source crate sees it, module-qualified), one equivalence pair is recorded;
// the pairs later become static size and alignment assertions.
package rewrite
