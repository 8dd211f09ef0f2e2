// Package stub synthesizes forwarding functions: for each source function it
// builds an extern "C" counterpart whose parameters use FFI-stable types and
// whose body calls back into the source crate, re-borrowing pointers and
// inserting bit-reinterpretation casts only where the type rewriter found a
// divergence.
package stub
