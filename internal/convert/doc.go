// Package convert drives the conversion pipeline: a single-pass, three-phase
// state machine over a declaration stream. The collect phase materializes the
// input and builds the exported-type index and primitive-alias table, the
// convert phase emits one rewritten declaration per call, and the followup
// phase drains the generated static assertions.
//
// The convert and followup phases pop from the tail of their work lists, so
// output order is the reverse of input order within each phase. Consumers
// must not rely on declaration order being preserved across a run.
package convert
