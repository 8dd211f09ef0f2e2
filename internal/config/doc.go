// Package config loads and validates the conversion configuration: which
// source crate the records came from, how feature and target predicates are
// resolved, which type paths the output may reference, and where the
// generated source goes.
//
// Configurations are authored in CUE (a directory of .cue files or a single
// file) or in YAML. Both forms decode into the same Config; validation runs
// after decoding and reports every problem it finds rather than stopping at
// the first.
package config
