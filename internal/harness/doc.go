// Package harness runs end-to-end conversion scenarios for tests. A scenario
// is a YAML file naming a run configuration and a list of capture shards; the
// harness feeds the shards through the conversion pipeline and renders the
// resulting compilation unit, which tests compare against golden files.
package harness
