// Package store persists captured declaration records. Records arrive as
// JSON-lines shard files written by the capture step and land in a SQLite
// database keyed by (group, name), so re-importing a shard replaces earlier
// captures of the same declaration. The database also carries the source
// crate name, recorded once at import time.
package store
