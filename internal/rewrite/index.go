package rewrite

// Index is the exported-type index: the set of type names this run copies
// into the output. Keys discriminate conditionally-compiled variants of the
// same name; bare-name membership is what type rewriting consults. Built
// during the collect phase, read-only afterwards.
type Index struct {
	keys  map[string]struct{}
	names map[string]struct{}
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		keys:  make(map[string]struct{}),
		names: make(map[string]struct{}),
	}
}

// Insert records one exported type under its deduplication key and its bare
// name.
func (x *Index) Insert(key, name string) {
	x.keys[key] = struct{}{}
	x.names[name] = struct{}{}
}

// ContainsName reports whether any variant of the bare type name is exported.
func (x *Index) ContainsName(name string) bool {
	_, ok := x.names[name]
	return ok
}

// ContainsKey reports whether the exact variant key is present.
func (x *Index) ContainsKey(key string) bool {
	_, ok := x.keys[key]
	return ok
}

// Len returns the number of distinct variant keys.
func (x *Index) Len() int { return len(x.keys) }
