package cfg

// Rules is the resolved feature configuration for one engine run.
// Constructed once and treated as read-only afterwards.
type Rules struct {
	// Enabled features resolve to true; their guards are deleted.
	Enabled map[string]bool
	// Disabled features resolve to false; their declarations are dropped.
	Disabled map[string]bool
	// Renames maps a source feature name to the name used in the output;
	// the guard is kept, rewritten.
	Renames map[string]string
	// DisableUnknownFeatures treats features absent from all three sets
	// above as disabled instead of failing the run.
	DisableUnknownFeatures bool

	// Single-value target selections. An empty string leaves that axis
	// unconfigured: its atoms stay residual.
	TargetArch   string
	TargetVendor string
	TargetOS     string
	TargetEnv    string
}

// NewRules returns empty, strict rules: no features known, unknown
// features are an error, no target axis configured.
func NewRules() Rules {
	return Rules{
		Enabled:  make(map[string]bool),
		Disabled: make(map[string]bool),
		Renames:  make(map[string]string),
	}
}

// Active reports whether the rules would alter any predicate at all.
// Inactive rules let filter stages pass items through untouched.
func (r Rules) Active() bool {
	return len(r.Enabled) > 0 || len(r.Disabled) > 0 || len(r.Renames) > 0 ||
		r.DisableUnknownFeatures ||
		r.TargetArch != "" || r.TargetVendor != "" || r.TargetOS != "" || r.TargetEnv != ""
}
