package convert

import (
	"github.com/crossbind/crossbind/internal/cfg"
	"github.com/crossbind/crossbind/internal/ir"
)

// Stage is a batch transform applied to the declaration stream before
// conversion.
type Stage interface {
	Filter(items []Item) ([]Item, error)
}

// CfgFilter resolves conditional-compilation guards against the feature
// rules: satisfied guards are deleted, failed guards drop their declaration
// (including guarded fields and variants), and unresolvable guards stay as
// rewritten residuals. An unmapped feature fails the run unless the rules
// disable unknown features.
type CfgFilter struct {
	Rules cfg.Rules
}

func (f CfgFilter) Filter(items []Item) ([]Item, error) {
	if !f.Rules.Active() {
		return items, nil
	}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		d, keep, err := cfg.RewriteDecl(it.Decl, f.Rules, it.Loc)
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}
		out = append(out, Item{Decl: d, Loc: it.Loc})
	}
	return out, nil
}

// FeatureFilter is the legacy boolean path: it drops declarations whose
// guards evaluate false but never rewrites attributes, leaving kept
// declarations byte-identical to their input. Unknown atoms count as enabled
// when TreatUnknownAsEnabled is set, otherwise as disabled.
type FeatureFilter struct {
	Rules                 cfg.Rules
	TreatUnknownAsEnabled bool
}

func (f FeatureFilter) Filter(items []Item) ([]Item, error) {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if f.keep(it.Decl) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f FeatureFilter) keep(d ir.Decl) bool {
	for _, a := range d.CfgAttrs() {
		if !cfg.Keep(cfg.Parse(a.Args), f.Rules, f.TreatUnknownAsEnabled) {
			return false
		}
	}
	return true
}
