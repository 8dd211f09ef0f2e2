package cfg

import "github.com/crossbind/crossbind/internal/ir"

// Apply resolves a predicate against the rules and returns its residual.
// A nil residual means the predicate is unconditionally true and the guard
// should be deleted; an explicit false residual means the guarded declaration
// must be dropped; any other residual replaces the original expression.
func Apply(p ir.Predicate, rules Rules, loc ir.Location) (*ir.Predicate, error) {
	switch p.Kind {
	case ir.PredFeature:
		return applyFeature(p, rules, loc)

	case ir.PredTarget:
		configured := rules.targetValue(p.Axis)
		if configured == "" {
			// Axis not configured; the atom stays residual.
			return &p, nil
		}
		if configured == p.Value {
			return nil, nil
		}
		f := ir.False()
		return &f, nil

	case ir.PredAll:
		var rest []ir.Predicate
		for _, sub := range p.Preds {
			res, err := Apply(sub, rules, loc)
			if err != nil {
				return nil, err
			}
			if res == nil {
				// True conjunct, drop it.
				continue
			}
			if res.IsFalse() {
				f := ir.False()
				return &f, nil
			}
			rest = append(rest, *res)
		}
		switch len(rest) {
		case 0:
			return nil, nil
		case 1:
			return &rest[0], nil
		default:
			a := ir.All(rest...)
			return &a, nil
		}

	case ir.PredAny:
		var rest []ir.Predicate
		for _, sub := range p.Preds {
			res, err := Apply(sub, rules, loc)
			if err != nil {
				return nil, err
			}
			if res == nil {
				// One true disjunct makes the whole any true.
				return nil, nil
			}
			if res.IsFalse() {
				continue
			}
			rest = append(rest, *res)
		}
		switch len(rest) {
		case 0:
			f := ir.False()
			return &f, nil
		case 1:
			return &rest[0], nil
		default:
			a := ir.Any(rest...)
			return &a, nil
		}

	case ir.PredNot:
		res, err := Apply(*p.Inner, rules, loc)
		if err != nil {
			return nil, err
		}
		if res == nil {
			f := ir.False()
			return &f, nil
		}
		if res.IsFalse() {
			return nil, nil
		}
		n := ir.Not(*res)
		return &n, nil

	case ir.PredFalse:
		f := ir.False()
		return &f, nil

	default:
		// Opaque atoms pass through untouched.
		return &p, nil
	}
}

func applyFeature(p ir.Predicate, rules Rules, loc ir.Location) (*ir.Predicate, error) {
	name := p.Name
	if rules.Enabled[name] {
		return nil, nil
	}
	if rules.Disabled[name] {
		f := ir.False()
		return &f, nil
	}
	if renamed, ok := rules.Renames[name]; ok {
		r := ir.Feature(renamed)
		return &r, nil
	}
	if rules.DisableUnknownFeatures {
		f := ir.False()
		return &f, nil
	}
	return nil, &UnmappedFeatureError{Feature: name, Loc: loc}
}

func (r Rules) targetValue(axis ir.TargetAxis) string {
	switch axis {
	case ir.AxisArch:
		return r.TargetArch
	case ir.AxisVendor:
		return r.TargetVendor
	case ir.AxisOS:
		return r.TargetOS
	case ir.AxisEnv:
		return r.TargetEnv
	}
	return ""
}
