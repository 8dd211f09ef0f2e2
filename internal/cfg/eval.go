package cfg

import "github.com/crossbind/crossbind/internal/ir"

// Tristate is the result of a read-only predicate query.
type Tristate int

const (
	TriFalse Tristate = iota
	TriTrue
	TriUnknown
)

// Eval answers whether a predicate holds under the rules without rewriting
// anything. Atoms the rules do not decide evaluate to TriUnknown, which
// callers fold to enabled or disabled via treatUnknownAsEnabled. This is the
// bulk keep/drop path used by the read-only feature filter; Apply is the
// rewriting path.
func Eval(p ir.Predicate, rules Rules) Tristate {
	switch p.Kind {
	case ir.PredFeature:
		if rules.Enabled[p.Name] {
			return TriTrue
		}
		if rules.Disabled[p.Name] {
			return TriFalse
		}
		if _, ok := rules.Renames[p.Name]; ok {
			return TriUnknown
		}
		if rules.DisableUnknownFeatures {
			return TriFalse
		}
		return TriUnknown

	case ir.PredTarget:
		configured := rules.targetValue(p.Axis)
		if configured == "" {
			return TriUnknown
		}
		if configured == p.Value {
			return TriTrue
		}
		return TriFalse

	case ir.PredAll:
		result := TriTrue
		for _, sub := range p.Preds {
			switch Eval(sub, rules) {
			case TriFalse:
				return TriFalse
			case TriUnknown:
				result = TriUnknown
			}
		}
		return result

	case ir.PredAny:
		result := TriFalse
		for _, sub := range p.Preds {
			switch Eval(sub, rules) {
			case TriTrue:
				return TriTrue
			case TriUnknown:
				result = TriUnknown
			}
		}
		return result

	case ir.PredNot:
		switch Eval(*p.Inner, rules) {
		case TriTrue:
			return TriFalse
		case TriFalse:
			return TriTrue
		default:
			return TriUnknown
		}

	case ir.PredFalse:
		return TriFalse

	default:
		// Opaque atoms are undecidable here.
		return TriUnknown
	}
}

// Keep folds an Eval result into a keep/drop decision, resolving TriUnknown
// with treatUnknownAsEnabled.
func Keep(p ir.Predicate, rules Rules, treatUnknownAsEnabled bool) bool {
	switch Eval(p, rules) {
	case TriFalse:
		return false
	case TriUnknown:
		return treatUnknownAsEnabled
	}
	return true
}
