package ir

import (
	"fmt"
	"strings"
)

// PredKind discriminates conditional-compilation predicate atoms and
// connectives.
type PredKind string

const (
	// PredFeature is `feature = "name"`.
	PredFeature PredKind = "feature"
	// PredTarget is a target-fact atom, e.g. `target_arch = "x86_64"`.
	// The Axis field selects which of the four target axes it tests.
	PredTarget PredKind = "target"
	// PredAll is `all(p, ...)`.
	PredAll PredKind = "all"
	// PredAny is `any(p, ...)`.
	PredAny PredKind = "any"
	// PredNot is `not(p)`.
	PredNot PredKind = "not"
	// PredOpaque is an unrecognized expression preserved verbatim.
	PredOpaque PredKind = "opaque"
	// PredFalse is the explicit constant false, produced only by
	// predicate resolution; it renders as the empty disjunction `any()`.
	PredFalse PredKind = "false"
)

// TargetAxis names one of the four configurable target selection axes.
type TargetAxis string

const (
	AxisArch   TargetAxis = "target_arch"
	AxisVendor TargetAxis = "target_vendor"
	AxisOS     TargetAxis = "target_os"
	AxisEnv    TargetAxis = "target_env"
)

// Predicate is a pure boolean expression over feature and target atoms.
// It is a tagged union over PredKind; evaluation never mutates it.
type Predicate struct {
	Kind  PredKind    `json:"kind"`
	Name  string      `json:"name,omitempty"`  // feature
	Axis  TargetAxis  `json:"axis,omitempty"`  // target
	Value string      `json:"value,omitempty"` // target
	Preds []Predicate `json:"preds,omitempty"` // all, any
	Inner *Predicate  `json:"inner,omitempty"` // not
	Text  string      `json:"text,omitempty"`  // opaque
}

// Feature builds `feature = "name"`.
func Feature(name string) Predicate {
	return Predicate{Kind: PredFeature, Name: name}
}

// Target builds a target-fact atom for the given axis.
func Target(axis TargetAxis, value string) Predicate {
	return Predicate{Kind: PredTarget, Axis: axis, Value: value}
}

// All builds `all(preds...)`.
func All(preds ...Predicate) Predicate {
	return Predicate{Kind: PredAll, Preds: preds}
}

// Any builds `any(preds...)`.
func Any(preds ...Predicate) Predicate {
	return Predicate{Kind: PredAny, Preds: preds}
}

// Not builds `not(p)`.
func Not(p Predicate) Predicate {
	return Predicate{Kind: PredNot, Inner: &p}
}

// OpaquePred preserves an unrecognized predicate verbatim.
func OpaquePred(text string) Predicate {
	return Predicate{Kind: PredOpaque, Text: text}
}

// False is the explicit constant-false predicate.
func False() Predicate {
	return Predicate{Kind: PredFalse}
}

// IsFalse reports whether p is the explicit constant false.
func (p Predicate) IsFalse() bool {
	return p.Kind == PredFalse
}

// String renders the predicate in cfg surface syntax.
func (p Predicate) String() string {
	switch p.Kind {
	case PredFeature:
		return fmt.Sprintf("feature = %q", p.Name)
	case PredTarget:
		return fmt.Sprintf("%s = %q", string(p.Axis), p.Value)
	case PredAll, PredAny:
		parts := make([]string, len(p.Preds))
		for i, sub := range p.Preds {
			parts[i] = sub.String()
		}
		return string(p.Kind) + "(" + strings.Join(parts, ", ") + ")"
	case PredNot:
		return "not(" + p.Inner.String() + ")"
	case PredOpaque:
		return p.Text
	case PredFalse:
		// any() with no arguments is always false.
		return "any()"
	default:
		return fmt.Sprintf("<unknown predicate kind %q>", string(p.Kind))
	}
}
