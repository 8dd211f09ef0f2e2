package rewrite

import (
	"github.com/crossbind/crossbind/internal/config"
	"github.com/crossbind/crossbind/internal/ir"
)

// Rewriter converts type expressions to their FFI-stable local form and
// collects equivalence pairs. One instance serves one engine run; it is not
// safe for concurrent use.
type Rewriter struct {
	crateIdent      string
	index           *Index
	aliases         *Aliases
	pairs           *PairSet
	allowedPrefixes [][]string
	wrappers        [][]string
	reexports       [][]string
}

// New builds a rewriter from the run configuration, the exported-type index,
// and the primitive-alias table, both populated by the collect phase.
func New(cfg *config.Config, index *Index, aliases *Aliases) *Rewriter {
	r := &Rewriter{
		crateIdent: cfg.CrateIdent(),
		index:      index,
		aliases:    aliases,
		pairs:      NewPairSet(),
	}
	for _, p := range cfg.AllAllowedPrefixes() {
		r.allowedPrefixes = append(r.allowedPrefixes, splitPath(p))
	}
	for _, p := range cfg.TransparentWrappers {
		r.wrappers = append(r.wrappers, splitPath(p))
	}
	for _, p := range cfg.PrefixedExportedTypes {
		r.reexports = append(r.reexports, splitPath(p))
	}
	return r
}

// Pairs exposes the equivalence pairs collected so far.
func (r *Rewriter) Pairs() *PairSet { return r.pairs }

// RewriteType converts one type expression to its FFI-stable local form:
// source references become raw pointers, transparent wrappers and re-export
// prefixes are stripped, everything else is preserved. The changed result
// reports whether the local form diverges from the origin form, meaning a
// value of this type crosses the boundary only through a bit-reinterpretation
// cast; one equivalence pair is recorded per divergent type.
func (r *Rewriter) RewriteType(t ir.TypeExpr, context string, loc ir.Location) (ir.TypeExpr, bool, error) {
	if err := r.validate(t, context, loc); err != nil {
		return ir.TypeExpr{}, false, err
	}

	local, stripped := r.localForm(t)

	// A function type gets a single pair for the whole shape; its
	// parameters never record pairs of their own, and the type itself is
	// never wrapped in a pointer.
	if t.Kind == ir.TypeBareFn {
		origin := r.qualify(staticize(t))
		if r.equivalent(local, origin) {
			return local, false, nil
		}
		r.pairs.Add(Pair{Local: local.String(), Origin: origin.String(), BareFn: true, Loc: loc})
		return local, true, nil
	}

	changed := stripped || r.containsExported(local)
	if changed {
		origin := r.qualify(staticize(t))
		lp, op := stripMatchingLayers(local, origin)
		if !r.equivalent(lp, op) {
			r.pairs.Add(Pair{
				Local:  lp.String(),
				Origin: op.String(),
				BareFn: lp.Kind == ir.TypeBareFn,
				Loc:    loc,
			})
		}
	}
	return local, changed, nil
}

// localForm rewrites a type to the form that appears in the generated
// output. References become raw pointers at every chain position; wrappers
// and re-export prefixes strip recursively; generic arguments of ordinary
// named types are left alone. The second result reports whether any
// stripping happened.
func (r *Rewriter) localForm(t ir.TypeExpr) (ir.TypeExpr, bool) {
	switch t.Kind {
	case ir.TypeRef, ir.TypePtr:
		elem, stripped := r.localForm(*t.Elem)
		return ir.Ptr(t.Mut, elem), stripped

	case ir.TypeArray:
		elem, stripped := r.localForm(*t.Elem)
		return ir.ArrayOf(elem, t.Len), stripped

	case ir.TypeNamed:
		if inner, ok := r.stripWrapper(t); ok {
			out, _ := r.localForm(inner)
			return out, true
		}
		if bare, ok := r.stripReexport(t); ok {
			return bare, true
		}
		return t.Clone(), false

	case ir.TypeBareFn:
		out := t.Clone()
		stripped := false
		for i := range out.Params {
			p, s := r.localForm(out.Params[i])
			out.Params[i] = p
			stripped = stripped || s
		}
		if out.Ret != nil {
			ret, s := r.localForm(*out.Ret)
			out.Ret = &ret
			stripped = stripped || s
		}
		return out, stripped

	default:
		return t.Clone(), false
	}
}

// stripWrapper unwraps a configured transparent wrapper to its first type
// argument.
func (r *Rewriter) stripWrapper(t ir.TypeExpr) (ir.TypeExpr, bool) {
	for _, w := range r.wrappers {
		if segmentsEqual(t.Segments, w) && len(t.Args) > 0 {
			return t.Args[0], true
		}
	}
	return ir.TypeExpr{}, false
}

// stripReexport collapses a configured re-exported path to its bare final
// segment, keeping generic arguments.
func (r *Rewriter) stripReexport(t ir.TypeExpr) (ir.TypeExpr, bool) {
	if len(t.Segments) < 2 {
		return ir.TypeExpr{}, false
	}
	for _, p := range r.reexports {
		if segmentsEqual(t.Segments, p) {
			return ir.NamedArgs([]string{t.LastSegment()}, t.Args...), true
		}
	}
	return ir.TypeExpr{}, false
}

func segmentsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// containsExported reports whether the type mentions any exported type name.
func (r *Rewriter) containsExported(t ir.TypeExpr) bool {
	switch t.Kind {
	case ir.TypeNamed:
		if r.index.ContainsName(t.LastSegment()) {
			return true
		}
		for _, arg := range t.Args {
			if r.containsExported(arg) {
				return true
			}
		}
	case ir.TypeRef, ir.TypePtr, ir.TypeSlice, ir.TypeArray:
		return r.containsExported(*t.Elem)
	case ir.TypeTuple:
		for _, e := range t.Elems {
			if r.containsExported(e) {
				return true
			}
		}
	case ir.TypeBareFn:
		for _, p := range t.Params {
			if r.containsExported(p) {
				return true
			}
		}
		if t.Ret != nil {
			return r.containsExported(*t.Ret)
		}
	}
	return false
}

// qualify prefixes every exported single-segment name with the crate
// identifier, recursing through the whole shape.
func (r *Rewriter) qualify(t ir.TypeExpr) ir.TypeExpr {
	switch t.Kind {
	case ir.TypeNamed:
		out := t.Clone()
		for i := range out.Args {
			out.Args[i] = r.qualify(out.Args[i])
		}
		if len(out.Segments) == 1 && !out.Absolute && r.index.ContainsName(out.Segments[0]) {
			out.Segments = []string{r.crateIdent, out.Segments[0]}
		}
		return out
	case ir.TypeRef, ir.TypePtr, ir.TypeSlice, ir.TypeArray:
		out := t.Clone()
		elem := r.qualify(*out.Elem)
		out.Elem = &elem
		return out
	case ir.TypeBareFn:
		out := t.Clone()
		for i := range out.Params {
			out.Params[i] = r.qualify(out.Params[i])
		}
		if out.Ret != nil {
			ret := r.qualify(*out.Ret)
			out.Ret = &ret
		}
		return out
	default:
		return t.Clone()
	}
}

// staticize replaces every reference lifetime with the static one. The
// origin form only feeds a size and alignment comparison, so borrow-scoped
// lifetimes must not leak into it.
func staticize(t ir.TypeExpr) ir.TypeExpr {
	out := t.Clone()
	staticizeInPlace(&out)
	return out
}

func staticizeInPlace(t *ir.TypeExpr) {
	switch t.Kind {
	case ir.TypeRef:
		t.Lifetime = "static"
		staticizeInPlace(t.Elem)
	case ir.TypePtr, ir.TypeSlice, ir.TypeArray:
		staticizeInPlace(t.Elem)
	case ir.TypeNamed:
		for i := range t.Args {
			staticizeInPlace(&t.Args[i])
		}
	case ir.TypeTuple:
		for i := range t.Elems {
			staticizeInPlace(&t.Elems[i])
		}
	case ir.TypeBareFn:
		for i := range t.Params {
			staticizeInPlace(&t.Params[i])
		}
		if t.Ret != nil {
			staticizeInPlace(t.Ret)
		}
	}
}

// stripMatchingLayers removes equal outer layers from both forms down to the
// first named layer on either side. A local raw pointer matches an origin
// reference of the same mutability: that conversion is exactly what the
// local-form restoration already proved sound, so pairs differing only by it
// carry no information.
func stripMatchingLayers(local, origin ir.TypeExpr) (ir.TypeExpr, ir.TypeExpr) {
	for {
		localPtr := local.Kind == ir.TypeRef || local.Kind == ir.TypePtr
		originPtr := origin.Kind == ir.TypeRef || origin.Kind == ir.TypePtr
		switch {
		case localPtr && originPtr && local.Mut == origin.Mut:
			local, origin = *local.Elem, *origin.Elem
		case local.Kind == ir.TypeArray && origin.Kind == ir.TypeArray && local.Len == origin.Len:
			local, origin = *local.Elem, *origin.Elem
		default:
			return local, origin
		}
	}
}

// equivalent reports whether two forms are already known equal: textually
// identical, both names for the same primitive machine type, or structurally
// identical containers of equivalent elements.
func (r *Rewriter) equivalent(a, b ir.TypeExpr) bool {
	as, bs := a.String(), b.String()
	if as == bs {
		return true
	}
	if a.Kind == ir.TypeNamed && b.Kind == ir.TypeNamed &&
		len(a.Args) == 0 && len(b.Args) == 0 {
		pa, oka := r.aliases.Resolve(as)
		pb, okb := r.aliases.Resolve(bs)
		return oka && okb && pa == pb
	}
	switch {
	case a.Kind == ir.TypeRef && b.Kind == ir.TypeRef && a.Mut == b.Mut:
		return r.equivalent(*a.Elem, *b.Elem)
	case a.Kind == ir.TypePtr && b.Kind == ir.TypePtr && a.Mut == b.Mut:
		return r.equivalent(*a.Elem, *b.Elem)
	case a.Kind == ir.TypeArray && b.Kind == ir.TypeArray && a.Len == b.Len:
		return r.equivalent(*a.Elem, *b.Elem)
	case a.Kind == ir.TypeSlice && b.Kind == ir.TypeSlice:
		return r.equivalent(*a.Elem, *b.Elem)
	}
	return false
}
