package rewrite

import "github.com/crossbind/crossbind/internal/ir"

// Aliases maps type names to the primitive machine type they ultimately
// denote. Prefilled with the primitives mapping to themselves; the collect
// phase extends it for every alias declaration whose target resolves to a
// primitive, under both the bare name and the crate-qualified name. The
// equivalence check uses it to see through renamed primitives without
// emitting spurious assertions.
type Aliases struct {
	m map[string]string
}

var primitiveNames = []string{
	"bool", "char",
	"i8", "i16", "i32", "i64", "i128", "isize",
	"u8", "u16", "u32", "u64", "u128", "usize",
	"f32", "f64", "str",
}

// NewAliases returns the table prefilled with the primitive types.
func NewAliases() *Aliases {
	m := make(map[string]string, len(primitiveNames))
	for _, p := range primitiveNames {
		m[p] = p
	}
	return &Aliases{m: m}
}

// RegisterAlias records that name is an alias whose target resolves to a
// primitive, if it does. The resolution looks at the target's last path
// segment, so chains of aliases collapse as they are collected. Returns
// whether a registration happened.
func (a *Aliases) RegisterAlias(name string, target ir.TypeExpr, crateIdent string) bool {
	if target.Kind != ir.TypeNamed {
		return false
	}
	prim, ok := a.m[target.LastSegment()]
	if !ok {
		return false
	}
	a.m[name] = prim
	a.m[crateIdent+"::"+name] = prim
	return true
}

// Resolve returns the primitive a name denotes, if known.
func (a *Aliases) Resolve(name string) (string, bool) {
	prim, ok := a.m[name]
	return prim, ok
}
