package emit

import (
	"fmt"
	"strings"

	"github.com/crossbind/crossbind/internal/ir"
	"github.com/crossbind/crossbind/internal/rewrite"
)

// Assertion is one generated verbatim declaration tagged with the location
// of the pair's first recording site.
type Assertion struct {
	Decl ir.Decl
	Loc  ir.Location
}

const (
	sizeMismatchMsg  = "Size mismatch between stub parameter type and source crate type"
	alignMismatchMsg = "Alignment mismatch between stub parameter type and source crate type"
)

// Assertions builds two static assertions per pair, one for size and one for
// alignment. Bare-function pairs are skipped: function pointers all share one
// representation and cannot be meaningfully size-compared.
func Assertions(pairs []rewrite.Pair) []Assertion {
	out := make([]Assertion, 0, 2*len(pairs))
	for _, p := range pairs {
		if p.BareFn {
			continue
		}
		if reexportCollision(p.Local, p.Origin) {
			continue
		}
		out = append(out,
			Assertion{Decl: sizeAssertion(p.Local, p.Origin), Loc: p.Loc},
			Assertion{Decl: alignAssertion(p.Local, p.Origin), Loc: p.Loc},
		)
	}
	return out
}

func sizeAssertion(local, origin string) ir.Decl {
	return verbatim(fmt.Sprintf(
		"const _: () = assert!(std::mem::size_of::<%s>() == std::mem::size_of::<%s>(), %q);",
		local, origin, sizeMismatchMsg,
	))
}

func alignAssertion(local, origin string) ir.Decl {
	return verbatim(fmt.Sprintf(
		"const _: () = assert!(std::mem::align_of::<%s>() == std::mem::align_of::<%s>(), %q);",
		local, origin, alignMismatchMsg,
	))
}

func verbatim(raw string) ir.Decl {
	return ir.Decl{Kind: ir.DeclVerbatim, Raw: raw}
}

// reexportCollision suppresses the pair when both forms are two-segment
// paths ending in the same name. Such a pair names the same type through two
// module prefixes and the assertion would fail to resolve one of them in the
// generated crate. Deliberately narrow; do not widen without a concrete case.
func reexportCollision(local, origin string) bool {
	ls := strings.Split(local, "::")
	os := strings.Split(origin, "::")
	if len(ls) != 2 || len(os) != 2 {
		return false
	}
	return ls[1] == os[1]
}
