package rewrite

import (
	"fmt"
	"strings"

	"github.com/crossbind/crossbind/internal/ir"
)

// validate checks that a type is FFI-safe: named types must be absolute,
// start with an allowed prefix, or be exported; containers are validated
// recursively; bare function types must declare extern "C". Tuples and
// opaque shapes are rejected.
func (r *Rewriter) validate(t ir.TypeExpr, context string, loc ir.Location) error {
	switch t.Kind {
	case ir.TypeNamed:
		if !r.pathAllowed(t) {
			return &PathError{Type: t.String(), Context: context, Loc: loc}
		}
		for _, arg := range t.Args {
			if err := r.validate(arg, context+" (generic argument)", loc); err != nil {
				return err
			}
		}
		return nil

	case ir.TypeRef:
		return r.validate(*t.Elem, context+" (reference)", loc)
	case ir.TypePtr:
		return r.validate(*t.Elem, context+" (pointer)", loc)
	case ir.TypeSlice:
		return r.validate(*t.Elem, context+" (slice element)", loc)
	case ir.TypeArray:
		return r.validate(*t.Elem, context+" (array element)", loc)

	case ir.TypeBareFn:
		if t.Abi != "C" {
			return &AbiError{Type: t.String(), Context: context, Loc: loc}
		}
		for i, p := range t.Params {
			if err := r.validate(p, fmtParamContext(context, i), loc); err != nil {
				return err
			}
		}
		if t.Ret != nil {
			return r.validate(*t.Ret, context+" (function return)", loc)
		}
		return nil

	default:
		return &ShapeError{Type: t.String(), Context: context, Loc: loc}
	}
}

func fmtParamContext(context string, i int) string {
	return fmt.Sprintf("%s (function parameter %d)", context, i+1)
}

// pathAllowed reports whether a named type path may appear in the output
// without conversion.
func (r *Rewriter) pathAllowed(t ir.TypeExpr) bool {
	if t.Absolute {
		return true
	}
	for _, prefix := range r.allowedPrefixes {
		if pathStartsWith(t.Segments, prefix) {
			return true
		}
	}
	// Configured re-export paths collapse to exported bare names later.
	for _, p := range r.reexports {
		if segmentsEqual(t.Segments, p) {
			return true
		}
	}
	return len(t.Segments) == 1 && r.index.ContainsName(t.Segments[0])
}

func pathStartsWith(segments, prefix []string) bool {
	if len(prefix) > len(segments) {
		return false
	}
	for i, p := range prefix {
		if segments[i] != p {
			return false
		}
	}
	return true
}

func splitPath(path string) []string {
	return strings.Split(strings.TrimPrefix(path, "::"), "::")
}
