package ir

import (
	"fmt"
	"strings"
)

// TypeKind discriminates the closed set of type shapes the rewriter handles.
type TypeKind string

const (
	// TypeNamed is a possibly path-qualified named type with optional
	// generic arguments: `Foo`, `foo::Bar<T>`, `::std::ffi::c_void`.
	TypeNamed TypeKind = "named"
	// TypeRef is a borrow: `&T`, `&mut T`, `&'a T`.
	TypeRef TypeKind = "ref"
	// TypePtr is a raw pointer: `*const T`, `*mut T`.
	TypePtr TypeKind = "ptr"
	// TypeArray is a fixed-size array: `[T; N]`.
	TypeArray TypeKind = "array"
	// TypeSlice is an unsized slice: `[T]`.
	TypeSlice TypeKind = "slice"
	// TypeTuple is a tuple: `(A, B)`. Rejected by FFI validation.
	TypeTuple TypeKind = "tuple"
	// TypeBareFn is a function pointer: `extern "C" fn(A) -> B`.
	TypeBareFn TypeKind = "bare_fn"
	// TypeOpaque is a shape the IR does not model, preserved verbatim.
	TypeOpaque TypeKind = "opaque"
)

// TypeExpr is a tagged union over the Kind values above. Only the fields
// relevant to the active Kind are populated; the rest stay zero.
type TypeExpr struct {
	Kind TypeKind `json:"kind"`

	// Named
	Absolute bool       `json:"absolute,omitempty"`
	Segments []string   `json:"segments,omitempty"`
	Args     []TypeExpr `json:"args,omitempty"`

	// Ref, Ptr, Array, Slice
	Mut      bool      `json:"mut,omitempty"`
	Lifetime string    `json:"lifetime,omitempty"`
	Elem     *TypeExpr `json:"elem,omitempty"`
	Len      string    `json:"len,omitempty"`

	// Tuple
	Elems []TypeExpr `json:"elems,omitempty"`

	// BareFn
	Abi    string     `json:"abi,omitempty"`
	Params []TypeExpr `json:"params,omitempty"`
	Ret    *TypeExpr  `json:"ret,omitempty"`

	// Opaque
	Text string `json:"text,omitempty"`
}

// Named builds a named type from path segments.
func Named(segments ...string) TypeExpr {
	return TypeExpr{Kind: TypeNamed, Segments: segments}
}

// NamedArgs builds a named type with generic arguments.
func NamedArgs(segments []string, args ...TypeExpr) TypeExpr {
	return TypeExpr{Kind: TypeNamed, Segments: segments, Args: args}
}

// Ref builds `&T` or `&mut T`.
func Ref(mut bool, elem TypeExpr) TypeExpr {
	return TypeExpr{Kind: TypeRef, Mut: mut, Elem: &elem}
}

// Ptr builds `*const T` or `*mut T`.
func Ptr(mut bool, elem TypeExpr) TypeExpr {
	return TypeExpr{Kind: TypePtr, Mut: mut, Elem: &elem}
}

// ArrayOf builds `[T; n]` where n is a verbatim length expression.
func ArrayOf(elem TypeExpr, n string) TypeExpr {
	return TypeExpr{Kind: TypeArray, Elem: &elem, Len: n}
}

// SliceOf builds `[T]`.
func SliceOf(elem TypeExpr) TypeExpr {
	return TypeExpr{Kind: TypeSlice, Elem: &elem}
}

// BareFn builds a function pointer type.
func BareFn(abi string, params []TypeExpr, ret *TypeExpr) TypeExpr {
	return TypeExpr{Kind: TypeBareFn, Abi: abi, Params: params, Ret: ret}
}

// OpaqueType preserves an unmodeled type shape verbatim.
func OpaqueType(text string) TypeExpr {
	return TypeExpr{Kind: TypeOpaque, Text: text}
}

// LastSegment returns the final path segment of a named type, or "".
func (t TypeExpr) LastSegment() string {
	if t.Kind != TypeNamed || len(t.Segments) == 0 {
		return ""
	}
	return t.Segments[len(t.Segments)-1]
}

// Clone returns a deep copy. TypeExpr values share Elem/Ret pointers when
// copied by assignment; transformations must clone first.
func (t TypeExpr) Clone() TypeExpr {
	out := t
	if t.Elem != nil {
		e := t.Elem.Clone()
		out.Elem = &e
	}
	if t.Ret != nil {
		r := t.Ret.Clone()
		out.Ret = &r
	}
	out.Segments = append([]string(nil), t.Segments...)
	out.Args = cloneTypes(t.Args)
	out.Elems = cloneTypes(t.Elems)
	out.Params = cloneTypes(t.Params)
	return out
}

func cloneTypes(ts []TypeExpr) []TypeExpr {
	if ts == nil {
		return nil
	}
	out := make([]TypeExpr, len(ts))
	for i, t := range ts {
		out[i] = t.Clone()
	}
	return out
}

// String renders the type in Rust surface syntax. Rendering is the textual
// identity used for equivalence-pair deduplication, so it must be
// deterministic: no optional whitespace, one canonical spelling per shape.
func (t TypeExpr) String() string {
	switch t.Kind {
	case TypeNamed:
		var b strings.Builder
		if t.Absolute {
			b.WriteString("::")
		}
		b.WriteString(strings.Join(t.Segments, "::"))
		if len(t.Args) > 0 {
			b.WriteByte('<')
			for i, a := range t.Args {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(a.String())
			}
			b.WriteByte('>')
		}
		return b.String()
	case TypeRef:
		var b strings.Builder
		b.WriteByte('&')
		if t.Lifetime != "" {
			b.WriteByte('\'')
			b.WriteString(t.Lifetime)
			b.WriteByte(' ')
		}
		if t.Mut {
			b.WriteString("mut ")
		}
		b.WriteString(t.Elem.String())
		return b.String()
	case TypePtr:
		if t.Mut {
			return "*mut " + t.Elem.String()
		}
		return "*const " + t.Elem.String()
	case TypeArray:
		return fmt.Sprintf("[%s; %s]", t.Elem.String(), t.Len)
	case TypeSlice:
		return "[" + t.Elem.String() + "]"
	case TypeTuple:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case TypeBareFn:
		var b strings.Builder
		if t.Abi != "" {
			fmt.Fprintf(&b, "extern %q ", t.Abi)
		}
		b.WriteString("fn(")
		for i, p := range t.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
		b.WriteByte(')')
		if t.Ret != nil {
			b.WriteString(" -> ")
			b.WriteString(t.Ret.String())
		}
		return b.String()
	case TypeOpaque:
		return t.Text
	default:
		return fmt.Sprintf("<unknown type kind %q>", string(t.Kind))
	}
}
