package ir

import "strings"

// DeclKind discriminates the declaration forms the engine processes.
type DeclKind string

const (
	DeclStruct   DeclKind = "struct"
	DeclEnum     DeclKind = "enum"
	DeclUnion    DeclKind = "union"
	DeclAlias    DeclKind = "type"
	DeclConst    DeclKind = "const"
	DeclFunction DeclKind = "function"
	// DeclVerbatim carries pre-rendered output, used for the generated
	// static assertions in the Followup phase.
	DeclVerbatim DeclKind = "verbatim"
)

// IsType reports whether the kind declares a type that gets copied into
// the FFI output and therefore belongs in the exported-type index.
func (k DeclKind) IsType() bool {
	switch k {
	case DeclStruct, DeclEnum, DeclUnion, DeclAlias:
		return true
	}
	return false
}

func (k DeclKind) String() string { return string(k) }

// Attr is one outer attribute. Conditional-compilation guards have Name
// "cfg" and carry their expression verbatim in Args; the predicate engine
// parses Args on demand and writes the rewritten expression back.
type Attr struct {
	Name string `json:"name"`
	Args string `json:"args,omitempty"`
}

// IsCfg reports whether the attribute is a conditional-compilation guard.
func (a Attr) IsCfg() bool { return a.Name == "cfg" }

// String renders the attribute as it appears in source: `#[name(args)]`.
func (a Attr) String() string {
	if a.Args == "" {
		return "#[" + a.Name + "]"
	}
	return "#[" + a.Name + "(" + a.Args + ")]"
}

// Field is one struct, union, or variant field. Name is empty for tuple
// fields.
type Field struct {
	Name  string   `json:"name,omitempty"`
	Attrs []Attr   `json:"attrs,omitempty"`
	Type  TypeExpr `json:"type"`
}

// Variant is one enum variant.
type Variant struct {
	Name         string  `json:"name"`
	Attrs        []Attr  `json:"attrs,omitempty"`
	Fields       []Field `json:"fields,omitempty"`
	Tuple        bool    `json:"tuple,omitempty"`
	Discriminant string  `json:"discriminant,omitempty"`
}

// Param is one typed function parameter.
type Param struct {
	Name string   `json:"name"`
	Type TypeExpr `json:"type"`
}

// FnSig is a function signature. Bodies are never carried in the IR: the
// capture step discards them and the stub synthesizer writes new ones.
type FnSig struct {
	Params      []Param   `json:"params,omitempty"`
	Ret         *TypeExpr `json:"ret,omitempty"`
	Generics    []string  `json:"generics,omitempty"`
	HasReceiver bool      `json:"has_receiver,omitempty"`
	Unsafe      bool      `json:"unsafe,omitempty"`
	Abi         string    `json:"abi,omitempty"`
}

// ConstSpec is the type and verbatim value expression of a const.
type ConstSpec struct {
	Type  TypeExpr `json:"type"`
	Value string   `json:"value"`
}

// Decl is one declaration: a tagged union over DeclKind. Declarations are
// immutable once constructed; transformations return new values.
type Decl struct {
	Kind  DeclKind `json:"kind"`
	Name  string   `json:"name,omitempty"`
	Attrs []Attr   `json:"attrs,omitempty"`

	// Struct, union: Fields; struct may be a tuple struct.
	Tuple  bool    `json:"tuple,omitempty"`
	Fields []Field `json:"fields,omitempty"`

	// Enum
	Variants []Variant `json:"variants,omitempty"`

	// Alias
	Alias *TypeExpr `json:"alias,omitempty"`

	// Const
	Const *ConstSpec `json:"const,omitempty"`

	// Function
	Fn *FnSig `json:"fn,omitempty"`
	// Body holds the synthesized stub body, one statement per line.
	Body []string `json:"body,omitempty"`

	// Verbatim
	Raw string `json:"raw,omitempty"`
}

// CfgAttrs returns the conditional-compilation guards attached directly to
// the declaration, in attribute order.
func (d Decl) CfgAttrs() []Attr {
	var out []Attr
	for _, a := range d.Attrs {
		if a.IsCfg() {
			out = append(out, a)
		}
	}
	return out
}

// DedupKey computes the exported-type index key for a declaration: the bare
// name, or the name joined with a serialization of its directly attached cfg
// guards when any are present. Differently-guarded variants of the same type
// name get distinct keys; attribute order is significant.
func (d Decl) DedupKey() string {
	cfgs := d.CfgAttrs()
	if len(cfgs) == 0 {
		return d.Name
	}
	parts := make([]string, len(cfgs))
	for i, a := range cfgs {
		parts[i] = a.String()
	}
	return d.Name + "#" + strings.Join(parts, "|")
}

// Record is one persisted declaration as exchanged with the capture step:
// JSON-lines shards on disk, rows in the record store.
type Record struct {
	Kind     DeclKind `json:"kind"`
	Name     string   `json:"name"`
	Decl     Decl     `json:"decl"`
	Location Location `json:"source_location"`
}
