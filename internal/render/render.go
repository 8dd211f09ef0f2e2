package render

import (
	"fmt"
	"strings"

	"github.com/crossbind/crossbind/internal/ir"
)

// RenderDecl renders one declaration as Rust source. Verbatim declarations
// pass through untouched; everything else gets public visibility, since the
// generated unit exists to be consumed by a foreign binding generator.
func RenderDecl(d ir.Decl) string {
	var b strings.Builder
	writeAttrs(&b, d.Attrs)

	switch d.Kind {
	case ir.DeclStruct:
		writeStruct(&b, "struct", d)
	case ir.DeclUnion:
		writeStruct(&b, "union", d)
	case ir.DeclEnum:
		writeEnum(&b, d)
	case ir.DeclAlias:
		fmt.Fprintf(&b, "pub type %s = %s;", d.Name, d.Alias.String())
	case ir.DeclConst:
		fmt.Fprintf(&b, "pub const %s: %s = %s;", d.Name, d.Const.Type.String(), d.Const.Value)
	case ir.DeclFunction:
		writeFunction(&b, d)
	case ir.DeclVerbatim:
		return d.Raw
	}

	return b.String()
}

func writeAttrs(b *strings.Builder, attrs []ir.Attr) {
	for _, a := range attrs {
		b.WriteString(a.String())
		b.WriteByte('\n')
	}
}

func writeStruct(b *strings.Builder, keyword string, d ir.Decl) {
	if len(d.Fields) == 0 && !d.Tuple {
		fmt.Fprintf(b, "pub %s %s;", keyword, d.Name)
		return
	}
	if d.Tuple {
		parts := make([]string, len(d.Fields))
		for i, f := range d.Fields {
			parts[i] = "pub " + f.Type.String()
		}
		fmt.Fprintf(b, "pub %s %s(%s);", keyword, d.Name, strings.Join(parts, ", "))
		return
	}

	fmt.Fprintf(b, "pub %s %s {\n", keyword, d.Name)
	for _, f := range d.Fields {
		for _, a := range f.Attrs {
			fmt.Fprintf(b, "    %s\n", a.String())
		}
		fmt.Fprintf(b, "    pub %s: %s,\n", f.Name, f.Type.String())
	}
	b.WriteString("}")
}

func writeEnum(b *strings.Builder, d ir.Decl) {
	fmt.Fprintf(b, "pub enum %s {\n", d.Name)
	for _, v := range d.Variants {
		for _, a := range v.Attrs {
			fmt.Fprintf(b, "    %s\n", a.String())
		}
		switch {
		case len(v.Fields) == 0 && v.Discriminant != "":
			fmt.Fprintf(b, "    %s = %s,\n", v.Name, v.Discriminant)
		case len(v.Fields) == 0:
			fmt.Fprintf(b, "    %s,\n", v.Name)
		case v.Tuple:
			parts := make([]string, len(v.Fields))
			for i, f := range v.Fields {
				parts[i] = f.Type.String()
			}
			fmt.Fprintf(b, "    %s(%s),\n", v.Name, strings.Join(parts, ", "))
		default:
			fmt.Fprintf(b, "    %s {", v.Name)
			for i, f := range v.Fields {
				if i > 0 {
					b.WriteByte(',')
				}
				fmt.Fprintf(b, " %s: %s", f.Name, f.Type.String())
			}
			b.WriteString(" },\n")
		}
	}
	b.WriteString("}")
}

func writeFunction(b *strings.Builder, d ir.Decl) {
	b.WriteString("pub ")
	if d.Fn.Unsafe {
		b.WriteString("unsafe ")
	}
	if d.Fn.Abi != "" {
		fmt.Fprintf(b, "extern %q ", d.Fn.Abi)
	}
	fmt.Fprintf(b, "fn %s(", d.Name)
	for i, p := range d.Fn.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s: %s", p.Name, p.Type.String())
	}
	b.WriteByte(')')
	if d.Fn.Ret != nil {
		fmt.Fprintf(b, " -> %s", d.Fn.Ret.String())
	}
	b.WriteString(" {\n")
	for _, line := range d.Body {
		fmt.Fprintf(b, "    %s\n", line)
	}
	b.WriteString("}")
}
