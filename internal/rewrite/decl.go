package rewrite

import (
	"fmt"

	"github.com/crossbind/crossbind/internal/ir"
)

// RewriteDecl rewrites every type position of a non-function declaration:
// struct and union fields, enum variant fields, alias targets, and const
// types. A new declaration is returned; any invalid type fails the run.
func (r *Rewriter) RewriteDecl(d ir.Decl, loc ir.Location) (ir.Decl, error) {
	switch d.Kind {
	case ir.DeclStruct, ir.DeclUnion:
		fields, err := r.rewriteFields(d.Fields, loc)
		if err != nil {
			return ir.Decl{}, err
		}
		d.Fields = fields

	case ir.DeclEnum:
		variants := make([]ir.Variant, len(d.Variants))
		for i, v := range d.Variants {
			fields, err := r.rewriteFields(v.Fields, loc)
			if err != nil {
				return ir.Decl{}, err
			}
			v.Fields = fields
			variants[i] = v
		}
		d.Variants = variants

	case ir.DeclAlias:
		ty, _, err := r.RewriteType(*d.Alias, "type", loc)
		if err != nil {
			return ir.Decl{}, err
		}
		d.Alias = &ty

	case ir.DeclConst:
		spec := *d.Const
		ty, _, err := r.RewriteType(spec.Type, "type", loc)
		if err != nil {
			return ir.Decl{}, err
		}
		spec.Type = ty
		d.Const = &spec
	}
	return d, nil
}

func (r *Rewriter) rewriteFields(fields []ir.Field, loc ir.Location) ([]ir.Field, error) {
	if fields == nil {
		return nil, nil
	}
	out := make([]ir.Field, len(fields))
	for i, f := range fields {
		context := fmt.Sprintf("field %d", i)
		if f.Name != "" {
			context = fmt.Sprintf("field '%s'", f.Name)
		}
		ty, _, err := r.RewriteType(f.Type, context, loc)
		if err != nil {
			return nil, err
		}
		f.Type = ty
		out[i] = f
	}
	return out, nil
}
