package cfg

import "github.com/crossbind/crossbind/internal/ir"

// RewriteAttrs resolves every cfg guard in an attribute list. The returned
// keep flag is false when any guard resolved to false, meaning the guarded
// element must be dropped entirely. Resolved-true guards are removed from the
// list; residual guards are rewritten in place; non-cfg attributes pass
// through in order.
func RewriteAttrs(attrs []ir.Attr, rules Rules, loc ir.Location) ([]ir.Attr, bool, error) {
	var out []ir.Attr
	for _, a := range attrs {
		if !a.IsCfg() {
			out = append(out, a)
			continue
		}
		res, err := Apply(Parse(a.Args), rules, loc)
		if err != nil {
			return nil, false, err
		}
		if res == nil {
			// Unconditionally true, delete the guard.
			continue
		}
		if res.IsFalse() {
			return nil, false, nil
		}
		out = append(out, ir.Attr{Name: a.Name, Args: res.String()})
	}
	return out, true, nil
}

// RewriteDecl resolves the cfg guards of a declaration and of every field and
// variant inside it, returning a new declaration. The keep flag is false when
// the declaration's own guards resolved to false; guarded fields and variants
// that resolve to false are removed from the copy. The input is not modified.
func RewriteDecl(d ir.Decl, rules Rules, loc ir.Location) (ir.Decl, bool, error) {
	attrs, keep, err := RewriteAttrs(d.Attrs, rules, loc)
	if err != nil || !keep {
		return ir.Decl{}, false, err
	}
	d.Attrs = attrs

	if d.Fields != nil {
		fields, err := rewriteFields(d.Fields, rules, loc)
		if err != nil {
			return ir.Decl{}, false, err
		}
		d.Fields = fields
	}

	if d.Variants != nil {
		variants := make([]ir.Variant, 0, len(d.Variants))
		for _, v := range d.Variants {
			vAttrs, vKeep, err := RewriteAttrs(v.Attrs, rules, loc)
			if err != nil {
				return ir.Decl{}, false, err
			}
			if !vKeep {
				continue
			}
			v.Attrs = vAttrs
			vFields, err := rewriteFields(v.Fields, rules, loc)
			if err != nil {
				return ir.Decl{}, false, err
			}
			v.Fields = vFields
			variants = append(variants, v)
		}
		d.Variants = variants
	}

	return d, true, nil
}

func rewriteFields(fields []ir.Field, rules Rules, loc ir.Location) ([]ir.Field, error) {
	out := make([]ir.Field, 0, len(fields))
	for _, f := range fields {
		attrs, keep, err := RewriteAttrs(f.Attrs, rules, loc)
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}
		f.Attrs = attrs
		out = append(out, f)
	}
	return out, nil
}
