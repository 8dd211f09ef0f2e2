// Package testutil provides compact declaration builders for tests.
package testutil

import "github.com/crossbind/crossbind/internal/ir"

// Loc builds a source location in a fixed fixture file.
func Loc(line int) ir.Location {
	return ir.Location{File: "src/lib.rs", Line: line, Col: 1}
}

// CfgAttr builds a conditional-compilation guard attribute.
func CfgAttr(expr string) ir.Attr {
	return ir.Attr{Name: "cfg", Args: expr}
}

// Field builds a named struct or union field.
func Field(name string, t ir.TypeExpr) ir.Field {
	return ir.Field{Name: name, Type: t}
}

// Param builds a function parameter.
func Param(name string, t ir.TypeExpr) ir.Param {
	return ir.Param{Name: name, Type: t}
}

// StructDecl builds a repr(C) struct declaration.
func StructDecl(name string, fields ...ir.Field) ir.Decl {
	return ir.Decl{
		Kind:   ir.DeclStruct,
		Name:   name,
		Attrs:  []ir.Attr{{Name: "repr", Args: "C"}},
		Fields: fields,
	}
}

// AliasDecl builds a type alias declaration.
func AliasDecl(name string, target ir.TypeExpr) ir.Decl {
	return ir.Decl{Kind: ir.DeclAlias, Name: name, Alias: &target}
}

// ConstDecl builds a const declaration.
func ConstDecl(name string, t ir.TypeExpr, value string) ir.Decl {
	return ir.Decl{Kind: ir.DeclConst, Name: name, Const: &ir.ConstSpec{Type: t, Value: value}}
}

// FnDecl builds a function declaration. Pass a nil ret for no return type.
func FnDecl(name string, ret *ir.TypeExpr, params ...ir.Param) ir.Decl {
	return ir.Decl{
		Kind: ir.DeclFunction,
		Name: name,
		Fn:   &ir.FnSig{Params: params, Ret: ret},
	}
}

// RecordOf wraps a declaration into a persisted record form.
func RecordOf(d ir.Decl, loc ir.Location) ir.Record {
	return ir.Record{Kind: d.Kind, Name: d.Name, Decl: d, Location: loc}
}
