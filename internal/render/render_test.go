package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossbind/crossbind/internal/ir"
)

func i32Ret() *ir.TypeExpr {
	t := ir.Named("i32")
	return &t
}

func TestRenderTupleStruct(t *testing.T) {
	got := RenderDecl(ir.Decl{
		Kind:   ir.DeclStruct,
		Name:   "Pair",
		Tuple:  true,
		Fields: []ir.Field{{Type: ir.Named("u32")}, {Type: ir.Named("u32")}},
	})
	assert.Equal(t, "pub struct Pair(pub u32, pub u32);", got)
}

func TestRenderUnitStruct(t *testing.T) {
	got := RenderDecl(ir.Decl{Kind: ir.DeclStruct, Name: "Marker"})
	assert.Equal(t, "pub struct Marker;", got)
}

func TestRenderUnion(t *testing.T) {
	got := RenderDecl(ir.Decl{
		Kind: ir.DeclUnion,
		Name: "Value",
		Attrs: []ir.Attr{
			{Name: "repr", Args: "C"},
		},
		Fields: []ir.Field{
			{Name: "as_int", Type: ir.Named("i64")},
			{Name: "as_float", Type: ir.Named("f64")},
		},
	})
	assert.Equal(t, "#[repr(C)]\npub union Value {\n    pub as_int: i64,\n    pub as_float: f64,\n}", got)
}

func TestRenderEnumVariantShapes(t *testing.T) {
	got := RenderDecl(ir.Decl{
		Kind: ir.DeclEnum,
		Name: "Event",
		Variants: []ir.Variant{
			{Name: "Empty"},
			{Name: "Code", Discriminant: "7"},
			{Name: "Payload", Tuple: true, Fields: []ir.Field{{Type: ir.Ptr(false, ir.Named("u8"))}}},
			{Name: "Sized", Fields: []ir.Field{{Name: "len", Type: ir.Named("usize")}}},
		},
	})
	assert.Equal(t,
		"pub enum Event {\n    Empty,\n    Code = 7,\n    Payload(*const u8),\n    Sized { len: usize },\n}",
		got)
}

func TestRenderStubFunction(t *testing.T) {
	got := RenderDecl(ir.Decl{
		Kind:  ir.DeclFunction,
		Name:  "add",
		Attrs: []ir.Attr{{Name: "no_mangle"}},
		Fn: &ir.FnSig{
			Params: []ir.Param{
				{Name: "a", Type: ir.Named("i32")},
				{Name: "b", Type: ir.Named("i32")},
			},
			Ret: i32Ret(),
			Abi: "C",
		},
		Body: []string{"example_ffi::add(a, b)"},
	})
	assert.Equal(t,
		"#[no_mangle]\npub extern \"C\" fn add(a: i32, b: i32) -> i32 {\n    example_ffi::add(a, b)\n}",
		got)
}

func TestRenderFullUnit(t *testing.T) {
	decls := []ir.Decl{
		{
			Kind: ir.DeclStruct,
			Name: "Foo",
			Attrs: []ir.Attr{
				{Name: "cfg", Args: `target_os = "linux"`},
				{Name: "repr", Args: "C"},
			},
			Fields: []ir.Field{
				{Name: "value", Type: ir.Named("u64")},
				{Name: "next", Type: ir.Ptr(true, ir.Named("Foo"))},
			},
		},
		{
			Kind:  ir.DeclEnum,
			Name:  "Status",
			Attrs: []ir.Attr{{Name: "repr", Args: "u32"}},
			Variants: []ir.Variant{
				{Name: "Ok", Discriminant: "0"},
				{Name: "Err", Discriminant: "1"},
			},
		},
		{
			Kind:  ir.DeclAlias,
			Name:  "Handle",
			Alias: i32Ret(),
		},
		{
			Kind:  ir.DeclConst,
			Name:  "MAX_NODES",
			Const: &ir.ConstSpec{Type: ir.Named("u32"), Value: "64"},
		},
		{
			Kind:  ir.DeclFunction,
			Name:  "process",
			Attrs: []ir.Attr{{Name: "no_mangle"}},
			Fn: &ir.FnSig{
				Params: []ir.Param{{Name: "input", Type: ir.Ptr(false, ir.Named("Foo"))}},
				Ret:    i32Ret(),
				Unsafe: true,
				Abi:    "C",
			},
			Body: []string{"example_ffi::process(unsafe { std::mem::transmute(&*input) })"},
		},
		{
			Kind: ir.DeclVerbatim,
			Raw:  `const _: () = assert!(std::mem::size_of::<Foo>() == std::mem::size_of::<example_ffi::Foo>(), "Size mismatch between stub parameter type and source crate type");`,
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "full_unit", []byte(RenderFile("example-ffi", decls)))
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "bindings.rs")

	require.NoError(t, WriteFile(path, "example-ffi", []ir.Decl{
		{Kind: ir.DeclAlias, Name: "Handle", Alias: i32Ret()},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pub type Handle = i32;")
	assert.Contains(t, string(data), "// Generated by crossbind from crate example-ffi.")
}
