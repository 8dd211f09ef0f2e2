package ir

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalSortsKeysUTF16(t *testing.T) {
	out, err := MarshalCanonical(map[string]any{
		"b": int64(2),
		"a": int64(1),
		"c": int64(3),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2,"c":3}`, string(out))
}

func TestMarshalCanonicalNoHTMLEscape(t *testing.T) {
	out, err := MarshalCanonical("a < b && c > d")
	require.NoError(t, err)
	assert.Equal(t, `"a < b && c > d"`, string(out))
}

func TestMarshalCanonicalRejectsFloats(t *testing.T) {
	_, err := MarshalCanonical(3.14)
	require.Error(t, err)

	_, err = MarshalCanonical(map[string]any{"x": json.Number("1.5")})
	require.Error(t, err)
}

func TestMarshalCanonicalRejectsNull(t *testing.T) {
	_, err := MarshalCanonical(nil)
	require.Error(t, err)
}

func TestMarshalCanonicalNFC(t *testing.T) {
	// U+0065 U+0301 (e + combining acute) normalizes to U+00E9.
	decomposed := "cafe\u0301"
	composed := "caf\u00e9"

	a, err := MarshalCanonical(decomposed)
	require.NoError(t, err)
	b, err := MarshalCanonical(composed)
	require.NoError(t, err)
	assert.Equal(t, string(b), string(a))
}

func TestCanonicalizeJSONStable(t *testing.T) {
	// Same object, different key order in the input bytes.
	a, err := CanonicalizeJSON([]byte(`{"name":"Foo","kind":"struct"}`))
	require.NoError(t, err)
	b, err := CanonicalizeJSON([]byte(`{"kind":"struct","name":"Foo"}`))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
	assert.Equal(t, `{"kind":"struct","name":"Foo"}`, string(a))
}

func TestCanonicalizeJSONDecl(t *testing.T) {
	decl := Decl{
		Kind: DeclStruct,
		Name: "Point",
		Fields: []Field{
			{Name: "x", Type: Named("i64")},
			{Name: "y", Type: Named("i64")},
		},
	}
	data, err := json.Marshal(decl)
	require.NoError(t, err)

	canonical, err := CanonicalizeJSON(data)
	require.NoError(t, err)

	// Canonicalization must be a fixpoint.
	again, err := CanonicalizeJSON(canonical)
	require.NoError(t, err)
	assert.Equal(t, string(canonical), string(again))
}

func TestRecordIDStableAcrossLocations(t *testing.T) {
	decl := Decl{Kind: DeclStruct, Name: "Foo", Fields: []Field{{Name: "a", Type: Named("u8")}}}

	id1 := MustRecordID("types", Record{Kind: DeclStruct, Name: "Foo", Decl: decl, Location: Location{File: "a.rs", Line: 1, Col: 1}})
	id2 := MustRecordID("types", Record{Kind: DeclStruct, Name: "Foo", Decl: decl, Location: Location{File: "b.rs", Line: 99, Col: 4}})
	assert.Equal(t, id1, id2)
}

func TestRecordIDDistinguishesGroupAndBody(t *testing.T) {
	decl := Decl{Kind: DeclStruct, Name: "Foo"}
	base := MustRecordID("types", Record{Kind: DeclStruct, Name: "Foo", Decl: decl})

	otherGroup := MustRecordID("funcs", Record{Kind: DeclStruct, Name: "Foo", Decl: decl})
	assert.NotEqual(t, base, otherGroup)

	changed := decl
	changed.Fields = []Field{{Name: "a", Type: Named("u8")}}
	otherBody := MustRecordID("types", Record{Kind: DeclStruct, Name: "Foo", Decl: changed})
	assert.NotEqual(t, base, otherBody)
}

func TestDeclJSONRoundTrip(t *testing.T) {
	ret := Named("i32")
	decl := Decl{
		Kind: DeclFunction,
		Name: "process",
		Attrs: []Attr{
			{Name: "cfg", Args: `feature = "x"`},
		},
		Fn: &FnSig{
			Params: []Param{
				{Name: "input", Type: Ref(false, Named("Foo"))},
				{Name: "count", Type: Named("usize")},
			},
			Ret: &ret,
		},
	}

	data, err := json.Marshal(decl)
	require.NoError(t, err)

	var back Decl
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, decl, back)
}
