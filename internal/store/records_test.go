package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossbind/crossbind/internal/ir"
)

func structRecord(name string, line int) ir.Record {
	return ir.Record{
		Kind: ir.DeclStruct,
		Name: name,
		Decl: ir.Decl{
			Kind:   ir.DeclStruct,
			Name:   name,
			Fields: []ir.Field{{Name: "value", Type: ir.Named("u64")}},
		},
		Location: ir.Location{File: "src/lib.rs", Line: line, Col: 1},
	}
}

func TestImportAndReadGroup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	batchID, err := s.ImportRecords(ctx, "structs", []ir.Record{
		structRecord("Foo", 3),
		structRecord("Bar", 9),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, batchID)

	recs, err := s.ReadGroup(ctx, "structs")
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// Binary name ordering.
	assert.Equal(t, "Bar", recs[0].Name)
	assert.Equal(t, "Foo", recs[1].Name)
	assert.Equal(t, ir.DeclStruct, recs[0].Kind)
	assert.Equal(t, "u64", recs[1].Decl.Fields[0].Type.String())
	assert.Equal(t, ir.Location{File: "src/lib.rs", Line: 3, Col: 1}, recs[1].Location)
}

func TestImportLastWriterWins(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.ImportRecords(ctx, "structs", []ir.Record{structRecord("Foo", 3)})
	require.NoError(t, err)

	updated := structRecord("Foo", 3)
	updated.Decl.Fields = append(updated.Decl.Fields, ir.Field{Name: "extra", Type: ir.Named("i32")})
	_, err = s.ImportRecords(ctx, "structs", []ir.Record{updated})
	require.NoError(t, err)

	recs, err := s.ReadGroup(ctx, "structs")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Len(t, recs[0].Decl.Fields, 2)

	// Same name in a different group is a separate record.
	_, err = s.ImportRecords(ctx, "other", []ir.Record{structRecord("Foo", 3)})
	require.NoError(t, err)
	count, err := s.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGroupsAndSelection(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.ImportRecords(ctx, "structs", []ir.Record{structRecord("Foo", 1)})
	require.NoError(t, err)
	_, err = s.ImportRecords(ctx, "functions", []ir.Record{structRecord("f", 2)})
	require.NoError(t, err)
	_, err = s.ImportRecords(ctx, "consts", []ir.Record{structRecord("MAX", 3)})
	require.NoError(t, err)

	groups, err := s.Groups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"consts", "functions", "structs"}, groups)

	recs, err := s.ReadGroups(ctx, []string{"structs", "consts"})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Foo", recs[0].Name)
	assert.Equal(t, "MAX", recs[1].Name)

	recs, err = s.ReadGroupsExcept(ctx, []string{"functions"})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "MAX", recs[0].Name)
	assert.Equal(t, "Foo", recs[1].Name)
}

func TestReadGroupEmpty(t *testing.T) {
	s := openTestStore(t)

	recs, err := s.ReadGroup(context.Background(), "nothing")
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestCrateName(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	name, err := s.CrateName(ctx)
	require.NoError(t, err)
	assert.Empty(t, name)

	require.NoError(t, s.SetCrateName(ctx, "example-ffi"))
	name, err = s.CrateName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "example-ffi", name)

	// Re-setting the same name is fine, a different name is not.
	assert.NoError(t, s.SetCrateName(ctx, "example-ffi"))
	assert.Error(t, s.SetCrateName(ctx, "other-crate"))
}
