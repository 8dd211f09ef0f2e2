package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/crossbind/crossbind/internal/ir"
)

// Groups returns every group name present in the store, sorted.
func (s *Store) Groups(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT group_name FROM records
		ORDER BY group_name COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query groups: %w", err)
	}
	defer rows.Close()

	var groups []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate groups: %w", err)
	}

	if groups == nil {
		groups = []string{}
	}

	return groups, nil
}

// ReadGroup returns all records of one group with deterministic ordering
// (name ascending, binary collation).
func (s *Store) ReadGroup(ctx context.Context, group string) ([]ir.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, name, decl, file, line, col
		FROM records
		WHERE group_name = ?
		ORDER BY name COLLATE BINARY ASC
	`, group)
	if err != nil {
		return nil, fmt.Errorf("query group %q: %w", group, err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ReadGroups returns the records of the named groups concatenated in the
// given group order.
func (s *Store) ReadGroups(ctx context.Context, groups []string) ([]ir.Record, error) {
	out := []ir.Record{}
	for _, g := range groups {
		recs, err := s.ReadGroup(ctx, g)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	return out, nil
}

// ReadGroupsExcept returns the records of every group not in the exclusion
// list, in sorted group order.
func (s *Store) ReadGroupsExcept(ctx context.Context, exclude []string) ([]ir.Record, error) {
	groups, err := s.Groups(ctx)
	if err != nil {
		return nil, err
	}

	selected := make([]string, 0, len(groups))
	for _, g := range groups {
		if !slices.Contains(exclude, g) {
			selected = append(selected, g)
		}
	}
	return s.ReadGroups(ctx, selected)
}

// CountRecords returns the number of stored records across all groups.
func (s *Store) CountRecords(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

func collectRecords(rows *sql.Rows) ([]ir.Record, error) {
	var records []ir.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	if records == nil {
		records = []ir.Record{}
	}

	return records, nil
}

func scanRecord(rows *sql.Rows) (ir.Record, error) {
	var rec ir.Record
	var kind, declJSON string

	if err := rows.Scan(
		&kind, &rec.Name, &declJSON,
		&rec.Location.File, &rec.Location.Line, &rec.Location.Col,
	); err != nil {
		return ir.Record{}, fmt.Errorf("scan record: %w", err)
	}

	rec.Kind = ir.DeclKind(kind)
	if err := json.Unmarshal([]byte(declJSON), &rec.Decl); err != nil {
		return ir.Record{}, fmt.Errorf("decode record %q: %w", rec.Name, err)
	}

	return rec, nil
}
