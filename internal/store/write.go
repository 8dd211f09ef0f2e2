package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/crossbind/crossbind/internal/ir"
)

const metaCrateName = "crate_name"

// SetCrateName records the source crate name. The first import sets it; a
// later import with a different name fails instead of silently mixing crates.
func (s *Store) SetCrateName(ctx context.Context, name string) error {
	existing, err := s.CrateName(ctx)
	if err != nil {
		return err
	}
	if existing != "" && existing != name {
		return fmt.Errorf("store already holds records for crate %q, refusing %q", existing, name)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, metaCrateName, name)
	if err != nil {
		return fmt.Errorf("set crate name: %w", err)
	}
	return nil
}

// CrateName returns the recorded source crate name, or "" if the store has
// never been imported into.
func (s *Store) CrateName(ctx context.Context) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM meta WHERE key = ?
	`, metaCrateName).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read crate name: %w", err)
	}
	return name, nil
}

// ImportRecords writes a batch of records for one group in a single
// transaction and returns the batch stamp. A record whose (group, name) is
// already present replaces the earlier row: the capture step appends, and
// the latest capture of a declaration wins.
func (s *Store) ImportRecords(ctx context.Context, group string, recs []ir.Record) (string, error) {
	batchID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("import records: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records
		(id, batch_id, group_name, kind, name, decl, file, line, col)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(group_name, name) DO UPDATE SET
			id = excluded.id,
			batch_id = excluded.batch_id,
			kind = excluded.kind,
			decl = excluded.decl,
			file = excluded.file,
			line = excluded.line,
			col = excluded.col
	`)
	if err != nil {
		return "", fmt.Errorf("import records: prepare: %w", err)
	}
	defer stmt.Close()

	for _, rec := range recs {
		id, err := ir.RecordID(group, rec)
		if err != nil {
			return "", fmt.Errorf("import records: %w", err)
		}

		declJSON, err := marshalDecl(rec.Decl)
		if err != nil {
			return "", fmt.Errorf("import records: record %q: %w", rec.Name, err)
		}

		_, err = stmt.ExecContext(ctx,
			id,
			batchID,
			group,
			string(rec.Kind),
			rec.Name,
			declJSON,
			rec.Location.File,
			rec.Location.Line,
			rec.Location.Col,
		)
		if err != nil {
			return "", fmt.Errorf("import records: insert %q: %w", rec.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("import records: commit: %w", err)
	}

	return batchID, nil
}

// marshalDecl serializes a declaration body to canonical JSON so identical
// declarations produce identical rows.
func marshalDecl(d ir.Decl) (string, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("marshal decl: %w", err)
	}
	canonical, err := ir.CanonicalizeJSON(raw)
	if err != nil {
		return "", fmt.Errorf("canonicalize decl: %w", err)
	}
	return string(canonical), nil
}
