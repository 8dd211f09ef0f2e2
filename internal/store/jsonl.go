package store

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/crossbind/crossbind/internal/ir"
)

const (
	// ShardExtension marks the JSON-lines shard files the capture step writes.
	ShardExtension = ".jsonl"
	// CrateNameFile is the marker the capture step drops next to its shards.
	CrateNameFile = "crate_name.txt"

	// Shard lines hold whole declarations; allow generous line sizes.
	maxShardLine = 4 * 1024 * 1024
)

// ReadShard parses one JSON-lines shard file into records. Blank lines are
// skipped; a malformed line fails with its position.
func ReadShard(path string) ([]ir.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shard: %w", err)
	}
	defer f.Close()

	var records []ir.Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxShardLine)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec ir.Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("parse %s:%d: %w", path, lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read shard %s: %w", path, err)
	}

	return records, nil
}

// WriteShard writes records as one JSON object per line.
func WriteShard(path string, recs []ir.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create shard: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, rec := range recs {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode record %q: %w", rec.Name, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write shard %s: %w", path, err)
	}
	return nil
}

// GroupOfFile extracts the group name from a shard file name: everything
// before the first underscore. Files without the shard extension or without
// an underscore carry no group.
func GroupOfFile(name string) (string, bool) {
	base := filepath.Base(name)
	if !strings.HasSuffix(base, ShardExtension) {
		return "", false
	}
	idx := strings.Index(base, "_")
	if idx <= 0 {
		return "", false
	}
	return base[:idx], true
}

// ReadCrateName reads the crate-name marker from a capture directory.
// Returns "" if the marker is absent.
func ReadCrateName(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, CrateNameFile))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read crate name marker: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteCrateName drops the crate-name marker into a capture directory.
func WriteCrateName(dir, name string) error {
	path := filepath.Join(dir, CrateNameFile)
	if err := os.WriteFile(path, []byte(name+"\n"), 0o644); err != nil {
		return fmt.Errorf("write crate name marker: %w", err)
	}
	return nil
}

// ImportDir imports every shard in a capture directory into the store and
// returns the number of records read. The directory must carry a crate-name
// marker; shard files are processed in name order so that later shards of a
// group overwrite earlier captures of the same declaration.
func ImportDir(ctx context.Context, s *Store, dir string) (int, error) {
	crate, err := ReadCrateName(dir)
	if err != nil {
		return 0, err
	}
	if crate == "" {
		return 0, fmt.Errorf("%s is not a capture directory: missing %s", dir, CrateNameFile)
	}
	if err := s.SetCrateName(ctx, crate); err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("scan capture directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := GroupOfFile(e.Name()); ok {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	total := 0
	for _, name := range names {
		group, _ := GroupOfFile(name)
		recs, err := ReadShard(filepath.Join(dir, name))
		if err != nil {
			return total, err
		}
		if len(recs) == 0 {
			continue
		}
		if _, err := s.ImportRecords(ctx, group, recs); err != nil {
			return total, err
		}
		total += len(recs)
	}

	return total, nil
}
