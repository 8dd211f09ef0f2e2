package harness

import (
	"fmt"
	"slices"

	"github.com/crossbind/crossbind/internal/config"
	"github.com/crossbind/crossbind/internal/convert"
	"github.com/crossbind/crossbind/internal/ir"
	"github.com/crossbind/crossbind/internal/render"
	"github.com/crossbind/crossbind/internal/store"
)

// Run executes a scenario: loads its configuration, reads its shards in
// order, applies the conditional-compilation filter, converts, and renders
// the output unit.
func Run(s *Scenario) ([]byte, error) {
	cfg, err := config.Load(s.resolve(s.Config))
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	var items []convert.Item
	for _, shard := range s.Shards {
		recs, err := store.ReadShard(s.resolve(shard))
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		for _, rec := range recs {
			items = append(items, convert.Item{Decl: rec.Decl, Loc: rec.Location})
		}
	}

	items, err = convert.CfgFilter{Rules: cfg.Rules()}.Filter(items)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	out, err := convert.New(cfg, slices.Values(items)).All()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	decls := make([]ir.Decl, len(out))
	for i, it := range out {
		decls[i] = it.Decl
	}
	return []byte(render.RenderFile(cfg.Crate, decls)), nil
}
