package convert

import (
	"iter"

	"github.com/crossbind/crossbind/internal/config"
	"github.com/crossbind/crossbind/internal/emit"
	"github.com/crossbind/crossbind/internal/ir"
	"github.com/crossbind/crossbind/internal/rewrite"
	"github.com/crossbind/crossbind/internal/stub"
)

// Item is one declaration paired with its capture location.
type Item struct {
	Decl ir.Decl
	Loc  ir.Location
}

type phase int

const (
	phaseCollect phase = iota
	phaseConvert
	phaseFollowup
	phaseDone
)

// Converter is the pipeline state machine. One instance serves one pass over
// one stream; it is stateful and must not be reused or shared across
// goroutines.
type Converter struct {
	cfg  *config.Config
	pull func() (Item, bool)
	stop func()

	phase    phase
	index    *rewrite.Index
	aliases  *rewrite.Aliases
	rw       *rewrite.Rewriter
	pending  []Item
	followup []emit.Assertion
}

// New builds a converter over the given source stream. The stream is not
// touched until the first Next call.
func New(cfg *config.Config, src iter.Seq[Item]) *Converter {
	pull, stop := iter.Pull(src)
	return &Converter{
		cfg:     cfg,
		pull:    pull,
		stop:    stop,
		index:   rewrite.NewIndex(),
		aliases: rewrite.NewAliases(),
	}
}

// Next advances the pipeline by one output declaration. It returns (nil, nil)
// once the stream is exhausted; any error aborts the run and leaves the
// converter unusable.
func (c *Converter) Next() (*Item, error) {
	if c.phase == phaseCollect {
		c.collect()
	}
	for {
		switch c.phase {
		case phaseConvert:
			if len(c.pending) == 0 {
				c.followup = emit.Assertions(c.rw.Pairs().Drain())
				c.phase = phaseFollowup
				continue
			}
			it := c.pending[len(c.pending)-1]
			c.pending = c.pending[:len(c.pending)-1]
			out, err := c.convertOne(it)
			if err != nil {
				c.phase = phaseDone
				return nil, err
			}
			return out, nil

		case phaseFollowup:
			if len(c.followup) == 0 {
				c.phase = phaseDone
				continue
			}
			a := c.followup[len(c.followup)-1]
			c.followup = c.followup[:len(c.followup)-1]
			return &Item{Decl: a.Decl, Loc: a.Loc}, nil

		default:
			return nil, nil
		}
	}
}

// All drains the whole pipeline into a slice.
func (c *Converter) All() ([]Item, error) {
	var out []Item
	for {
		it, err := c.Next()
		if err != nil {
			return nil, err
		}
		if it == nil {
			return out, nil
		}
		out = append(out, *it)
	}
}

// collect consumes the entire input, indexing every type declaration under
// its dedup key and registering primitive aliases so later equivalence checks
// see through them.
func (c *Converter) collect() {
	for {
		it, ok := c.pull()
		if !ok {
			break
		}
		c.pending = append(c.pending, it)

		d := it.Decl
		if d.Kind.IsType() {
			c.index.Insert(d.DedupKey(), d.Name)
		}
		if d.Kind == ir.DeclAlias && d.Alias != nil {
			c.aliases.RegisterAlias(d.Name, *d.Alias, c.cfg.CrateIdent())
		}
	}
	c.stop()
	c.rw = rewrite.New(c.cfg, c.index, c.aliases)
	c.phase = phaseConvert
}

func (c *Converter) convertOne(it Item) (*Item, error) {
	if it.Decl.Kind == ir.DeclFunction {
		d, err := stub.Synthesize(it.Decl, c.rw, c.cfg.CrateIdent(), c.cfg.EditionOrDefault(), it.Loc)
		if err != nil {
			return nil, err
		}
		return &Item{Decl: d, Loc: it.Loc}, nil
	}
	d, err := c.rw.RewriteDecl(it.Decl, it.Loc)
	if err != nil {
		return nil, err
	}
	return &Item{Decl: d, Loc: it.Loc}, nil
}
