package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/crossbind/crossbind/internal/config"
	"github.com/crossbind/crossbind/internal/convert"
	"github.com/crossbind/crossbind/internal/ir"
	"github.com/crossbind/crossbind/internal/render"
	"github.com/crossbind/crossbind/internal/store"
)

// NewConvertCommand creates the convert command: the full pipeline from
// stored records to a generated Rust compilation unit.
func NewConvertCommand(opts *RootOptions) *cobra.Command {
	var dbPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "convert <config>",
		Short: "Convert stored records into an FFI-stable compilation unit",
		Long: "Loads the configuration, selects record groups from the store,\n" +
			"resolves conditional-compilation guards, rewrites types to their\n" +
			"FFI-stable forms, synthesizes forwarding stubs, and writes the\n" +
			"generated Rust source.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    opts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   opts.Verbose,
			}

			cfg, err := config.Load(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load configuration", err)
			}

			s, err := store.Open(dbPath)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("failed to open store at %s", dbPath), err)
			}
			defer s.Close()

			crate, err := s.CrateName(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "conversion failed", err)
			}
			if crate == "" {
				return NewExitError(ExitCommandError, fmt.Sprintf("store %s holds no records: run import first", dbPath))
			}
			if crate != cfg.Crate {
				return NewExitError(ExitCommandError, fmt.Sprintf("store holds records for crate %q but configuration names %q", crate, cfg.Crate))
			}

			recs, err := selectRecords(cmd, s, cfg)
			if err != nil {
				return err
			}
			formatter.VerboseLog("Selected %d records", len(recs))

			items := make([]convert.Item, len(recs))
			for i, rec := range recs {
				items[i] = convert.Item{Decl: rec.Decl, Loc: rec.Location}
			}

			items, err = convert.CfgFilter{Rules: cfg.Rules()}.Filter(items)
			if err != nil {
				return WrapExitError(ExitFailure, "conversion failed", err)
			}

			out, err := convert.New(cfg, slices.Values(items)).All()
			if err != nil {
				return WrapExitError(ExitFailure, "conversion failed", err)
			}

			decls := make([]ir.Decl, len(out))
			for i, it := range out {
				decls[i] = it.Decl
			}

			dest := outPath
			if dest == "" {
				dest = cfg.Output
			}
			if dest == "" {
				fmt.Fprint(cmd.OutOrStdout(), render.RenderFile(cfg.Crate, decls))
				return nil
			}

			if err := render.WriteFile(dest, cfg.Crate, decls); err != nil {
				return WrapExitError(ExitFailure, "conversion failed", err)
			}

			if opts.Format == "json" {
				return formatter.Success(map[string]any{
					"crate":        cfg.Crate,
					"declarations": len(decls),
					"output":       dest,
				})
			}
			return formatter.Success(fmt.Sprintf("Wrote %d declarations to %s", len(decls), dest))
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "crossbind.db", "path to the record store")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (overrides the configuration; default stdout)")

	return cmd
}

// selectRecords applies the configuration's group selection: explicit groups,
// everything except some groups, or the whole store.
func selectRecords(cmd *cobra.Command, s *store.Store, cfg *config.Config) ([]ir.Record, error) {
	ctx := cmd.Context()

	switch {
	case len(cfg.Groups) > 0:
		known, err := s.Groups(ctx)
		if err != nil {
			return nil, WrapExitError(ExitFailure, "conversion failed", err)
		}
		for _, g := range cfg.Groups {
			if !slices.Contains(known, g) {
				return nil, NewExitError(ExitCommandError, fmt.Sprintf("group %q is not in the store", g))
			}
		}
		recs, err := s.ReadGroups(ctx, cfg.Groups)
		if err != nil {
			return nil, WrapExitError(ExitFailure, "conversion failed", err)
		}
		return recs, nil
	case len(cfg.ExceptGroups) > 0:
		recs, err := s.ReadGroupsExcept(ctx, cfg.ExceptGroups)
		if err != nil {
			return nil, WrapExitError(ExitFailure, "conversion failed", err)
		}
		return recs, nil
	default:
		recs, err := s.ReadGroupsExcept(ctx, nil)
		if err != nil {
			return nil, WrapExitError(ExitFailure, "conversion failed", err)
		}
		return recs, nil
	}
}
