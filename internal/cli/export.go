package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crossbind/crossbind/internal/store"
)

// NewExportCommand creates the export command. It writes one group back out
// as a JSON-lines shard, which can be re-imported or inspected.
func NewExportCommand(opts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:           "export <group> <output.jsonl>",
		Short:         "Export a record group as a JSON-lines shard",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			group, outPath := args[0], args[1]

			formatter := &OutputFormatter{
				Format:    opts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   opts.Verbose,
			}

			s, err := store.Open(dbPath)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("failed to open store at %s", dbPath), err)
			}
			defer s.Close()

			recs, err := s.ReadGroup(cmd.Context(), group)
			if err != nil {
				return WrapExitError(ExitFailure, fmt.Sprintf("failed to read group %s", group), err)
			}
			if len(recs) == 0 {
				return NewExitError(ExitCommandError, fmt.Sprintf("group %q has no records", group))
			}

			if err := store.WriteShard(outPath, recs); err != nil {
				return WrapExitError(ExitFailure, "export failed", err)
			}

			if opts.Format == "json" {
				return formatter.Success(map[string]any{
					"group":   group,
					"records": len(recs),
					"path":    outPath,
				})
			}
			return formatter.Success(fmt.Sprintf("Exported %d records of group %s to %s", len(recs), group, outPath))
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "crossbind.db", "path to the record store")

	return cmd
}
