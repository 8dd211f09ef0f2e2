package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crossbind/crossbind/internal/store"
)

// NewImportCommand creates the import command. It loads every shard of a
// capture directory into the record store.
func NewImportCommand(opts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import <capture-dir>",
		Short: "Import captured declaration shards into the record store",
		Long: "Reads the crate-name marker and every *.jsonl shard from a capture\n" +
			"directory and upserts the records into the store. Re-importing the\n" +
			"same capture is safe: the latest record for a (group, name) wins.",
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

			s, err := store.Open(dbPath)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("failed to open store at %s", dbPath), err)
			}
			defer s.Close()

			formatter.VerboseLog("Importing capture directory %s", args[0])

			count, err := store.ImportDir(cmd.Context(), s, args[0])
			if err != nil {
				return WrapExitError(ExitFailure, "import failed", err)
			}

			crate, err := s.CrateName(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "import failed", err)
			}

			if opts.Format == "json" {
				return formatter.Success(map[string]any{
					"crate":   crate,
					"records": count,
				})
			}
			return formatter.Success(fmt.Sprintf("Imported %d records from crate %s", count, crate))
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "crossbind.db", "path to the record store")

	return cmd
}
