package cli

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	furnilytics "github.com/furnilytics/furnilytics-go"
	"github.com/furnilytics/furnilytics-go/storage"
)

func newHealthCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API liveness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _, err := flags.newClient().Health(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, status)
		},
	}
}

func newDatasetsCommand(flags *rootFlags) *cobra.Command {
	var markdownPath string

	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List the dataset catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := flags.newClient().Datasets(cmd.Context())
			if err != nil {
				return err
			}
			if markdownPath != "" {
				if err := storage.ExportMarkdown(markdownPath, "Furnilytics dataset catalog", table); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", table.Len(), markdownPath)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), table.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&markdownPath, "markdown", "", "write the catalog as a Markdown report")
	return cmd
}

func newMetadataCommand(flags *rootFlags) *cobra.Command {
	var markdownPath string

	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "List dataset metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := flags.newClient().Metadata(cmd.Context())
			if err != nil {
				return err
			}
			if markdownPath != "" {
				if err := storage.ExportMarkdown(markdownPath, "Furnilytics metadata", table); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", table.Len(), markdownPath)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), table.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&markdownPath, "markdown", "", "write the listing as a Markdown report")
	return cmd
}

func newMetaCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "meta <id>",
		Short: "Show the descriptor for one dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dm, err := flags.newClient().MetadataOne(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, dm)
		},
	}
}

func newDataCommand(flags *rootFlags) *cobra.Command {
	var (
		frm        string
		to         string
		limit      int
		csvPath    string
		sqlitePath string
	)

	cmd := &cobra.Command{
		Use:   "data <id>",
		Short: "Fetch rows for one dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := furnilytics.DataOptions{Frm: frm, To: to}
			if cmd.Flags().Changed("limit") {
				// Passed through as-is; the server owns limit validation.
				opts.Limit = furnilytics.Limit(limit)
			}

			table, err := flags.newClient().Data(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			if csvPath != "" {
				if err := storage.ExportCSV(csvPath, table); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", table.Len(), csvPath)
				return nil
			}
			if sqlitePath != "" {
				if err := storage.ExportSQLite(sqlitePath, args[0], table); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", table.Len(), sqlitePath)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), table.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&frm, "frm", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows (server ceiling ~20000)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write result to a CSV file")
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "write result to a SQLite database")
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	return nil
}
