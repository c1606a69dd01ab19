package cmd

import (
	"fmt"

	"github.com/theirongolddev/wtrack/internal/cli"
	"github.com/theirongolddev/wtrack/internal/store"

	"github.com/spf13/cobra"
)

var flagExportDB string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to a SQLite database",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportDB, "db", "wtrack.db", "SQLite database to write")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	tr, err := openTracker()
	if err != nil {
		return err
	}

	archive, err := store.Open(flagExportDB)
	if err != nil {
		return err
	}
	defer archive.Close()

	if err := archive.Replace(tr.Path(), tr.Entries(), tr.Config()); err != nil {
		return fmt.Errorf("exporting: %w", err)
	}

	n, err := archive.EntryCount()
	if err != nil {
		return err
	}
	fmt.Println(cli.RenderSuccess(fmt.Sprintf("Exported %s entries to %s", cli.FormatNumber(int64(n)), flagExportDB)))
	return nil
}
