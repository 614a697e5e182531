// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/MKhiriev/ncm-lead/internal/importer"
	"github.com/MKhiriev/ncm-lead/internal/store"
	"github.com/spf13/cobra"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	var batchSize int

	cmd := &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Replace the NCM table with the rows of a CSV export",
		Long: `Replace the NCM table with the rows of a CSV export.

The file must have the header columns NCM, Descrição, Cclasstrib, CST and
"Descrição CST-IBS/CBS". The schema is migrated first and every existing NCM
row is deleted before the import starts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := rootOpts.logger(cmd)

			db, err := openMigrated(cmd, rootOpts, log)
			if err != nil {
				return err
			}
			defer db.Close()

			out := cmd.OutOrStdout()
			imp := importer.New(store.NewNcmRepository(db, log), log,
				importer.WithBatchSize(batchSize),
				importer.WithProgress(func(n int) {
					fmt.Fprintf(out, "%d rows imported...\n", n)
				}),
			)

			res, err := imp.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "import finished: %d rows removed, %d imported, %d in table\n", res.Deleted, res.Imported, res.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&batchSize, "batch-size", importer.DefaultBatchSize, "rows per transaction")

	return cmd
}
