// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/internal/store"
	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openMigrated(cmd, rootOpts, rootOpts.logger(cmd))
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "schema is up to date (%s)\n", db.Dialect())
			return nil
		},
	}
}

// openMigrated connects to the configured record store and migrates it.
func openMigrated(cmd *cobra.Command, opts *RootOptions, log *logger.Logger) (*store.DB, error) {
	cfg, err := opts.config()
	if err != nil {
		return nil, err
	}

	db, err := store.NewConnect(cmd.Context(), cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(cmd.Context()); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}
	return db, nil
}
