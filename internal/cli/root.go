// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements ncmctl, the operator command line for ncm-lead.
package cli

import (
	"github.com/MKhiriev/ncm-lead/internal/config"
	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// RootOptions holds the flags shared by every command. Empty values fall
// back to the environment and the JSON config file.
type RootOptions struct {
	Verbose    bool
	Driver     string
	DSN        string
	AuthToken  string
	ConfigPath string
}

// NewRootCommand creates the ncmctl root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "ncmctl",
		Short:         "Operate an ncm-lead deployment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "record store driver (pgx|sqlite3|libsql)")
	cmd.PersistentFlags().StringVar(&opts.DSN, "dsn", "", "record store DSN")
	cmd.PersistentFlags().StringVar(&opts.AuthToken, "auth-token", "", "Turso auth token (libsql only)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a JSON config file")

	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSmokeCommand(opts))

	return cmd
}

func (o *RootOptions) config() (*config.StructuredConfig, error) {
	return config.GetStructuredConfigWith(&config.StructuredConfig{
		Storage: config.Storage{DB: config.DB{
			Driver:    o.Driver,
			DSN:       o.DSN,
			AuthToken: o.AuthToken,
		}},
		JSONFilePath: o.ConfigPath,
	})
}

// logger writes to the command's stderr so stdout carries only results.
func (o *RootOptions) logger(cmd *cobra.Command) *logger.Logger {
	log := logger.NewLoggerTo(cmd.ErrOrStderr(), "ncmctl")
	if !o.Verbose {
		log.Logger = log.Level(zerolog.InfoLevel)
	}
	return log
}
