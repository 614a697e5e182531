// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"time"

	"github.com/MKhiriev/ncm-lead/internal/adapter"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// SmokeOptions holds the smoke command flags.
type SmokeOptions struct {
	BaseURL string
	Timeout time.Duration
	Input   adapter.SmokeInput
}

// NewSmokeCommand creates the smoke command.
func NewSmokeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SmokeOptions{}

	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Replay the visitor flow against a running server",
		Long: `Replay lookup, registration, result pages, logout and login against a
running server, keeping cookies like a browser. A throwaway lead is registered
unless --email is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSmoke(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVar(&opts.BaseURL, "base-url", "http://localhost:5001", "server base URL")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "per-request timeout")
	cmd.Flags().StringVar(&opts.Input.Ncm, "ncm", "100630", "NCM code to look up")
	cmd.Flags().StringVar(&opts.Input.Nome, "nome", "Smoke Test", "lead name")
	cmd.Flags().StringVar(&opts.Input.Email, "email", "", "lead email (default: generated)")
	cmd.Flags().StringVar(&opts.Input.Telefone, "telefone", "(11) 90000-0000", "lead phone")
	cmd.Flags().StringVar(&opts.Input.Cnpj, "cnpj", "00.000.000/0001-91", "lead CNPJ")
	cmd.Flags().StringVar(&opts.Input.Senha, "senha", "smoke-test", "lead password")

	return cmd
}

func runSmoke(cmd *cobra.Command, rootOpts *RootOptions, opts *SmokeOptions) error {
	log := rootOpts.logger(cmd)
	out := cmd.OutOrStdout()

	if opts.Input.Email == "" {
		opts.Input.Email = fmt.Sprintf("smoke+%s@example.com", uuid.NewString()[:8])
	}

	client, err := adapter.NewHTTPFlowClient(opts.BaseURL, opts.Timeout, log)
	if err != nil {
		return err
	}

	info, err := client.Version(cmd.Context())
	if err != nil {
		return fmt.Errorf("server is not reachable: %w", err)
	}
	fmt.Fprintf(out, "server %s (commit %s, built %s)\n", info.Version, info.Commit, info.Date)

	err = adapter.Smoke(cmd.Context(), client, opts.Input, func(s adapter.SmokeStep) {
		status := "ok"
		if s.Err != nil {
			status = "FAILED: " + s.Err.Error()
		}
		fmt.Fprintf(out, "%-24s %8s  %s\n", s.Name, s.Duration.Round(time.Millisecond), status)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "smoke run passed as %s\n", opts.Input.Email)
	return nil
}
