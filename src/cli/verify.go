// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	x509chain "github.com/H0llyW00dzZ/certlite/src/internal/x509/chain"
	"github.com/H0llyW00dzZ/certlite/src/logger"
	"github.com/spf13/cobra"
)

func newVerifyCommand(opts *options, log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the artifacts previously generated for a domain",
		Long: `Verify loads root_ca.crt, DOMAIN.crt and DOMAIN.key from the output
directory and checks that the leaf was issued by the root, covers DOMAIN and
*.DOMAIN, matches its key and that no transient files were left behind.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd, opts, log)
		},
	}
}

func runVerify(cmd *cobra.Command, opts *options, log logger.Logger) error {
	cfg, err := opts.resolve(cmd)
	if err != nil {
		return err
	}
	diag, err := opts.diagnostics(cmd, cfg)
	if err != nil {
		return err
	}

	OperationPerformed = true
	report, ch, err := x509chain.Verify(opts.outputDir, opts.domain)
	if report == nil {
		diag.Error().Err(err).Str("domain", opts.domain).Msg("load failed")
		return err
	}
	if perr := printReport(log, ch, report, opts.format); perr != nil {
		return perr
	}
	if err != nil {
		diag.Warn().Err(err).Str("domain", opts.domain).Msg("verification failed")
		return err
	}

	diag.Debug().Str("domain", opts.domain).Int("checks", len(report.Checks)).Msg("chain verified")
	OperationPerformedSuccessfully = true
	return nil
}
