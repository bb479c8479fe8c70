// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/certlite/src/config"
	"github.com/H0llyW00dzZ/certlite/src/generator"
	"github.com/H0llyW00dzZ/certlite/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/certlite/src/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// OperationPerformed is set once a command has started real work.
	OperationPerformed bool

	// OperationPerformedSuccessfully is set once a command has finished
	// its work without error.
	OperationPerformedSuccessfully bool
)

// ErrCancelled is returned when the context is cancelled before a run ends.
var ErrCancelled = errors.New("cli: operation cancelled")

// options holds the parsed flags of one invocation.
type options struct {
	configFile string
	domain     string
	outputDir  string
	algorithm  string
	format     outputFormat
	jsonOut    bool
	tableOut   bool
	treeOut    bool
	verbose    bool
}

// Execute builds the command tree and runs it with ctx.
// Results are written through log; diagnostics go to stderr.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	OperationPerformed = false
	OperationPerformedSuccessfully = false
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// NewRootCommand returns the certlite command with its verify subcommand.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	opts := &options{}
	exe := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:   exe,
		Short: "Generate a self-signed CA and a TLS certificate for a domain",
		Long: fmt.Sprintf(`%s creates a throwaway root CA and uses it to sign a certificate
for DOMAIN and *.DOMAIN. The root certificate, leaf certificate and leaf key
are written to the output directory; the CA private key is never saved.`, exe),
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts, log)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "path to a JSON or YAML config file (env: "+config.EnvConfigFile+")")
	pf.StringVarP(&opts.domain, "domain", "d", "", "domain the certificate is issued for (default from config, \"localhost\")")
	pf.StringVarP(&opts.outputDir, "output-dir", "o", "", "directory the artifacts are written to (default from config, \".\")")
	pf.BoolVar(&opts.jsonOut, "json", false, "print the result as JSON")
	pf.BoolVar(&opts.tableOut, "table", false, "print the chain as a table")
	pf.BoolVar(&opts.treeOut, "tree", false, "print the chain as an ASCII tree")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log every stage to stderr")
	rootCmd.MarkFlagsMutuallyExclusive("json", "table", "tree")

	rootCmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "signature digest, sha256 or sha384 (default from config, \"SHA256\")")

	rootCmd.AddCommand(newVerifyCommand(opts, log))
	return rootCmd
}

// resolve loads the configuration and fills in every flag the user left unset.
func (o *options) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, err
	}

	if !cmd.Flags().Changed("domain") {
		o.domain = cfg.Defaults.Domain
	}
	if !cmd.Flags().Changed("output-dir") {
		o.outputDir = cfg.Defaults.OutputDir
	}
	if !cmd.Flags().Changed("algorithm") {
		o.algorithm = cfg.Defaults.Algorithm
	}

	switch {
	case o.jsonOut:
		o.format = formatJSON
	case o.tableOut:
		o.format = formatTable
	case o.treeOut:
		o.format = formatTree
	default:
		o.format = formatText
	}
	return cfg, nil
}

// diagnostics builds the stderr logger for cmd.
func (o *options) diagnostics(cmd *cobra.Command, cfg *config.Config) (zerolog.Logger, error) {
	level := cfg.Log.Level
	if o.verbose {
		level = zerolog.LevelDebugValue
	}
	diag, err := logger.NewDiagnostic(cmd.ErrOrStderr(), level, cfg.Log.Format)
	if err != nil {
		return zerolog.Nop(), err
	}
	return logger.WithComponent(diag, "cli"), nil
}

func runGenerate(cmd *cobra.Command, opts *options, log logger.Logger) error {
	cfg, err := opts.resolve(cmd)
	if err != nil {
		return err
	}
	diag, err := opts.diagnostics(cmd, cfg)
	if err != nil {
		return err
	}

	digest, err := generator.ParseDigest(opts.algorithm)
	if err != nil {
		return fmt.Errorf("%w: %w", generator.ErrValidation, err)
	}

	in := generator.Input{
		Domain:    opts.domain,
		OutputDir: opts.outputDir,
		Digest:    digest,
	}

	OperationPerformed = true
	res, err := generate(cmd.Context(), in, generator.WithLogger(diag))
	if err != nil {
		return err
	}

	if err := printResult(log, opts, digest, res); err != nil {
		return err
	}
	OperationPerformedSuccessfully = true
	return nil
}

// generate runs the pipeline off the calling goroutine and waits for it or
// for ctx. A cancelled wait leaves the pipeline to finish in the background.
func generate(ctx context.Context, in generator.Input, opts ...generator.Option) (*generator.Result, error) {
	res, err := generator.GenerateContext(ctx, in, opts...)
	if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	return res, err
}
