// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/certlite/src/config"
	"github.com/H0llyW00dzZ/certlite/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/certlite/src/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLIFramework puts a Cobra command in front of the [MCP] server.
//
// Key features:
//   - Executable name taken from the running binary
//   - [Gopls-style] --instructions flag printing the server instructions
//   - --config flag, falling back to CERTLITE_CONFIG_FILE
//   - Serves on stdio when no flag asks for something else
//   - Graceful shutdown on SIGINT and SIGTERM
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
// [Gopls-style]: https://tip.golang.org/gopls/features/mcp#instructions-to-the-model
type CLIFramework struct {
	configFile      string
	version         string
	tools           []ToolDefinition
	toolsWithConfig []ToolDefinitionWithConfig
	stdin           io.Reader
	stdout          io.Writer
}

// NewCLIFramework returns a framework serving the default CertLite tools
// on the process's stdin and stdout.
func NewCLIFramework(version string) *CLIFramework {
	tools, toolsWithConfig := createTools()
	return &CLIFramework{
		version:         version,
		tools:           tools,
		toolsWithConfig: toolsWithConfig,
		stdin:           os.Stdin,
		stdout:          os.Stdout,
	}
}

// BuildRootCommand creates the root command.
//
// Command behavior:
//   - With --instructions: prints the rendered instructions and exits
//   - Otherwise: loads configuration and serves [MCP] on stdio
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (cf *CLIFramework) BuildRootCommand() *cobra.Command {
	var showInstructions bool
	exe := posix.GetExecutableName()

	cmd := &cobra.Command{
		Use:   exe,
		Short: "CertLite MCP server",
		Long: fmt.Sprintf(`%s serves CertLite certificate generation and verification tools
over the Model Context Protocol on stdio.

Use --instructions to print the guidance sent to clients.`, exe),
		Version:       cf.version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			instructions, err := loadInstructions(cf.tools, cf.toolsWithConfig)
			if err != nil {
				return err
			}
			if showInstructions {
				_, err := fmt.Fprint(cmd.OutOrStdout(), instructions)
				return err
			}
			return cf.startMCPServer(cmd.Context(), instructions, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().BoolVar(&showInstructions, "instructions", false, "print the instructions sent to MCP clients and exit")
	cmd.Flags().StringVar(&cf.configFile, "config", "", "path to a JSON or YAML config file (env: "+config.EnvConfigFile+")")
	return cmd
}

// startMCPServer loads configuration, builds the server and serves until
// stdin closes, ctx is done or a termination signal arrives.
func (cf *CLIFramework) startMCPServer(ctx context.Context, instructions string, stderr io.Writer) error {
	cfg, err := config.Load(cf.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: %q", logger.ErrInvalidLevel, cfg.Log.Level)
	}
	mlog := logger.NewMCPLogger(stderr, false)
	diag := logger.WithComponent(mlog.Diagnostic().Level(level), "mcp")

	s, err := NewServerBuilder().
		WithConfig(cfg).
		WithVersion(cf.version).
		WithLogger(diag).
		WithTools(cf.tools...).
		WithToolsWithConfig(cf.toolsWithConfig...).
		WithResources(createResources()...).
		WithInstructions(instructions).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	mlog.Printf("%s %s serving on stdio", serverName, cf.version)
	if err := serve(ctx, s, cf.stdin, cf.stdout, diag); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	mlog.Println("server stopped")
	return nil
}
