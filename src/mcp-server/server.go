// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"io"
	stdlog "log"

	"github.com/H0llyW00dzZ/certlite/src/version"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

var appVersion = version.Version // default version

// GetVersion returns the version reported by the server. It is the value
// passed to [Run], or the package default before Run is called.
func GetVersion() string {
	return appVersion
}

// Run starts the CertLite [MCP] server on stdio with the process arguments.
//
// Parameters:
//   - version: Version string reported to clients (e.g., "0.1.0")
//
// Returns:
//   - error: Configuration, build or transport error. A shutdown caused by
//     SIGINT, SIGTERM or stdin reaching EOF returns nil.
//
// Configuration is loaded from --config, or CERTLITE_CONFIG_FILE when the
// flag is absent. Diagnostics are JSON lines on stderr.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func Run(version string) error {
	appVersion = version
	return NewCLIFramework(version).BuildRootCommand().ExecuteContext(context.Background())
}

// serve runs s over the given streams until in reaches EOF or ctx is done.
// Cancellation is a normal shutdown and returns nil.
func serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer, log zerolog.Logger) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(stdlog.New(log, "", 0))

	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
