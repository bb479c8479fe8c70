// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the logging surfaces used by CertLite.
//
// The [Logger] interface carries human readable output. [CLILogger] prints
// plain lines for terminal users, while [MCPLogger] emits [zerolog] JSON lines
// so diagnostics never corrupt the MCP stdio channel. [NewDiagnostic] builds
// the structured logger handed to the generation pipeline.
//
// [zerolog]: https://github.com/rs/zerolog
package logger
