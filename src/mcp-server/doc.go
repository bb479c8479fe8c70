// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes CertLite over the Model Context Protocol ([MCP]).
//
// The server speaks [MCP] on stdio and offers three tools:
//   - generate_certificate: run the generation pipeline for a domain
//   - verify_certificate_chain: check previously generated artifacts
//   - inspect_certificate: summarize a PEM certificate and its fingerprint
//
// It also serves the configuration template and schema, version
// information and a description of the generated artifacts as resources.
// Servers are assembled with [ServerBuilder]; [Run] wires the defaults,
// loads configuration and serves until stdin closes or a signal arrives.
//
// Diagnostics are written as JSON lines to stderr so that stdout carries
// protocol traffic only.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
