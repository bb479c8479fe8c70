// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for CertLite.
//
// The root command generates a root CA and a leaf certificate for a domain,
// writes root_ca.crt, <domain>.crt and <domain>.key to the output directory
// and prints the base64 SHA-256 fingerprint of the leaf. The verify
// subcommand reloads those files and checks the chain.
//
// Flags fall back to the configuration file selected with --config (or
// CERTLITE_CONFIG_FILE), then to built-in defaults. Results are printed as
// plain text, or as JSON, a table or an ASCII tree. Diagnostics go to stderr
// through zerolog.
package cli
