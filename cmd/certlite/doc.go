// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// certlite generates a throwaway root CA and a TLS certificate signed by it
// for a domain and its wildcard.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/certlite/cmd/certlite@latest
//
// # Usage
//
//	certlite [FLAGS]
//	certlite verify [FLAGS]
//
// # Flags
//
//	-d, --domain      Domain the certificate is issued for (default: localhost)
//	-o, --output-dir  Directory the artifacts are written to (default: .)
//	-a, --algorithm   Signature digest, sha256 or sha384 (default: SHA256)
//	    --config      JSON or YAML config file (env: CERTLITE_CONFIG_FILE)
//	    --json        Emit a JSON summary
//	    --tree        Display the chain as an ASCII tree
//	    --table       Display the chain as a markdown table
//	-v, --verbose     Log every stage to stderr
//
// # Output
//
// A successful run writes three files to the output directory:
//
//	root_ca.crt    Root CA certificate (PEM)
//	DOMAIN.crt     Leaf certificate for DOMAIN and *.DOMAIN (PEM)
//	DOMAIN.key     Leaf EC private key (PEM, mode 0600)
//
// and prints the base64 SHA-256 fingerprint of the leaf certificate. The CA
// private key only exists in memory.
//
// Any existing rootCA.key, server.csr, server.ext or root_ca.srl in the output
// directory is deleted at the end of a successful run.
//
// # Examples
//
// Issue a certificate for example.test into ./certs:
//
//	certlite -d example.test -o ./certs
//
// Check it afterwards:
//
//	certlite verify -d example.test -o ./certs --tree
//
// Verify the output with OpenSSL:
//
//	openssl verify -CAfile certs/root_ca.crt certs/example.test.crt
package main
