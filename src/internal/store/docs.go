// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package store writes CertLite artifacts into a caller supplied directory.
//
// Every artifact is encoded into a pooled buffer and then written through a
// pending file that atomically replaces the destination, so a crash never
// leaves a half written key or certificate behind. File names are fixed for
// the root certificate and derived from the domain for the leaf pair:
//
//	root_ca.crt      self-signed root certificate (0644)
//	<domain>.key     leaf EC private key (0600)
//	<domain>.crt     leaf certificate (0644)
//
// The store never writes the CA private key. DiscardTransient removes the
// intermediate files older tooling left in the directory and reports removal
// failures as non-fatal warnings.
package store
