// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509chain verifies and renders the two certificate chain that
// CertLite issues: a leaf certificate signed directly by an ephemeral root.
// It provides capabilities to:
//   - Load root_ca.crt, <domain>.crt and <domain>.key back from disk.
//   - Check issuer linkage, signatures, SAN entries, validity windows and the
//     leaf key pairing, collecting every result into a [Report].
//   - Render the chain as an ASCII tree, a markdown table or JSON.
//
// [X.509]: https://datatracker.ietf.org/doc/html/rfc5280
package x509chain
