// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pki implements the certificate primitives used to issue a locally
// trusted [X.509] chain: elliptic-curve key generation, distinguished names,
// a self-signed root certificate authority, the Subject Alternative Name
// extension, an internal certificate request, leaf signing and the
// verification fingerprint.
//
// Each capability is exposed behind a small interface (KeyPairGenerator,
// CertificateSigner, DigestFunction) so the generation pipeline can be driven
// by fakes in tests.
//
// [X.509]: https://grokipedia.com/page/X.509
package pki
