// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pki

import "errors"

var (
	// ErrKeyGeneration indicates that a key pair could not be produced.
	ErrKeyGeneration = errors.New("pki: key generation failed")

	// ErrCertificateBuild indicates malformed certificate inputs.
	ErrCertificateBuild = errors.New("pki: certificate build failed")

	// ErrSigning indicates that a signature could not be produced, including
	// a CA private key that does not match the issuing certificate.
	ErrSigning = errors.New("pki: signing failed")

	// ErrFingerprint indicates that a fingerprint could not be computed.
	ErrFingerprint = errors.New("pki: fingerprint failed")

	// ErrUnsupportedDigest indicates an unknown digest algorithm selection.
	ErrUnsupportedDigest = errors.New("pki: unsupported digest algorithm")
)
