// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pki

import (
	"crypto"
	"crypto/x509"
	"fmt"
	"strings"
)

// Digest selects the hash used for certificate signatures.
type Digest int

const (
	// SHA256 signs with ECDSA over SHA-256.
	SHA256 Digest = iota + 1
	// SHA384 signs with ECDSA over SHA-384.
	SHA384
)

// ParseDigest accepts "sha256", "SHA-256", "sha384" and "SHA-384" in any case.
func ParseDigest(s string) (Digest, error) {
	switch strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "") {
	case "SHA256":
		return SHA256, nil
	case "SHA384":
		return SHA384, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedDigest, s)
}

// String returns the canonical upper-case name.
func (d Digest) String() string {
	switch d {
	case SHA256:
		return "SHA256"
	case SHA384:
		return "SHA384"
	}
	return fmt.Sprintf("Digest(%d)", int(d))
}

// Valid reports whether d is a known selection.
func (d Digest) Valid() bool { return d == SHA256 || d == SHA384 }

// Hash returns the underlying hash function.
func (d Digest) Hash() crypto.Hash {
	if d == SHA384 {
		return crypto.SHA384
	}
	return crypto.SHA256
}

// SignatureAlgorithm maps the selection onto an ECDSA signature algorithm.
func (d Digest) SignatureAlgorithm() (x509.SignatureAlgorithm, error) {
	switch d {
	case SHA256:
		return x509.ECDSAWithSHA256, nil
	case SHA384:
		return x509.ECDSAWithSHA384, nil
	}
	return x509.UnknownSignatureAlgorithm, fmt.Errorf("%w: %v", ErrUnsupportedDigest, d)
}
