// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pki

import (
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"fmt"
)

// DigestFunction hashes a byte slice.
type DigestFunction interface {
	Sum(data []byte) []byte
}

// SHA256Digest is the SHA-256 DigestFunction.
type SHA256Digest struct{}

// Sum returns the 32-byte SHA-256 digest of data.
func (SHA256Digest) Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// Fingerprint is a digest over a certificate's DER encoding.
type Fingerprint []byte

// String renders the fingerprint in padded standard base64.
func (f Fingerprint) String() string { return base64.StdEncoding.EncodeToString(f) }

// FingerprintCalculator computes verification fingerprints. The digest is
// independent of the certificate's own signature algorithm.
type FingerprintCalculator struct {
	Digest DigestFunction
}

// NewFingerprintCalculator returns a SHA-256 calculator.
func NewFingerprintCalculator() *FingerprintCalculator {
	return &FingerprintCalculator{Digest: SHA256Digest{}}
}

// Compute fingerprints the DER bytes of cert.
func (fc *FingerprintCalculator) Compute(cert *x509.Certificate) (Fingerprint, error) {
	if cert == nil || len(cert.Raw) == 0 {
		return nil, fmt.Errorf("%w: certificate encoding unavailable", ErrFingerprint)
	}

	var d DigestFunction = SHA256Digest{}
	if fc != nil && fc.Digest != nil {
		d = fc.Digest
	}

	sum := d.Sum(cert.Raw)
	if len(sum) == 0 {
		return nil, fmt.Errorf("%w: empty digest", ErrFingerprint)
	}
	return Fingerprint(sum), nil
}
