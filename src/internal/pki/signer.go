// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pki

import (
	"crypto"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"io"
	"time"
)

// LeafKeyUsage is the key usage asserted by every leaf certificate.
const LeafKeyUsage = x509.KeyUsageDigitalSignature |
	x509.KeyUsageContentCommitment |
	x509.KeyUsageKeyEncipherment |
	x509.KeyUsageDataEncipherment

// CertificateSigner issues a leaf certificate for req under root.
type CertificateSigner interface {
	Sign(req *CertificateRequest, root *x509.Certificate, caKey crypto.Signer, digest Digest) (*x509.Certificate, error)
}

// LeafSigner signs leaf certificates with a root CA key.
type LeafSigner struct {
	Validity time.Duration
	Now      func() time.Time
	Rand     io.Reader
}

// NewLeafSigner returns a signer issuing certificates valid for [LeafValidityDays].
func NewLeafSigner() *LeafSigner {
	return &LeafSigner{
		Validity: Days(LeafValidityDays),
		Now:      time.Now,
		Rand:     rand.Reader,
	}
}

// Sign issues the leaf. The issuer is copied from the raw subject of root, the
// authority key identifier references root's subject key identifier, and the
// SAN extension carries req.SAN exactly as given.
func (s *LeafSigner) Sign(req *CertificateRequest, root *x509.Certificate, caKey crypto.Signer, digest Digest) (*x509.Certificate, error) {
	switch {
	case req == nil || req.PublicKey == nil:
		return nil, fmt.Errorf("%w: missing certificate request", ErrCertificateBuild)
	case root == nil || len(root.Raw) == 0:
		return nil, fmt.Errorf("%w: missing root certificate", ErrCertificateBuild)
	case caKey == nil:
		return nil, fmt.Errorf("%w: missing CA private key", ErrSigning)
	}
	if err := req.Subject.Validate(); err != nil {
		return nil, err
	}
	if err := publicKeysMatch(caKey, root.PublicKey); err != nil {
		return nil, err
	}

	sigAlg, err := digest.SignatureAlgorithm()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCertificateBuild, err)
	}
	san, err := req.SAN.Extension()
	if err != nil {
		return nil, err
	}
	serial, err := randomSerial(s.Rand, root.SerialNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: serial number: %w", ErrCertificateBuild, err)
	}

	notBefore := now(s.Now)
	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               req.Subject.PKIX(),
		NotBefore:             notBefore,
		NotAfter:              notBefore.Add(s.Validity),
		SignatureAlgorithm:    sigAlg,
		KeyUsage:              LeafKeyUsage,
		BasicConstraintsValid: true,
		IsCA:                  false,
		AuthorityKeyId:        root.SubjectKeyId,
		ExtraExtensions:       []pkix.Extension{san},
	}

	r := s.Rand
	if r == nil {
		r = rand.Reader
	}
	der, err := x509.CreateCertificate(r, template, root, req.PublicKey, caKey)
	if err != nil {
		return nil, fmt.Errorf("%w: sign leaf: %w", ErrSigning, err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("%w: parse leaf: %w", ErrCertificateBuild, err)
	}
	return cert, nil
}
