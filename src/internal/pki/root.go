// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pki

import (
	"crypto/rand"
	"crypto/x509"
	"fmt"
	"io"
	"time"
)

const (
	// RootValidityDays is the lifetime of the ephemeral root certificate.
	RootValidityDays = 36500
	// LeafValidityDays is the lifetime of an issued leaf certificate.
	LeafValidityDays = 3650
)

// Days converts a day count into a duration.
func Days(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }

// RootCertificateAuthority self-signs the root certificate of a single run.
type RootCertificateAuthority struct {
	Name     DistinguishedName
	Validity time.Duration
	Now      func() time.Time
	Rand     io.Reader
}

// NewRootCertificateAuthority returns an authority named
// /C=CN/O=CertLite/CN=CertLite Root CA valid for [RootValidityDays].
func NewRootCertificateAuthority() *RootCertificateAuthority {
	return &RootCertificateAuthority{
		Name:     NewDistinguishedName(RootCommonName),
		Validity: Days(RootValidityDays),
		Now:      time.Now,
		Rand:     rand.Reader,
	}
}

// Issue builds and self-signs the root certificate for kp. The returned
// certificate is parsed back from its DER form so that its raw subject can
// be reused verbatim as the issuer of leaf certificates.
func (ca *RootCertificateAuthority) Issue(kp *KeyPair, digest Digest) (*x509.Certificate, error) {
	if kp == nil || kp.Private == nil || kp.Public == nil {
		return nil, fmt.Errorf("%w: missing CA key pair", ErrCertificateBuild)
	}
	if err := ca.Name.Validate(); err != nil {
		return nil, err
	}
	sigAlg, err := digest.SignatureAlgorithm()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCertificateBuild, err)
	}

	serial, err := randomSerial(ca.Rand)
	if err != nil {
		return nil, fmt.Errorf("%w: serial number: %w", ErrCertificateBuild, err)
	}
	ski, err := subjectKeyID(kp.Public)
	if err != nil {
		return nil, fmt.Errorf("%w: subject key identifier: %w", ErrCertificateBuild, err)
	}

	notBefore := now(ca.Now)
	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               ca.Name.PKIX(),
		NotBefore:             notBefore,
		NotAfter:              notBefore.Add(ca.Validity),
		SignatureAlgorithm:    sigAlg,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
		IsCA:                  true,
		SubjectKeyId:          ski,
	}

	r := ca.Rand
	if r == nil {
		r = rand.Reader
	}
	der, err := x509.CreateCertificate(r, template, template, kp.Public, kp.Private)
	if err != nil {
		return nil, fmt.Errorf("%w: self-sign root: %w", ErrSigning, err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("%w: parse root: %w", ErrCertificateBuild, err)
	}
	return cert, nil
}

// now returns the current time truncated to whole seconds, the resolution of
// X.509 validity fields.
func now(clock func() time.Time) time.Time {
	if clock == nil {
		clock = time.Now
	}
	return clock().UTC().Truncate(time.Second)
}
