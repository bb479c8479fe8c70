// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"bytes"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	x509certs "github.com/H0llyW00dzZ/certlite/src/internal/x509/certs"
)

var (
	// ErrEmptyChain indicates the chain holds no certificates.
	ErrEmptyChain = errors.New("x509chain: empty chain")

	// ErrIssuerMismatch indicates a certificate's issuer does not equal the
	// subject of the next certificate in the chain.
	ErrIssuerMismatch = errors.New("x509chain: issuer does not match root subject")
)

// Chain holds [X.509] certificates ordered leaf first, root last.
//
// [X.509]: https://datatracker.ietf.org/doc/html/rfc5280
type Chain struct {
	mu    sync.RWMutex
	Certs []*x509.Certificate
	*x509certs.Certificate

	// Now returns the verification time. Defaults to time.Now.
	Now func() time.Time
}

// New creates a Chain from a leaf and the root that issued it.
//
// Parameters:
//   - leaf: End-entity certificate
//   - root: Self-signed root certificate
//
// Returns:
//   - *Chain: New Chain instance
func New(leaf, root *x509.Certificate) *Chain {
	certs := make([]*x509.Certificate, 0, 2)
	for _, c := range []*x509.Certificate{leaf, root} {
		if c != nil {
			certs = append(certs, c)
		}
	}
	return &Chain{
		Certs:       certs,
		Certificate: x509certs.New(),
		Now:         time.Now,
	}
}

// Leaf returns the first certificate, or nil.
func (ch *Chain) Leaf() *x509.Certificate {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	if len(ch.Certs) == 0 {
		return nil
	}
	return ch.Certs[0]
}

// Root returns the last certificate, or nil.
func (ch *Chain) Root() *x509.Certificate {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	if len(ch.Certs) == 0 {
		return nil
	}
	return ch.Certs[len(ch.Certs)-1]
}

// IsSelfSigned checks if a certificate is self-signed.
func (ch *Chain) IsSelfSigned(cert *x509.Certificate) bool {
	return bytes.Equal(cert.RawIssuer, cert.RawSubject) && cert.CheckSignatureFrom(cert) == nil
}

// IsRootNode determines if a certificate is a root node in the chain.
func (ch *Chain) IsRootNode(cert *x509.Certificate) bool {
	return ch.IsSelfSigned(cert)
}

// CheckIssuerLinkage reports whether every certificate's encoded issuer
// equals the encoded subject of its successor, byte for byte.
func (ch *Chain) CheckIssuerLinkage() error {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	if len(ch.Certs) == 0 {
		return ErrEmptyChain
	}
	for i := 0; i < len(ch.Certs)-1; i++ {
		child, parent := ch.Certs[i], ch.Certs[i+1]
		if !bytes.Equal(child.RawIssuer, parent.RawSubject) {
			return fmt.Errorf("%w: %q issued by %q, next is %q",
				ErrIssuerMismatch, child.Subject.CommonName, child.Issuer.CommonName, parent.Subject.CommonName)
		}
	}
	return nil
}

// VerifyChain checks that the leaf verifies against the last certificate
// used as the only trust anchor. Pools are built per call, so concurrent
// calls are safe.
//
// Parameters:
//   - hostname: Name the leaf must be valid for. Empty or an IP literal
//     skips the hostname check, since CertLite places IP literals in DNS
//     SAN entries where Go's verifier does not match them.
//
// Returns:
//   - error: Error from [x509.Certificate.Verify], preserving its detail
func (ch *Chain) VerifyChain(hostname string) error {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	if len(ch.Certs) == 0 {
		return ErrEmptyChain
	}

	roots, intermediates := x509.NewCertPool(), x509.NewCertPool()
	for i, cert := range ch.Certs {
		if i == len(ch.Certs)-1 {
			roots.AddCert(cert)
		} else if i > 0 {
			intermediates.AddCert(cert)
		}
	}

	now := time.Now
	if ch.Now != nil {
		now = ch.Now
	}

	opts := x509.VerifyOptions{
		Roots:         roots,
		Intermediates: intermediates,
		CurrentTime:   now(),
		KeyUsages:     []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	}
	if hostname != "" && net.ParseIP(hostname) == nil {
		opts.DNSName = hostname
	}

	_, err := ch.Certs[0].Verify(opts)
	return err
}

// getCertificateRole determines the role of a certificate in the chain.
func (ch *Chain) getCertificateRole(index int) string {
	total := len(ch.Certs)
	switch {
	case total == 1:
		return "Self-Signed Certificate"
	case index == 0:
		return "End-Entity (Leaf) Certificate"
	case index == total-1:
		return "Root CA Certificate"
	default:
		return "Intermediate CA Certificate"
	}
}
