// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"crypto/ecdsa"
	"crypto/x509"

	"github.com/rs/zerolog"

	"github.com/H0llyW00dzZ/certlite/src/internal/pki"
	"github.com/H0llyW00dzZ/certlite/src/internal/store"
)

// RootIssuer self-signs the root certificate of a run.
// [*pki.RootCertificateAuthority] is the default.
type RootIssuer interface {
	Issue(kp *pki.KeyPair, digest pki.Digest) (*x509.Certificate, error)
}

// ArtifactStore persists the artifacts of a run.
// [*store.ArtifactStore] is the default.
type ArtifactStore interface {
	WriteRootCertificate(cert *x509.Certificate) (string, error)
	WriteLeafKey(key *ecdsa.PrivateKey) (string, error)
	WriteLeafCertificate(cert *x509.Certificate) (string, error)
	DiscardTransient() []error
}

// StoreFactory opens the ArtifactStore for one run.
type StoreFactory func(dir, domain string, log zerolog.Logger) ArtifactStore

// Option configures a [Pipeline].
type Option func(*Pipeline)

// WithKeyGenerator replaces the key pair generator used for both the CA and
// the leaf key.
func WithKeyGenerator(g pki.KeyPairGenerator) Option {
	return func(p *Pipeline) { p.keys = g }
}

// WithRootIssuer replaces the root certificate authority.
func WithRootIssuer(r RootIssuer) Option {
	return func(p *Pipeline) { p.root = r }
}

// WithSigner replaces the leaf certificate signer.
func WithSigner(s pki.CertificateSigner) Option {
	return func(p *Pipeline) { p.signer = s }
}

// WithStoreFactory replaces how artifacts are persisted.
func WithStoreFactory(f StoreFactory) Option {
	return func(p *Pipeline) { p.newStore = f }
}

// WithFingerprintDigest replaces the digest used for the fingerprint.
func WithFingerprintDigest(d pki.DigestFunction) Option {
	return func(p *Pipeline) { p.fingerprint = &pki.FingerprintCalculator{Digest: d} }
}

// WithLogger sets the diagnostic logger. Stage transitions are logged at
// debug level and failures at error level.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// WithProgress registers fn to be called on entry to every stage after Idle,
// in order, on the goroutine running the pipeline.
func WithProgress(fn func(Stage)) Option {
	return func(p *Pipeline) { p.progress = fn }
}

func defaultStore(dir, domain string, log zerolog.Logger) ArtifactStore {
	return store.New(dir, domain, store.WithLogger(log))
}
